package commands

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/biome/internal/cli/output"
	clitest "github.com/leapstack-labs/biome/internal/cli/testutil"
	"github.com/leapstack-labs/biome/pkg/lint"
)

func TestRulesCommand_ListAll(t *testing.T) {
	res := runBiome(t, "", "rules")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "RECOMMENDED")
	assert.Contains(t, res.stdout, "suspicious/noDebugger")
	assert.Contains(t, res.stdout, "style/useNamingConvention")
	assert.Contains(t, res.stdout, "rules. Configure them under linter.rules")
}

func TestRulesCommand_Group(t *testing.T) {
	res := runBiome(t, "", "rules", "suspicious")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "suspicious/noDebugger")
	assert.NotContains(t, res.stdout, "style/noVar")
}

func TestRulesCommand_JSON(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, out RulesJSONOutput)
	}{
		{
			name: "all",
			args: []string{"rules", "--format", "json"},
			check: func(t *testing.T, out RulesJSONOutput) {
				assert.Equal(t, lint.RuleCount(), out.Count)
				assert.Len(t, out.Rules, out.Count)
			},
		},
		{
			name: "single rule",
			args: []string{"rules", "-f", "json", "lint/suspicious/noDebugger"},
			check: func(t *testing.T, out RulesJSONOutput) {
				require.Len(t, out.Rules, 1)
				r := out.Rules[0]
				assert.Equal(t, "lint/suspicious/noDebugger", r.Category)
				assert.True(t, r.Recommended)
				assert.True(t, r.Implemented)
				assert.Equal(t, "unsafe", r.FixKind)
				assert.Equal(t, []string{"javascript", "typescript", "tsx"}, r.Languages)
			},
		},
		{
			name: "recommended only",
			args: []string{"rules", "--format=json", "--recommended", "style"},
			check: func(t *testing.T, out RulesJSONOutput) {
				require.NotEmpty(t, out.Rules)
				for _, r := range out.Rules {
					assert.True(t, r.Recommended, r.Name)
					assert.Equal(t, "style", r.Group)
				}
				names := make([]string, 0, len(out.Rules))
				for _, r := range out.Rules {
					names = append(names, r.Name)
				}
				assert.NotContains(t, names, "useConst")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runBiome(t, "", tt.args...)
			require.NoError(t, res.err)

			var out RulesJSONOutput
			require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
			tt.check(t, out)
		})
	}
}

func TestRulesCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "unknown group", args: []string{"rules", "typos"}, msg: "unknown rule group"},
		{name: "unknown rule", args: []string{"rules", "style/noSuchRule"}, msg: "unknown rule"},
		{name: "bad format", args: []string{"rules", "--format", "yaml"}, msg: "--format"},
		{name: "too many args", args: []string{"rules", "style", "suspicious"}, msg: "accepts at most 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runBiome(t, "", tt.args...)
			require.Error(t, res.err)
			assert.Contains(t, res.err.Error(), tt.msg)
		})
	}
}

func TestListRulesText(t *testing.T) {
	tr := clitest.NewTestRenderer(output.ModeText, true)
	ids, err := selectRules([]string{"performance"}, &RulesOptions{})
	require.NoError(t, err)

	listRulesText(tr.Renderer, ids)

	got := clitest.StripANSI(tr.Output())
	assert.Contains(t, got, "performance/noDelete")
	assert.Contains(t, got, "not implemented")
	assert.Contains(t, got, fmt.Sprintf("%d rules.", len(ids)))
	assert.Empty(t, tr.ErrorOutput())
}
