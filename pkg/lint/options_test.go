package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/biome/pkg/lint"
	_ "github.com/leapstack-labs/biome/pkg/lint/rules" // register rules
)

func ruleWithOptions(group, rule string, options map[string]any) map[string]any {
	return map[string]any{
		group: map[string]any{
			rule: map[string]any{"level": "error", "options": options},
		},
	}
}

func TestDeserializeRules_ValidatesOptions(t *testing.T) {
	tests := []struct {
		name     string
		group    string
		rule     string
		options  map[string]any
		wantMsg  string
		wantPath string
	}{
		{
			name:     "misspelled key",
			group:    "suspicious",
			rule:     "noDoubleEquals",
			options:  map[string]any{"ignoreNul": false},
			wantMsg:  "unknown key `ignoreNul`",
			wantPath: "at linter.rules.suspicious.noDoubleEquals.options",
		},
		{
			name:     "wrong value type",
			group:    "suspicious",
			rule:     "noDoubleEquals",
			options:  map[string]any{"ignoreNull": "sometimes"},
			wantMsg:  "invalid rule options",
			wantPath: "at linter.rules.suspicious.noDoubleEquals.options",
		},
		{
			name:     "rule without options",
			group:    "suspicious",
			rule:     "noDebugger",
			options:  map[string]any{"strict": true},
			wantMsg:  "doesn't accept options",
			wantPath: "at linter.rules.suspicious.noDebugger.options",
		},
		{
			name:     "unknown enum member case",
			group:    "style",
			rule:     "useNamingConvention",
			options:  map[string]any{"enumMemberCase": "snake_case"},
			wantMsg:  "unknown enumMemberCase",
			wantPath: "at linter.rules.style.useNamingConvention.options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, diags := lint.DeserializeRules(ruleWithOptions(tt.group, tt.rule, tt.options))

			require.Len(t, diags, 1)
			assert.Equal(t, lint.CategoryConfiguration, diags[0].Category)
			assert.Equal(t, lint.SeverityError, diags[0].Severity)
			assert.Contains(t, diags[0].Message, tt.wantMsg)
			assert.Contains(t, diags[0].Notes, tt.wantPath)

			id, ok := lint.LookupCategory("lint/" + tt.group + "/" + tt.rule)
			require.True(t, ok)
			assert.False(t, cfg.RuleConfig(id).IsSet(), "invalid entries are left unset")
		})
	}
}

func TestDeserializeRules_AcceptsValidOptions(t *testing.T) {
	tests := []struct {
		name    string
		group   string
		rule    string
		options map[string]any
	}{
		{"bool option", "suspicious", "noDoubleEquals", map[string]any{"ignoreNull": false}},
		{"enum member case", "style", "useNamingConvention", map[string]any{"enumMemberCase": "CONSTANT_CASE", "strictCase": false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, diags := lint.DeserializeRules(ruleWithOptions(tt.group, tt.rule, tt.options))
			require.Empty(t, diags)

			id, ok := lint.LookupCategory("lint/" + tt.group + "/" + tt.rule)
			require.True(t, ok)
			assert.Equal(t, tt.options, cfg.RuleConfig(id).Options)
		})
	}
}
