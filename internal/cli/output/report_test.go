package output

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/biome/internal/driver"
	"github.com/leapstack-labs/biome/internal/outcome"
	"github.com/leapstack-labs/biome/pkg/core"
	"github.com/leapstack-labs/biome/pkg/lint"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

const debuggerSource = "let a = 4;\ndebugger;\nconsole.log(a);\n"

func sampleReport() *outcome.Report {
	return &outcome.Report{
		Diagnostics: []lint.Diagnostic{{
			Category: lint.CategoryConfiguration,
			Severity: lint.SeverityWarning,
			Message:  "Both recommended and all are enabled.",
			Path:     "biome.json",
		}},
		Files: []driver.Result{{
			Path:   "fix.js",
			Source: []byte(debuggerSource),
			Diagnostics: []lint.Diagnostic{
				{
					Category: "lint/suspicious/noDebugger",
					Severity: lint.SeverityError,
					Message:  "This is an unexpected use of the debugger statement.",
					Range:    core.TextRange{Start: 11, End: 20},
					Path:     "fix.js",
					Start:    core.Position{Line: 2, Column: 1},
					End:      core.Position{Line: 2, Column: 10},
					Fixes: []lint.Fix{{
						Applicability: lint.ApplicabilityUnsafe,
						Description:   "Remove debugger statement",
						Edits:         []lint.TextEdit{{Range: core.TextRange{Start: 11, End: 21}}},
					}},
				},
				{
					Category: "lint/style/useNamingConvention",
					Severity: lint.SeverityInfo,
					Message:  "This variable name should be in camelCase.",
					Path:     "fix.js",
					Start:    core.Position{Line: 1, Column: 5},
					End:      core.Position{Line: 1, Column: 6},
					Notes:    []string{"The name could be renamed to a."},
				},
			},
		}},
		Summary: outcome.Summary{Files: 1, Errors: 1, Warnings: 1, Infos: 1},
	}
}

func TestReport_Text(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)

	require.NoError(t, r.Report(sampleReport(), DefaultReportOptions()))

	got := errOut.String()
	assert.Empty(t, out.String(), "text reports go to the error stream")
	assert.False(t, ansiPattern.MatchString(got), "no colors without a terminal")

	assert.Contains(t, got, "biome.json configuration")
	assert.Contains(t, got, "fix.js:2:1 lint/suspicious/noDebugger FIXABLE")
	assert.Contains(t, got, "  × This is an unexpected use of the debugger statement.")
	assert.Contains(t, got, "  i Unsafe fix: Remove debugger statement")
	assert.Contains(t, got, "    @@ -1,3 +1,2 @@")
	assert.Contains(t, got, "    -debugger;")
	assert.Contains(t, got, "     console.log(a);")
	assert.Contains(t, got, "  i The name could be renamed to a.")
	assert.Contains(t, got, "Checked 1 file.")
	assert.Contains(t, got, "Found 1 error.")
	assert.Contains(t, got, "Found 1 warning.")
	assert.Contains(t, got, "Found 1 info.")
}

func TestReport_DiagnosticLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)

	require.NoError(t, r.Report(sampleReport(), ReportOptions{Level: lint.SeverityError}))

	got := errOut.String()
	assert.Contains(t, got, "lint/suspicious/noDebugger")
	assert.NotContains(t, got, "useNamingConvention")
	assert.NotContains(t, got, "biome.json configuration")
	// the summary still counts everything
	assert.Contains(t, got, "Found 1 warning.")
}

func TestReport_Colors(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, true, ModeText)

	require.NoError(t, r.Report(sampleReport(), DefaultReportOptions()))
	assert.True(t, ansiPattern.MatchString(errOut.String()))
}

func TestReport_JSON(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeJSON)

	require.NoError(t, r.Report(sampleReport(), DefaultReportOptions()))
	assert.Empty(t, errOut.String())

	var got struct {
		Summary     outcome.Summary `json:"summary"`
		Diagnostics []struct {
			Category string         `json:"category"`
			Severity string         `json:"severity"`
			Path     string         `json:"path"`
			Start    *core.Position `json:"start"`
			Fixes    []Fix          `json:"fixes"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, 1, got.Summary.Errors)
	require.Len(t, got.Diagnostics, 3)

	assert.Equal(t, lint.CategoryConfiguration, got.Diagnostics[0].Category)
	assert.Nil(t, got.Diagnostics[0].Start)

	d := got.Diagnostics[1]
	assert.Equal(t, "lint/suspicious/noDebugger", d.Category)
	assert.Equal(t, "error", d.Severity)
	assert.Equal(t, "fix.js", d.Path)
	require.NotNil(t, d.Start)
	assert.Equal(t, core.Position{Line: 2, Column: 1}, *d.Start)
	assert.Equal(t, []Fix{{Applicability: "unsafe", Description: "Remove debugger statement"}}, d.Fixes)
}

func TestReport_JSONEmpty(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeJSON)

	require.NoError(t, r.Report(&outcome.Report{}, DefaultReportOptions()))
	assert.JSONEq(t, `{"summary":{"files":0,"changed":0,"errors":0,"warnings":0,"infos":0,"hints":0,"hidden":0},"diagnostics":[]}`, out.String())
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{input: "", want: ColorAuto},
		{input: "auto", want: ColorAuto},
		{input: "off", want: ColorOff},
		{input: "force", want: ColorForce},
		{input: "always", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRenderer_ColorModes(t *testing.T) {
	var out, errOut bytes.Buffer

	forced := NewRenderer(&out, &errOut, ModeText, ColorForce)
	assert.True(t, ansiPattern.MatchString(forced.Styles().Error.Render("x")))

	off := NewRenderer(&out, &errOut, ModeText, ColorOff)
	assert.Equal(t, "x", off.Styles().Error.Render("x"))

	auto := NewRenderer(&out, &errOut, ModeAuto, ColorAuto)
	assert.Equal(t, "x", auto.Styles().Error.Render("x"), "a buffer is not a terminal")
	assert.Equal(t, ModeText, auto.EffectiveMode())
}
