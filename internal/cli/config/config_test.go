package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/biome/pkg/lint"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func boolPtr(b bool) *bool    { return &b }
func int64Ptr(n int64) *int64 { return &n }

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	assert.Empty(t, cfg.FileUsed)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.True(t, cfg.LinterEnabled())
	assert.False(t, cfg.VCSEnabled())
	assert.False(t, cfg.Unstable)
	assert.Equal(t, int64(42), cfg.MaxSize(42))
	assert.Empty(t, cfg.Diagnostics)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `{
		"$schema": "./node_modules/@biomejs/biome/configuration_schema.json",
		"files": { "includes": ["src/**"], "maxSize": 2048, "ignoreUnknown": true },
		"vcs": { "enabled": true, "clientKind": "git", "useIgnoreFile": true, "defaultBranch": "main" },
		"linter": {
			"enabled": true,
			"rules": { "suspicious": { "noDebugger": "warn" } }
		}
	}`)

	cfg, err := Load(LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, FileName), cfg.FileUsed)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, []string{"src/**"}, cfg.Files.Includes)
	assert.Equal(t, int64(2048), cfg.MaxSize(0))
	assert.True(t, cfg.IgnoreUnknown())
	assert.True(t, cfg.VCSEnabled())
	assert.True(t, cfg.UseIgnoreFile())
	assert.Equal(t, "main", cfg.VCS.DefaultBranch)
	assert.Empty(t, cfg.Diagnostics)

	id, ok := lint.Lookup(lint.GroupSuspicious, "noDebugger")
	require.True(t, ok)
	assert.Equal(t, lint.LevelWarn, cfg.Rules.RuleConfig(id).Level)
}

func TestLoad_Discovery(t *testing.T) {
	t.Run("upward search", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, FileName), `{"linter": {"enabled": false}}`)
		nested := filepath.Join(root, "a", "b", "c")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		cfg, err := Load(LoadOptions{WorkDir: nested})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, FileName), cfg.FileUsed)
		assert.Equal(t, root, cfg.Dir)
		assert.False(t, cfg.LinterEnabled())
	})

	t.Run("biome.json before biome.jsonc", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, FileName), `{}`)
		writeFile(t, filepath.Join(dir, FileNameJSONC), `{}`)

		cfg, err := Load(LoadOptions{WorkDir: dir})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, FileName), cfg.FileUsed)
	})

	t.Run("explicit file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "conf", "custom.json"), `{"files": {"maxSize": 10}}`)

		cfg, err := Load(LoadOptions{WorkDir: dir, ConfigPath: "conf/custom.json"})
		require.NoError(t, err)
		assert.Equal(t, int64(10), cfg.MaxSize(0))
		assert.Equal(t, filepath.Join(dir, "conf"), cfg.Dir)
	})

	t.Run("explicit directory", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "conf", FileNameJSONC), `{"files": {"maxSize": 11}}`)

		cfg, err := Load(LoadOptions{WorkDir: dir, ConfigPath: filepath.Join(dir, "conf")})
		require.NoError(t, err)
		assert.Equal(t, int64(11), cfg.MaxSize(0))
	})

	t.Run("explicit path missing", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Load(LoadOptions{WorkDir: dir, ConfigPath: "nope.json"})
		require.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("explicit directory without config", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Load(LoadOptions{WorkDir: dir, ConfigPath: dir})
		require.ErrorIs(t, err, ErrConfigNotFound)
	})
}

func TestLoad_JSONC(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileNameJSONC), `{
		// line comment
		"files": {
			/* block
			   comment */
			"includes": ["**/*.js", "!vendor/**",],
		},
	}`)

	cfg, err := Load(LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Empty(t, cfg.Diagnostics)
	assert.Equal(t, []string{"**/*.js", "!vendor/**"}, cfg.Files.Includes)
}

func TestLoad_InvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "unknown top-level key",
			content: `{"lint": {}}`,
			wantMsg: "Invalid configuration at /",
		},
		{
			name:    "unknown nested key",
			content: `{"files": {"maxsize": 1}}`,
			wantMsg: "Invalid configuration at /files",
		},
		{
			name:    "wrong type",
			content: `{"files": {"maxSize": "big"}}`,
			wantMsg: "Invalid configuration at /files/maxSize",
		},
		{
			name:    "negative size",
			content: `{"files": {"maxSize": -1}}`,
			wantMsg: "Invalid configuration at /files/maxSize",
		},
		{
			name:    "unsupported client",
			content: `{"vcs": {"clientKind": "hg"}}`,
			wantMsg: "Invalid configuration at /vcs/clientKind",
		},
		{
			name:    "syntax error",
			content: `{"files": `,
			wantMsg: "Failed to parse the configuration file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, FileName)
			writeFile(t, path, tt.content)

			cfg, err := Load(LoadOptions{WorkDir: dir})
			require.NoError(t, err)
			require.NotEmpty(t, cfg.Diagnostics)
			assert.True(t, cfg.HasErrors())

			d := cfg.Diagnostics[0]
			assert.Equal(t, lint.CategoryConfiguration, d.Category)
			assert.Equal(t, path, d.Path)
			assert.Contains(t, d.Message, tt.wantMsg)

			// the invalid file is ignored
			assert.Nil(t, cfg.Files.MaxSize)
			assert.True(t, cfg.LinterEnabled())
		})
	}
}

func TestLoad_OpaqueSections(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `{
		"formatter": {"indentStyle": "space"},
		"javascript": {"globals": ["$"], "jsxRuntime": "reactClassic"}
	}`)

	cfg, err := Load(LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Empty(t, cfg.Diagnostics)
	assert.Equal(t, "reactClassic", cfg.JavaScript["jsxRuntime"])
}

func TestLoad_RuleDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, path, `{"linter": {"rules": {
		"recommended": true,
		"all": true,
		"bogus": {"noVar": "off"},
		"style": {"noVar": "loud"}
	}}}`)

	cfg, err := Load(LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	var messages []string
	for _, d := range cfg.Diagnostics {
		assert.Equal(t, lint.CategoryConfiguration, d.Category)
		assert.Equal(t, path, d.Path)
		messages = append(messages, d.Message)
	}
	require.Len(t, cfg.Diagnostics, 3, "diagnostics: %v", messages)
	assert.Nil(t, cfg.Rules.Recommended)
	assert.Nil(t, cfg.Rules.All)
}

func TestLoad_Env(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "elsewhere", FileName), `{"files": {"maxSize": 7}}`)
	t.Setenv("BIOME_CONFIG_PATH", filepath.Join(dir, "elsewhere"))
	t.Setenv("BIOME_LOG_LEVEL", "debug")
	t.Setenv("BIOME_UNSTABLE", "true")
	t.Setenv("BIOME_FILES", "ignored")

	cfg, err := Load(LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.MaxSize(0))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Unstable)
}

func TestLoad_Flags(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `{
		"files": {"maxSize": 100, "includes": ["src/**"]},
		"vcs": {"enabled": false}
	}`)
	t.Setenv("BIOME_LOG_LEVEL", "info")

	flags := pflag.NewFlagSet("lint", pflag.ContinueOnError)
	flags.Int64("files-max-size", 1024, "")
	flags.Bool("files-ignore-unknown", false, "")
	flags.Bool("vcs-enabled", false, "")
	flags.Bool("vcs-use-ignore-file", false, "")
	flags.String("vcs-root", "", "")
	flags.StringSlice("only", nil, "")
	flags.StringSlice("skip", nil, "")
	flags.String("log-level", "", "")
	flags.Bool("write", false, "")
	require.NoError(t, flags.Parse([]string{
		"--files-max-size=5",
		"--vcs-enabled",
		"--only=style",
		"--only=suspicious/noDebugger",
		"--skip=style/noVar",
		"--log-level=error",
		"--write",
	}))

	cfg, err := Load(LoadOptions{WorkDir: dir, Flags: flags})
	require.NoError(t, err)

	assert.Equal(t, int64(5), cfg.MaxSize(0))
	assert.True(t, cfg.VCSEnabled())
	assert.False(t, cfg.IgnoreUnknown(), "unchanged flags must not override")
	assert.Equal(t, []string{"src/**"}, cfg.Files.Includes)
	assert.Equal(t, []string{"style", "suspicious/noDebugger"}, cfg.Linter.Only)
	assert.Equal(t, []string{"style/noVar"}, cfg.Linter.Skip)
	assert.Equal(t, "error", cfg.LogLevel, "flags win over env")
}

func TestLoad_InvalidOverride(t *testing.T) {
	dir := t.TempDir()
	flags := pflag.NewFlagSet("lint", pflag.ContinueOnError)
	flags.Int64("files-max-size", 0, "")
	require.NoError(t, flags.Parse([]string{"--files-max-size=-3"}))

	_, err := Load(LoadOptions{WorkDir: dir, Flags: flags})
	require.ErrorIs(t, err, ErrNegativeMaxSize)
}

func TestMerge(t *testing.T) {
	rules := map[string]any{"style": map[string]any{"noVar": "off"}}
	base := Config{
		Files:    FilesConfig{Includes: []string{"src/**"}, MaxSize: int64Ptr(10)},
		VCS:      VCSConfig{Enabled: boolPtr(true), Root: "repo"},
		Linter:   LinterConfig{Enabled: boolPtr(false), Only: []string{"style"}, Rules: rules},
		LogLevel: "warn",
	}

	tests := []struct {
		name  string
		over  Config
		check func(t *testing.T, got Config)
	}{
		{
			name:  "empty override keeps base",
			over:  Config{},
			check: func(t *testing.T, got Config) {
				assert.Equal(t, base, got)
			},
		},
		{
			name:  "set pointers override",
			over:  Config{
				Files:  FilesConfig{MaxSize: int64Ptr(20)},
				VCS:    VCSConfig{Enabled: boolPtr(false)},
				Linter: LinterConfig{Enabled: boolPtr(true)},
			},
			check: func(t *testing.T, got Config) {
				assert.Equal(t, int64(20), *got.Files.MaxSize)
				assert.False(t, *got.VCS.Enabled)
				assert.True(t, *got.Linter.Enabled)
				assert.Equal(t, "repo", got.VCS.Root)
			},
		},
		{
			name:  "lists append",
			over:  Config{
				Files:  FilesConfig{Includes: []string{"!src/gen/**"}},
				Linter: LinterConfig{Only: []string{"suspicious"}, Skip: []string{"style/noVar"}},
			},
			check: func(t *testing.T, got Config) {
				assert.Equal(t, []string{"src/**", "!src/gen/**"}, got.Files.Includes)
				assert.Equal(t, []string{"style", "suspicious"}, got.Linter.Only)
				assert.Equal(t, []string{"style/noVar"}, got.Linter.Skip)
			},
		},
		{
			name:  "strings override when non-empty",
			over:  Config{LogLevel: "debug", VCS: VCSConfig{Root: "other"}},
			check: func(t *testing.T, got Config) {
				assert.Equal(t, "debug", got.LogLevel)
				assert.Equal(t, "other", got.VCS.Root)
			},
		},
		{
			name:  "rules merge per group",
			over:  Config{Linter: LinterConfig{Rules: map[string]any{"suspicious": map[string]any{"noDebugger": "warn"}}}},
			check: func(t *testing.T, got Config) {
				assert.Len(t, got.Linter.Rules, 2)
				assert.Len(t, base.Linter.Rules, 1, "base must not be modified")
			},
		},
		{
			name:  "unstable is sticky",
			over:  Config{Unstable: true},
			check: func(t *testing.T, got Config) {
				assert.True(t, got.Unstable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Merge(base, tt.over))
		})
	}
}

func TestStripJSONC(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: `{"a": 1}`, want: `{"a": 1}`},
		{name: "line comment", input: "{\"a\": 1 // c\n}", want: "{\"a\": 1     \n}"},
		{name: "block comment", input: `{/* x */"a": 1}`, want: `{       "a": 1}`},
		{name: "trailing comma object", input: `{"a": 1,}`, want: `{"a": 1 }`},
		{name: "trailing comma array", input: `[1, 2, ]`, want: `[1, 2  ]`},
		{name: "comma before comment", input: "[1, // c\n]", want: "[1      \n]"},
		{name: "comment markers in string", input: `{"a": "//not/*a*/comment,}"}`, want: `{"a": "//not/*a*/comment,}"}`},
		{name: "escaped quote", input: `{"a": "x\"//y"}`, want: `{"a": "x\"//y"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(StripJSONC([]byte(tt.input))))
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "logLevel", envKey("BIOME_LOG_LEVEL"))
	assert.Equal(t, "configPath", envKey("BIOME_CONFIG_PATH"))
	assert.Equal(t, "unstable", envKey("BIOME_UNSTABLE"))
	assert.Empty(t, envKey("BIOME_FILES"))
	assert.Empty(t, envKey("BIOME_SOMETHING_ELSE"))
}

func TestEnvVars(t *testing.T) {
	vars := EnvVars()
	require.Len(t, vars, len(envKeys))
	for _, v := range vars {
		assert.Equal(t, v.Key, envKey(v.Name), v.Name)
		assert.NotEmpty(t, v.Description, v.Name)
	}

	vars[0].Name = "CHANGED"
	assert.Equal(t, "BIOME_CONFIG_PATH", EnvVars()[0].Name)
}

func TestSchema(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal(Schema(), &doc))
	assert.Equal(t, "biome.json", doc["title"])
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
