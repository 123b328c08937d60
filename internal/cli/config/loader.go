package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/biome/pkg/lint"
)

// ErrConfigNotFound is returned when --config-path names no configuration file.
var ErrConfigNotFound = errors.New("configuration file not found")

// loggerKey is used to store logger in context.
// This key is shared with root.go via both using the same type.
type loggerKey struct{}

// configKey is used to store the loaded config in context.
type configKey struct{}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// envPrefix is the prefix of environment variables read by the loader.
const envPrefix = "BIOME_"

// EnvVar is an environment variable read by Load.
type EnvVar struct {
	Name        string
	Key         string // config key it sets
	Description string
}

var envVars = []EnvVar{
	{Name: envPrefix + "CONFIG_PATH", Key: "configPath", Description: "Directory or file holding biome.json, like --config-path"},
	{Name: envPrefix + "LOG_LEVEL", Key: "logLevel", Description: "Log level: debug, info, warn or error, like --log-level"},
	{Name: envPrefix + "UNSTABLE", Key: "unstable", Description: "Turn on unstable mode, enabling the nursery presets"},
}

// envKeys lists the config keys that may be set from the environment.
var envKeys = func() map[string]bool {
	keys := make(map[string]bool, len(envVars))
	for _, v := range envVars {
		keys[v.Key] = true
	}
	return keys
}()

// EnvVars returns the environment variables Load reads.
func EnvVars() []EnvVar {
	return slices.Clone(envVars)
}

// flagKeys maps command-line flags to config keys. Flags not listed here
// are read by the commands directly.
var flagKeys = map[string]string{
	"files-max-size":       "files.maxSize",
	"files-ignore-unknown": "files.ignoreUnknown",
	"vcs-enabled":          "vcs.enabled",
	"vcs-client-kind":      "vcs.clientKind",
	"vcs-use-ignore-file":  "vcs.useIgnoreFile",
	"vcs-root":             "vcs.root",
	"only":                 "linter.only",
	"skip":                 "linter.skip",
	"log-level":            "logLevel",
	"unstable":             "unstable",
}

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// ConfigPath is --config-path, a file or a directory holding one.
	ConfigPath string
	// WorkDir is where the upward search starts. Empty means the process
	// working directory.
	WorkDir string
	// Flags are the parsed command-line flags. Only changed flags apply.
	Flags *pflag.FlagSet
}

// Load loads configuration from defaults, the configuration file, the
// environment and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
//
// A configuration file that fails schema validation is ignored; its
// problems are returned as diagnostics in Config.Diagnostics.
func Load(opts LoadOptions) (*Config, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		workDir = wd
	}

	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"logLevel": DefaultLogLevel,
		"unstable": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Environment variables are read first because BIOME_CONFIG_PATH
	// decides which file to load; they are merged over the file below.
	envK := koanf.New(".")
	if err := envK.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	explicit := opts.ConfigPath
	if explicit == "" {
		explicit = envK.String("configPath")
	}
	path, err := findConfigFile(explicit, workDir)
	if err != nil {
		return nil, err
	}

	// 3. Load the configuration file
	var diags []lint.Diagnostic
	if path != "" {
		diags, err = loadFile(k, path)
		if err != nil {
			return nil, err
		}
	}

	// 4. Load environment variables (BIOME_ prefix)
	if err := k.Merge(envK); err != nil {
		return nil, fmt.Errorf("failed to merge env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 5. Overlay flags (highest priority)
	if opts.Flags != nil {
		over, err := loadFlags(opts.Flags)
		if err != nil {
			return nil, err
		}
		cfg = Merge(cfg, over)
	}

	cfg.FileUsed = path
	cfg.Dir = workDir
	if path != "" {
		cfg.Dir = filepath.Dir(path)
	}
	cfg.Diagnostics = diags

	rules, ruleDiags := lint.DeserializeRules(cfg.Linter.Rules)
	for i := range ruleDiags {
		ruleDiags[i].Path = path
	}
	cfg.Rules = rules
	cfg.Diagnostics = append(cfg.Diagnostics, ruleDiags...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFile validates the file at path and loads it into k when it is valid.
func loadFile(k *koanf.Koanf, path string) ([]lint.Diagnostic, error) {
	provider := file.Provider(path)
	content, err := provider.ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if diags := validateFile(path, StripJSONC(content)); len(diags) > 0 {
		return diags, nil
	}
	if err := k.Load(provider, JSONCParser()); err != nil {
		return []lint.Diagnostic{configError(path, fmt.Sprintf("Failed to parse the configuration file: %v", err))}, nil
	}
	return nil, nil
}

func loadFlags(flags *pflag.FlagSet) (Config, error) {
	fk := koanf.New(".")
	if err := fk.Load(posflag.ProviderWithFlag(flags, ".", fk, func(f *pflag.Flag) (string, interface{}) {
		// Only load flags that were explicitly set
		if !f.Changed {
			return "", nil
		}
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load flags: %w", err)
	}

	var over Config
	if err := fk.Unmarshal("", &over); err != nil {
		return Config{}, fmt.Errorf("unable to decode flags: %w", err)
	}
	return over, nil
}

// envKey transforms BIOME_LOG_LEVEL into logLevel. Unknown variables are skipped.
func envKey(s string) string {
	parts := strings.Split(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	key := strings.Join(parts, "")
	if !envKeys[key] {
		return ""
	}
	return key
}

// findConfigFile finds the config file to use.
// Priority: explicit file > biome.json or biome.jsonc in an explicit
// directory > upward search from workDir.
func findConfigFile(explicit, workDir string) (string, error) {
	if explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(workDir, explicit)
		}
		info, err := os.Stat(explicit)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, explicit)
		}
		if !info.IsDir() {
			return explicit, nil
		}
		if path := configIn(explicit); path != "" {
			return path, nil
		}
		return "", fmt.Errorf("%w in %s", ErrConfigNotFound, explicit)
	}
	return findConfigUpward(workDir), nil
}

// configIn returns the config file in dir, or "".
func configIn(dir string) string {
	for _, name := range []string{FileName, FileNameJSONC} {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// findConfigUpward searches upward from startDir for a config file.
// Returns empty string if not found within maxUpwardSearchLevels.
func findConfigUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if path := configIn(dir); path != "" {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// ParseLogLevel parses a --log-level value.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: expected debug, info, warn or error", s)
	}
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// WithConfig returns a context carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	// Return default config if none in context
	return &Config{LogLevel: DefaultLogLevel}
}
