// Package config provides configuration management for the biome CLI.
//
// A Config is assembled from defaults, a biome.json (or biome.jsonc) file,
// BIOME_* environment variables and explicitly set command-line flags, in
// increasing order of precedence. Problems found in the file are reported as
// configuration diagnostics instead of aborting the invocation.
package config

import (
	"github.com/leapstack-labs/biome/pkg/lint"
)

// Config file names, in discovery order.
const (
	FileName      = "biome.json"
	FileNameJSONC = "biome.jsonc"
)

// DefaultLogLevel is used when neither --log-level nor BIOME_LOG_LEVEL is set.
const DefaultLogLevel = "warn"

// FilesConfig holds the files section.
type FilesConfig struct {
	Includes      []string `koanf:"includes"`
	MaxSize       *int64   `koanf:"maxSize"`
	IgnoreUnknown *bool    `koanf:"ignoreUnknown"`
}

// VCSConfig holds the vcs section.
type VCSConfig struct {
	Enabled       *bool  `koanf:"enabled"`
	ClientKind    string `koanf:"clientKind"`
	UseIgnoreFile *bool  `koanf:"useIgnoreFile"`
	DefaultBranch string `koanf:"defaultBranch"`
	Root          string `koanf:"root"`
}

// LinterConfig holds the linter section.
// Only and Skip have no file representation; they come from --only and --skip.
type LinterConfig struct {
	Enabled  *bool          `koanf:"enabled"`
	Includes []string       `koanf:"includes"`
	Rules    map[string]any `koanf:"rules"`
	Only     []string       `koanf:"only"`
	Skip     []string       `koanf:"skip"`
}

// Config holds all CLI configuration options.
type Config struct {
	Schema     string         `koanf:"$schema"`
	Files      FilesConfig    `koanf:"files"`
	VCS        VCSConfig      `koanf:"vcs"`
	Linter     LinterConfig   `koanf:"linter"`
	JavaScript map[string]any `koanf:"javascript"`

	// Invocation settings; never read from the file.
	ConfigPath string `koanf:"configPath"`
	LogLevel   string `koanf:"logLevel"`
	Unstable   bool   `koanf:"unstable"`

	// Set by the loader.
	FileUsed    string                  `koanf:"-"`
	Dir         string                  `koanf:"-"`
	Rules       lint.RulesConfiguration `koanf:"-"`
	Diagnostics []lint.Diagnostic       `koanf:"-"`
}

// LinterEnabled reports linter.enabled, which defaults to true.
func (c *Config) LinterEnabled() bool {
	return boolOr(c.Linter.Enabled, true)
}

// VCSEnabled reports vcs.enabled, which defaults to false.
func (c *Config) VCSEnabled() bool {
	return boolOr(c.VCS.Enabled, false)
}

// UseIgnoreFile reports vcs.useIgnoreFile, which defaults to false.
func (c *Config) UseIgnoreFile() bool {
	return boolOr(c.VCS.UseIgnoreFile, false)
}

// IgnoreUnknown reports files.ignoreUnknown, which defaults to false.
func (c *Config) IgnoreUnknown() bool {
	return boolOr(c.Files.IgnoreUnknown, false)
}

// MaxSize returns files.maxSize, or def when unset.
func (c *Config) MaxSize(def int64) int64 {
	if c.Files.MaxSize == nil {
		return def
	}
	return *c.Files.MaxSize
}

// HasErrors reports whether loading produced error diagnostics.
func (c *Config) HasErrors() bool {
	for _, d := range c.Diagnostics {
		if d.Severity == lint.SeverityError {
			return true
		}
	}
	return false
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
