package config

import (
	"maps"
)

// Merge returns base with the values set in over applied on top.
// Pointer and string fields in over replace those of base when set.
// Includes, Only and Skip are appended. Rules are merged per group.
// Neither argument is modified.
func Merge(base, over Config) Config {
	out := base

	out.Files.Includes = appendList(base.Files.Includes, over.Files.Includes)
	out.Files.MaxSize = pick(base.Files.MaxSize, over.Files.MaxSize)
	out.Files.IgnoreUnknown = pick(base.Files.IgnoreUnknown, over.Files.IgnoreUnknown)

	out.VCS.Enabled = pick(base.VCS.Enabled, over.VCS.Enabled)
	out.VCS.UseIgnoreFile = pick(base.VCS.UseIgnoreFile, over.VCS.UseIgnoreFile)
	out.VCS.ClientKind = pickString(base.VCS.ClientKind, over.VCS.ClientKind)
	out.VCS.DefaultBranch = pickString(base.VCS.DefaultBranch, over.VCS.DefaultBranch)
	out.VCS.Root = pickString(base.VCS.Root, over.VCS.Root)

	out.Linter.Enabled = pick(base.Linter.Enabled, over.Linter.Enabled)
	out.Linter.Includes = appendList(base.Linter.Includes, over.Linter.Includes)
	out.Linter.Only = appendList(base.Linter.Only, over.Linter.Only)
	out.Linter.Skip = appendList(base.Linter.Skip, over.Linter.Skip)
	if len(over.Linter.Rules) > 0 {
		out.Linter.Rules = maps.Clone(base.Linter.Rules)
		if out.Linter.Rules == nil {
			out.Linter.Rules = make(map[string]any, len(over.Linter.Rules))
		}
		maps.Copy(out.Linter.Rules, over.Linter.Rules)
	}

	out.Schema = pickString(base.Schema, over.Schema)
	out.ConfigPath = pickString(base.ConfigPath, over.ConfigPath)
	out.LogLevel = pickString(base.LogLevel, over.LogLevel)
	out.Unstable = base.Unstable || over.Unstable
	return out
}

func pick[T any](base, over *T) *T {
	if over != nil {
		return over
	}
	return base
}

func pickString(base, over string) string {
	if over != "" {
		return over
	}
	return base
}

func appendList(base, over []string) []string {
	if len(over) == 0 {
		return base
	}
	out := make([]string, 0, len(base)+len(over))
	out = append(out, base...)
	return append(out, over...)
}
