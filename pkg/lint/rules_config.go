package lint

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// =============================================================================
// Rule levels
// =============================================================================

// RuleLevel is the user-facing level of a rule.
type RuleLevel int

// Rule levels. LevelUnset means the user did not configure the rule.
const (
	LevelUnset RuleLevel = iota
	LevelOff
	LevelOn
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the configuration spelling of the level.
func (l RuleLevel) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelOn:
		return "on"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unset"
	}
}

// ParseRuleLevel converts a configuration string to a RuleLevel.
func ParseRuleLevel(s string) (RuleLevel, bool) {
	switch s {
	case "off":
		return LevelOff, true
	case "on":
		return LevelOn, true
	case "info":
		return LevelInfo, true
	case "warn":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelUnset, false
	}
}

// severity maps an explicit level to a severity. "on" uses the rule default.
func (l RuleLevel) severity(meta RuleMetadata) (Severity, bool) {
	switch l {
	case LevelOn:
		return meta.DefaultSeverity(), true
	case LevelInfo:
		return SeverityInfo, true
	case LevelWarn:
		return SeverityWarning, true
	case LevelError:
		return SeverityError, true
	default:
		return 0, false
	}
}

// =============================================================================
// Configuration shapes
// =============================================================================

// RuleConfiguration is the user configuration of a single rule.
// It is either a bare level or a structured {level, fix, options} object.
type RuleConfiguration struct {
	Level   RuleLevel
	Fix     *FixKind
	Options map[string]any
}

// IsSet reports whether the rule was configured.
func (c RuleConfiguration) IsSet() bool {
	return c.Level != LevelUnset
}

// GroupConfiguration is the configuration of one rule group.
type GroupConfiguration struct {
	Recommended *bool
	All         *bool
	Rules       map[string]RuleConfiguration
}

// Rule returns the configuration of a rule in the group.
func (g *GroupConfiguration) Rule(name string) RuleConfiguration {
	if g == nil {
		return RuleConfiguration{}
	}
	return g.Rules[name]
}

// RulesConfiguration is the root of linter.rules.
type RulesConfiguration struct {
	Recommended *bool
	All         *bool
	Groups      map[Group]*GroupConfiguration
}

// Group returns the configuration of a group, or nil if absent.
func (r RulesConfiguration) Group(g Group) *GroupConfiguration {
	if r.Groups == nil {
		return nil
	}
	return r.Groups[g]
}

// RuleConfig returns the configuration of a rule.
func (r RulesConfiguration) RuleConfig(id RuleID) RuleConfiguration {
	return r.Group(id.Group()).Rule(id.Name())
}

// SetRule sets the configuration of a rule, creating its group entry as needed.
func (r *RulesConfiguration) SetRule(id RuleID, cfg RuleConfiguration) {
	if r.Groups == nil {
		r.Groups = make(map[Group]*GroupConfiguration)
	}
	g := r.Groups[id.Group()]
	if g == nil {
		g = &GroupConfiguration{}
		r.Groups[id.Group()] = g
	}
	if g.Rules == nil {
		g.Rules = make(map[string]RuleConfiguration)
	}
	g.Rules[id.Name()] = cfg
}

// =============================================================================
// Deserialization
// =============================================================================

const (
	mutualExclusionMessage = "'recommended' and 'all' can't be both 'true'. You should choose only one of them."
	mutualExclusionNote    = "Biome will fallback to its defaults for this section."
)

// ruleObject is the structured form of a rule configuration.
type ruleObject struct {
	Level   string         `mapstructure:"level"`
	Fix     string         `mapstructure:"fix"`
	Options map[string]any `mapstructure:"options"`
}

// DeserializeRules converts the raw value of linter.rules into a RulesConfiguration.
// Problems are reported as configuration diagnostics; the offending entries are
// left unset so the invocation can continue with defaults.
func DeserializeRules(raw map[string]any) (RulesConfiguration, []Diagnostic) {
	d := &rulesDecoder{}
	cfg := RulesConfiguration{Groups: make(map[Group]*GroupConfiguration)}

	keys := sortedKeys(raw)
	for _, key := range keys {
		value := raw[key]
		path := "linter.rules." + key
		switch key {
		case "recommended":
			cfg.Recommended = d.boolField(path, value)
		case "all":
			cfg.All = d.boolField(path, value)
		default:
			g, ok := ParseGroup(key)
			if !ok {
				d.errorf(path, "Found an unknown key `%s`. Known keys: recommended, all, %s", key, groupList())
				continue
			}
			obj, ok := value.(map[string]any)
			if !ok {
				d.errorf(path, "Expected an object, found %s", describe(value))
				continue
			}
			cfg.Groups[g] = d.group(g, path, obj)
		}
	}

	cfg.Recommended, cfg.All = d.exclusive("linter.rules", cfg.Recommended, cfg.All)
	return cfg, d.diags
}

type rulesDecoder struct {
	diags []Diagnostic
}

func (d *rulesDecoder) group(g Group, path string, raw map[string]any) *GroupConfiguration {
	gc := &GroupConfiguration{Rules: make(map[string]RuleConfiguration)}
	for _, key := range sortedKeys(raw) {
		value := raw[key]
		rulePath := path + "." + key
		switch key {
		case "recommended":
			gc.Recommended = d.boolField(rulePath, value)
		case "all":
			gc.All = d.boolField(rulePath, value)
		default:
			id, ok := Lookup(g, key)
			if !ok {
				d.errorf(rulePath, "Unknown rule `%s` in group `%s`", key, g)
				continue
			}
			if rc, ok := d.rule(id, rulePath, value); ok {
				gc.Rules[key] = rc
			}
		}
	}
	gc.Recommended, gc.All = d.exclusive(path, gc.Recommended, gc.All)
	return gc
}

func (d *rulesDecoder) rule(id RuleID, path string, value any) (RuleConfiguration, bool) {
	switch v := value.(type) {
	case string:
		level, ok := ParseRuleLevel(v)
		if !ok {
			d.errorf(path, "Found an unknown value `%s`. Accepted values: off, on, info, warn, error", v)
			return RuleConfiguration{}, false
		}
		return RuleConfiguration{Level: level}, true
	case map[string]any:
		var obj ruleObject
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ErrorUnused: true,
			Result:      &obj,
		})
		if err != nil {
			d.errorf(path, "%v", err)
			return RuleConfiguration{}, false
		}
		if err := dec.Decode(v); err != nil {
			d.errorf(path, "Invalid rule configuration: %v", err)
			return RuleConfiguration{}, false
		}
		if obj.Level == "" {
			d.errorf(path, "Missing required key `level`")
			return RuleConfiguration{}, false
		}
		level, ok := ParseRuleLevel(obj.Level)
		if !ok {
			d.errorf(path+".level", "Found an unknown value `%s`. Accepted values: off, on, info, warn, error", obj.Level)
			return RuleConfiguration{}, false
		}
		if err := validateOptions(id, obj.Options); err != nil {
			d.errorf(path+".options", "%v", err)
			return RuleConfiguration{}, false
		}
		rc := RuleConfiguration{Level: level, Options: obj.Options}
		if obj.Fix != "" {
			if Metadata(id).FixKind == FixNone {
				d.errorf(path+".fix", "The rule `%s` has no fix; `fix` is not allowed", id)
				return RuleConfiguration{}, false
			}
			kind, ok := ParseFixKind(obj.Fix)
			if !ok {
				d.errorf(path+".fix", "Found an unknown value `%s`. Accepted values: none, safe, unsafe", obj.Fix)
				return RuleConfiguration{}, false
			}
			rc.Fix = &kind
		}
		return rc, true
	default:
		d.errorf(path, "Expected a string or an object, found %s", describe(value))
		return RuleConfiguration{}, false
	}
}

// validateOptions checks the options of an implemented rule against the keys
// it declares and its own validator. Catalog rules without an implementation
// accept any options.
func validateOptions(id RuleID, opts map[string]any) error {
	if len(opts) == 0 {
		return nil
	}
	rule, ok := GetRule(id)
	if !ok {
		return nil
	}
	for _, key := range sortedKeys(opts) {
		if slices.Contains(rule.ConfigKeys, key) {
			continue
		}
		if len(rule.ConfigKeys) == 0 {
			return fmt.Errorf("The rule `%s` doesn't accept options, found `%s`", id, key)
		}
		return fmt.Errorf("Found an unknown key `%s`. Accepted keys: %s", key, strings.Join(rule.ConfigKeys, ", "))
	}
	if rule.ValidateOptions != nil {
		return rule.ValidateOptions(opts)
	}
	return nil
}

func (d *rulesDecoder) boolField(path string, value any) *bool {
	b, ok := value.(bool)
	if !ok {
		d.errorf(path, "Expected a boolean, found %s", describe(value))
		return nil
	}
	return &b
}

// exclusive enforces that recommended and all are not both true.
func (d *rulesDecoder) exclusive(path string, recommended, all *bool) (*bool, *bool) {
	if recommended != nil && all != nil && *recommended && *all {
		d.diags = append(d.diags, Diagnostic{
			Category: CategoryConfiguration,
			Severity: SeverityWarning,
			Message:  mutualExclusionMessage,
			Notes:    []string{"at " + path, mutualExclusionNote},
		})
		return nil, nil
	}
	return recommended, all
}

func (d *rulesDecoder) errorf(path, format string, args ...any) {
	d.diags = append(d.diags, Diagnostic{
		Category: CategoryConfiguration,
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Notes:    []string{"at " + path},
	})
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func groupList() string {
	names := make([]string, 0, len(groupOrder))
	for _, g := range groupOrder {
		names = append(names, string(g))
	}
	return strings.Join(names, ", ")
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case string:
		return "a string"
	case float64, int, int64:
		return "a number"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
