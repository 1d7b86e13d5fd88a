package plan

import (
	"sort"
	"strings"
)

// Option keys written into the decorator options.
const (
	OptionType      = "type"
	OptionAttribute = "attribute"
	OptionReflect   = "reflect"
)

// KnownOptions lists every option key a property decorator accepts. Keys
// outside this list that are close to one of them are likely misspellings.
var KnownOptions = []string{
	OptionType,
	OptionAttribute,
	OptionReflect,
	"converter",
	"hasChanged",
	"noAccessor",
	"state",
	"useDefault",
}

// Preset names accepted by RulesForPreset.
const (
	PresetFull    = "full"
	PresetMinimal = "minimal"
)

// Rules selects which options the synthesizer infers.
type Rules struct {
	// InferType adds `type` from the member's annotation or default value.
	InferType bool
	// InferAttribute adds `attribute` with the kebab-cased member name.
	InferAttribute bool
	// InferReflect adds `reflect: true` for String, Number and Boolean types.
	InferReflect bool
	// OmitDefaultStringType skips `type: String`, the decorator's implicit default.
	OmitDefaultStringType bool
}

// FullRules infers type, attribute and reflect.
func FullRules() Rules {
	return Rules{
		InferType:      true,
		InferAttribute: true,
		InferReflect:   true,
	}
}

// MinimalRules only declares types that differ from the implicit String default.
func MinimalRules() Rules {
	return Rules{
		InferType:             true,
		OmitDefaultStringType: true,
	}
}

var presets = map[string]func() Rules{
	PresetFull:    FullRules,
	PresetMinimal: MinimalRules,
}

// RulesForPreset returns the rules of a named preset.
func RulesForPreset(name string) (Rules, bool) {
	fn, ok := presets[name]
	if !ok {
		return Rules{}, false
	}

	return fn(), true
}

// PresetNames returns the known preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// String lists the enabled rules, e.g. "type,attribute,reflect".
func (r Rules) String() string {
	var parts []string
	if r.InferType {
		parts = append(parts, OptionType)
	}

	if r.InferAttribute {
		parts = append(parts, OptionAttribute)
	}

	if r.InferReflect {
		parts = append(parts, OptionReflect)
	}

	if r.OmitDefaultStringType {
		parts = append(parts, "omit-default-string")
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, ",")
}
