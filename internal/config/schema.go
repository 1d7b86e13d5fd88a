package config

import (
	"property-sugar/internal/plan"
)

// File represents the root of a YAML configuration file.
type File struct {
	// Decorator is the callee name to enrich, e.g. "property".
	Decorator string `yaml:"decorator,omitempty"`

	// Preset names the base rule set (see plan.PresetNames).
	Preset string `yaml:"preset,omitempty"`

	// Overrides switches individual rules of the preset.
	Overrides RuleOverrides `yaml:"rules,omitempty"`

	// Extensions are the file extensions collected from directories.
	Extensions []string `yaml:"extensions,omitempty"`
}

// RuleOverrides holds optional per-rule switches. Nil leaves the preset value.
type RuleOverrides struct {
	InferType             *bool `yaml:"inferType,omitempty"`
	InferAttribute        *bool `yaml:"inferAttribute,omitempty"`
	InferReflect          *bool `yaml:"inferReflect,omitempty"`
	OmitDefaultStringType *bool `yaml:"omitDefaultStringType,omitempty"`
}

// Apply returns base with every set override applied.
func (o RuleOverrides) Apply(base plan.Rules) plan.Rules {
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}

	set(&base.InferType, o.InferType)
	set(&base.InferAttribute, o.InferAttribute)
	set(&base.InferReflect, o.InferReflect)
	set(&base.OmitDefaultStringType, o.OmitDefaultStringType)

	return base
}

// Rules resolves the preset and applies the overrides. Unknown presets fall
// back to the full preset; Validate reports them.
func (f *File) Rules() plan.Rules {
	base, ok := plan.RulesForPreset(f.Preset)
	if !ok {
		base = plan.FullRules()
	}

	return f.Overrides.Apply(base)
}
