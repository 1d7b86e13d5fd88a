package config

import (
	"fmt"
	"strings"
	"unicode"

	"property-sugar/internal/diagnostic"
	"property-sugar/internal/naming"
	"property-sugar/internal/plan"
)

// Validate checks the configuration for values the engine cannot use.
func (f *File) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	if !isCallee(f.Decorator) {
		res.AddError("invalid_decorator", fmt.Sprintf("decorator %q is not a valid callee name", f.Decorator), "", "")
	}

	if _, ok := plan.RulesForPreset(f.Preset); !ok {
		msg := fmt.Sprintf("unknown preset %q (expected one of %s)", f.Preset, strings.Join(plan.PresetNames(), ", "))
		if s, ok := naming.Suggest(f.Preset, plan.PresetNames()); ok {
			msg += fmt.Sprintf("; did you mean %q?", s)
		}

		res.AddError("unknown_preset", msg, "", "")
	}

	for _, ext := range f.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			res.AddError("invalid_extension", fmt.Sprintf("extension %q must start with a dot", ext), "", "")
		}
	}

	rules := f.Rules()
	if !rules.InferType && !rules.InferAttribute && !rules.InferReflect {
		res.AddWarning("no_rules", "every inference rule is disabled; files will not change", "", "")
	}

	if rules.OmitDefaultStringType && !rules.InferType {
		res.AddWarning("omit_without_type", "omitDefaultStringType has no effect without inferType", "", "")
	}

	return res
}

// isCallee reports whether name is an identifier or a dotted path of identifiers.
func isCallee(name string) bool {
	if name == "" {
		return false
	}

	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return false
		}

		for i, r := range part {
			if r == '_' || r == '$' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
				continue
			}

			return false
		}
	}

	return true
}
