// Package config provides the YAML configuration file of the engine.
//
// A configuration selects the decorator to enrich and the inference rules:
//
//	decorator: property        # decorator callee to enrich
//	preset: full               # full | minimal
//	rules:                     # optional per-rule overrides of the preset
//	  inferType: true
//	  inferAttribute: true
//	  inferReflect: true
//	  omitDefaultStringType: false
//	extensions: [.ts, .tsx]    # extensions picked up when walking directories
//
// # Presets
//
//   - full: type, attribute and reflect are inferred
//   - minimal: only type is inferred, and `type: String` is omitted
//
// Rule overrides are applied on top of the preset; an absent override keeps
// the preset's value.
package config
