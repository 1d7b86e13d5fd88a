// Package plan decides which options a located decorator call is missing.
//
// A Synthesizer runs an ordered set of option rules against a member:
//  1. type, inferred from the annotation or the default value
//  2. attribute, the kebab-case form of the member name
//  3. reflect, true unless attribute is explicitly false
//
// Explicit options always win. The result is a Rewrite listing only the
// added properties, in rule order, for the gen package to splice in.
package plan
