// Package infer resolves the value kind of a decorated class member.
//
// The kind is derived from the member's type annotation or, when there is
// none, from its default value. Resolution never fails: Unknown signals that
// no kind could be determined and lets the caller decide whether that is
// fatal.
//
// Annotation shapes map to kinds as follows:
//   - string, number, boolean: String, Number, Boolean
//   - T[]: Array
//   - literal types: the kind of the literal value
//   - references and structural shapes: Object
//   - unions: the common kind of all members, Unknown if they disagree
//   - anything else: Unknown
package infer
