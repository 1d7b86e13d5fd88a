// Package gen turns rewrite plans back into source text.
//
// Rewrites are spliced into the original source rather than printed from a
// tree, so formatting, comments and everything outside the touched decorator
// arguments stay byte-for-byte identical.
//
// Splice patterns:
//   - Empty call `@property()`: the options object is written between the parens
//   - Empty object `@property({})`: the object is replaced
//   - Single-line object: `, key: value` after the last property
//   - Multi-line object: one property per line at the last property's indentation
package gen
