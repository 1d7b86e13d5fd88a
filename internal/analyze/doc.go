// Package analyze loads TypeScript source into the tree model.
//
// It is the host side of the engine: a lexer built on text/scanner and a
// recursive-descent parser for the subset of TypeScript the engine needs:
// class declarations and expressions, their members, decorators, type
// annotations and default values. Method bodies and expressions the engine
// does not inspect are skipped by bracket balance; only their extent is
// recorded.
//
// Key types:
//   - ParseError: a positioned syntax error
//   - Loader: reads files and parses them into tree.Unit values
package analyze
