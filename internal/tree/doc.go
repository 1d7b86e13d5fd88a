// Package tree provides the host-neutral model the enrichment engine works on.
//
// A host (see internal/analyze) builds one Unit per compilation unit. Each
// Unit holds the classes found in the source and, for every class member,
// its decorators, declared type annotation and default value expression.
//
// Key types:
//   - Member: a class field, getter, setter or method
//   - Decorator: a decorator attached to a member, with its call arguments
//   - Expr: a tagged expression node (literals, object/array literals, identifiers)
//   - TypeAnnotation: a tagged union over the closed set of annotation shapes
//
// Every node records the byte Span it covers in Unit.Source so that a host can
// splice changes back into the original text.
package tree
