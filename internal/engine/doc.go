// Package engine drives decorator enrichment over one compilation unit.
//
// For every class member the engine locates the configured decorator call,
// synthesizes the missing options and collects the resulting rewrites. The
// first failure aborts the unit: no rewrite of a failed unit is returned.
//
// The engine never touches source text; hosts apply the returned
// plan.Rewrite values (see package gen).
package engine
