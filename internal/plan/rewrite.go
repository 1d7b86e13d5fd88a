package plan

import (
	"property-sugar/internal/tree"
)

// Rewrite describes the change to one decorator call. The host applies it by
// replacing the call's argument; nothing else in the tree changes.
type Rewrite struct {
	// Decorator is the located decorator call.
	Decorator *tree.Decorator
	// Member is the decorated class member.
	Member *tree.Member
	// Options is the resulting options map: existing entries first, then Added.
	Options *tree.Expr
	// Added lists the inserted properties in insertion order.
	Added []*tree.Property
	// Created is true when the call had no argument before.
	Created bool
}

// AddedKeys returns the keys of the inserted properties in order.
func (r *Rewrite) AddedKeys() []string {
	keys := make([]string, 0, len(r.Added))
	for _, p := range r.Added {
		keys = append(keys, p.Key)
	}

	return keys
}
