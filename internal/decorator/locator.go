// Package decorator finds the decorator call the engine operates on.
package decorator

import (
	"property-sugar/internal/common"
	"property-sugar/internal/diagnostic"
	"property-sugar/internal/tree"
)

// DefaultName is the decorator callee enriched when none is configured.
const DefaultName = "property"

// Locator finds calls to one decorator name on class members.
type Locator struct {
	name string
}

// NewLocator creates a Locator for the given decorator callee. An empty name
// selects DefaultName.
func NewLocator(name string) *Locator {
	if name == "" {
		name = DefaultName
	}

	return &Locator{name: name}
}

// Name returns the decorator callee the locator matches.
func (l *Locator) Name() string {
	return l.name
}

// Locate returns the first decorator on m that is a call to the configured
// name, in the order the host lists them. Non-call decorators and calls to
// other callees are ignored. It returns (nil, nil) when the member carries no
// such decorator.
//
// The call must have at most one argument, and that argument must be an
// object literal.
func (l *Locator) Locate(m *tree.Member) (*tree.Decorator, error) {
	d := l.find(m)
	if d == nil {
		return nil, nil
	}

	if common.IsMultiple(d.Args) {
		return nil, diagnostic.NewInvalidArgumentCount(l.name, m.Name, len(d.Args), d.Pos)
	}

	if arg, ok := common.First(d.Args); ok && arg.Kind != tree.ExprObject {
		return nil, diagnostic.NewInvalidArgument(l.name, m.Name, arg.Pos)
	}

	return d, nil
}

func (l *Locator) find(m *tree.Member) *tree.Decorator {
	if m == nil {
		return nil
	}

	for _, d := range m.Decorators {
		if d.IsCall && d.Callee == l.name {
			return d
		}
	}

	return nil
}
