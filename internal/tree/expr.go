package tree

import (
	"go/token"

	"property-sugar/internal/common"
)

// ExprKind represents the shape of an expression node.
type ExprKind int

const (
	ExprOther   ExprKind = iota // any expression form the engine does not inspect
	ExprString                  // 'abc' or "abc"
	ExprNumber                  // 42, 1.5, 0x10
	ExprBoolean                 // true or false
	ExprObject                  // { key: value }
	ExprArray                   // [a, b]
	ExprIdent                   // String, undefined, someConst
)

// String returns a human-readable representation of the ExprKind.
func (k ExprKind) String() string {
	switch k {
	case ExprOther:
		return "other"
	case ExprString:
		return "string"
	case ExprNumber:
		return "number"
	case ExprBoolean:
		return "boolean"
	case ExprObject:
		return "object"
	case ExprArray:
		return "array"
	case ExprIdent:
		return "identifier"
	default:
		return common.UnknownStr
	}
}

// Expr is an expression node.
//
// Value holds the unquoted value for strings, the literal text for numbers,
// "true" or "false" for booleans and the name for identifiers. Props is only
// set for object literals.
type Expr struct {
	Kind  ExprKind
	Value string
	Props []*Property
	Pos   token.Position
	Span  Span
}

// NewIdent builds a synthetic identifier expression.
func NewIdent(name string) *Expr {
	return &Expr{Kind: ExprIdent, Value: name}
}

// NewString builds a synthetic string literal expression.
func NewString(value string) *Expr {
	return &Expr{Kind: ExprString, Value: value}
}

// NewBoolean builds a synthetic boolean literal expression.
func NewBoolean(value bool) *Expr {
	if value {
		return &Expr{Kind: ExprBoolean, Value: "true"}
	}

	return &Expr{Kind: ExprBoolean, Value: "false"}
}

// Property returns the first property of an object literal whose key is
// name, or nil. Identifier keys and string keys are treated alike.
func (e *Expr) Property(name string) *Property {
	if e == nil || e.Kind != ExprObject {
		return nil
	}

	for _, p := range e.Props {
		if p.HasKey() && p.Key == name {
			return p
		}
	}

	return nil
}

// Has returns true if the object literal defines the key name.
func (e *Expr) Has(name string) bool {
	return e.Property(name) != nil
}

// WithProps returns a copy of the object literal with extra properties
// appended. The receiver is left unchanged.
func (e *Expr) WithProps(extra ...*Property) *Expr {
	out := &Expr{Kind: ExprObject, Pos: e.Pos, Span: e.Span}
	out.Props = make([]*Property, 0, len(e.Props)+len(extra))
	out.Props = append(out.Props, e.Props...)
	out.Props = append(out.Props, extra...)

	return out
}

// PropertyKind describes how an object literal entry is written.
type PropertyKind int

const (
	PropKeyValue  PropertyKind = iota // key: value
	PropShorthand                     // key
	PropSpread                        // ...expr
	PropMethod                        // key() {}
	PropComputed                      // [expr]: value
)

// String returns a human-readable representation of the PropertyKind.
func (k PropertyKind) String() string {
	switch k {
	case PropKeyValue:
		return "key-value"
	case PropShorthand:
		return "shorthand"
	case PropSpread:
		return "spread"
	case PropMethod:
		return "method"
	case PropComputed:
		return "computed"
	default:
		return common.UnknownStr
	}
}

// Property is one entry of an object literal.
type Property struct {
	Key   string // identifier name or unquoted string key; empty for spread/computed
	Kind  PropertyKind
	Value *Expr // nil for methods
	Span  Span
}

// NewProperty builds a synthetic key: value property.
func NewProperty(key string, value *Expr) *Property {
	return &Property{Key: key, Kind: PropKeyValue, Value: value}
}

// HasKey returns true if the property can be looked up by name.
func (p *Property) HasKey() bool {
	switch p.Kind {
	case PropKeyValue, PropShorthand, PropMethod:
		return true
	default:
		return false
	}
}
