package tree

import (
	"go/token"

	"property-sugar/internal/common"
)

// Span is a half-open byte range [Start, End) in the unit source.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the source text covered by the span.
func (s Span) Text(src []byte) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}

	return string(src[s.Start:s.End])
}

// Unit is one compilation unit: a single source file and the classes in it.
type Unit struct {
	Filename string
	Source   []byte
	Classes  []*Class
}

// Members returns all class members of the unit in source order.
func (u *Unit) Members() []*Member {
	var out []*Member
	for _, c := range u.Classes {
		out = append(out, c.Members...)
	}

	return out
}

// Class is a class declaration or expression.
type Class struct {
	Name    string // empty for anonymous classes
	Members []*Member
	Pos     token.Position
}

// MemberKind represents the kind of a class member.
type MemberKind int

const (
	MemberField MemberKind = iota
	MemberGetter
	MemberSetter
	MemberMethod
)

// String returns a human-readable representation of the MemberKind.
func (k MemberKind) String() string {
	switch k {
	case MemberField:
		return "field"
	case MemberGetter:
		return "getter"
	case MemberSetter:
		return "setter"
	case MemberMethod:
		return "method"
	default:
		return common.UnknownStr
	}
}

// IsAccessor returns true for getters and setters.
func (k MemberKind) IsAccessor() bool {
	return k == MemberGetter || k == MemberSetter
}

// Member describes a class member.
type Member struct {
	Name       string          // declared name; empty for computed keys
	Kind       MemberKind      // field, getter, setter or method
	Static     bool            // declared with the static modifier
	Decorators []*Decorator    // in source order
	Type       *TypeAnnotation // field annotation, or getter return type
	Value      *Expr           // default value expression (fields only)
	Pos        token.Position  // position of the member key
	Span       Span            // from the first decorator to the end of the member
}

// Decorator is a decorator attached to a member, e.g. `@property({ type: String })`.
type Decorator struct {
	Callee string         // dotted callee text, e.g. "property" or "lit.property"
	IsCall bool           // true when the decorator is a call expression
	Args   []*Expr        // call arguments, nil for non-call decorators
	Lparen int            // offset of '(' when IsCall
	Rparen int            // offset of ')' when IsCall
	Pos    token.Position // position of '@'
	Span   Span
}

// ArgsSpan returns the span strictly between the call parentheses.
func (d *Decorator) ArgsSpan() Span {
	return Span{Start: d.Lparen + 1, End: d.Rparen}
}
