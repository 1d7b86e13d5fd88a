package tree

import (
	"go/token"

	"property-sugar/internal/common"
)

// AnnotationKind is the tag of a TypeAnnotation.
type AnnotationKind int

const (
	AnnotationOther     AnnotationKind = iota // unrecognized: any, unknown, tuples, functions...
	AnnotationPrimitive                       // string, number, boolean
	AnnotationArray                           // T[]
	AnnotationLiteral                         // 'blue', 42, true
	AnnotationReference                       // MyInterface, Map<K, V>
	AnnotationShape                           // { prop: string }
	AnnotationUnion                           // A | B
)

// String returns a human-readable representation of the AnnotationKind.
func (k AnnotationKind) String() string {
	switch k {
	case AnnotationOther:
		return "other"
	case AnnotationPrimitive:
		return "primitive"
	case AnnotationArray:
		return "array"
	case AnnotationLiteral:
		return "literal"
	case AnnotationReference:
		return "reference"
	case AnnotationShape:
		return "shape"
	case AnnotationUnion:
		return "union"
	default:
		return common.UnknownStr
	}
}

// Primitive keywords recognized as AnnotationPrimitive.
const (
	KeywordString  = "string"
	KeywordNumber  = "number"
	KeywordBoolean = "boolean"
)

// TypeAnnotation is a tagged union over the annotation shapes the engine
// understands. Only the fields relevant to Kind are set:
//   - Primitive, Other: Keyword (Other may also carry nothing)
//   - Array: Elem
//   - Literal: Literal
//   - Reference: Name
//   - Union: Members
type TypeAnnotation struct {
	Kind    AnnotationKind
	Keyword string
	Name    string
	Literal *Expr
	Elem    *TypeAnnotation
	Members []*TypeAnnotation
	Pos     token.Position
	Span    Span
}

// IsPrimitive returns true if the annotation is the primitive keyword kw.
func (a *TypeAnnotation) IsPrimitive(kw string) bool {
	return a != nil && a.Kind == AnnotationPrimitive && a.Keyword == kw
}
