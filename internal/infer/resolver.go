package infer

import (
	"property-sugar/internal/tree"
)

// Resolve determines the value kind of a class member.
//
// Getters resolve through their declared return type; setters and plain
// methods never resolve. Fields use their annotation first and fall back to
// their default value.
func Resolve(m *tree.Member) InferredType {
	if m == nil {
		return TypeUnknown
	}

	switch m.Kind {
	case tree.MemberGetter:
		if m.Type == nil {
			return TypeUnknown
		}

		return ResolveAnnotation(m.Type)
	case tree.MemberSetter, tree.MemberMethod:
		return TypeUnknown
	}

	if m.Type != nil {
		return ResolveAnnotation(m.Type)
	}

	if m.Value != nil {
		return ResolveValue(m.Value)
	}

	return TypeUnknown
}

// ResolveAnnotation maps a type annotation to its value kind.
func ResolveAnnotation(a *tree.TypeAnnotation) InferredType {
	if a == nil {
		return TypeUnknown
	}

	switch a.Kind {
	case tree.AnnotationPrimitive:
		return primitiveKind(a.Keyword)
	case tree.AnnotationArray:
		return TypeArray
	case tree.AnnotationLiteral:
		return literalKind(a.Literal)
	case tree.AnnotationReference, tree.AnnotationShape:
		return TypeObject
	case tree.AnnotationUnion:
		return resolveUnion(a.Members)
	default:
		return TypeUnknown
	}
}

// ResolveValue maps a default value expression to its value kind.
func ResolveValue(e *tree.Expr) InferredType {
	if e == nil {
		return TypeUnknown
	}

	switch e.Kind {
	case tree.ExprString:
		return TypeString
	case tree.ExprNumber:
		return TypeNumber
	case tree.ExprBoolean:
		return TypeBoolean
	case tree.ExprObject:
		return TypeObject
	case tree.ExprArray:
		return TypeArray
	default:
		return TypeUnknown
	}
}

func primitiveKind(keyword string) InferredType {
	switch keyword {
	case tree.KeywordString:
		return TypeString
	case tree.KeywordNumber:
		return TypeNumber
	case tree.KeywordBoolean:
		return TypeBoolean
	default:
		return TypeUnknown
	}
}

// literalKind returns the kind of a literal type's value. Only string,
// numeric and boolean literals have a canonical kind.
func literalKind(lit *tree.Expr) InferredType {
	if lit == nil {
		return TypeUnknown
	}

	switch lit.Kind {
	case tree.ExprString:
		return TypeString
	case tree.ExprNumber:
		return TypeNumber
	case tree.ExprBoolean:
		return TypeBoolean
	default:
		return TypeUnknown
	}
}

// resolveUnion returns the kind shared by every member, or TypeUnknown if
// any member is unknown or two members disagree.
func resolveUnion(members []*tree.TypeAnnotation) InferredType {
	if len(members) == 0 {
		return TypeUnknown
	}

	first := ResolveAnnotation(members[0])
	if first == TypeUnknown {
		return TypeUnknown
	}

	for _, m := range members[1:] {
		if ResolveAnnotation(m) != first {
			return TypeUnknown
		}
	}

	return first
}
