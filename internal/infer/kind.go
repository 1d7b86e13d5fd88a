package infer

//go:generate go tool stringer -type=InferredType -trimprefix=Type -output=inferredtype_string.go

// InferredType is the canonical value kind of a member. Its String form is
// the identifier written into the decorator options (String, Number, ...).
type InferredType int

const (
	TypeUnknown InferredType = iota // inference failed
	TypeString
	TypeNumber
	TypeBoolean
	TypeArray
	TypeObject
)

// IsKnown returns true if inference succeeded.
func (t InferredType) IsKnown() bool {
	return t > TypeUnknown && t <= TypeObject
}

// IsPrimitive returns true for String, Number and Boolean.
func (t InferredType) IsPrimitive() bool {
	switch t {
	default:
		return false
	case TypeString, TypeNumber, TypeBoolean:
		return true
	}
}

// Identifier returns the type constructor name for a known type and false otherwise.
func (t InferredType) Identifier() (string, bool) {
	if !t.IsKnown() {
		return "", false
	}

	return t.String(), true
}

// ParseIdentifier maps a type constructor name back to its InferredType.
// Anything other than the five canonical names yields TypeUnknown.
func ParseIdentifier(name string) InferredType {
	for t := TypeString; t <= TypeObject; t++ {
		if t.String() == name {
			return t
		}
	}

	return TypeUnknown
}
