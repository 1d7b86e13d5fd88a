package diagnostic

import (
	"errors"
	"fmt"
	"go/token"

	"property-sugar/internal/common"
)

// Kind identifies the class of an engine failure.
type Kind int

const (
	// KindInvalidArgumentCount - the decorator call has more than one argument.
	KindInvalidArgumentCount Kind = iota + 1
	// KindTypeInference - no value kind could be determined for the member.
	KindTypeInference
	// KindInvalidArgument - the single decorator argument is not an object literal.
	KindInvalidArgument
)

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgumentCount:
		return "InvalidArgumentCount"
	case KindTypeInference:
		return "TypeInferenceError"
	case KindInvalidArgument:
		return "InvalidArgument"
	default:
		return common.UnknownStr
	}
}

// Error is a fatal engine failure for one member. Message holds the fixed
// text expected by snapshot-based consumers; Error() prefixes it with the
// source position.
type Error struct {
	Kind    Kind
	Message string
	Member  string
	Pos     token.Position
}

// Error implements the error interface.
func (e *Error) Error() string {
	if !e.Pos.IsValid() && e.Pos.Filename == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Is reports whether target is an *Error of the same kind, so callers can
// match with errors.Is(err, &diagnostic.Error{Kind: ...}).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind
}

// NewInvalidArgumentCount reports a decorator call with n > 1 arguments.
func NewInvalidArgumentCount(decorator, member string, n int, pos token.Position) *Error {
	return &Error{
		Kind:    KindInvalidArgumentCount,
		Message: fmt.Sprintf("Expected @%s decorator to have at most 1 argument, but found %d", decorator, n),
		Member:  member,
		Pos:     pos,
	}
}

// NewTypeInferenceError reports a member whose type could not be determined.
func NewTypeInferenceError(decorator, member string, pos token.Position) *Error {
	return &Error{
		Kind: KindTypeInference,
		Message: fmt.Sprintf(
			"Could not determine the type for this @%s decorated field, please explicity add a type",
			decorator,
		),
		Member: member,
		Pos:    pos,
	}
}

// NewInvalidArgument reports a decorator argument that is not an object literal.
func NewInvalidArgument(decorator, member string, pos token.Position) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Message: fmt.Sprintf("Expected @%s decorator argument to be an object literal", decorator),
		Member:  member,
		Pos:     pos,
	}
}

// AsError unwraps err into an engine *Error.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}
