package analyze

import (
	"fmt"
	"go/token"
)

// ParseError is a syntax error at a source position.
type ParseError struct {
	Msg string
	Pos token.Position
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func newParseError(it item, format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: it.pos}
}

// describe names an item for error messages.
func describe(it item) string {
	switch it.kind {
	case itemEOF:
		return "end of file"
	case itemString:
		return "string " + it.text
	case itemNumber, itemBigInt:
		return "number " + it.text
	case itemTemplate:
		return "template literal"
	case itemRegex:
		return "regular expression " + it.text
	default:
		return fmt.Sprintf("%q", it.text)
	}
}
