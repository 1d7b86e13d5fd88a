package diagnostic

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"
)

// frameContext is the number of lines shown before the offending line.
const frameContext = 2

// CodeFrame renders the lines around pos with a caret under the column:
//
//	  3 |   @property()
//	> 4 |   field;
//	    |   ^
//
// It returns an empty string when pos does not point into src.
func CodeFrame(src []byte, pos token.Position) string {
	if pos.Line <= 0 {
		return ""
	}

	lines := bytes.Split(src, []byte("\n"))
	if pos.Line > len(lines) {
		return ""
	}

	first := max(pos.Line-frameContext, 1)
	width := len(fmt.Sprint(pos.Line))

	var b strings.Builder
	for n := first; n <= pos.Line; n++ {
		line := strings.TrimRight(string(lines[n-1]), "\r")

		marker := "  "
		if n == pos.Line {
			marker = "> "
		}

		fmt.Fprintf(&b, "%s%*d | %s\n", marker, width, n, line)
	}

	col := max(pos.Column, 1)
	fmt.Fprintf(&b, "  %s | %s^", strings.Repeat(" ", width), caretPadding(lines[pos.Line-1], col))

	return b.String()
}

// caretPadding keeps tabs from the source line so the caret lines up.
func caretPadding(line []byte, col int) string {
	var b strings.Builder
	for i := 0; i < col-1 && i < len(line); i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}

	return b.String()
}
