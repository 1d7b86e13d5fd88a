package gen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"property-sugar/internal/common"
	"property-sugar/internal/plan"
	"property-sugar/internal/tree"
)

// edit replaces src[start:end] with text.
type edit struct {
	start int
	end   int
	text  string
}

// Apply splices rewrites into the unit source and returns the new text. The
// unit source is not modified.
func Apply(unit *tree.Unit, rewrites []*plan.Rewrite) ([]byte, error) {
	src := unit.Source

	edits := make([]edit, 0, len(rewrites))
	for _, rw := range rewrites {
		e, err := planEdit(src, rw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", unit.Filename, err)
		}

		edits = append(edits, e)
	}

	sort.Slice(edits, func(i, j int) bool {
		return edits[i].start < edits[j].start
	})

	for i := 1; i < len(edits); i++ {
		if edits[i].start < edits[i-1].end {
			return nil, fmt.Errorf("%s: overlapping rewrites at offset %d", unit.Filename, edits[i].start)
		}
	}

	var out bytes.Buffer

	out.Grow(len(src))

	last := 0
	for _, e := range edits {
		out.Write(src[last:e.start])
		out.WriteString(e.text)
		last = e.end
	}

	out.Write(src[last:])

	return out.Bytes(), nil
}

func planEdit(src []byte, rw *plan.Rewrite) (edit, error) {
	d := rw.Decorator
	if d == nil || !d.IsCall {
		return edit{}, fmt.Errorf("rewrite of %q has no decorator call", memberName(rw))
	}

	if d.Lparen < 0 || d.Rparen > len(src) || d.Lparen >= d.Rparen {
		return edit{}, fmt.Errorf("decorator of %q has invalid bounds [%d, %d]", memberName(rw), d.Lparen, d.Rparen)
	}

	if rw.Created || len(d.Args) == 0 {
		opts := FormatOptions(rw.Added)

		return fillEnclosed(src, d.Lparen, d.Rparen, opts, opts), nil
	}

	obj := d.Args[0]
	if obj.Kind != tree.ExprObject {
		return edit{}, fmt.Errorf("decorator argument of %q is not an object literal", memberName(rw))
	}

	last, ok := common.Last(obj.Props)
	if !ok {
		props := joinProperties(rw.Added)

		return fillEnclosed(src, obj.Span.Start, obj.Span.End-1, " "+props+" ", " "+props), nil
	}

	if bytes.IndexByte(src[obj.Span.Start:last.Span.End], '\n') < 0 {
		return edit{start: last.Span.End, end: last.Span.End, text: ", " + joinProperties(rw.Added)}, nil
	}

	indent := lineIndent(src, last.Span.Start)

	// The last property ends its line: keep its comma and trailing comment
	// on that line and add one line per property below it.
	if comma, eol, ok := restOfLine(src, last.Span.End); ok {
		var sb strings.Builder

		if !comma {
			sb.WriteString(",")
		}

		sb.Write(src[last.Span.End:eol])

		for i, p := range rw.Added {
			sb.WriteString(indent)
			sb.WriteString(FormatProperty(p))

			if comma || i < len(rw.Added)-1 {
				sb.WriteString(",")
			}

			sb.WriteString("\n")
		}

		return edit{start: last.Span.End, end: eol, text: sb.String()}, nil
	}

	var sb strings.Builder

	for _, p := range rw.Added {
		sb.WriteString(",\n")
		sb.WriteString(indent)
		sb.WriteString(FormatProperty(p))
	}

	return edit{start: last.Span.End, end: last.Span.End, text: sb.String()}, nil
}

// fillEnclosed fills the delimiters at open and closing. A blank interior is
// replaced by filled. Any other content, such as a comment, is kept and
// prefix is inserted before it.
func fillEnclosed(src []byte, open, closing int, filled, prefix string) edit {
	inner := src[open+1 : closing]
	if len(bytes.TrimSpace(inner)) == 0 {
		return edit{start: open + 1, end: closing, text: filled}
	}

	switch inner[0] {
	case ' ', '\t', '\n', '\r':
	default:
		prefix += " "
	}

	return edit{start: open + 1, end: open + 1, text: prefix}
}

// restOfLine scans what follows a property on its line: blanks, an optional
// comma and an optional line comment. It reports whether a comma was seen
// and the offset just past the line break, or false when anything else
// shares the line.
func restOfLine(src []byte, offset int) (comma bool, eol int, ok bool) {
	i := skipBlanks(src, offset)
	if i < len(src) && src[i] == ',' {
		comma = true
		i = skipBlanks(src, i+1)
	}

	if bytes.HasPrefix(src[i:], []byte("//")) {
		nl := bytes.IndexByte(src[i:], '\n')
		if nl < 0 {
			return false, 0, false
		}

		i += nl
	}

	if i < len(src) && src[i] == '\r' {
		i++
	}

	if i < len(src) && src[i] == '\n' {
		return comma, i + 1, true
	}

	return false, 0, false
}

func skipBlanks(src []byte, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}

	return i
}

func joinProperties(props []*tree.Property) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, FormatProperty(p))
	}

	return strings.Join(parts, ", ")
}

// lineIndent returns the leading blanks of the line containing offset.
func lineIndent(src []byte, offset int) string {
	start := bytes.LastIndexByte(src[:offset], '\n') + 1

	end := start
	for end < offset && (src[end] == ' ' || src[end] == '\t') {
		end++
	}

	return string(src[start:end])
}

func memberName(rw *plan.Rewrite) string {
	if rw.Member == nil {
		return ""
	}

	return rw.Member.Name
}
