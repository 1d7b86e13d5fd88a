package analyze

import (
	"bytes"
	"go/token"
	"strings"
	"text/scanner"
	"unicode"
)

// itemKind classifies lexical items.
type itemKind int

const (
	itemEOF itemKind = iota
	itemIdent
	itemString   // '...' or "..."
	itemTemplate // `...`
	itemNumber
	itemBigInt // 10n
	itemRegex  // /a+b/gi
	itemPunct
)

// item is one lexical token.
type item struct {
	kind    itemKind
	text    string // raw source text
	value   string // unquoted value for strings
	start   int    // byte offset of the first byte
	end     int    // byte offset after the last byte
	pos     token.Position
	newline bool // a line break precedes the token
}

func (it item) is(text string) bool {
	return (it.kind == itemPunct || it.kind == itemIdent) && it.text == text
}

// multiPunct lists punctuation sequences lexed as one item. Sequences ending
// in '>' other than "=>" are left split so nested type arguments close one
// at a time.
var multiPunct = []string{"...", "===", "!==", "=>", "?.", "??", "&&", "||", "==", "!="}

// lex splits src into items. Comments are dropped; unterminated strings end
// at the line break so a stray quote in skipped code cannot swallow the file.
func lex(filename string, src []byte) []item {
	var s scanner.Scanner
	s.Init(bytes.NewReader(src))
	s.Filename = filename
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanComments | scanner.SkipComments
	s.IsIdentRune = func(ch rune, i int) bool {
		return ch == '_' || ch == '$' || unicode.IsLetter(ch) || unicode.IsDigit(ch) && i > 0
	}
	s.Error = func(*scanner.Scanner, string) {}

	var items []item

	prevLine := 1
	for {
		r := s.Scan()
		p := s.Position

		it := item{
			start:   p.Offset,
			pos:     token.Position{Filename: filename, Offset: p.Offset, Line: p.Line, Column: p.Column},
			newline: len(items) > 0 && p.Line > prevLine,
		}

		switch r {
		case scanner.EOF:
			it.kind = itemEOF
			it.end = len(src)
			items = append(items, it)

			return items
		case scanner.Ident:
			it.kind = itemIdent
		case scanner.Int, scanner.Float:
			it.kind = itemNumber
			if s.Peek() == 'n' {
				s.Next()
				it.kind = itemBigInt
			}
		case '\'', '"':
			it.kind = itemString
			it.value = scanQuoted(&s, r)
		case '`':
			it.kind = itemTemplate
			scanQuoted(&s, r)
		case '/':
			if regexAllowed(items) {
				it.kind = itemRegex
				scanRegex(&s)

				break
			}

			it.kind = itemPunct
			scanMultiPunct(&s, r)
		default:
			it.kind = itemPunct
			scanMultiPunct(&s, r)
		}

		it.end = s.Pos().Offset
		it.text = string(src[it.start:it.end])
		prevLine = s.Pos().Line

		items = append(items, it)
	}
}

// scanQuoted consumes a quoted literal after its opening quote and returns
// its unescaped value. Single and double quoted strings stop at a line break.
func scanQuoted(s *scanner.Scanner, quote rune) string {
	var b strings.Builder

	for {
		ch := s.Peek()
		switch {
		case ch == scanner.EOF:
			return b.String()
		case ch == '\n' && quote != '`':
			return b.String()
		case ch == quote:
			s.Next()
			return b.String()
		case ch == '\\':
			s.Next()
			b.WriteRune(unescape(s.Next()))
		default:
			b.WriteRune(s.Next())
		}
	}
}

// regexStarters lists the punctuation after which a slash opens a regular
// expression literal rather than a division. Angle brackets are left out so
// TSX closing tags lex as punctuation.
var regexStarters = map[string]bool{
	"(": true, ",": true, "=": true, ":": true, "[": true, "!": true, "&": true,
	"|": true, "?": true, "{": true, "}": true, ";": true, "+": true, "-": true,
	"*": true, "%": true, "~": true, "^": true, "=>": true,
	"==": true, "===": true, "!=": true, "!==": true, "&&": true, "||": true,
	"??": true, "...": true,
}

// regexKeywords lists the keywords after which a slash opens a regular
// expression literal.
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "case": true, "do": true, "else": true,
	"in": true, "instanceof": true, "new": true, "delete": true, "void": true,
	"throw": true, "yield": true, "await": true, "of": true,
}

// regexAllowed reports whether a slash following items starts a regular
// expression, i.e. whether an expression may begin at this point.
func regexAllowed(items []item) bool {
	if len(items) == 0 {
		return true
	}

	prev := items[len(items)-1]

	switch prev.kind {
	case itemPunct:
		return regexStarters[prev.text]
	case itemIdent:
		return regexKeywords[prev.text]
	default:
		return false
	}
}

// scanRegex consumes a regular expression literal after its opening slash,
// including its flags. A slash inside a character class does not close the
// literal. An unterminated literal ends at the line break.
func scanRegex(s *scanner.Scanner) {
	inClass := false

	for {
		ch := s.Peek()
		switch {
		case ch == scanner.EOF || ch == '\n':
			return
		case ch == '\\':
			s.Next()
			if next := s.Peek(); next != scanner.EOF && next != '\n' {
				s.Next()
			}
		case ch == '[':
			inClass = true
			s.Next()
		case ch == ']':
			inClass = false
			s.Next()
		case ch == '/' && !inClass:
			s.Next()

			for unicode.IsLetter(s.Peek()) {
				s.Next()
			}

			return
		default:
			s.Next()
		}
	}
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	case '0':
		return 0
	default:
		return ch
	}
}

// scanMultiPunct extends a punctuation item to the longest sequence in
// multiPunct that starts with first.
func scanMultiPunct(s *scanner.Scanner, first rune) {
	text := string(first)

	for {
		next := s.Peek()
		if next == scanner.EOF || !hasPunctPrefix(text+string(next)) {
			return
		}

		text += string(s.Next())
	}
}

func hasPunctPrefix(prefix string) bool {
	for _, p := range multiPunct {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}

	return false
}
