package analyze

import (
	"property-sugar/internal/tree"
)

// ParseFile parses TypeScript source into a Unit holding every class found
// at any nesting level outside of skipped member bodies.
func ParseFile(filename string, src []byte) (*tree.Unit, error) {
	p := &parser{
		items: lex(filename, src),
		unit:  &tree.Unit{Filename: filename, Source: src},
	}

	if err := p.scanClasses(len(p.items)); err != nil {
		return nil, err
	}

	return p.unit, nil
}

type parser struct {
	items []item
	pos   int
	unit  *tree.Unit
}

// cur returns the current item. The EOF item is sticky.
func (p *parser) cur() item {
	return p.items[p.pos]
}

func (p *parser) peek(n int) item {
	i := p.pos + n
	if i >= len(p.items) {
		return p.items[len(p.items)-1]
	}

	return p.items[i]
}

func (p *parser) next() item {
	it := p.items[p.pos]
	if p.pos < len(p.items)-1 {
		p.pos++
	}

	return it
}

// prevEnd returns the end offset of the last consumed item.
func (p *parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}

	return p.items[p.pos-1].end
}

func (p *parser) expect(text string) (item, error) {
	it := p.cur()
	if !it.is(text) {
		return it, newParseError(it, "expected %q, found %s", text, describe(it))
	}

	p.next()

	return it, nil
}

// skipBalanced consumes from the current open item through its matching
// close item.
func (p *parser) skipBalanced(open, close string) error {
	first, err := p.expect(open)
	if err != nil {
		return err
	}

	depth := 1
	for depth > 0 {
		it := p.cur()
		if it.kind == itemEOF {
			return newParseError(first, "unbalanced %q", open)
		}

		switch {
		case it.is(open):
			depth++
		case it.is(close):
			depth--
		}

		p.next()
	}

	return nil
}

// matching returns the index of the item closing the bracket at index i, or -1.
func (p *parser) matching(i int, open, close string) int {
	depth := 0
	for j := i; j < len(p.items); j++ {
		switch {
		case p.items[j].is(open):
			depth++
		case p.items[j].is(close):
			depth--
			if depth == 0 {
				return j
			}
		}
	}

	return -1
}

// scanClasses parses every class whose keyword lies before item index end.
func (p *parser) scanClasses(end int) error {
	for p.pos < end && p.cur().kind != itemEOF {
		if !p.atClassKeyword() {
			p.next()
			continue
		}

		if err := p.parseClass(); err != nil {
			return err
		}
	}

	return nil
}

// scanNested looks for classes inside a skipped item range [from, to).
func (p *parser) scanNested(from, to int) error {
	saved := p.pos
	p.pos = from
	err := p.scanClasses(to)
	p.pos = saved

	return err
}

func (p *parser) atClassKeyword() bool {
	it := p.cur()
	if it.kind != itemIdent || it.text != "class" {
		return false
	}

	if p.pos > 0 {
		prev := p.items[p.pos-1]
		if prev.is(".") || prev.is("?.") {
			return false
		}
	}

	next := p.peek(1)

	return next.kind == itemIdent || next.is("{")
}

func (p *parser) parseClass() error {
	kw := p.next()
	c := &tree.Class{Pos: kw.pos}

	if it := p.cur(); it.kind == itemIdent && it.text != "extends" && it.text != "implements" {
		c.Name = it.text
		p.next()
	}

	if err := p.skipToClassBody(); err != nil {
		return err
	}

	p.unit.Classes = append(p.unit.Classes, c)
	p.next()

	for !p.cur().is("}") {
		if p.cur().kind == itemEOF {
			return newParseError(kw, "unterminated class body")
		}

		m, err := p.parseMember()
		if err != nil {
			return err
		}

		if m != nil {
			c.Members = append(c.Members, m)
		}
	}

	p.next()

	return nil
}

// skipToClassBody skips type parameters and heritage clauses up to the '{'
// opening the class body.
func (p *parser) skipToClassBody() error {
	depth := 0
	for {
		it := p.cur()

		switch {
		case it.kind == itemEOF:
			return newParseError(it, "expected class body, found end of file")
		case depth == 0 && it.is("{"):
			return nil
		case it.is("(") || it.is("[") || it.is("{") || it.is("<"):
			depth++
		case it.is(")") || it.is("]") || it.is("}") || it.is(">"):
			if depth > 0 {
				depth--
			}
		}

		p.next()
	}
}
