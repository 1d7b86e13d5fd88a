package analyze

import (
	"property-sugar/internal/tree"
)

// parseType parses a type annotation. Intersections, conditional types,
// tuples, function types and type operators come back as AnnotationOther
// with their extent recorded.
func (p *parser) parseType() (*tree.TypeAnnotation, error) {
	start := p.cur()
	if start.is("|") || start.is("&") {
		p.next()
	}

	first, err := p.parseIntersectionType()
	if err != nil {
		return nil, err
	}

	t := first
	if p.cur().is("|") {
		u := &tree.TypeAnnotation{Kind: tree.AnnotationUnion, Pos: start.pos, Members: []*tree.TypeAnnotation{first}}
		for p.cur().is("|") {
			p.next()

			m, err := p.parseIntersectionType()
			if err != nil {
				return nil, err
			}

			u.Members = append(u.Members, m)
		}

		u.Span = tree.Span{Start: start.start, End: p.prevEnd()}
		t = u
	}

	if p.cur().is("extends") && !p.cur().newline {
		return p.parseConditionalRest(start)
	}

	return t, nil
}

// parseConditionalRest parses `extends U ? X : Y` after a checked type.
func (p *parser) parseConditionalRest(start item) (*tree.TypeAnnotation, error) {
	p.next()

	if _, err := p.parseIntersectionType(); err != nil {
		return nil, err
	}

	if _, err := p.expect("?"); err != nil {
		return nil, err
	}

	if _, err := p.parseType(); err != nil {
		return nil, err
	}

	if _, err := p.expect(":"); err != nil {
		return nil, err
	}

	if _, err := p.parseType(); err != nil {
		return nil, err
	}

	return p.other(start), nil
}

func (p *parser) parseIntersectionType() (*tree.TypeAnnotation, error) {
	start := p.cur()

	t, err := p.parsePostfixType()
	if err != nil || !p.cur().is("&") {
		return t, err
	}

	for p.cur().is("&") {
		p.next()
		if _, err := p.parsePostfixType(); err != nil {
			return nil, err
		}
	}

	return p.other(start), nil
}

// parsePostfixType handles array suffixes `T[]` and indexed access `T[K]`.
func (p *parser) parsePostfixType() (*tree.TypeAnnotation, error) {
	start := p.cur()

	t, err := p.parsePrimaryType()
	if err != nil {
		return nil, err
	}

	for p.cur().is("[") && !p.cur().newline {
		if p.peek(1).is("]") {
			p.next()
			p.next()

			t = &tree.TypeAnnotation{
				Kind: tree.AnnotationArray,
				Elem: t,
				Pos:  start.pos,
				Span: tree.Span{Start: start.start, End: p.prevEnd()},
			}

			continue
		}

		if err := p.skipBalanced("[", "]"); err != nil {
			return nil, err
		}

		t = p.other(start)
	}

	return t, nil
}

func (p *parser) parsePrimaryType() (*tree.TypeAnnotation, error) {
	it := p.cur()

	switch {
	case it.kind == itemString:
		p.next()
		return p.literal(it, tree.ExprString, it.value), nil
	case it.kind == itemNumber:
		p.next()
		return p.literal(it, tree.ExprNumber, it.text), nil
	case it.kind == itemBigInt:
		p.next()
		return p.literal(it, tree.ExprOther, it.text), nil
	case it.kind == itemTemplate:
		p.next()
		return p.other(it), nil
	case it.is("-") && p.peek(1).kind == itemNumber:
		p.next()
		n := p.next()

		return p.literal(it, tree.ExprNumber, "-"+n.text), nil
	case it.is("{"):
		if err := p.skipBalanced("{", "}"); err != nil {
			return nil, err
		}

		return p.annotation(it, tree.AnnotationShape), nil
	case it.is("["):
		if err := p.skipBalanced("[", "]"); err != nil {
			return nil, err
		}

		return p.other(it), nil
	case it.is("("):
		return p.parseParenType()
	case it.is("<"):
		if err := p.skipBalanced("<", ">"); err != nil {
			return nil, err
		}

		return p.parseFunctionTypeRest(it)
	case it.kind == itemIdent:
		return p.parseNamedType()
	}

	return nil, newParseError(it, "unexpected %s in type", describe(it))
}

// parseParenType tells a function type `(a: T) => R` from a parenthesized
// type by looking past the matching ')'. Parentheses around a type are
// transparent.
func (p *parser) parseParenType() (*tree.TypeAnnotation, error) {
	open := p.cur()

	closing := p.matching(p.pos, "(", ")")
	if closing < 0 {
		return nil, newParseError(open, "unbalanced \"(\"")
	}

	if closing+1 < len(p.items) && p.items[closing+1].is("=>") {
		return p.parseFunctionTypeRest(open)
	}

	p.next()

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	return t, nil
}

// parseFunctionTypeRest parses `(params) => R` starting at '('.
func (p *parser) parseFunctionTypeRest(start item) (*tree.TypeAnnotation, error) {
	if err := p.skipBalanced("(", ")"); err != nil {
		return nil, err
	}

	if _, err := p.expect("=>"); err != nil {
		return nil, err
	}

	if _, err := p.parseReturnType(); err != nil {
		return nil, err
	}

	return p.other(start), nil
}

func (p *parser) parseNamedType() (*tree.TypeAnnotation, error) {
	it := p.next()

	switch it.text {
	case "true", "false":
		return p.literal(it, tree.ExprBoolean, it.text), nil
	case tree.KeywordString, tree.KeywordNumber, tree.KeywordBoolean:
		t := p.annotation(it, tree.AnnotationPrimitive)
		t.Keyword = it.text

		return t, nil
	case "any", "unknown", "never", "void", "null", "undefined", "object", "bigint", "symbol", "this":
		t := p.other(it)
		t.Keyword = it.text

		return t, nil
	case "typeof":
		if _, err := p.parseQualifiedName(); err != nil {
			return nil, err
		}

		if p.cur().is("<") && !p.cur().newline {
			if err := p.skipBalanced("<", ">"); err != nil {
				return nil, err
			}
		}

		return p.other(it), nil
	case "keyof", "unique", "readonly":
		if _, err := p.parsePostfixType(); err != nil {
			return nil, err
		}

		return p.other(it), nil
	case "infer":
		if _, err := p.parseQualifiedName(); err != nil {
			return nil, err
		}

		return p.other(it), nil
	case "abstract", "new":
		if it.text == "abstract" {
			if _, err := p.expect("new"); err != nil {
				return nil, err
			}
		}

		if p.cur().is("<") {
			if err := p.skipBalanced("<", ">"); err != nil {
				return nil, err
			}
		}

		return p.parseFunctionTypeRest(it)
	}

	name := it.text
	for p.cur().is(".") && p.peek(1).kind == itemIdent {
		p.next()
		name += "." + p.next().text
	}

	if p.cur().is("<") && !p.cur().newline {
		if err := p.skipBalanced("<", ">"); err != nil {
			return nil, err
		}
	}

	t := p.annotation(it, tree.AnnotationReference)
	t.Name = name

	return t, nil
}

// annotation builds an annotation spanning from start to the last consumed item.
func (p *parser) annotation(start item, kind tree.AnnotationKind) *tree.TypeAnnotation {
	return &tree.TypeAnnotation{
		Kind: kind,
		Pos:  start.pos,
		Span: tree.Span{Start: start.start, End: p.prevEnd()},
	}
}

func (p *parser) other(start item) *tree.TypeAnnotation {
	return p.annotation(start, tree.AnnotationOther)
}

func (p *parser) literal(start item, kind tree.ExprKind, value string) *tree.TypeAnnotation {
	t := p.annotation(start, tree.AnnotationLiteral)
	t.Literal = &tree.Expr{Kind: kind, Value: value, Pos: start.pos, Span: t.Span}

	return t
}
