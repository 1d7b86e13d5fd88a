package analyze

import (
	"property-sugar/internal/tree"
)

// continuation lists tokens that, at the start of a new line, continue the
// expression on the previous line instead of ending it.
var continuation = map[string]bool{
	".": true, "?.": true, "(": true, "[": true, "=>": true,
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"=": true, "==": true, "===": true, "!=": true, "!==": true,
	"<": true, ">": true, "&": true, "|": true, "^": true,
	"&&": true, "||": true, "??": true, "?": true, ":": true,
	"as": true, "satisfies": true, "instanceof": true, "in": true,
}

func continuesExpr(it item) bool {
	return it.kind == itemTemplate || ((it.kind == itemPunct || it.kind == itemIdent) && continuation[it.text])
}

// endsOperand reports whether an expression may end with it.
func endsOperand(it item) bool {
	switch it.kind {
	case itemIdent, itemString, itemTemplate, itemNumber, itemBigInt, itemRegex:
		return true
	case itemPunct:
		return it.text == ")" || it.text == "]" || it.text == "}"
	default:
		return false
	}
}

// atExprEnd reports whether the current item cannot continue an expression.
func (p *parser) atExprEnd() bool {
	it := p.cur()

	switch {
	case it.kind == itemEOF:
		return true
	case it.is(",") || it.is(";") || it.is(")") || it.is("]") || it.is("}"):
		return true
	}

	return it.newline && !continuesExpr(it)
}

// parseExpr parses an expression. Literals, identifiers, object and array
// literals are parsed into their own kinds; anything else is skipped by
// bracket balance and returned as ExprOther.
func (p *parser) parseExpr() (*tree.Expr, error) {
	start := p.pos

	if e, ok := p.parseSimpleExpr(); ok && p.atExprEnd() {
		return e, nil
	}

	p.pos = start
	first := p.cur()

	if err := p.skipExpr(); err != nil {
		return nil, err
	}

	end := p.prevEnd()
	if p.pos == start {
		end = first.start
	}

	return &tree.Expr{Kind: tree.ExprOther, Pos: first.pos, Span: tree.Span{Start: first.start, End: end}}, nil
}

// skipExpr consumes items up to the end of the current expression.
func (p *parser) skipExpr() error {
	start := p.pos
	first := p.cur()
	depth := 0

	for {
		it := p.cur()
		if it.kind == itemEOF {
			if depth > 0 {
				return newParseError(first, "unterminated expression")
			}

			return nil
		}

		if depth == 0 {
			if it.is(",") || it.is(";") || it.is(")") || it.is("]") || it.is("}") {
				return nil
			}

			if p.pos > start && it.newline && endsOperand(p.items[p.pos-1]) && !continuesExpr(it) {
				return nil
			}
		}

		switch {
		case it.is("(") || it.is("[") || it.is("{"):
			depth++
		case it.is(")") || it.is("]") || it.is("}"):
			depth--
		}

		p.next()
	}
}

// parseSimpleExpr parses the expression forms the engine inspects. It
// returns false without error when the expression has another form; the
// caller rewinds.
func (p *parser) parseSimpleExpr() (*tree.Expr, bool) {
	it := p.cur()

	switch {
	case it.kind == itemString:
		p.next()
		return p.expr(it, tree.ExprString, it.value), true
	case it.kind == itemNumber:
		p.next()
		return p.expr(it, tree.ExprNumber, it.text), true
	case it.is("true") || it.is("false"):
		p.next()
		return p.expr(it, tree.ExprBoolean, it.text), true
	case it.kind == itemIdent:
		p.next()
		return p.expr(it, tree.ExprIdent, it.text), true
	case it.is("{"):
		return p.parseObject()
	case it.is("["):
		return p.parseArray()
	case it.is("("):
		p.next()

		e, ok := p.parseSimpleExpr()
		if !ok || !p.cur().is(")") {
			return nil, false
		}

		p.next()

		return e, true
	}

	return nil, false
}

func (p *parser) expr(start item, kind tree.ExprKind, value string) *tree.Expr {
	return &tree.Expr{
		Kind:  kind,
		Value: value,
		Pos:   start.pos,
		Span:  tree.Span{Start: start.start, End: p.prevEnd()},
	}
}

func (p *parser) parseObject() (*tree.Expr, bool) {
	open := p.next()
	obj := &tree.Expr{Kind: tree.ExprObject, Pos: open.pos}

	for !p.cur().is("}") {
		prop, ok := p.parseProperty()
		if !ok {
			return nil, false
		}

		obj.Props = append(obj.Props, prop)

		if p.cur().is(",") {
			p.next()
			continue
		}

		if !p.cur().is("}") {
			return nil, false
		}
	}

	p.next()
	obj.Span = tree.Span{Start: open.start, End: p.prevEnd()}

	return obj, true
}

func (p *parser) parseArray() (*tree.Expr, bool) {
	open := p.next()

	for !p.cur().is("]") {
		if p.cur().is(",") {
			p.next()
			continue
		}

		if _, err := p.parseExpr(); err != nil {
			return nil, false
		}

		if p.cur().is(",") {
			p.next()
			continue
		}

		if !p.cur().is("]") {
			return nil, false
		}
	}

	p.next()

	return p.expr(open, tree.ExprArray, ""), true
}

// parseProperty parses one object literal entry.
func (p *parser) parseProperty() (*tree.Property, bool) {
	start := p.cur()
	prop := &tree.Property{}

	switch {
	case start.is("..."):
		p.next()

		v, err := p.parseExpr()
		if err != nil {
			return nil, false
		}

		prop.Kind = tree.PropSpread
		prop.Value = v
	case start.is("["):
		if p.skipBalanced("[", "]") != nil {
			return nil, false
		}

		prop.Kind = tree.PropComputed

		switch {
		case p.cur().is(":"):
			p.next()

			v, err := p.parseExpr()
			if err != nil {
				return nil, false
			}

			prop.Value = v
		case p.cur().is("(") || p.cur().is("<"):
			if !p.skipMethod() {
				return nil, false
			}
		default:
			return nil, false
		}
	default:
		method := false
		if (start.is("get") || start.is("set") || start.is("async")) && startsKey(p.peek(1)) {
			p.next()
			method = true
		}

		if p.cur().is("*") {
			p.next()
			method = true
		}

		key := p.cur()
		switch key.kind {
		case itemIdent, itemNumber:
			prop.Key = key.text
		case itemString:
			prop.Key = key.value
		default:
			return nil, false
		}

		p.next()

		switch {
		case p.cur().is(":") && !method:
			p.next()

			v, err := p.parseExpr()
			if err != nil {
				return nil, false
			}

			prop.Kind = tree.PropKeyValue
			prop.Value = v
		case p.cur().is("(") || p.cur().is("<"):
			if !p.skipMethod() {
				return nil, false
			}

			prop.Kind = tree.PropMethod
		case key.kind == itemIdent && !method && (p.cur().is(",") || p.cur().is("}")):
			prop.Kind = tree.PropShorthand
			prop.Value = p.expr(key, tree.ExprIdent, key.text)
		default:
			return nil, false
		}
	}

	prop.Span = tree.Span{Start: start.start, End: p.prevEnd()}

	return prop, true
}

// skipMethod skips an object literal method after its key.
func (p *parser) skipMethod() bool {
	if p.cur().is("<") && p.skipBalanced("<", ">") != nil {
		return false
	}

	if p.skipBalanced("(", ")") != nil {
		return false
	}

	if p.cur().is(":") {
		p.next()
		if _, err := p.parseReturnType(); err != nil {
			return false
		}
	}

	return p.skipBalanced("{", "}") == nil
}
