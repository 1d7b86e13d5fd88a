package analyze

import (
	"property-sugar/internal/tree"
)

var modifiers = map[string]bool{
	"public":    true,
	"private":   true,
	"protected": true,
	"static":    true,
	"readonly":  true,
	"declare":   true,
	"abstract":  true,
	"override":  true,
	"accessor":  true,
	"async":     true,
}

// startsKey reports whether it can begin a member or property key.
func startsKey(it item) bool {
	switch it.kind {
	case itemIdent, itemString, itemNumber, itemBigInt:
		return true
	case itemPunct:
		return it.text == "[" || it.text == "#" || it.text == "*"
	default:
		return false
	}
}

// parseMember parses one class element. It returns nil for elements that
// carry no member: stray semicolons, static blocks, index signatures and
// private names.
func (p *parser) parseMember() (*tree.Member, error) {
	first := p.cur()
	if first.is(";") {
		p.next()
		return nil, nil
	}

	decorators, err := p.parseDecorators()
	if err != nil {
		return nil, err
	}

	m := &tree.Member{Decorators: decorators}

	if p.cur().is("static") && p.peek(1).is("{") {
		p.next()
		start := p.pos
		if err := p.skipBalanced("{", "}"); err != nil {
			return nil, err
		}

		return nil, p.scanNested(start, p.pos)
	}

	for p.cur().kind == itemIdent && modifiers[p.cur().text] && startsKey(p.peek(1)) {
		if p.next().text == "static" {
			m.Static = true
		}
	}

	if p.atIndexSignature() {
		return nil, p.skipIndexSignature()
	}

	if it := p.cur(); (it.is("get") || it.is("set")) && startsKey(p.peek(1)) && !p.peek(1).is("*") {
		p.next()
		if it.text == "get" {
			m.Kind = tree.MemberGetter
		} else {
			m.Kind = tree.MemberSetter
		}
	} else if it.is("*") {
		p.next()
		m.Kind = tree.MemberMethod
	}

	key := p.cur()
	name, err := p.parseKey()
	if err != nil {
		return nil, err
	}

	m.Name = name
	m.Pos = key.pos

	if p.cur().is("?") || p.cur().is("!") {
		p.next()
	}

	switch {
	case p.cur().is("(") || p.cur().is("<"):
		if m.Kind == tree.MemberField {
			m.Kind = tree.MemberMethod
		}

		err = p.parseMethodRest(m)
	case m.Kind != tree.MemberField:
		err = newParseError(p.cur(), "expected \"(\", found %s", describe(p.cur()))
	default:
		err = p.parseFieldRest(m)
	}

	if err != nil {
		return nil, err
	}

	m.Span = tree.Span{Start: first.start, End: p.prevEnd()}

	if key.is("#") {
		return nil, nil
	}

	return m, nil
}

// parseKey parses a member key. Computed keys yield an empty name; private
// names keep their '#'.
func (p *parser) parseKey() (string, error) {
	it := p.cur()

	switch {
	case it.kind == itemIdent:
		p.next()
		return it.text, nil
	case it.kind == itemString:
		p.next()
		return it.value, nil
	case it.kind == itemNumber || it.kind == itemBigInt:
		p.next()
		return it.text, nil
	case it.is("#"):
		p.next()
		id := p.cur()
		if id.kind != itemIdent {
			return "", newParseError(id, "expected private name, found %s", describe(id))
		}

		p.next()

		return "#" + id.text, nil
	case it.is("["):
		return "", p.skipBalanced("[", "]")
	}

	return "", newParseError(it, "unexpected %s in class body", describe(it))
}

func (p *parser) atIndexSignature() bool {
	return p.cur().is("[") && p.peek(1).kind == itemIdent && p.peek(2).is(":")
}

func (p *parser) skipIndexSignature() error {
	if err := p.skipBalanced("[", "]"); err != nil {
		return err
	}

	if p.cur().is(":") {
		p.next()
		if _, err := p.parseType(); err != nil {
			return err
		}
	}

	return p.endMember()
}

// endMember consumes the terminator of a field-like member.
func (p *parser) endMember() error {
	it := p.cur()

	switch {
	case it.is(";"):
		p.next()
		return nil
	case it.is("}") || it.newline:
		return nil
	}

	return newParseError(it, "expected \";\", found %s", describe(it))
}

func (p *parser) parseFieldRest(m *tree.Member) error {
	if p.cur().is(":") {
		p.next()

		t, err := p.parseType()
		if err != nil {
			return err
		}

		m.Type = t
	}

	if p.cur().is("=") {
		p.next()

		start := p.pos
		v, err := p.parseExpr()
		if err != nil {
			return err
		}

		m.Value = v

		if v.Kind == tree.ExprOther {
			if err := p.scanNested(start, p.pos); err != nil {
				return err
			}
		}
	}

	return p.endMember()
}

// parseMethodRest parses type parameters, parameters, return type and body.
// Only getters keep their return type.
func (p *parser) parseMethodRest(m *tree.Member) error {
	if p.cur().is("<") {
		if err := p.skipBalanced("<", ">"); err != nil {
			return err
		}
	}

	start := p.pos
	if err := p.skipBalanced("(", ")"); err != nil {
		return err
	}

	if err := p.scanNested(start, p.pos); err != nil {
		return err
	}

	if p.cur().is(":") {
		p.next()

		t, err := p.parseReturnType()
		if err != nil {
			return err
		}

		if m.Kind == tree.MemberGetter {
			m.Type = t
		}
	}

	if p.cur().is("{") {
		start := p.pos
		if err := p.skipBalanced("{", "}"); err != nil {
			return err
		}

		return p.scanNested(start, p.pos)
	}

	return p.endMember()
}

// parseReturnType accepts type predicates and assertion signatures on top of
// plain types.
func (p *parser) parseReturnType() (*tree.TypeAnnotation, error) {
	if p.cur().is("asserts") && p.peek(1).kind == itemIdent && !p.peek(1).newline {
		p.next()
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if p.cur().is("is") && !p.cur().newline {
		p.next()

		return p.parseType()
	}

	return t, nil
}

// parseDecorators parses the decorators in front of a member.
func (p *parser) parseDecorators() ([]*tree.Decorator, error) {
	var out []*tree.Decorator

	for p.cur().is("@") {
		at := p.next()
		d := &tree.Decorator{Pos: at.pos}

		if p.cur().is("(") {
			if err := p.skipBalanced("(", ")"); err != nil {
				return nil, err
			}
		} else {
			callee, err := p.parseQualifiedName()
			if err != nil {
				return nil, err
			}

			d.Callee = callee

			if p.cur().is("<") {
				if err := p.skipBalanced("<", ">"); err != nil {
					return nil, err
				}
			}

			if p.cur().is("(") {
				lp := p.next()
				args, err := p.parseArgs()
				if err != nil {
					return nil, err
				}

				rp, err := p.expect(")")
				if err != nil {
					return nil, err
				}

				d.IsCall = true
				d.Args = args
				d.Lparen = lp.start
				d.Rparen = rp.start
			}
		}

		d.Span = tree.Span{Start: at.start, End: p.prevEnd()}
		out = append(out, d)
	}

	return out, nil
}

func (p *parser) parseQualifiedName() (string, error) {
	it := p.cur()
	if it.kind != itemIdent {
		return "", newParseError(it, "expected identifier, found %s", describe(it))
	}

	p.next()
	name := it.text

	for p.cur().is(".") && p.peek(1).kind == itemIdent {
		p.next()
		name += "." + p.next().text
	}

	return name, nil
}

// parseArgs parses call arguments up to, not including, the closing ')'.
// A trailing comma adds no argument.
func (p *parser) parseArgs() ([]*tree.Expr, error) {
	var args []*tree.Expr

	for !p.cur().is(")") {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		args = append(args, e)

		if p.cur().is(",") {
			p.next()
			continue
		}

		if !p.cur().is(")") {
			return nil, newParseError(p.cur(), "expected \",\" or \")\", found %s", describe(p.cur()))
		}
	}

	return args, nil
}
