package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-sugar/internal/tree"
)

func parse(t *testing.T, src string) *tree.Unit {
	t.Helper()

	unit, err := ParseFile("test.ts", []byte(src))
	require.NoError(t, err)

	return unit
}

func onlyMember(t *testing.T, src string) *tree.Member {
	t.Helper()

	members := parse(t, src).Members()
	require.Len(t, members, 1)

	return members[0]
}

func TestParseFile_ClassesAndMembers(t *testing.T) {
	src := `import { LitElement } from 'lit';

export class MyElement extends LitElement {
  @property() name = 'World';
  @property({ type: Number }) count: number = 0;
  private helper(): void {}
  static get styles() { return []; }
}
`
	unit := parse(t, src)
	require.Len(t, unit.Classes, 1)

	c := unit.Classes[0]
	assert.Equal(t, "MyElement", c.Name)
	require.Len(t, c.Members, 4)

	assert.Equal(t, "name", c.Members[0].Name)
	assert.Equal(t, tree.MemberField, c.Members[0].Kind)
	require.NotNil(t, c.Members[0].Value)
	assert.Equal(t, tree.ExprString, c.Members[0].Value.Kind)
	assert.Equal(t, "World", c.Members[0].Value.Value)

	assert.Equal(t, "count", c.Members[1].Name)
	assert.True(t, c.Members[1].Type.IsPrimitive(tree.KeywordNumber))

	assert.Equal(t, "helper", c.Members[2].Name)
	assert.Equal(t, tree.MemberMethod, c.Members[2].Kind)

	assert.Equal(t, "styles", c.Members[3].Name)
	assert.Equal(t, tree.MemberGetter, c.Members[3].Kind)
	assert.True(t, c.Members[3].Static)
}

func TestParseFile_Decorator(t *testing.T) {
	src := "class A {\n  @lit.property({ type: String }) foo;\n}"
	m := onlyMember(t, src)
	require.Len(t, m.Decorators, 1)

	d := m.Decorators[0]
	assert.Equal(t, "lit.property", d.Callee)
	assert.True(t, d.IsCall)
	require.Len(t, d.Args, 1)
	assert.Equal(t, tree.ExprObject, d.Args[0].Kind)
	assert.Equal(t, "({ type: String })", src[d.Lparen:d.Rparen+1])
	assert.Equal(t, "@lit.property({ type: String })", d.Span.Text([]byte(src)))
	assert.Equal(t, 2, d.Pos.Line)
	assert.Equal(t, 3, d.Pos.Column)

	prop := d.Args[0].Property("type")
	require.NotNil(t, prop)
	assert.Equal(t, tree.ExprIdent, prop.Value.Kind)
	assert.Equal(t, "String", prop.Value.Value)
	assert.Equal(t, "type: String", prop.Span.Text([]byte(src)))

	assert.Equal(t, "foo", m.Name)
	assert.Equal(t, 2, m.Pos.Line)
	assert.Equal(t, 35, m.Pos.Column)
}

func TestParseFile_DecoratorArguments(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		isCall bool
		args   []tree.ExprKind
	}{
		{"bare", "class A { @property foo; }", false, nil},
		{"empty call", "class A { @property() foo; }", true, nil},
		{"trailing comma", "class A { @property({},) foo; }", true, []tree.ExprKind{tree.ExprObject}},
		{"two args", "class A { @property({}, {}) foo; }", true, []tree.ExprKind{tree.ExprObject, tree.ExprObject}},
		{"identifier", "class A { @property(opts) foo; }", true, []tree.ExprKind{tree.ExprIdent}},
		{"call argument", "class A { @property(make({ a: 1 })) foo; }", true, []tree.ExprKind{tree.ExprOther}},
		{"spread argument", "class A { @property(...all) foo; }", true, []tree.ExprKind{tree.ExprOther}},
		{"parenthesized decorator", "class A { @(property()) foo; }", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := onlyMember(t, tt.src)
			require.Len(t, m.Decorators, 1)

			d := m.Decorators[0]
			assert.Equal(t, tt.isCall, d.IsCall)

			var kinds []tree.ExprKind
			for _, a := range d.Args {
				kinds = append(kinds, a.Kind)
			}

			assert.Equal(t, tt.args, kinds)
		})
	}
}

func TestParseFile_ObjectProperties(t *testing.T) {
	src := "class A { @property({ type, 'attribute': false, ...rest, [k]: 1, converter() { return 1; }, get x() { return 2; } }) foo; }"
	m := onlyMember(t, src)

	obj := m.Decorators[0].Args[0]
	require.Equal(t, tree.ExprObject, obj.Kind)
	require.Len(t, obj.Props, 6)

	want := []struct {
		key  string
		kind tree.PropertyKind
	}{
		{"type", tree.PropShorthand},
		{"attribute", tree.PropKeyValue},
		{"", tree.PropSpread},
		{"", tree.PropComputed},
		{"converter", tree.PropMethod},
		{"x", tree.PropMethod},
	}

	for i, w := range want {
		assert.Equal(t, w.key, obj.Props[i].Key, "prop %d", i)
		assert.Equal(t, w.kind, obj.Props[i].Kind, "prop %d", i)
	}

	assert.True(t, obj.Has("attribute"))
	assert.Equal(t, "false", obj.Property("attribute").Value.Value)
}

func TestParseFile_TypeAnnotations(t *testing.T) {
	tests := []struct {
		annotation string
		kind       tree.AnnotationKind
		text       string // span text when it differs from annotation
	}{
		{"string", tree.AnnotationPrimitive, ""},
		{"boolean", tree.AnnotationPrimitive, ""},
		{"string[]", tree.AnnotationArray, ""},
		{"Array<string>", tree.AnnotationReference, ""},
		{"Map<string, Array<number>>", tree.AnnotationReference, ""},
		{"lib.Thing", tree.AnnotationReference, ""},
		{"'red'", tree.AnnotationLiteral, ""},
		{"-1", tree.AnnotationLiteral, ""},
		{"true", tree.AnnotationLiteral, ""},
		{"{ a: string }", tree.AnnotationShape, ""},
		{"'a' | 'b'", tree.AnnotationUnion, ""},
		{"| 'a' | 'b'", tree.AnnotationUnion, ""},
		{"(string)", tree.AnnotationPrimitive, "string"},
		{"(string | number)[]", tree.AnnotationArray, ""},
		{"A & B", tree.AnnotationOther, ""},
		{"[string, number]", tree.AnnotationOther, ""},
		{"() => void", tree.AnnotationOther, ""},
		{"(a: string) => number", tree.AnnotationOther, ""},
		{"<T>(a: T) => T", tree.AnnotationOther, ""},
		{"new () => Foo", tree.AnnotationOther, ""},
		{"keyof Foo", tree.AnnotationOther, ""},
		{"readonly string[]", tree.AnnotationOther, ""},
		{"typeof foo.bar", tree.AnnotationOther, ""},
		{"Foo['bar']", tree.AnnotationOther, ""},
		{"T extends string ? A : B", tree.AnnotationOther, ""},
		{"any", tree.AnnotationOther, ""},
		{"`a${string}`", tree.AnnotationOther, ""},
	}

	for _, tt := range tests {
		t.Run(tt.annotation, func(t *testing.T) {
			src := "class A { foo: " + tt.annotation + "; }"
			m := onlyMember(t, src)
			require.NotNil(t, m.Type)
			assert.Equal(t, tt.kind, m.Type.Kind)

			text := tt.text
			if text == "" {
				text = tt.annotation
			}

			assert.Equal(t, text, m.Type.Span.Text([]byte(src)))
		})
	}
}

func TestParseFile_UnionMembers(t *testing.T) {
	m := onlyMember(t, "class A { foo: 'a' | 1 | Bar; }")
	require.Equal(t, tree.AnnotationUnion, m.Type.Kind)
	require.Len(t, m.Type.Members, 3)

	assert.Equal(t, tree.ExprString, m.Type.Members[0].Literal.Kind)
	assert.Equal(t, tree.ExprNumber, m.Type.Members[1].Literal.Kind)
	assert.Equal(t, "Bar", m.Type.Members[2].Name)
}

func TestParseFile_DefaultValues(t *testing.T) {
	tests := []struct {
		value string
		kind  tree.ExprKind
		text  string
	}{
		{"'x'", tree.ExprString, ""},
		{"42", tree.ExprNumber, ""},
		{"false", tree.ExprBoolean, ""},
		{"{ a: 1 }", tree.ExprObject, ""},
		{"[1, 2]", tree.ExprArray, ""},
		{"undefined", tree.ExprIdent, ""},
		{"(42)", tree.ExprNumber, "42"},
		{"-1", tree.ExprOther, ""},
		{"a + b", tree.ExprOther, ""},
		{"new Map()", tree.ExprOther, ""},
		{"() => { return 1; }", tree.ExprOther, ""},
		{"`tpl`", tree.ExprOther, ""},
		{"foo.bar", tree.ExprOther, ""},
		{"'a' as const", tree.ExprOther, ""},
		{"/[}{]+/gi", tree.ExprOther, ""},
		{"a / b / c", tree.ExprOther, ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			src := "class A { foo = " + tt.value + "; }"
			m := onlyMember(t, src)
			require.NotNil(t, m.Value)
			assert.Equal(t, tt.kind, m.Value.Kind)

			text := tt.text
			if text == "" {
				text = tt.value
			}

			assert.Equal(t, text, m.Value.Span.Text([]byte(src)))
		})
	}
}

func TestParseFile_MembersWithoutSemicolons(t *testing.T) {
	src := `class A {
  a = 1
  b: string
  @property() c = foo
    .bar()
  d = x
  ['computed'] = 2
}`
	members := parse(t, src).Members()
	require.Len(t, members, 4)

	assert.Equal(t, "a", members[0].Name)
	assert.Equal(t, "b", members[1].Name)
	assert.Equal(t, "c", members[2].Name)
	assert.Equal(t, tree.ExprOther, members[2].Value.Kind)
	assert.Equal(t, "d", members[3].Name)
	assert.Equal(t, tree.ExprOther, members[3].Value.Kind, "a '[' on the next line continues the expression")
}

func TestParseFile_SkippedElements(t *testing.T) {
	src := `class A {
  ;
  static { init(); }
  [key: string]: unknown;
  #secret = 1;
  @property() visible = true;
  [Symbol.iterator]() {}
  constructor(private readonly x: string) { super(); }
  overload(a: string): void;
  overload(a: any) {}
  *gen() {}
  async run() {}
  set value(v: string) {}
  accessor auto = 1;
}`
	members := parse(t, src).Members()

	var names []string
	for _, m := range members {
		names = append(names, m.Name+":"+m.Kind.String())
	}

	assert.Equal(t, []string{
		"visible:field",
		":method",
		"constructor:method",
		"overload:method",
		"overload:method",
		"gen:method",
		"run:method",
		"value:setter",
		"auto:field",
	}, names)
}

func TestParseFile_RegexLiterals(t *testing.T) {
	src := `class A extends LitElement {
  strip(s: string) { return s.replace(/\}/g, ''); }
  m() { re = /{/g; }
  q(s) { return s.split(/[/'"]/).length / 2; }
  @property() name = 'x';
}`
	members := parse(t, src).Members()

	var names []string
	for _, m := range members {
		names = append(names, m.Name)
	}

	assert.Equal(t, []string{"strip", "m", "q", "name"}, names)
	require.Len(t, members[3].Decorators, 1)
	assert.Equal(t, "property", members[3].Decorators[0].Callee)
}

func TestParseFile_GetterReturnType(t *testing.T) {
	m := onlyMember(t, "class A { @property() get foo(): string { return ''; } }")
	assert.Equal(t, tree.MemberGetter, m.Kind)
	assert.True(t, m.Type.IsPrimitive(tree.KeywordString))

	m = onlyMember(t, "class A { isFoo(x: unknown): x is Foo { return true; } }")
	assert.Nil(t, m.Type)
}

func TestParseFile_NestedClasses(t *testing.T) {
	src := `class Outer {
  make() {
    return class Inner {
      @property() a = 1;
    };
  }
  static Field = class {
    b = 'x';
  };
}
function f() {
  class Local extends Base<{ x: number }> implements I {}
}
const obj = { class: 1 };
foo.class;
`
	unit := parse(t, src)

	var names []string
	for _, c := range unit.Classes {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"Outer", "Inner", "", "Local"}, names)
	assert.Len(t, unit.Classes[1].Members, 1)
	assert.Len(t, unit.Classes[2].Members, 1)
}

func TestParseFile_Spans(t *testing.T) {
	src := "class A {\n  @property()\n  foo = 1;\n}"
	m := onlyMember(t, src)
	assert.Equal(t, "@property()\n  foo = 1;", m.Span.Text([]byte(src)))
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated class", "class A { foo = 1;"},
		{"missing body", "class A extends B"},
		{"bad member", "class A { = 1 }"},
		{"unbalanced method", "class A { foo() { }"},
		{"getter without parens", "class A { get foo; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile("bad.ts", []byte(tt.src))
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "bad.ts", perr.Pos.Filename)
		})
	}
}
