package plan

import (
	"property-sugar/internal/diagnostic"
	"property-sugar/internal/infer"
	"property-sugar/internal/naming"
	"property-sugar/internal/tree"
)

// optionRule infers one option key for a member.
type optionRule interface {
	Key() string
	// Infer returns the property to add, or nil when nothing should be added.
	Infer(m *tree.Member, opts *optionSet) (*tree.Property, error)
}

// optionSet is the options map under construction.
type optionSet struct {
	existing *tree.Expr
	added    []*tree.Property
}

func (s *optionSet) get(key string) *tree.Property {
	if p := s.existing.Property(key); p != nil {
		return p
	}

	for _, p := range s.added {
		if p.Key == key {
			return p
		}
	}

	return nil
}

// typeRule: `type` from the annotation or default value.
type typeRule struct {
	decorator         string
	omitDefaultString bool
}

func (r *typeRule) Key() string { return OptionType }

func (r *typeRule) Infer(m *tree.Member, _ *optionSet) (*tree.Property, error) {
	kind := infer.Resolve(m)

	id, ok := kind.Identifier()
	if !ok {
		return nil, diagnostic.NewTypeInferenceError(r.decorator, m.Name, m.Pos)
	}

	if kind == infer.TypeString && r.omitDefaultString {
		return nil, nil
	}

	return tree.NewProperty(OptionType, tree.NewIdent(id)), nil
}

// attributeRule: `attribute` with the kebab-cased member name.
type attributeRule struct{}

func (r *attributeRule) Key() string { return OptionAttribute }

func (r *attributeRule) Infer(m *tree.Member, _ *optionSet) (*tree.Property, error) {
	if m.Name == "" {
		return nil, nil
	}

	attr := naming.ToKebabCase(m.Name)
	if attr == m.Name {
		return nil, nil
	}

	return tree.NewProperty(OptionAttribute, tree.NewString(attr)), nil
}

// reflectRule: `reflect: true` when `type` is a primitive constructor.
type reflectRule struct{}

func (r *reflectRule) Key() string { return OptionReflect }

func (r *reflectRule) Infer(_ *tree.Member, opts *optionSet) (*tree.Property, error) {
	typeProp := opts.get(OptionType)
	if typeProp == nil || typeProp.Value == nil || typeProp.Value.Kind != tree.ExprIdent {
		return nil, nil
	}

	if !infer.ParseIdentifier(typeProp.Value.Value).IsPrimitive() {
		return nil, nil
	}

	return tree.NewProperty(OptionReflect, tree.NewBoolean(true)), nil
}
