package plan

import (
	"property-sugar/internal/common"
	"property-sugar/internal/tree"
)

// Synthesizer merges inferred options into a decorator call's options map.
// Explicit options always win: a key already present is never inferred,
// overwritten or removed.
type Synthesizer struct {
	rules []optionRule
}

// NewSynthesizer creates a Synthesizer for the given decorator name and rules.
// Options are inserted in a fixed order: type, attribute, reflect.
func NewSynthesizer(decorator string, rules Rules) *Synthesizer {
	var chain []optionRule
	if rules.InferType {
		chain = append(chain, &typeRule{decorator: decorator, omitDefaultString: rules.OmitDefaultStringType})
	}

	if rules.InferAttribute {
		chain = append(chain, &attributeRule{})
	}

	if rules.InferReflect {
		chain = append(chain, &reflectRule{})
	}

	return &Synthesizer{rules: chain}
}

// Synthesize computes the rewrite of call d on member m. It returns
// (nil, nil) when no option has to be added, in which case the call must be
// left exactly as written (an empty argument is never created).
func (s *Synthesizer) Synthesize(d *tree.Decorator, m *tree.Member) (*Rewrite, error) {
	existing, hasArg := common.First(d.Args)
	if !hasArg {
		existing = &tree.Expr{Kind: tree.ExprObject}
	}

	opts := &optionSet{existing: existing}

	for _, rule := range s.rules {
		if opts.get(rule.Key()) != nil {
			continue
		}

		p, err := rule.Infer(m, opts)
		if err != nil {
			return nil, err
		}

		if p != nil {
			opts.added = append(opts.added, p)
		}
	}

	if common.IsEmpty(opts.added) {
		return nil, nil
	}

	return &Rewrite{
		Decorator: d,
		Member:    m,
		Options:   existing.WithProps(opts.added...),
		Added:     opts.added,
		Created:   !hasArg,
	}, nil
}
