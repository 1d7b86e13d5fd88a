package engine

import (
	"fmt"
	"go/token"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"property-sugar/internal/common"
	"property-sugar/internal/decorator"
	"property-sugar/internal/naming"
	"property-sugar/internal/plan"
	"property-sugar/internal/tree"
)

// Config configures an Engine.
type Config struct {
	// Decorator is the callee to enrich; empty selects decorator.DefaultName.
	Decorator string
	// Rules selects the inferred options.
	Rules plan.Rules
	// Logger receives a debug entry per rewrite. Nil discards.
	Logger logrus.FieldLogger
}

// Engine enriches decorator calls. It holds no per-unit state and is safe
// for concurrent use.
type Engine struct {
	locator *decorator.Locator
	synth   *plan.Synthesizer
	log     logrus.FieldLogger
}

// Result is the outcome of processing one unit.
type Result struct {
	Unit     *tree.Unit
	Rewrites []*plan.Rewrite
	Notes    []Note
}

// Note is a non-fatal finding about a member, such as a likely misspelled
// decorator or option name.
type Note struct {
	Member  string
	Pos     token.Position
	Message string
}

// Changed returns true if at least one decorator call is rewritten.
func (r *Result) Changed() bool {
	return r != nil && len(r.Rewrites) > 0
}

// New creates an Engine from cfg.
func New(cfg Config) *Engine {
	locator := decorator.NewLocator(cfg.Decorator)

	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Engine{
		locator: locator,
		synth:   plan.NewSynthesizer(locator.Name(), cfg.Rules),
		log:     log,
	}
}

// Decorator returns the decorator callee the engine enriches.
func (e *Engine) Decorator() string {
	return e.locator.Name()
}

// ProcessMember computes the rewrite of one member. It returns (nil, nil)
// when the member has no matching decorator call or nothing to add.
func (e *Engine) ProcessMember(m *tree.Member) (*plan.Rewrite, error) {
	d, err := e.locator.Locate(m)
	if err != nil || d == nil {
		return nil, err
	}

	return e.synth.Synthesize(d, m)
}

// ProcessUnit visits every member of the unit in source order. The first
// failure aborts the unit and is returned as is, typically a
// *diagnostic.Error.
func (e *Engine) ProcessUnit(unit *tree.Unit) (*Result, error) {
	res := &Result{Unit: unit}

	for _, m := range unit.Members() {
		rw, err := e.ProcessMember(m)
		if err != nil {
			return nil, err
		}

		res.Notes = append(res.Notes, e.lint(m)...)

		if rw == nil {
			continue
		}

		e.log.WithFields(logrus.Fields{
			"unit":   unit.Filename,
			"member": m.Name,
			"line":   m.Pos.Line,
			"added":  strings.Join(rw.AddedKeys(), ","),
		}).Debug("rewrite decorator options")

		res.Rewrites = append(res.Rewrites, rw)
	}

	return res, nil
}

// lint reports decorators whose callee is one typo away from the configured
// name, and option keys of the located call that look like misspelled
// options.
func (e *Engine) lint(m *tree.Member) []Note {
	var notes []Note

	located, _ := e.locator.Locate(m)

	name := e.locator.Name()
	for _, d := range m.Decorators {
		if d == located || d.Callee == "" || lastSegment(d.Callee) == lastSegment(name) {
			continue
		}

		if s, ok := naming.Suggest(d.Callee, []string{name}); ok {
			notes = append(notes, Note{
				Member:  m.Name,
				Pos:     d.Pos,
				Message: fmt.Sprintf("decorator @%s looks like a misspelling of @%s", d.Callee, s),
			})
		}
	}

	if located == nil {
		return notes
	}

	opts, ok := common.First(located.Args)
	if !ok {
		return notes
	}

	for _, p := range opts.Props {
		if !p.HasKey() {
			continue
		}

		if s, ok := naming.Suggest(p.Key, plan.KnownOptions); ok && !opts.Has(s) {
			notes = append(notes, Note{
				Member:  m.Name,
				Pos:     located.Pos,
				Message: fmt.Sprintf("option %q looks like a misspelling of %q", p.Key, s),
			})
		}
	}

	return notes
}

// lastSegment returns the part of a dotted callee after its last dot.
func lastSegment(callee string) string {
	return callee[strings.LastIndexByte(callee, '.')+1:]
}
