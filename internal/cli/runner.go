package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"property-sugar/internal/analyze"
	"property-sugar/internal/config"
	"property-sugar/internal/diagnostic"
	"property-sugar/internal/engine"
	"property-sugar/internal/gen"
)

// Runner processes the files named by Options.
type Runner interface {
	Run(ctx context.Context, opts *Options) (*Report, error)
}

type runnerImpl struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    logrus.FieldLogger
}

// NewRunner creates a runner reading standard input from stdin, printing
// sources to stdout and diagnostics to stderr.
func NewRunner(stdin io.Reader, stdout, stderr io.Writer, log logrus.FieldLogger) Runner {
	return &runnerImpl{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    log,
	}
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Run executes a single run. The returned error reports setup failures only;
// per-file failures are collected in the report.
func (r *runnerImpl) Run(ctx context.Context, opts *Options) (*Report, error) {
	cfg, err := opts.Resolve()
	if err != nil {
		return nil, err
	}

	cfgDiag := cfg.Validate()
	for _, w := range cfgDiag.Warnings {
		r.log.WithField("code", w.Code).Warn(w.Message)
	}

	if opts.PrintConfig || opts.InitConfig != "" {
		report := &Report{}
		report.Diagnostics.Merge(*cfgDiag)

		return report, r.exportConfig(cfg, opts)
	}

	loader := analyze.NewLoader(cfg.Extensions...)
	loader.Stdin = r.stdin

	files, err := loader.Collect(opts.Paths...)
	if err != nil {
		return nil, err
	}

	eng := engine.New(engine.Config{
		Decorator: cfg.Decorator,
		Rules:     cfg.Rules(),
		Logger:    r.log,
	})

	r.log.WithFields(logrus.Fields{
		"files":     len(files),
		"decorator": eng.Decorator(),
		"rules":     cfg.Rules().String(),
	}).Debug("start")

	report := &Report{Files: make([]*FileResult, len(files))}
	report.Diagnostics.Merge(*cfgDiag)

	jobs := opts.Jobs
	if jobs == 0 {
		jobs = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			report.Files[i] = process(loader, eng, path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, f := range report.Files {
		if err := r.emit(report, f, opts); err != nil {
			return report, err
		}
	}

	r.log.WithFields(logrus.Fields{
		"files":   len(report.Files),
		"changed": report.Changed(),
		"failed":  report.Failed(),
	}).Debug("done")

	return report, nil
}

// exportConfig prints the resolved configuration or writes it to the path
// given with --init-config.
func (r *runnerImpl) exportConfig(cfg *config.File, opts *Options) error {
	if opts.InitConfig != "" {
		if err := config.WriteFile(cfg, opts.InitConfig); err != nil {
			return err
		}

		r.log.WithField("file", opts.InitConfig).Info("wrote configuration")

		return nil
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if _, err := r.stdout.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// process runs parse, engine and splice for one file. A failure leaves the
// file untouched.
func process(loader *analyze.Loader, eng *engine.Engine, path string) *FileResult {
	f := &FileResult{Path: path}

	f.Unit, f.Err = loader.Load(path)
	if f.Err != nil {
		return f
	}

	f.Result, f.Err = eng.ProcessUnit(f.Unit)
	if f.Err != nil {
		return f
	}

	f.Output, f.Err = gen.Apply(f.Unit, f.Result.Rewrites)

	return f
}

// emit prints or writes one file result and records its diagnostics.
func (r *runnerImpl) emit(report *Report, f *FileResult, opts *Options) error {
	log := r.log.WithField("file", f.Path)

	if f.Err != nil {
		log.WithError(f.Err).Debug("failed")
		r.addFailure(report, f)

		return nil
	}

	for _, n := range f.Result.Notes {
		report.Diagnostics.AddWarningAt("PossibleTypo", n.Message, f.Path, n.Member, n.Pos)
		fmt.Fprintln(r.stderr, "warning: "+report.Diagnostics.Warnings[len(report.Diagnostics.Warnings)-1].String())
	}

	switch {
	case opts.Dump:
		fmt.Fprintf(r.stdout, "// %s\n", f.Unit.Filename)
		dumpConfig.Fdump(r.stdout, f.Unit.Classes)
		dumpConfig.Fdump(r.stdout, f.Result.Rewrites)
	case opts.List:
		if f.Changed() {
			fmt.Fprintln(r.stdout, f.Path)
		}
	case opts.Write:
		if !f.Changed() {
			log.Debug("unchanged")
			return nil
		}

		if err := gen.WriteFile(f.Path, f.Output); err != nil {
			return err
		}

		report.Diagnostics.AddInfo("Rewritten",
			fmt.Sprintf("enriched %d decorator call(s)", len(f.Result.Rewrites)), f.Path, "")
		log.WithField("rewrites", len(f.Result.Rewrites)).Info("rewrote")
	default:
		if _, err := r.stdout.Write(f.Output); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return nil
}

func (r *runnerImpl) addFailure(report *Report, f *FileResult) {
	var src []byte
	if f.Unit != nil {
		src = f.Unit.Source
	}

	var (
		derr *diagnostic.Error
		perr *analyze.ParseError
	)

	switch {
	case errors.As(f.Err, &derr):
		report.Diagnostics.AddFailure(derr, f.Path, src)
	case errors.As(f.Err, &perr):
		report.Diagnostics.AddErrorAt("ParseError", perr.Msg, f.Path, "", perr.Pos, nil)
	default:
		report.Diagnostics.AddError("IOError", f.Err.Error(), f.Path, "")
	}

	diag := report.Diagnostics.Errors[len(report.Diagnostics.Errors)-1]
	fmt.Fprintln(r.stderr, diag.String())

	if diag.Frame != "" {
		fmt.Fprintln(r.stderr, diag.Frame)
	}
}
