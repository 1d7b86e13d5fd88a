package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"property-sugar/internal/analyze"
	"property-sugar/internal/config"
)

// Options stores CLI options for a single run.
type Options struct {
	ConfigPath string
	Decorator  string
	Preset     string

	// Rule switches; nil when the flag was not given.
	InferType             *bool
	InferAttribute        *bool
	InferReflect          *bool
	OmitDefaultStringType *bool

	Write       bool
	List        bool
	Dump        bool
	Jobs        int
	Verbose     bool
	ShowVersion bool

	// PrintConfig prints the resolved configuration as YAML and exits.
	PrintConfig bool
	// InitConfig writes the resolved configuration to this path and exits.
	InitConfig string

	Paths []string
}

// ParseArgs parses command line arguments into Options.
func ParseArgs(args []string) (*Options, error) {
	opts := &Options{}

	var inferType, inferAttribute, inferReflect, omitString bool

	fs := pflag.NewFlagSet("property-sugar", pflag.ContinueOnError)
	fs.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	fs.StringVar(&opts.Decorator, "decorator", "", "decorator callee to enrich (default \"property\")")
	fs.StringVar(&opts.Preset, "preset", "", "rule preset: full or minimal (default \"full\")")
	fs.BoolVar(&inferType, "infer-type", false, "infer the type option")
	fs.BoolVar(&inferAttribute, "infer-attribute", false, "infer the attribute option")
	fs.BoolVar(&inferReflect, "infer-reflect", false, "infer the reflect option")
	fs.BoolVar(&omitString, "omit-default-string-type", false, "do not write type: String")
	fs.BoolVarP(&opts.Write, "write", "w", false, "rewrite files in place")
	fs.BoolVarP(&opts.List, "list", "l", false, "list files that would change")
	fs.BoolVar(&opts.Dump, "dump", false, "dump the parsed classes and planned rewrites")
	fs.IntVarP(&opts.Jobs, "jobs", "j", 0, "files processed in parallel (default: number of CPUs)")
	fs.BoolVar(&opts.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&opts.ShowVersion, "version", false, "show version")
	fs.BoolVar(&opts.PrintConfig, "print-config", false, "print the resolved configuration as YAML")
	fs.StringVar(&opts.InitConfig, "init-config", "", "write the resolved configuration to `file`")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.ShowVersion {
		return opts, nil
	}

	changed := func(name string, v bool) *bool {
		if !fs.Changed(name) {
			return nil
		}

		return &v
	}

	opts.InferType = changed("infer-type", inferType)
	opts.InferAttribute = changed("infer-attribute", inferAttribute)
	opts.InferReflect = changed("infer-reflect", inferReflect)
	opts.OmitDefaultStringType = changed("omit-default-string-type", omitString)
	opts.Paths = fs.Args()

	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

func (o *Options) validate() error {
	if o.PrintConfig || o.InitConfig != "" {
		if o.PrintConfig && o.InitConfig != "" {
			return errors.New("--print-config and --init-config are mutually exclusive")
		}

		if len(o.Paths) > 0 || o.Write || o.List || o.Dump {
			return errors.New("--print-config and --init-config do not process files")
		}

		return nil
	}

	if len(o.Paths) == 0 {
		return errors.New("at least one path is required (use - for standard input)")
	}

	modes := 0
	for _, on := range []bool{o.Write, o.List, o.Dump} {
		if on {
			modes++
		}
	}

	if modes > 1 {
		return errors.New("--write, --list and --dump are mutually exclusive")
	}

	if o.Jobs < 0 {
		return fmt.Errorf("--jobs must not be negative, got %d", o.Jobs)
	}

	if o.Write {
		for _, p := range o.Paths {
			if p == analyze.StdinPath {
				return errors.New("--write cannot be used with standard input")
			}
		}
	}

	return nil
}

// Resolve loads the configuration file, or the defaults, and applies the
// flags on top of it.
func (o *Options) Resolve() (*config.File, error) {
	cfg := config.Default()

	if o.ConfigPath != "" {
		var err error

		cfg, err = config.LoadFile(o.ConfigPath)
		if err != nil {
			return nil, err
		}
	}

	if o.Decorator != "" {
		cfg.Decorator = o.Decorator
	}

	if o.Preset != "" {
		cfg.Preset = o.Preset
	}

	override := func(dst **bool, v *bool) {
		if v != nil {
			*dst = v
		}
	}

	override(&cfg.Overrides.InferType, o.InferType)
	override(&cfg.Overrides.InferAttribute, o.InferAttribute)
	override(&cfg.Overrides.InferReflect, o.InferReflect)
	override(&cfg.Overrides.OmitDefaultStringType, o.OmitDefaultStringType)

	if err := cfg.Validate().Error(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
