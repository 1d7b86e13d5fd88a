// Package main provides the CLI entrypoint for property-sugar.
//
// property-sugar enriches `@property()` decorators in TypeScript classes:
//   - Infers `type` from the field's annotation or default value
//   - Adds `attribute` with the kebab-cased field name
//   - Adds `reflect: true` for String, Number and Boolean properties
//
// Options the author wrote are never changed.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"property-sugar/internal/cli"
)

var version = "dev"

func main() {
	opts, err := cli.ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}

	if err != nil {
		logrus.Fatalf("parse arguments: %v", err)
	}

	if opts.ShowVersion {
		fmt.Println(version)
		return
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := cli.NewRunner(os.Stdin, os.Stdout, os.Stderr, logger)

	report, err := runner.Run(ctx, opts)
	if err != nil {
		stop()
		logger.Fatalf("%v", err)
	}

	if report.HasErrors() {
		stop()
		os.Exit(1)
	}
}
