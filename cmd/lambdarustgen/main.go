// Command lambdarustgen translates the Go event-struct definitions in an
// AWS Lambda Go SDK checkout into idiomatic Rust data types, together with
// fixture-driven round-trip tests (spec §1).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calavera/lambda-rust-gen/internal/project"
)

var (
	inputFlag     = flag.String("input", "", "path to the aws-lambda-go checkout (required)")
	outputFlag    = flag.String("output", "", "output directory for generated Rust files (required)")
	overwriteFlag = flag.Bool("overwrite", false, "permit replacing existing output files")
	verbosity     verboseCounter
)

func init() {
	flag.Var(&verbosity, "verbose", "increase log verbosity (repeatable)")
}

// verboseCounter implements flag.Value as a repeatable counting flag, the
// way the wider ecosystem's -v/-vv equivalents do, since the standard
// library's flag package has no built-in repeat-count flag.
type verboseCounter int

func (v *verboseCounter) String() string { return fmt.Sprintf("%d", int(*v)) }
func (v *verboseCounter) Set(string) error {
	*v++
	return nil
}
func (v *verboseCounter) IsBoolFlag() bool { return true }

func main() {
	if err := doMain(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", filepath.Base(os.Args[0]), err)
		os.Exit(1)
	}
}

func doMain() error {
	flag.Parse()

	if *inputFlag == "" {
		return fmt.Errorf("no -input directory specified")
	}
	if *outputFlag == "" {
		return fmt.Errorf("no -output directory specified")
	}

	log, err := newLogger(int(verbosity))
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	opts := project.Options{
		Input:     *inputFlag,
		Output:    *outputFlag,
		Overwrite: *overwriteFlag,
	}
	return project.Run(opts, log)
}

// newLogger maps the repeatable --verbose count to a zap level: 0
// occurrences -> warn, 1 -> info, 2+ -> debug (spec's AMBIENT STACK
// logging section).
func newLogger(verboseCount int) (*zap.SugaredLogger, error) {
	level := zapcore.WarnLevel
	switch {
	case verboseCount == 1:
		level = zapcore.InfoLevel
	case verboseCount >= 2:
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
