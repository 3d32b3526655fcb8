// Package project drives the whole pipeline described in spec §2 and §4.6:
// enumerate input Go files, run parser -> mapper -> emitter -> fixture
// matcher -> test synthesizer per file, then write the per-service Rust
// sources, module index, README, fixture copies, and manifest feature
// flags.
package project

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/calavera/lambda-rust-gen/internal/emitter"
	"github.com/calavera/lambda-rust-gen/internal/fixtures"
	"github.com/calavera/lambda-rust-gen/internal/goparse"
	"github.com/calavera/lambda-rust-gen/internal/rustmodel"
	"github.com/calavera/lambda-rust-gen/internal/testgen"
	"github.com/calavera/lambda-rust-gen/internal/typemap"
)

// Options configures one run of the pipeline (spec §6 CLI surface).
type Options struct {
	Input     string
	Output    string
	Overwrite bool
}

// serviceResult is everything Run accumulates per processed input file,
// needed later for the module index.
type serviceResult struct {
	service string
	fset    *rustmodel.EmittedFile
}

// Run executes the full pipeline once (spec §5: sequential, single file
// at a time). It returns the first hard error encountered. An overwrite
// refusal is logged and the file skipped; a fixture with no matching
// top-level type is dropped silently. In both cases the run continues.
func Run(opts Options, log *zap.SugaredLogger) error {
	eventsDir := filepath.Join(opts.Input, "events")
	goFiles, err := filepath.Glob(filepath.Join(eventsDir, "*.go"))
	if err != nil {
		return &IOError{Op: "glob", Path: eventsDir, Err: err}
	}
	sort.Strings(goFiles)

	testdataDir := filepath.Join(eventsDir, "testdata")
	listing, err := readTestdataListing(testdataDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: opts.Output, Err: err}
	}

	var results []serviceResult
	var toCopy []pendingFixture

	for _, path := range goFiles {
		stem := strings.TrimSuffix(filepath.Base(path), ".go")
		if strings.Contains(stem, "_test") || Ignored(stem) {
			continue
		}

		log.Infow("parsing", "service", stem, "file", path)

		src, err := os.ReadFile(path)
		if err != nil {
			return &IOError{Op: "read", Path: path, Err: err}
		}

		file, err := goparse.Parse(path, src)
		if err != nil {
			return err
		}

		ef, err := typemap.MapFile(stem, file)
		if err != nil {
			return err
		}

		goNames := emitter.GoNameIndex(file, typemap.ToRustTypeName)

		tests := fixtures.Match(stem, listing, ef)
		ef.ExampleTests = tests
		for _, t := range tests {
			toCopy = append(toCopy, pendingFixture{
				src:  filepath.Join(testdataDir, t.SourceName),
				dest: filepath.Join(opts.Output, "fixtures", filepath.Base(t.FixtureRelPath)),
			})
		}

		testModule := testgen.Render(stem, tests)
		text := emitter.RenderFile(ef, goNames, testModule)

		outPath := filepath.Join(opts.Output, stem+".rs")
		if err := writeGuarded(outPath, text, opts.Overwrite, log); err != nil {
			return err
		}

		results = append(results, serviceResult{service: stem, fset: ef})
	}

	if err := copyFixtures(toCopy, opts.Overwrite, log); err != nil {
		return err
	}

	if err := writeModIndex(filepath.Join(opts.Output, "mod.rs"), results, opts.Overwrite, log); err != nil {
		return err
	}

	gitHash, err := HeadCommit(opts.Input)
	if err != nil {
		return err
	}
	sdkVersion, err := ReadSDKVersion(opts.Input)
	if err != nil {
		return err
	}
	readmePath := filepath.Join(opts.Output, "README.md")
	if err := WriteReadme(readmePath, gitHash, sdkVersion, opts.Overwrite); err != nil {
		if _, ok := err.(*OverwriteRefusal); ok {
			log.Warnw("skipping existing file", "path", readmePath)
		} else {
			return err
		}
	}

	discovered := make([]string, len(results))
	for i, r := range results {
		discovered[i] = r.service
	}
	manifestPath := filepath.Join(opts.Output, "..", "Cargo.toml")
	if err := UpdateManifest(manifestPath, discovered); err != nil {
		return err
	}

	return nil
}

type pendingFixture struct {
	src  string
	dest string
}

// copyFixtures copies every matched fixture's bytes into the output
// fixtures/ directory concurrently (SPEC_FULL.md DOMAIN STACK: order-independent
// file copies, never declaration/import ordering, are the one place
// concurrency is safe to introduce over the otherwise sequential pipeline).
func copyFixtures(files []pendingFixture, overwrite bool, log *zap.SugaredLogger) error {
	if len(files) == 0 {
		return nil
	}
	dir := filepath.Dir(files[0].dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	var g errgroup.Group
	for _, f := range files {
		f := f
		g.Go(func() error {
			if _, err := os.Stat(f.dest); err == nil && !overwrite {
				log.Warnw("skipping existing file", "path", f.dest)
				return nil
			}
			data, err := os.ReadFile(f.src)
			if err != nil {
				return &IOError{Op: "read", Path: f.src, Err: err}
			}
			if err := os.WriteFile(f.dest, append(data, '\n'), 0o644); err != nil {
				return &IOError{Op: "write", Path: f.dest, Err: err}
			}
			return nil
		})
	}
	return g.Wait()
}

func writeGuarded(path, content string, overwrite bool, log *zap.SugaredLogger) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		log.Warnw("skipping existing file", "path", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func writeModIndex(path string, results []serviceResult, overwrite bool, log *zap.SugaredLogger) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		log.Warnw("skipping existing file", "path", path)
		return nil
	}
	var b strings.Builder
	for _, r := range results {
		b.WriteString("/// AWS Lambda event definitions for " + r.service + ".\n")
		b.WriteString("#[cfg(feature = \"" + r.service + "\")]\n")
		b.WriteString("pub mod " + r.service + ";\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func readTestdataListing(dir string) (fixtures.Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fixtures.NewListing(nil), nil
		}
		return nil, &IOError{Op: "readdir", Path: dir, Err: err}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type()&fs.ModeDir != 0 {
			continue
		}
		names = append(names, e.Name())
	}
	return fixtures.NewListing(names), nil
}
