package project

import "golang.org/x/xerrors"

// IOError is a hard error: reading, writing, or directory creation failed
// (spec §7). Aborts the run.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return xerrors.Errorf("%s %s: %w", e.Op, e.Path, e.Err).Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// OverwriteRefusal is soft: a pre-existing output file would be replaced
// and --overwrite wasn't set. Logged and skipped, run continues.
type OverwriteRefusal struct {
	Path string
}

func (e *OverwriteRefusal) Error() string {
	return xerrors.Errorf("file already exists and --overwrite not specified: %s", e.Path).Error()
}

// FixtureMismatch is soft: no top-level type could be matched for a
// fixture. fixtures.Match drops such a fixture silently; Run neither
// constructs nor logs this error.
type FixtureMismatch struct {
	Fixture string
}

func (e *FixtureMismatch) Error() string {
	return xerrors.Errorf("no top-level type matched for fixture: %s", e.Fixture).Error()
}
