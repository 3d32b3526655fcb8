package typemap

import (
	"golang.org/x/xerrors"

	"github.com/calavera/lambda-rust-gen/internal/astmodel"
)

// MappingError is a hard error: a recognized GoType has no mapping rule
// (spec §7). In practice this only fires for a GoTypeKind the table in
// gotype.go doesn't recognize, which should be unreachable for anything
// goparse produced — it exists to fail loudly instead of emitting
// malformed Rust if the two packages ever drift.
type MappingError struct {
	GoType astmodel.GoType
	Field  string
	Msg    string
}

func (e *MappingError) Error() string {
	return xerrors.Errorf("field %s: go type %s has no mapping rule: %s", e.Field, e.GoType.Kind, e.Msg).Error()
}
