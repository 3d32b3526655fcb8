package goparse

import (
	"go/token"

	"golang.org/x/xerrors"
)

// ParseError is a hard error: the input failed to conform to the
// restricted grammar. It carries a file:line:column span, the way
// cmd/eg reports "foo.go:1: syntax error".
type ParseError struct {
	File string
	Pos  token.Position
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return xerrors.Errorf("%s: %s", e.Pos, e.Msg).Error()
	}
	return xerrors.Errorf("%s: %s", e.File, e.Msg).Error()
}

func newParseError(fset *token.FileSet, pos token.Pos, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Pos: fset.Position(pos),
		Msg: xerrors.Errorf(format, args...).Error(),
	}
}
