package goparse

import (
	"testing"

	"github.com/calavera/lambda-rust-gen/internal/astmodel"
)

func TestParseStruct(t *testing.T) {
	src := `package events

// MyEvent is an example.
type MyEvent struct {
	// Foo is a string.
	Foo string ` + "`json:\"foo,omitempty\"`" + `
	Bar int64  ` + "`json:\"bar\"`" + `
	Baz *string
}
`
	file, err := Parse("myevent.go", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	structs := file.Structs()
	if len(structs) != 1 {
		t.Fatalf("got %d structs, want 1", len(structs))
	}
	s := structs[0]
	if s.Name != "MyEvent" {
		t.Fatalf("name = %q, want MyEvent", s.Name)
	}
	if len(s.DocLines) != 1 || s.DocLines[0] != "MyEvent is an example." {
		t.Fatalf("doc lines = %v", s.DocLines)
	}
	if len(s.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(s.Fields))
	}

	foo := s.Fields[0]
	if foo.Name != "Foo" || foo.GoType.Kind != astmodel.KindString {
		t.Fatalf("foo field = %+v", foo)
	}
	if foo.JSON == nil || foo.JSON.Name != "foo" || !foo.JSON.OmitEmpty {
		t.Fatalf("foo json tag = %+v", foo.JSON)
	}

	bar := s.Fields[1]
	if bar.GoType.Kind != astmodel.KindInt {
		t.Fatalf("bar kind = %v", bar.GoType.Kind)
	}

	baz := s.Fields[2]
	if !baz.IsPointer || baz.GoType.Kind != astmodel.KindString {
		t.Fatalf("baz field = %+v", baz)
	}
}

func TestParseEmbeddedField(t *testing.T) {
	src := `package events

type Outer struct {
	Inner
	*Pointed
}
`
	file, err := Parse("outer.go", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s := file.Structs()[0]
	if len(s.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(s.Fields))
	}
	if !s.Fields[0].IsEmbedded || s.Fields[0].Name != "Inner" {
		t.Fatalf("field 0 = %+v", s.Fields[0])
	}
	if !s.Fields[1].IsEmbedded || !s.Fields[1].IsPointer || s.Fields[1].Name != "Pointed" {
		t.Fatalf("field 1 = %+v", s.Fields[1])
	}
}

func TestParseTypeAlias(t *testing.T) {
	src := `package events

type MillisOffset MilliSecondsEpochTime
type Raw = json.RawMessage
`
	file, err := Parse("alias.go", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	aliases := file.Aliases()
	if len(aliases) != 2 {
		t.Fatalf("got %d aliases, want 2", len(aliases))
	}
	if aliases[0].Target.Kind != astmodel.KindTimestampMillis {
		t.Fatalf("alias 0 target = %v", aliases[0].Target.Kind)
	}
	if aliases[1].Target.Kind != astmodel.KindJSONRaw {
		t.Fatalf("alias 1 target = %v", aliases[1].Target.Kind)
	}
}

func TestParseSkipsFuncsAndConsts(t *testing.T) {
	src := `package events

import "fmt"

const Foo = 1

func Bar() {}

type E struct {
	X string
}
`
	file, err := Parse("skip.go", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(file.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(file.Decls))
	}
}

func TestParseGenericsRejected(t *testing.T) {
	src := `package events

type Box[T any] struct {
	Value T
}
`
	if _, err := Parse("generic.go", []byte(src)); err == nil {
		t.Fatalf("expected error for generic type declaration")
	}
}

func TestParseMapAndArrayTypes(t *testing.T) {
	src := `package events

type E struct {
	Tags []string
	Meta map[string]int64
	Blob []byte
}
`
	file, err := Parse("e.go", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s := file.Structs()[0]

	tags := s.Fields[0]
	if tags.GoType.Kind != astmodel.KindArray || tags.GoType.Elem.Kind != astmodel.KindString {
		t.Fatalf("tags = %+v", tags.GoType)
	}

	meta := s.Fields[1]
	if meta.GoType.Kind != astmodel.KindMap || meta.GoType.Key.Kind != astmodel.KindString || meta.GoType.Elem.Kind != astmodel.KindInt {
		t.Fatalf("meta = %+v", meta.GoType)
	}

	blob := s.Fields[2]
	if !blob.GoType.IsByteSlice() {
		t.Fatalf("blob should be a byte slice, got %+v", blob.GoType)
	}
}
