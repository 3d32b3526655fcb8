// Package astmodel defines the intermediate representation that
// internal/goparse produces and internal/typemap consumes: a restricted
// view of Go source sufficient to describe event payload structures.
package astmodel

import "fmt"

// GoTypeKind enumerates the recognized shapes of a Go type expression.
type GoTypeKind int

const (
	KindString GoTypeKind = iota
	KindInt
	KindUInt
	KindFloat
	KindBool
	KindByte
	KindNamed
	KindArray
	KindMap
	KindInterface
	KindPointer
	KindTime
	KindTimestampMillis
	KindTimestampSeconds
	KindDurationSeconds
	KindDurationMinutes
	KindJSONRaw
)

func (k GoTypeKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUInt:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindByte:
		return "byte"
	case KindNamed:
		return "named"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindInterface:
		return "interface"
	case KindPointer:
		return "pointer"
	case KindTime:
		return "time"
	case KindTimestampMillis:
		return "timestamp_millis"
	case KindTimestampSeconds:
		return "timestamp_seconds"
	case KindDurationSeconds:
		return "duration_seconds"
	case KindDurationMinutes:
		return "duration_minutes"
	case KindJSONRaw:
		return "json_raw"
	default:
		return fmt.Sprintf("GoTypeKind(%d)", int(k))
	}
}

// GoType is the sum type from spec §3. Array and Pointer carry Elem;
// Map carries Key and Elem; Named carries Name.
type GoType struct {
	Kind GoTypeKind
	Name string  // set iff Kind == KindNamed
	Key  *GoType // set iff Kind == KindMap
	Elem *GoType // set iff Kind == KindArray, KindMap, or KindPointer
}

func (t GoType) IsByteSlice() bool {
	return t.Kind == KindArray && t.Elem != nil && t.Elem.Kind == KindByte
}

// JSONTag is the parsed `json:"..."` struct tag, if any.
type JSONTag struct {
	Name            string
	OmitEmpty       bool
	TrailingComment string
}

// Field is one member of a Struct.
type Field struct {
	Name       string
	DocLines   []string
	GoType     GoType
	JSON       *JSONTag
	IsPointer  bool
	IsEmbedded bool
}

// Struct is a parsed `type NAME struct { ... }` declaration.
type Struct struct {
	Name     string
	DocLines []string
	Fields   []Field
}

// TypeAlias is a parsed `type NAME = TARGET` or `type NAME TARGET`
// declaration whose target isn't a struct literal.
type TypeAlias struct {
	Name   string
	Target GoType
}

// Decl is implemented by *Struct and *TypeAlias.
type Decl interface {
	declNode()
}

func (*Struct) declNode()    {}
func (*TypeAlias) declNode() {}

// File is the parsed output of a single Go source file: declarations in
// source order, nothing else (consts, funcs, imports are dropped silently).
type File struct {
	PackageName string
	Decls       []Decl
}

// Structs returns the subset of Decls that are *Struct, in source order.
func (f *File) Structs() []*Struct {
	var out []*Struct
	for _, d := range f.Decls {
		if s, ok := d.(*Struct); ok {
			out = append(out, s)
		}
	}
	return out
}

// Aliases returns the subset of Decls that are *TypeAlias, in source order.
func (f *File) Aliases() []*TypeAlias {
	var out []*TypeAlias
	for _, d := range f.Decls {
		if a, ok := d.(*TypeAlias); ok {
			out = append(out, a)
		}
	}
	return out
}
