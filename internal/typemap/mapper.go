// Package typemap walks a parsed astmodel.File and produces the
// rustmodel.RustDecl model spec §4.2 describes: derives, generics,
// per-field names/types/annotations, and the import set each declaration
// needs.
package typemap

import (
	"github.com/calavera/lambda-rust-gen/internal/astmodel"
	"github.com/calavera/lambda-rust-gen/internal/rustmodel"
)

// baseDerives are attached to every mapped struct (spec §4.2).
var baseDerives = []string{"Debug", "Clone", "PartialEq", "Deserialize", "Serialize"}

// MapStruct converts one parsed Go struct into a RustDecl record plus the
// set of import paths its fields require.
func MapStruct(s *astmodel.Struct) (rustmodel.RustDecl, []string, error) {
	rustName := ToRustTypeName(s.Name)

	decl := rustmodel.RustDecl{
		Name:     rustName,
		DocLines: s.DocLines,
		Derives:  append([]string{}, baseDerives...),
	}
	if isDefaultHTTPContext(rustName) {
		decl.Derives = append(decl.Derives, "Default")
	}

	gc := &genericCounter{}
	var imports []string
	genericSeen := make(map[string]bool)

	for _, f := range s.Fields {
		fields, generics, fieldImports, err := mapField(rustName, f, gc)
		if err != nil {
			return rustmodel.RustDecl{}, nil, err
		}
		decl.Fields = append(decl.Fields, fields...)
		imports = append(imports, fieldImports...)
		for _, g := range generics {
			if genericSeen[g.Name] {
				continue
			}
			genericSeen[g.Name] = true
			decl.Generics = append(decl.Generics, g)
		}
	}

	return decl, imports, nil
}

// MapAlias converts a parsed Go type alias into an alias-shaped RustDecl.
func MapAlias(a *astmodel.TypeAlias) (rustmodel.RustDecl, []string, error) {
	m, err := mapGoType(a.Target, nil, nil)
	if err != nil {
		return rustmodel.RustDecl{}, nil, err
	}
	decl := rustmodel.RustDecl{
		Name:        ToRustTypeName(a.Name),
		IsAlias:     true,
		Target:      m.RustType,
		Annotations: m.Annotations,
	}
	return decl, m.Imports, nil
}

// MapFile converts every declaration in a parsed Go file into an
// EmittedFile, in source order, with the per-declaration import sets
// merged into one file-level requirement set (spec §3: "a single service
// file produces at most one emitted file").
func MapFile(serviceName string, file *astmodel.File) (*rustmodel.EmittedFile, error) {
	out := rustmodel.NewEmittedFile(serviceName)
	for _, d := range file.Decls {
		switch decl := d.(type) {
		case *astmodel.Struct:
			rd, imports, err := MapStruct(decl)
			if err != nil {
				return nil, err
			}
			out.Decls = append(out.Decls, rd)
			out.AddImports(imports...)
		case *astmodel.TypeAlias:
			rd, imports, err := MapAlias(decl)
			if err != nil {
				return nil, err
			}
			out.Decls = append(out.Decls, rd)
			out.AddImports(imports...)
		}
	}
	return out, nil
}
