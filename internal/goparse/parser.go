// Package goparse lifts a restricted subset of Go source — the subset
// sufficient to describe event payload structures — into astmodel
// declarations. It leans on the standard library's go/parser and go/ast
// rather than a hand-rolled grammar, the way the teacher's own cmd/eg and
// cmd/deadcode read Go source: package and import declarations, const and
// var blocks, and function declarations are recognized and skipped; an
// unrecognized type declaration is a hard ParseError, never a partial
// result.
package goparse

import (
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/calavera/lambda-rust-gen/internal/astmodel"
)

type parser struct {
	fset     *token.FileSet
	filename string
}

// Parse reads src (the contents of one Go source file) and returns its
// declarations in source order. Parse failure aborts the whole file with
// a positioned *ParseError; there is no partial result.
func Parse(filename string, src []byte) (*astmodel.File, error) {
	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, &ParseError{File: filename, Msg: err.Error()}
	}

	p := &parser{fset: fset, filename: filename}
	out := &astmodel.File{PackageName: astFile.Name.Name}

	for _, decl := range astFile.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok {
			// *ast.FuncDecl (and anything else): function bodies, method
			// sets, and goroutines are out of scope by spec §1.
			continue
		}
		if genDecl.Tok != token.TYPE {
			// import, const, var: skipped per spec §4.1.
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			if typeSpec.TypeParams != nil {
				return nil, p.errorf(typeSpec.Pos(), "generic type declarations are not a recognized data shape: %s", typeSpec.Name.Name)
			}
			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}
			d, err := p.liftTypeSpec(typeSpec, doc)
			if err != nil {
				return nil, err
			}
			out.Decls = append(out.Decls, d)
		}
	}

	return out, nil
}

func (p *parser) liftTypeSpec(spec *ast.TypeSpec, doc *ast.CommentGroup) (astmodel.Decl, error) {
	if structType, ok := spec.Type.(*ast.StructType); ok {
		return p.liftStruct(spec.Name.Name, structType, doc)
	}
	target, err := p.typeExprToGoType(spec.Type)
	if err != nil {
		return nil, err
	}
	return &astmodel.TypeAlias{Name: spec.Name.Name, Target: target}, nil
}

func (p *parser) liftStruct(name string, st *ast.StructType, doc *ast.CommentGroup) (*astmodel.Struct, error) {
	s := &astmodel.Struct{Name: name, DocLines: docLines(doc)}

	if st.Fields == nil {
		return s, nil
	}
	for _, f := range st.Fields.List {
		field, err := p.liftField(f)
		if err != nil {
			return nil, err
		}
		s.Fields = append(s.Fields, field...)
	}
	return s, nil
}

// liftField returns a slice because one ast.Field can declare several
// names (`A, B string`): an embedded field yields exactly one
// astmodel.Field, a named field yields one astmodel.Field per name, all
// sharing the same type, tag and doc lines.
func (p *parser) liftField(f *ast.Field) ([]astmodel.Field, error) {
	jsonTag, err := p.fieldJSONTag(f)
	if err != nil {
		return nil, err
	}
	doc := docLines(f.Doc)
	trailing := trailingComment(f.Comment)
	if trailing != "" && jsonTag != nil {
		jsonTag.TrailingComment = trailing
	}

	if len(f.Names) == 0 {
		// Embedded field: `[*]IDENT` with no field name.
		typeExpr := f.Type
		isPointer := false
		if star, ok := typeExpr.(*ast.StarExpr); ok {
			isPointer = true
			typeExpr = star.X
		}
		ident, ok := typeExpr.(*ast.Ident)
		if !ok {
			if sel, ok := typeExpr.(*ast.SelectorExpr); ok {
				ident = sel.Sel
			} else {
				return nil, p.errorf(f.Pos(), "unsupported embedded field type")
			}
		}
		return []astmodel.Field{{
			Name:       ident.Name,
			DocLines:   doc,
			GoType:     astmodel.GoType{Kind: astmodel.KindNamed, Name: ident.Name},
			JSON:       jsonTag,
			IsPointer:  isPointer,
			IsEmbedded: true,
		}}, nil
	}

	goType, err := p.typeExprToGoType(f.Type)
	if err != nil {
		return nil, err
	}
	isPointer := goType.Kind == astmodel.KindPointer
	if isPointer {
		goType = *goType.Elem
	}

	fields := make([]astmodel.Field, 0, len(f.Names))
	for _, n := range f.Names {
		fields = append(fields, astmodel.Field{
			Name:      n.Name,
			DocLines:  doc,
			GoType:    goType,
			JSON:      jsonTag,
			IsPointer: isPointer,
		})
	}
	return fields, nil
}

func (p *parser) fieldJSONTag(f *ast.Field) (*astmodel.JSONTag, error) {
	if f.Tag == nil {
		return nil, nil
	}
	return parseJSONTag(f.Tag.Value, "")
}
