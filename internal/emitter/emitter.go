// Package emitter renders a rustmodel.EmittedFile to canonical Rust source
// text (spec §4.3): a sorted `use` block followed by each declaration in
// source order, doc comments rewritten to reference the Rust-cased type
// name, and a caller-supplied test module appended verbatim.
package emitter

import (
	"strings"

	"github.com/calavera/lambda-rust-gen/internal/astmodel"
	"github.com/calavera/lambda-rust-gen/internal/rustmodel"
)

// RenderFile renders the full contents of one emitted .rs file. goNames
// maps each RustDecl name back to the original Go identifier it was
// derived from, used only to rewrite doc-comment mentions; testModule, if
// non-empty, is appended after the declarations (internal/testgen's
// output — spec §4.5 says the synthesized tests live in the same file).
func RenderFile(ef *rustmodel.EmittedFile, goNames map[string]string, testModule string) string {
	var b strings.Builder

	if imports := renderImports(ef.RequiredImports); imports != "" {
		b.WriteString(imports)
		b.WriteString("\n")
	}

	for i, d := range ef.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderDecl(d, goNames[d.Name]))
	}

	if testModule != "" {
		b.WriteString("\n")
		b.WriteString(testModule)
	}

	return b.String()
}

// RenderDecl renders a single record or alias declaration.
func RenderDecl(d rustmodel.RustDecl, goName string) string {
	if d.IsAlias {
		return renderAlias(d)
	}
	return renderStruct(d, goName)
}

func renderAlias(d rustmodel.RustDecl) string {
	var b strings.Builder
	b.WriteString(renderAnnotations("", d.Annotations))
	b.WriteString("pub type " + d.Name + " = " + d.Target + ";\n")
	return b.String()
}

func renderStruct(d rustmodel.RustDecl, goName string) string {
	var b strings.Builder

	docLines := d.DocLines
	if len(docLines) == 0 {
		docLines = []string{fallbackDoc(d.Name)}
	} else {
		docLines = rewriteDocLines(docLines, goName, d.Name)
	}
	b.WriteString(renderDoc(docLines))

	b.WriteString("#[derive(" + strings.Join(d.Derives, ", ") + ")]\n")
	b.WriteString("pub struct " + d.Name + renderGenericParams(d.Generics))

	if where := renderWhereClause(d.Generics); where != "" {
		b.WriteString("\n" + where + "{\n")
	} else {
		b.WriteString(" {\n")
	}

	for _, f := range d.Fields {
		if len(f.DocLines) > 0 {
			for _, l := range f.DocLines {
				b.WriteString("    /// " + l + "\n")
			}
		}
		b.WriteString(renderAnnotations("    ", f.Annotations))
		b.WriteString("    pub " + f.Name + ": " + f.RustType + ",\n")
	}

	b.WriteString("}\n")
	return b.String()
}

// GoNameIndex builds the RustDecl-name -> Go-identifier map RenderFile
// needs for doc-comment rewriting, from the parsed file that produced ef.
func GoNameIndex(file *astmodel.File, toRustName func(string) string) map[string]string {
	idx := make(map[string]string)
	for _, s := range file.Structs() {
		idx[toRustName(s.Name)] = s.Name
	}
	for _, a := range file.Aliases() {
		idx[toRustName(a.Name)] = a.Name
	}
	return idx
}
