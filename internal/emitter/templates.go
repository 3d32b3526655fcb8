package emitter

import (
	"strings"

	"github.com/calavera/lambda-rust-gen/internal/rustmodel"
)

// renderDoc renders a block of doc-comment lines as `///` lines.
func renderDoc(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			b.WriteString("///\n")
			continue
		}
		b.WriteString("/// " + l + "\n")
	}
	return b.String()
}

// renderAnnotations renders one attribute per line, each already a full
// `#[...]` string (spec §4.2 assembly order is the caller's job).
func renderAnnotations(indent string, anns []string) string {
	var b strings.Builder
	for _, a := range anns {
		b.WriteString(indent + a + "\n")
	}
	return b.String()
}

// renderGenericParams renders "<T1 = Value, T2 = Value>" for a struct's
// generic parameter list, empty string if there are none.
func renderGenericParams(generics []rustmodel.RustGeneric) string {
	if len(generics) == 0 {
		return ""
	}
	parts := make([]string, len(generics))
	for i, g := range generics {
		if g.Default != "" {
			parts[i] = g.Name + " = " + g.Default
		} else {
			parts[i] = g.Name
		}
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// renderWhereClause renders the multi-line `where\n    T: Bound,\n...`
// clause spanning every generic's bounds, one bound per line (matches the
// aws-lambda-events generated style: repeated `T1: Bound,` lines rather
// than a single `T1: BoundA + BoundB` line).
func renderWhereClause(generics []rustmodel.RustGeneric) string {
	var any bool
	for _, g := range generics {
		if len(g.Bounds) > 0 {
			any = true
			break
		}
	}
	if !any {
		return ""
	}
	var b strings.Builder
	b.WriteString("where\n")
	for _, g := range generics {
		for _, bound := range g.Bounds {
			b.WriteString("    " + g.Name + ": " + bound + ",\n")
		}
	}
	return b.String()
}
