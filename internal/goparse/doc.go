package goparse

import (
	"go/ast"
	"strings"

	"golang.org/x/net/html"
)

// docLines turns a *ast.CommentGroup into the plain-text lines that become
// a Field's or Struct's DocLines, stripping the leading "//" (or block
// comment delimiters) and any stray HTML-like markup a doc comment might
// carry over from godoc-flavored formatting (e.g. "<tt>foo</tt>").
func docLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}
	var lines []string
	for _, raw := range strings.Split(cg.Text(), "\n") {
		raw = strings.TrimRight(raw, " \t")
		if raw == "" && len(lines) == 0 {
			continue
		}
		lines = append(lines, sanitizeDocLine(raw))
	}
	// Trim trailing blank lines left by CommentGroup.Text()'s final newline.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// sanitizeDocLine strips any HTML-like tags from a doc comment line,
// keeping the text between them. Plain lines (the overwhelming majority
// of AWS Lambda Go SDK doc comments) pass through untouched.
func sanitizeDocLine(line string) string {
	if !strings.ContainsAny(line, "<>") {
		return line
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(line))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// drop the tag itself, keep surrounding text
		default:
			b.Write(z.Text())
		}
	}
}

// trailingComment returns the single-line text of an inline comment
// following a struct field declaration, or "" if there is none.
func trailingComment(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(cg.Text()), "//"))
}
