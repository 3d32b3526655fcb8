package emitter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// rewriteDocName replaces every occurrence of the original Go struct name in
// a doc comment line with the Rust-cased name wrapped in backticks (spec
// §4.3), so a comment like "ApigwEvent is the event..." reads
// "`ApigwEvent` is the event..." once the type itself has been renamed.
func rewriteDocName(line, goName, rustName string) string {
	if goName == "" || !strings.Contains(line, goName) {
		return line
	}
	return strings.ReplaceAll(line, goName, "`"+rustName+"`")
}

// rewriteDocLines applies rewriteDocName across a struct's doc comment.
func rewriteDocLines(lines []string, goName, rustName string) []string {
	if len(lines) == 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = rewriteDocName(l, goName, rustName)
	}
	return out
}

// fallbackDoc synthesizes a one-line doc comment for a struct the original
// Go source left undocumented, title-casing the split identifier words
// (spec §4.3 auto-doc fallback).
func fallbackDoc(rustName string) string {
	words := splitCamel(rustName)
	return titleCaser.String(strings.Join(words, " ")) + "."
}

// splitCamel splits an UpperCamelCase identifier into lowercase words.
func splitCamel(s string) []string {
	var words []string
	var cur []rune
	for _, r := range s {
		if r >= 'A' && r <= 'Z' && len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
		cur = append(cur, toLower(r))
	}
	if len(cur) > 0 {
		words = append(words, string(cur))
	}
	return words
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
