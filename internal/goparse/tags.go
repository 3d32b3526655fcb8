package goparse

import (
	"strconv"
	"strings"

	"github.com/calavera/lambda-rust-gen/internal/astmodel"
	"github.com/fatih/structtag"
)

// parseJSONTag extracts the json struct-tag mapping from a raw backtick
// tag literal (as it appears in ast.BasicLit.Value, quotes included) and
// an optional trailing line comment. Returns nil if there's no json tag.
func parseJSONTag(rawTagLit string, trailingComment string) (*astmodel.JSONTag, error) {
	unquoted, err := strconv.Unquote(rawTagLit)
	if err != nil {
		return nil, err
	}
	tags, err := structtag.Parse(unquoted)
	if err != nil {
		// Not every struct tag is a `json:"..."` tag; a tag with no
		// parseable content simply carries no json mapping.
		return nil, nil //nolint:nilerr
	}
	jsonTag, err := tags.Get("json")
	if err != nil {
		return nil, nil //nolint:nilerr
	}
	omitEmpty := false
	for _, opt := range jsonTag.Options {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return &astmodel.JSONTag{
		Name:            jsonTag.Name,
		OmitEmpty:       omitEmpty,
		TrailingComment: strings.TrimSpace(trailingComment),
	}, nil
}
