package typemap

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// ToRustFieldName converts a Go field name to the snake_case, keyword-
// mangled Rust field name (spec §3 invariant: "every Rust field name is
// valid snake-case"). Grounded on original_source lib.rs:
// `mangle(&f.name.to_snake_case())`.
func ToRustFieldName(goName string) string {
	return mangle(strcase.ToSnake(goName))
}

// ToRustTypeName converts a Go type/struct name to UpperCamelCase
// (spec §3: "every Rust type name is upper-camel-cased"). Grounded on
// lib.rs: `struct_name.to_camel_case()`.
func ToRustTypeName(goName string) string {
	return mangle(strcase.ToCamel(goName))
}

// camelRoundTrip re-camel-cases an already snake-cased Rust field name, so
// it can be compared back against the original Go identifier (spec §9:
// "compare the snake-cased Rust name's camel-case round-trip against the
// original Go name"). snakeName may carry a trailing keyword-mangling
// underscore; that's stripped before re-casing since it isn't part of the
// original identifier.
func camelRoundTrip(snakeName string) string {
	return strcase.ToCamel(strings.TrimSuffix(snakeName, "_"))
}
