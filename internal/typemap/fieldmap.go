package typemap

import (
	"strings"

	"github.com/calavera/lambda-rust-gen/internal/astmodel"
	"github.com/calavera/lambda-rust-gen/internal/rustmodel"
)

// mapField converts one parsed Go field into the Rust fields it produces
// (always exactly one, but returned as a slice to mirror rustmodel's
// record shape) plus the generics and imports it contributes to the
// enclosing struct. structName is the already-upper-camel-cased Rust
// struct name, used for the (struct, field) special-case table.
func mapField(structName string, f astmodel.Field, gc *genericCounter) ([]rustmodel.RustField, []rustmodel.RustGeneric, []string, error) {
	memberName := ToRustFieldName(f.Name)

	ctx := &fieldCtx{StructName: structName, FieldName: memberName}
	base, err := mapGoType(f.GoType, ctx, gc)
	if err != nil {
		return nil, nil, nil, err
	}

	boundedGeneric := false
	for _, g := range base.Generics {
		if g.Name == base.RustType && base.RustType != "Value" {
			boundedGeneric = true
			break
		}
	}

	omitEmpty := f.IsPointer
	if f.JSON != nil && f.JSON.OmitEmpty {
		omitEmpty = true
	}

	var finalType string
	var customAnnotations []string

	switch {
	case base.RustType == "String":
		// Plain strings are always optional text: a JSON null or an
		// absent key deserializes to None, and Go's zero-value "" is
		// normalized to None too (spec §4.2 "Plain string" special
		// case, and the unconditional testable property in spec §8 —
		// this applies regardless of the field's own omitempty tag,
		// unlike original_source's literal ordering, which happened to
		// skip the custom deserializer whenever omitempty also wrapped
		// the type in Option first; see DESIGN.md).
		finalType = "Option<String>"
		customAnnotations = []string{
			`#[serde(deserialize_with = "deserialize_lambda_string")]`,
			`#[serde(default)]`,
		}
	case isHashMapType(base.RustType):
		// Plain maps default to empty on JSON null, never wrapped in
		// Option (spec §4.2 "Plain map" special case). Annotations the
		// value type itself carries (e.g. an empty serde bound on a
		// generic value) still apply on top.
		finalType = base.RustType
		customAnnotations = append([]string{
			`#[serde(deserialize_with = "deserialize_lambda_map")]`,
			`#[serde(default)]`,
		}, base.Annotations...)
	case boundedGeneric:
		// A field whose type resolved directly to a fresh interface{}
		// generic is always optional (spec §4.2.1).
		finalType = "Option<" + base.RustType + ">"
		customAnnotations = base.Annotations
	default:
		finalType = base.RustType
		if omitEmpty && isOptionalType(finalType) && !strings.HasPrefix(finalType, "Option<") {
			finalType = "Option<" + finalType + ">"
		}
		customAnnotations = base.Annotations
	}

	annotations := append([]string{}, customAnnotations...)

	if f.JSON != nil && f.JSON.Name != "" {
		if f.JSON.Name != memberName {
			annotations = append(annotations, rename(f.JSON.Name))
		}
	} else if roundTrip := camelRoundTrip(memberName); roundTrip != f.Name {
		// No JSON tag at all: per spec §9, the rename decision compares the
		// snake-cased Rust name's camel-case round-trip against the
		// original Go name, not the snake form directly — a field like
		// "Stage" (snake "stage", round-trip "Stage") never triggers a
		// rename just because casing differs, unlike original_source's
		// literal `member_name != go_member_name` string compare (see
		// DESIGN.md).
		annotations = append(annotations, rename(f.Name))
	}

	if f.IsEmbedded {
		annotations = append(annotations, `#[serde(flatten)]`)
	}

	if finalType == "Option<bool>" {
		annotations = append(annotations, `#[serde(skip_serializing_if = "Option::is_none")]`)
	}

	field := rustmodel.RustField{
		Name:        memberName,
		RustType:    finalType,
		Annotations: annotations,
		DocLines:    f.DocLines,
	}
	return []rustmodel.RustField{field}, base.Generics, base.Imports, nil
}

func rename(wireName string) string {
	return `#[serde(rename = "` + wireName + `")]`
}
