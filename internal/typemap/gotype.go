package typemap

import (
	"fmt"

	"github.com/calavera/lambda-rust-gen/internal/astmodel"
	"github.com/calavera/lambda-rust-gen/internal/rustmodel"
)

// fieldCtx identifies the (struct, field) a GoType is being mapped for.
// It is consulted only at the outermost call of mapGoType for a field —
// nested calls (array element, map key/value) pass ctx == nil, matching
// lib.rs's translate_go_type_to_rust_type, which only threads
// StructureFieldDef through the top-level call.
type fieldCtx struct {
	StructName string
	FieldName  string // already snake_cased + mangled
}

func (c *fieldCtx) isHTTPMethod() bool {
	if c == nil {
		return false
	}
	return c.FieldName == "http_method" ||
		(c.StructName == "ApiGatewayV2httpRequestContextHttpDescription" && c.FieldName == "method")
}

func (c *fieldCtx) isWebsocketRequest() bool {
	return c != nil && c.StructName == "ApiGatewayWebsocketProxyRequest"
}

func (c *fieldCtx) isHTTPHeaders() bool {
	return c != nil && (c.FieldName == "headers" || c.FieldName == "multi_value_headers")
}

func (c *fieldCtx) isMultiValueHeaders() bool {
	return c != nil && c.FieldName == "multi_value_headers"
}

var httpBodyStructs = map[string]bool{
	"ApiGatewayProxyResponse": true,
	"ApiGatewayV2httpResponse": true,
	"AlbTargetGroupResponse":  true,
}

func (c *fieldCtx) isHTTPBody() bool {
	return c != nil && c.FieldName == "body" && httpBodyStructs[c.StructName]
}

var defaultHTTPContextTypes = map[string]bool{
	"ApiGatewayProxyRequestContext": true,
	"ApiGatewayRequestIdentity":     true,
}

// isDefaultHTTPContext reports whether a RUST type name (already
// upper-camel-cased) is a known API-Gateway context type that gets a
// `#[derive(Default)]` (spec §4.2) and, for a named-type field, a
// `#[serde(default)]` annotation (lib.rs: `is_default_http_context`).
func isDefaultHTTPContext(rustTypeName string) bool {
	return defaultHTTPContextTypes[rustTypeName]
}

// mapped is the per-GoType result of the mapping table in spec §4.2: a
// Rust type spelling plus whatever annotations, imports, and fresh
// generics that spelling requires.
type mapped struct {
	RustType    string
	Annotations []string
	Imports     []string
	Generics    []rustmodel.RustGeneric
}

// genericCounter threads the "fresh T1, T2, ..." allocation across a
// whole struct's fields (spec §4.2.1), the way lib.rs threads a single
// `&mut usize` through every translate_go_type_to_rust_type call for a
// struct's fields.
type genericCounter struct{ n int }

func (g *genericCounter) next() string {
	g.n++
	return fmt.Sprintf("T%d", g.n)
}

// mapGoType implements the Go-to-Rust type table in spec §4.2, including
// every keyed special case. ctx is non-nil only for the outermost call on
// behalf of one struct field.
func mapGoType(gt astmodel.GoType, ctx *fieldCtx, gc *genericCounter) (mapped, error) {
	switch gt.Kind {
	case astmodel.KindString:
		if ctx.isHTTPMethod() {
			anns := []string{`#[serde(with = "http_method")]`}
			if ctx.isWebsocketRequest() {
				anns = []string{
					`#[serde(deserialize_with = "http_method::deserialize_optional")]`,
					`#[serde(serialize_with = "http_method::serialize_optional")]`,
					`#[serde(skip_serializing_if = "Option::is_none")]`,
				}
			}
			return mapped{
				RustType:    "Method",
				Annotations: anns,
				Imports:     []string{"crate::custom_serde::*", "http::Method"},
			}, nil
		}
		if ctx.isHTTPBody() {
			return mapped{
				RustType:    "Option<Body>",
				Annotations: []string{`#[serde(skip_serializing_if = "Option::is_none")]`},
				Imports:     []string{"super::super::encodings::Body"},
			}, nil
		}
		return mapped{RustType: "String"}, nil

	case astmodel.KindBool:
		return mapped{RustType: "bool"}, nil
	case astmodel.KindByte:
		return mapped{RustType: "u8"}, nil
	case astmodel.KindInt:
		return mapped{RustType: "i64"}, nil
	case astmodel.KindUInt:
		return mapped{RustType: "u64"}, nil
	case astmodel.KindFloat:
		return mapped{RustType: "f64"}, nil

	case astmodel.KindNamed:
		rustName := ToRustTypeName(gt.Name)
		m := mapped{RustType: rustName}
		if isDefaultHTTPContext(rustName) {
			m.Annotations = append(m.Annotations, `#[serde(default)]`)
		}
		return m, nil

	case astmodel.KindArray:
		if gt.Elem == nil {
			return mapped{}, &MappingError{GoType: gt, Msg: "array with no element type"}
		}
		inner, err := mapGoType(*gt.Elem, nil, gc)
		if err != nil {
			return mapped{}, err
		}
		if inner.RustType == "u8" {
			// []byte is base64 on the wire (spec §4.2 table).
			return mapped{
				RustType:    "Base64Data",
				Annotations: inner.Annotations,
				Imports:     append(inner.Imports, "super::super::encodings::Base64Data"),
			}, nil
		}
		return mapped{
			RustType:    fmt.Sprintf("Vec<%s>", inner.RustType),
			Annotations: inner.Annotations,
			Imports:     inner.Imports,
			Generics:    inner.Generics,
		}, nil

	case astmodel.KindPointer:
		if gt.Elem == nil {
			return mapped{}, &MappingError{GoType: gt, Msg: "pointer with no pointee type"}
		}
		inner, err := mapGoType(*gt.Elem, nil, gc)
		if err != nil {
			return mapped{}, err
		}
		return mapped{
			RustType:    fmt.Sprintf("Option<%s>", inner.RustType),
			Annotations: inner.Annotations,
			Imports:     inner.Imports,
			Generics:    inner.Generics,
		}, nil

	case astmodel.KindMap:
		if ctx.isHTTPHeaders() {
			anns := []string{
				`#[serde(deserialize_with = "http_serde::header_map::deserialize", default)]`,
			}
			if ctx.isMultiValueHeaders() {
				anns = append(anns, `#[serde(serialize_with = "serialize_multi_value_headers")]`)
			} else {
				anns = append(anns, `#[serde(serialize_with = "serialize_headers")]`)
			}
			return mapped{
				RustType:    "HeaderMap",
				Annotations: anns,
				Imports:     []string{"crate::custom_serde::*", "http::HeaderMap"},
			}, nil
		}
		if gt.Key == nil || gt.Elem == nil {
			return mapped{}, &MappingError{GoType: gt, Msg: "map with no key or value type"}
		}
		key, err := mapGoType(*gt.Key, nil, gc)
		if err != nil {
			return mapped{}, err
		}
		val, err := mapGoType(*gt.Elem, nil, gc)
		if err != nil {
			return mapped{}, err
		}
		anns := append(append([]string{}, key.Annotations...), val.Annotations...)
		generics := append(append([]rustmodel.RustGeneric{}, key.Generics...), val.Generics...)
		imports := append(append([]string{}, key.Imports...), val.Imports...)
		imports = append(imports, "std::collections::HashMap")
		return mapped{
			RustType:    fmt.Sprintf("HashMap<%s, %s>", key.RustType, val.RustType),
			Annotations: anns,
			Imports:     imports,
			Generics:    generics,
		}, nil

	case astmodel.KindInterface, astmodel.KindJSONRaw:
		// Opaque JSON: either a fresh generic bounded to serializable
		// types (inside a struct, gc != nil) or a bare JSON value
		// (inside a type alias target, gc == nil) — spec §4.2.1.
		if gc == nil {
			return mapped{RustType: "Value", Imports: []string{"serde_json::Value"}}, nil
		}
		g := gc.next()
		return mapped{
			RustType:    g,
			Annotations: []string{`#[serde(bound = "")]`},
			Imports:     []string{"serde_json::Value", "serde::de::DeserializeOwned", "serde::ser::Serialize"},
			Generics: []rustmodel.RustGeneric{{
				Name:    g,
				Default: "Value",
				Bounds:  []string{"DeserializeOwned", "Serialize"},
			}},
		}, nil

	case astmodel.KindTime:
		return mapped{
			RustType: "DateTime<Utc>",
			Imports:  []string{"chrono::DateTime", "chrono::Utc"},
		}, nil

	case astmodel.KindTimestampMillis:
		return mapped{
			RustType: "MillisecondTimestamp",
			Imports:  []string{"super::super::encodings::MillisecondTimestamp"},
		}, nil

	case astmodel.KindTimestampSeconds:
		return mapped{
			RustType: "SecondTimestamp",
			Imports:  []string{"super::super::encodings::SecondTimestamp"},
		}, nil

	case astmodel.KindDurationSeconds:
		return mapped{
			RustType: "SecondDuration",
			Imports:  []string{"super::super::encodings::SecondDuration"},
		}, nil

	case astmodel.KindDurationMinutes:
		return mapped{
			RustType: "MinuteDuration",
			Imports:  []string{"super::super::encodings::MinuteDuration"},
		}, nil

	default:
		return mapped{}, &MappingError{GoType: gt, Msg: "unimplemented primitive"}
	}
}

// isOptionalType reports whether wrapping rustType in Option<...> is
// appropriate for an omitempty/pointer field — maps and the HTTP
// header-map type default to empty instead (spec §3 invariant).
func isOptionalType(rustType string) bool {
	if rustType == "HeaderMap" {
		return false
	}
	return !isHashMapType(rustType)
}

func isHashMapType(rustType string) bool {
	const prefix = "HashMap<"
	return len(rustType) >= len(prefix) && rustType[:len(prefix)] == prefix
}
