package typemap

import (
	"strings"
	"testing"

	"github.com/calavera/lambda-rust-gen/internal/astmodel"
)

func field(name string, gt astmodel.GoType, opts ...func(*astmodel.Field)) astmodel.Field {
	f := astmodel.Field{Name: name, GoType: gt}
	for _, o := range opts {
		o(&f)
	}
	return f
}

func withJSON(name string, omitEmpty bool) func(*astmodel.Field) {
	return func(f *astmodel.Field) {
		f.JSON = &astmodel.JSONTag{Name: name, OmitEmpty: omitEmpty}
	}
}

func withPointer() func(*astmodel.Field) {
	return func(f *astmodel.Field) { f.IsPointer = true }
}

func hasAnnotation(anns []string, substr string) bool {
	for _, a := range anns {
		if strings.Contains(a, substr) {
			return true
		}
	}
	return false
}

// Scenario 1: a plain string field with an omitempty tag still gets the
// custom deserializer and default (spec §8 Scenario 1; see DESIGN.md for
// why this overrides original_source's literal ordering).
func TestMapStructOmitemptyStringKeepsCustomDeserializer(t *testing.T) {
	s := &astmodel.Struct{
		Name: "E",
		Fields: []astmodel.Field{
			field("Foo", astmodel.GoType{Kind: astmodel.KindString}, withJSON("foo", true)),
		},
	}
	decl, _, err := MapStruct(s)
	if err != nil {
		t.Fatalf("MapStruct: %v", err)
	}
	f := decl.Fields[0]
	if f.RustType != "Option<String>" {
		t.Fatalf("RustType = %q, want Option<String>", f.RustType)
	}
	if !hasAnnotation(f.Annotations, "deserialize_lambda_string") {
		t.Fatalf("missing custom string deserializer: %v", f.Annotations)
	}
	if !hasAnnotation(f.Annotations, `#[serde(default)]`) {
		t.Fatalf("missing default annotation: %v", f.Annotations)
	}
}

// Scenario 2: pointer to a named type produces an optional field with no
// rename annotation when names round-trip identically.
func TestMapStructPointerToNamedType(t *testing.T) {
	s := &astmodel.Struct{
		Name: "E",
		Fields: []astmodel.Field{
			field("X", astmodel.GoType{Kind: astmodel.KindPointer, Elem: &astmodel.GoType{Kind: astmodel.KindNamed, Name: "Y"}}, withPointer()),
		},
	}
	decl, _, err := MapStruct(s)
	if err != nil {
		t.Fatalf("MapStruct: %v", err)
	}
	f := decl.Fields[0]
	if f.RustType != "Option<Y>" {
		t.Fatalf("RustType = %q, want Option<Y>", f.RustType)
	}
	for _, a := range f.Annotations {
		if strings.Contains(a, "rename") {
			t.Fatalf("unexpected rename annotation: %v", f.Annotations)
		}
	}
}

// Scenario 3: a map field is never wrapped in Option and gets the
// null-tolerant deserializer.
func TestMapStructMapFieldNeverOptional(t *testing.T) {
	s := &astmodel.Struct{
		Name: "E",
		Fields: []astmodel.Field{
			field("H", astmodel.GoType{
				Kind: astmodel.KindMap,
				Key:  &astmodel.GoType{Kind: astmodel.KindString},
				Elem: &astmodel.GoType{Kind: astmodel.KindString},
			}, withJSON("h", false)),
		},
	}
	decl, _, err := MapStruct(s)
	if err != nil {
		t.Fatalf("MapStruct: %v", err)
	}
	f := decl.Fields[0]
	if f.RustType != "HashMap<String, String>" {
		t.Fatalf("RustType = %q", f.RustType)
	}
	if !hasAnnotation(f.Annotations, "deserialize_lambda_map") {
		t.Fatalf("missing map deserializer: %v", f.Annotations)
	}
}

// Scenario 4: an interface{} field allocates a fresh bounded generic and
// the struct carries that generic with its default and bounds.
func TestMapStructInterfaceFieldAllocatesGeneric(t *testing.T) {
	s := &astmodel.Struct{
		Name: "E",
		Fields: []astmodel.Field{
			field("P", astmodel.GoType{Kind: astmodel.KindInterface}, withJSON("p", false)),
		},
	}
	decl, _, err := MapStruct(s)
	if err != nil {
		t.Fatalf("MapStruct: %v", err)
	}
	if len(decl.Generics) != 1 || decl.Generics[0].Name != "T1" {
		t.Fatalf("generics = %+v", decl.Generics)
	}
	if decl.Generics[0].Default != "Value" {
		t.Fatalf("default = %q, want Value", decl.Generics[0].Default)
	}
	f := decl.Fields[0]
	if f.RustType != "Option<T1>" {
		t.Fatalf("RustType = %q, want Option<T1>", f.RustType)
	}
	if !hasAnnotation(f.Annotations, `bound = ""`) {
		t.Fatalf("missing empty bound annotation: %v", f.Annotations)
	}
}

// Scenario 5: headers and multi-value-headers both map to the HTTP
// header-map type with the matching serializer.
func TestMapStructHTTPHeaders(t *testing.T) {
	mapType := astmodel.GoType{Kind: astmodel.KindMap, Key: &astmodel.GoType{Kind: astmodel.KindString}, Elem: &astmodel.GoType{Kind: astmodel.KindString}}
	s := &astmodel.Struct{
		Name: "ApiGatewayProxyResponse",
		Fields: []astmodel.Field{
			field("Headers", mapType),
			field("MultiValueHeaders", mapType),
		},
	}
	decl, _, err := MapStruct(s)
	if err != nil {
		t.Fatalf("MapStruct: %v", err)
	}
	if decl.Fields[0].RustType != "HeaderMap" {
		t.Fatalf("headers type = %q", decl.Fields[0].RustType)
	}
	if !hasAnnotation(decl.Fields[0].Annotations, "serialize_headers") {
		t.Fatalf("headers annotations = %v", decl.Fields[0].Annotations)
	}
	if !hasAnnotation(decl.Fields[1].Annotations, "serialize_multi_value_headers") {
		t.Fatalf("multi value headers annotations = %v", decl.Fields[1].Annotations)
	}
}

// Boundary: a struct with no fields still emits a valid empty record with
// all derives.
func TestMapStructEmpty(t *testing.T) {
	s := &astmodel.Struct{Name: "Empty"}
	decl, imports, err := MapStruct(s)
	if err != nil {
		t.Fatalf("MapStruct: %v", err)
	}
	if len(decl.Fields) != 0 {
		t.Fatalf("fields = %v, want none", decl.Fields)
	}
	if len(decl.Derives) != len(baseDerives) {
		t.Fatalf("derives = %v", decl.Derives)
	}
	if len(imports) != 0 {
		t.Fatalf("imports = %v, want none", imports)
	}
}

// Boundary: []byte fields emit the base64 wrapper.
func TestMapStructByteSlice(t *testing.T) {
	s := &astmodel.Struct{
		Name: "E",
		Fields: []astmodel.Field{
			field("Blob", astmodel.GoType{Kind: astmodel.KindArray, Elem: &astmodel.GoType{Kind: astmodel.KindByte}}),
		},
	}
	decl, _, err := MapStruct(s)
	if err != nil {
		t.Fatalf("MapStruct: %v", err)
	}
	if decl.Fields[0].RustType != "Base64Data" {
		t.Fatalf("RustType = %q, want Base64Data", decl.Fields[0].RustType)
	}
}

// A default-context struct name picks up the Default derive.
func TestMapStructDefaultContextDerivesDefault(t *testing.T) {
	s := &astmodel.Struct{Name: "ApiGatewayProxyRequestContext"}
	decl, _, err := MapStruct(s)
	if err != nil {
		t.Fatalf("MapStruct: %v", err)
	}
	if !hasAnnotation(decl.Derives, "Default") {
		t.Fatalf("derives = %v, want Default", decl.Derives)
	}
}

func TestMapAliasBasic(t *testing.T) {
	a := &astmodel.TypeAlias{Name: "MillisOffset", Target: astmodel.GoType{Kind: astmodel.KindTimestampMillis}}
	decl, imports, err := MapAlias(a)
	if err != nil {
		t.Fatalf("MapAlias: %v", err)
	}
	if !decl.IsAlias || decl.Target != "MillisecondTimestamp" {
		t.Fatalf("decl = %+v", decl)
	}
	if len(imports) != 1 {
		t.Fatalf("imports = %v", imports)
	}
}
