// Package rustmodel defines the target-language declaration model that
// internal/typemap produces and internal/emitter renders: a named
// aggregate record (or alias), its fields, and the import requirements
// those fields carry.
package rustmodel

// RustGeneric is a generic type parameter on a record, with an optional
// default and trait bounds (spec §3, §4.2.1).
type RustGeneric struct {
	Name    string
	Default string // "" if none
	Bounds  []string
}

// RustField is one field of a RustDecl record.
type RustField struct {
	Name        string
	RustType    string
	Annotations []string
	DocLines    []string
}

// RustDecl is either a record (Fields set, Target empty) or an alias
// (Target set, Fields empty), per spec §3.
type RustDecl struct {
	Name    string
	DocLines []string
	Derives  []string
	Generics []RustGeneric
	Fields   []RustField

	// Alias-only.
	IsAlias bool
	Target  string
	Annotations []string
}

// EmittedFile is everything internal/emitter and internal/testgen need to
// render one output .rs file for one service.
type EmittedFile struct {
	ServiceName     string
	Decls           []RustDecl
	RequiredImports map[string]struct{}
	ExampleTests    []ExampleTest
}

// ExampleTest is one matched (fixture, top-level type) pair, per spec §4.5.
type ExampleTest struct {
	// TestName is the synthesized test function name, derived from the
	// fixture's file name.
	TestName string
	// FixtureRelPath is the path to the fixture file relative to the
	// emitted .rs file, e.g. "fixtures/apigw-response.json".
	FixtureRelPath string
	// TopLevelType is the RustDecl name the fixture deserializes into.
	TopLevelType string
	// SourceName is the fixture's original file name in the input SDK's
	// testdata directory, which may differ from FixtureRelPath's base name
	// (the primary fixture is renamed to "example-<service>-event.json" on
	// write, per spec §4.6).
	SourceName string
}

// NewEmittedFile returns an EmittedFile ready to accumulate declarations.
func NewEmittedFile(service string) *EmittedFile {
	return &EmittedFile{
		ServiceName:     service,
		RequiredImports: make(map[string]struct{}),
	}
}

// AddImports merges a set of import paths into the file's requirement set.
func (f *EmittedFile) AddImports(imports ...string) {
	for _, imp := range imports {
		if imp == "" {
			continue
		}
		f.RequiredImports[imp] = struct{}{}
	}
}

// FirstEventType returns the first non-alias declaration whose name ends in "Event",
// the default top-level type a primary fixture binds to (spec §4.4).
func (f *EmittedFile) FirstEventType() (string, bool) {
	for _, d := range f.Decls {
		if !d.IsAlias && hasEventSuffix(d.Name) {
			return d.Name, true
		}
	}
	return "", false
}

func hasEventSuffix(name string) bool {
	const suffix = "Event"
	return len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix
}

// HasDecl reports whether name is one of the file's declared types.
func (f *EmittedFile) HasDecl(name string) bool {
	for _, d := range f.Decls {
		if d.Name == name {
			return true
		}
	}
	return false
}
