// Package testgen synthesizes the round-trip test module appended to each
// emitted Rust file (spec §4.5): for every matched fixture, a #[test]
// function that parses the fixture, re-serializes it, re-parses the
// output, and asserts the two parsed values are equal.
package testgen

import (
	"strings"

	"github.com/calavera/lambda-rust-gen/internal/rustmodel"
)

// Render builds the `#[cfg(test)]\n#[cfg(feature = "...")]\nmod test { ... }`
// block for one service's matched fixtures. Returns "" if there are none,
// so RenderFile can skip the trailing blank section.
func Render(service string, tests []rustmodel.ExampleTest) string {
	if len(tests) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("#[cfg(test)]\n")
	b.WriteString("#[cfg(feature = \"" + service + "\")]\n")
	b.WriteString("mod test {\n")
	b.WriteString("    use super::*;\n")
	b.WriteString("    extern crate serde_json;\n\n")

	for i, t := range tests {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderTestFunction(t))
	}

	b.WriteString("}\n")
	return b.String()
}

func renderTestFunction(t rustmodel.ExampleTest) string {
	var b strings.Builder
	b.WriteString("    #[test]\n")
	b.WriteString("    fn " + t.TestName + "() {\n")
	b.WriteString("        let data = include_bytes!(\"" + t.FixtureRelPath + "\");\n")
	b.WriteString("        let parsed: " + t.TopLevelType + " = serde_json::from_slice(data).unwrap();\n")
	b.WriteString("        let output: String = serde_json::to_string(&parsed).unwrap();\n")
	b.WriteString("        let reparsed: " + t.TopLevelType + " = serde_json::from_slice(output.as_bytes()).unwrap();\n")
	b.WriteString("        assert_eq!(parsed, reparsed);\n")
	b.WriteString("    }\n")
	return b.String()
}
