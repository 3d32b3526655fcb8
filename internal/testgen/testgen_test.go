package testgen

import (
	"strings"
	"testing"

	"github.com/calavera/lambda-rust-gen/internal/rustmodel"
)

func TestRenderEmptyReturnsEmptyString(t *testing.T) {
	if got := Render("apigw", nil); got != "" {
		t.Fatalf("Render(no tests) = %q, want empty", got)
	}
}

func TestRenderSingleTestFunction(t *testing.T) {
	tests := []rustmodel.ExampleTest{
		{
			TestName:       "example_apigw_event",
			FixtureRelPath: "fixtures/example-apigw-event.json",
			TopLevelType:   "ApiGatewayProxyRequest",
		},
	}
	got := Render("apigw", tests)

	wantLines := []string{
		"#[cfg(test)]\n",
		"#[cfg(feature = \"apigw\")]\n",
		"mod test {\n",
		"    use super::*;\n",
		"    extern crate serde_json;\n",
		"    #[test]\n",
		"    fn example_apigw_event() {\n",
		"        let data = include_bytes!(\"fixtures/example-apigw-event.json\");\n",
		"        let parsed: ApiGatewayProxyRequest = serde_json::from_slice(data).unwrap();\n",
		"        let output: String = serde_json::to_string(&parsed).unwrap();\n",
		"        let reparsed: ApiGatewayProxyRequest = serde_json::from_slice(output.as_bytes()).unwrap();\n",
		"        assert_eq!(parsed, reparsed);\n",
		"    }\n",
		"}\n",
	}
	for _, l := range wantLines {
		if !strings.Contains(got, l) {
			t.Errorf("Render output missing %q\nfull output:\n%s", l, got)
		}
	}
}

func TestRenderMultipleTestsAreBlankLineSeparated(t *testing.T) {
	tests := []rustmodel.ExampleTest{
		{TestName: "a", FixtureRelPath: "fixtures/a.json", TopLevelType: "A"},
		{TestName: "b", FixtureRelPath: "fixtures/b.json", TopLevelType: "B"},
	}
	got := Render("svc", tests)
	if !strings.Contains(got, "    }\n\n    #[test]\n    fn b() {\n") {
		t.Fatalf("expected blank line between test functions:\n%s", got)
	}
}
