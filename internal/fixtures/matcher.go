// Package fixtures matches a service's emitted declarations against the
// example JSON payloads shipped in the input SDK's testdata directory
// (spec §4.4), by fuzzy filename matching plus a fixed per-service table
// of additional examples.
package fixtures

import (
	"strings"

	"github.com/calavera/lambda-rust-gen/internal/rustmodel"
)

// fuzz removes hyphens and underscores, the canonicalization original_source
// calls "fuzzy" matching (it is exact after stripping those two characters,
// not edit-distance fuzzy matching).
func fuzz(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '-' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Listing is a fuzzy-keyed index of a directory's files: fuzz(name) -> the
// original file name, built once per run over the input testdata directory.
type Listing map[string]string

// NewListing builds a Listing from a flat list of file names.
func NewListing(names []string) Listing {
	l := make(Listing, len(names))
	for _, n := range names {
		l[fuzz(n)] = n
	}
	return l
}

// primaryFixtureName returns the expected primary fixture's file name for
// service, applying two service-specific rewrites: firehose (spec §4.4)
// and codepipeline_job.
func primaryFixtureName(service string) string {
	switch service {
	case "firehose":
		return "kinesis-firehose-event.json"
	case "codepipeline_job":
		return "codepipeline-job-event.json"
	default:
		return service + "-event.json"
	}
}

// primaryTopLevelType chooses the top-level type the primary fixture binds
// to: the first non-alias declaration ending in "Event", except the apigw
// service, which always binds to ApiGatewayProxyRequest (spec §4.4).
func primaryTopLevelType(service string, ef *rustmodel.EmittedFile) (string, bool) {
	if service == "apigw" {
		if ef.HasDecl("ApiGatewayProxyRequest") {
			return "ApiGatewayProxyRequest", true
		}
		return "", false
	}
	return ef.FirstEventType()
}

// Match finds every (fixture, top-level type) pair for a service: the
// primary fixture, if present in the listing, plus every entry of the
// fixed custom-example table that's also present.
func Match(service string, listing Listing, ef *rustmodel.EmittedFile) []rustmodel.ExampleTest {
	var out []rustmodel.ExampleTest

	primaryKey := fuzz(primaryFixtureName(service))
	if original, ok := listing[primaryKey]; ok {
		if topLevel, ok := primaryTopLevelType(service, ef); ok {
			out = append(out, rustmodel.ExampleTest{
				TestName:       "example_" + service + "_event",
				FixtureRelPath: "fixtures/example-" + service + "-event.json",
				TopLevelType:   topLevel,
				SourceName:     original,
			})
		}
	}

	for _, ce := range findCustomExamples(service) {
		original, ok := listing[fuzz(ce.Filename)]
		if !ok {
			continue
		}
		if !ef.HasDecl(ce.TopLevelType) {
			continue
		}
		out = append(out, rustmodel.ExampleTest{
			TestName:       testNameFor(ce.Filename),
			FixtureRelPath: "fixtures/" + ce.Filename,
			TopLevelType:   ce.TopLevelType,
			SourceName:     original,
		})
	}

	return out
}

// testNameFor derives a test function name from a fixture file name:
// strip the extension, replace hyphens with underscores.
func testNameFor(filename string) string {
	name := strings.TrimSuffix(filename, ".json")
	return strings.ReplaceAll(name, "-", "_")
}
