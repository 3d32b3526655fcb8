package project

// ignoreList is the fixed set of event-file stems skipped outright (spec
// §6): either already hand-written in the target tree, or scalar helper
// modules with no struct-shaped event type to translate. Wider than
// original_source's 4-entry blacklist (attributevalue, duration, dynamodb,
// epoch_time) — spec.md's list is authoritative.
var ignoreList = map[string]bool{
	"apigw":          true,
	"alb":            true,
	"attributevalue": true,
	"codepipeline_job": true,
	"duration":       true,
	"dynamodb":       true,
	"sns":            true,
	"epoch_time":     true,
	"cloudwatch_events": true,
}

// Ignored reports whether a parsed file's stem should be skipped entirely.
func Ignored(fileStem string) bool {
	return ignoreList[fileStem]
}
