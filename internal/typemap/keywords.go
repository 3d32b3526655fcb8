package typemap

// reservedWords is the open, append-only set of target-language reserved
// words that force identifier mangling (spec §4.1: "initial set: the two
// reserved words that appear in the source inputs; additions allowed").
// Grounded on original_source lib.rs's `mangle` function, which only
// handled "ref" and "type" — the two Go field names that collide with
// Rust keywords anywhere in the AWS Lambda Go SDK event structs.
var reservedWords = map[string]bool{
	"ref":  true,
	"type": true,
}

// AddReservedWord grows the reserved-word set. Exported so a future input
// corpus that introduces a new colliding identifier doesn't require
// touching call sites, matching spec §4.1's "additions allowed".
func AddReservedWord(word string) {
	reservedWords[word] = true
}

// mangle appends a trailing underscore to s if it collides with a
// reserved word. Purely lexical, applied after any casing transform.
func mangle(s string) string {
	if reservedWords[s] {
		return s + "_"
	}
	return s
}
