package project

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sys/unix"
)

// UpdateManifest read-modify-writes the Cargo.toml-style package manifest
// at path: it ensures every discovered (non-ignored) service has an empty
// feature entry, then recomputes the aggregate `generated` feature as
// discovered − static, preserving every other key untouched (spec §4.6,
// §8 testable property, §9 design note on manifest editing). It takes an
// advisory flock for the duration of the read-modify-write, since spec §5
// states the manifest file isn't otherwise concurrency-safe.
func UpdateManifest(path string, discovered []string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		return &IOError{Op: "flock", Path: path, Err: err}
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	doc := make(map[string]interface{})
	if info, statErr := f.Stat(); statErr == nil && info.Size() > 0 {
		if err := toml.NewDecoder(f).Decode(&doc); err != nil {
			return &IOError{Op: "decode", Path: path, Err: err}
		}
	}

	features, _ := doc["features"].(map[string]interface{})
	if features == nil {
		features = make(map[string]interface{})
	}

	static := stringSet(features["static"])

	for _, svc := range discovered {
		if _, exists := features[svc]; !exists {
			features[svc] = []string{}
		}
	}

	// Discovery order is preserved, not re-sorted (spec §5: "the aggregate
	// `generated` feature list preserves discovery order").
	generated := make([]string, 0, len(discovered))
	for _, svc := range discovered {
		if !static[svc] {
			generated = append(generated, svc)
		}
	}
	features["generated"] = generated
	doc["features"] = features

	if _, err := f.Seek(0, 0); err != nil {
		return &IOError{Op: "seek", Path: path, Err: err}
	}
	if err := f.Truncate(0); err != nil {
		return &IOError{Op: "truncate", Path: path, Err: err}
	}
	if err := toml.NewEncoder(f).Encode(doc); err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}
	return nil
}

func stringSet(v interface{}) map[string]bool {
	out := make(map[string]bool)
	list, _ := v.([]interface{})
	for _, item := range list {
		if s, ok := item.(string); ok {
			out[s] = true
		}
	}
	return out
}
