package emitter

import "testing"

func TestRenderImportsGroupsAndSorts(t *testing.T) {
	required := map[string]struct{}{
		"serde::de::DeserializeOwned": {},
		"serde::ser::Serialize":       {},
		"std::collections::HashMap":   {},
		"chrono::DateTime":            {},
		"chrono::Utc":                 {},
		"crate::custom_serde::*":      {},
	}
	got := renderImports(required)
	want := "use chrono::{DateTime, Utc};\n" +
		"use crate::custom_serde::*;\n" +
		"use serde::de::DeserializeOwned;\n" +
		"use serde::ser::Serialize;\n" +
		"use std::collections::HashMap;\n"
	if got != want {
		t.Fatalf("renderImports =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderImportsEmpty(t *testing.T) {
	if got := renderImports(map[string]struct{}{}); got != "" {
		t.Fatalf("renderImports(empty) = %q, want empty", got)
	}
}
