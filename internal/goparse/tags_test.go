package goparse

import "testing"

func TestParseJSONTag(t *testing.T) {
	tests := []struct {
		raw       string
		wantName  string
		wantOmit  bool
		wantNil   bool
	}{
		{raw: "`json:\"foo\"`", wantName: "foo"},
		{raw: "`json:\"foo,omitempty\"`", wantName: "foo", wantOmit: true},
		{raw: "`json:\"-\"`", wantName: "-"},
		{raw: "`xml:\"foo\"`", wantNil: true},
	}
	for _, tt := range tests {
		got, err := parseJSONTag(tt.raw, "")
		if err != nil {
			t.Fatalf("parseJSONTag(%q): %v", tt.raw, err)
		}
		if tt.wantNil {
			if got != nil {
				t.Fatalf("parseJSONTag(%q) = %+v, want nil", tt.raw, got)
			}
			continue
		}
		if got == nil {
			t.Fatalf("parseJSONTag(%q) = nil, want non-nil", tt.raw)
		}
		if got.Name != tt.wantName || got.OmitEmpty != tt.wantOmit {
			t.Fatalf("parseJSONTag(%q) = %+v, want {%q, %v}", tt.raw, got, tt.wantName, tt.wantOmit)
		}
	}
}
