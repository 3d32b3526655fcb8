package project

import (
	"errors"
	"strings"
	"testing"
)

func TestIOErrorUnwrapsAndFormats(t *testing.T) {
	cause := errors.New("permission denied")
	err := &IOError{Op: "write", Path: "/tmp/x", Err: cause}

	if !strings.Contains(err.Error(), "write") || !strings.Contains(err.Error(), "/tmp/x") {
		t.Errorf("IOError.Error() = %q, missing op/path", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}

func TestOverwriteRefusalMessage(t *testing.T) {
	err := &OverwriteRefusal{Path: "/tmp/README.md"}
	if !strings.Contains(err.Error(), "/tmp/README.md") {
		t.Errorf("OverwriteRefusal.Error() = %q", err.Error())
	}
}

func TestFixtureMismatchMessage(t *testing.T) {
	err := &FixtureMismatch{Fixture: "weird-event.json"}
	if !strings.Contains(err.Error(), "weird-event.json") {
		t.Errorf("FixtureMismatch.Error() = %q", err.Error())
	}
}
