package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReadmeWithoutSDKVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")

	if err := WriteReadme(path, "abc123", SDKVersion{}, false); err != nil {
		t.Fatalf("WriteReadme: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "abc123") {
		t.Errorf("README missing commit hash:\n%s", content)
	}
	if strings.Contains(content, "module ") {
		t.Errorf("README mentions module despite zero-value SDKVersion:\n%s", content)
	}
}

func TestWriteReadmeWithSDKVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")

	sdk := SDKVersion{ModulePath: "github.com/aws/aws-lambda-go", GoVersion: "1.18"}
	if err := WriteReadme(path, "deadbeef", sdk, false); err != nil {
		t.Fatalf("WriteReadme: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	for _, want := range []string{"deadbeef", "github.com/aws/aws-lambda-go", "1.18"} {
		if !strings.Contains(content, want) {
			t.Errorf("README missing %q:\n%s", want, content)
		}
	}
}

func TestWriteReadmeRefusesOverwriteByDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := WriteReadme(path, "abc123", SDKVersion{}, false)
	if err == nil {
		t.Fatal("expected OverwriteRefusal, got nil")
	}
	if _, ok := err.(*OverwriteRefusal); !ok {
		t.Fatalf("expected *OverwriteRefusal, got %T: %v", err, err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "existing" {
		t.Errorf("file was modified despite refusal: %q", data)
	}
}

func TestWriteReadmeOverwriteTrueReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := WriteReadme(path, "abc123", SDKVersion{}, true); err != nil {
		t.Fatalf("WriteReadme with overwrite=true: %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "existing") {
		t.Errorf("file not overwritten: %q", data)
	}
}
