package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadSDKVersionParsesModuleAndGo(t *testing.T) {
	dir := t.TempDir()
	content := "module github.com/aws/aws-lambda-go\n\ngo 1.18\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	v, err := ReadSDKVersion(dir)
	if err != nil {
		t.Fatalf("ReadSDKVersion: %v", err)
	}
	if v.ModulePath != "github.com/aws/aws-lambda-go" {
		t.Errorf("ModulePath = %q", v.ModulePath)
	}
	if v.GoVersion != "1.18" {
		t.Errorf("GoVersion = %q", v.GoVersion)
	}
}

func TestReadSDKVersionMissingFileReturnsZeroValue(t *testing.T) {
	dir := t.TempDir()
	v, err := ReadSDKVersion(dir)
	if err != nil {
		t.Fatalf("ReadSDKVersion on missing go.mod returned error: %v", err)
	}
	if v != (SDKVersion{}) {
		t.Errorf("expected zero value, got %+v", v)
	}
}
