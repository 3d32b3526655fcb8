package project

import (
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// SDKVersion is the subset of the input SDK's own go.mod the README
// provenance block reports (spec §9 design note: the provenance line
// names the exact input commit; this supplements it with the SDK's module
// path and Go version, read the same way the teacher's own build reads
// go.mod via golang.org/x/mod/modfile).
type SDKVersion struct {
	ModulePath string
	GoVersion  string
}

// ReadSDKVersion parses <sdkRoot>/go.mod. Returns the zero value, no error,
// if the SDK checkout has no go.mod (older module layouts).
func ReadSDKVersion(sdkRoot string) (SDKVersion, error) {
	path := filepath.Join(sdkRoot, "go.mod")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return SDKVersion{}, nil
	}
	if err != nil {
		return SDKVersion{}, &IOError{Op: "read", Path: path, Err: err}
	}

	mf, err := modfile.Parse(path, data, nil)
	if err != nil {
		return SDKVersion{}, &IOError{Op: "parse", Path: path, Err: err}
	}

	v := SDKVersion{}
	if mf.Module != nil {
		v.ModulePath = mf.Module.Mod.Path
	}
	if mf.Go != nil {
		v.GoVersion = mf.Go.Version
	}
	return v, nil
}
