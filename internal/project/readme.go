package project

import (
	"bytes"
	"fmt"
	"os"

	"github.com/yuin/goldmark"
	git "gopkg.in/src-d/go-git.v4"
)

const readmeTemplate = `# AWS Lambda event types.

These types are automatically generated from the
[official Go SDK](https://github.com/aws/aws-lambda-go/tree/master/events).

Generated from commit [%s](https://github.com/aws/aws-lambda-go/commit/%s).
`

const readmeTemplateWithModule = `# AWS Lambda event types.

These types are automatically generated from the
[official Go SDK](https://github.com/aws/aws-lambda-go/tree/master/events)
(module %s, go %s).

Generated from commit [%s](https://github.com/aws/aws-lambda-go/commit/%s).
`

// HeadCommit reads the HEAD commit hash of the input SDK checkout at
// sdkRoot (spec §4.6: "a one-line provenance line referencing the exact
// commit hash of the input repository, read via the version-control
// tool"), via go-git instead of original_source's `git rev-parse` shell-out.
func HeadCommit(sdkRoot string) (string, error) {
	repo, err := git.PlainOpen(sdkRoot)
	if err != nil {
		return "", &IOError{Op: "git-open", Path: sdkRoot, Err: err}
	}
	head, err := repo.Head()
	if err != nil {
		return "", &IOError{Op: "git-head", Path: sdkRoot, Err: err}
	}
	return head.Hash().String(), nil
}

// WriteReadme writes the provenance README to readmePath, skipping with an
// OverwriteRefusal if it already exists and overwrite is false. The
// rendered Markdown is parsed through goldmark first to catch malformed
// content before it's written.
func WriteReadme(readmePath, gitHash string, sdk SDKVersion, overwrite bool) error {
	if _, err := os.Stat(readmePath); err == nil && !overwrite {
		return &OverwriteRefusal{Path: readmePath}
	}

	var content string
	if sdk.ModulePath != "" {
		content = fmt.Sprintf(readmeTemplateWithModule, sdk.ModulePath, sdk.GoVersion, gitHash, gitHash)
	} else {
		content = fmt.Sprintf(readmeTemplate, gitHash, gitHash)
	}

	var rendered bytes.Buffer
	if err := goldmark.Convert([]byte(content), &rendered); err != nil {
		return &IOError{Op: "markdown-validate", Path: readmePath, Err: err}
	}

	if err := os.WriteFile(readmePath, []byte(content), 0o644); err != nil {
		return &IOError{Op: "write", Path: readmePath, Err: err}
	}
	return nil
}
