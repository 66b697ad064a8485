package model

import "fmt"

// ReleaseEntry is the release to create at the hosting service. The
// pipeline always creates drafts so that publication stays a manual
// decision of the maintainer.
type ReleaseEntry struct {
	Tag        string // Release tag, equals the resolved version
	Name       string // Display name: application name + version
	Body       string // Free-form release notes
	Draft      bool
	Prerelease bool
}

// UploadTarget binds asset uploads to the release entry they belong to.
// It must not be reused across different release entries.
type UploadTarget struct {
	ReleaseID int64  // Release identifier at the hosting service
	UploadURL string // Upload endpoint returned by release creation
}

// NewDraftRelease builds the release entry for one pipeline run. The body
// embeds a download-count badge referencing the same version.
func NewDraftRelease(owner, repo, app, version string) *ReleaseEntry {
	badge := fmt.Sprintf(
		"![downloads](https://img.shields.io/github/downloads/%s/%s/%s/total.svg)",
		owner, repo, version,
	)

	return &ReleaseEntry{
		Tag:        version,
		Name:       fmt.Sprintf("%s %s", app, version),
		Body:       badge,
		Draft:      true,
		Prerelease: false,
	}
}
