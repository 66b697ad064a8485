package model

import (
	"fmt"
	"path/filepath"
)

// Content types declared for the macOS installer formats
const (
	ContentTypeDiskImage = "application/x-apple-diskimage"
	ContentTypePackage   = "application/vnd.apple.installer+xml"
)

// Artifact describes one built installer file to attach to a release
type Artifact struct {
	Path        string // Local path under the artifact directory
	Name        string // Display name at the hosting service
	ContentType string // Declared content type for the upload
}

// InstallerArtifacts returns the two artifact descriptors the external
// builder must leave behind for the given application and version, in
// upload order: disk image first, then package. The names are
// deterministic; the uploader and the defensive post-build check both
// rely on them.
func InstallerArtifacts(dir, app, version string) []Artifact {
	dmg := fmt.Sprintf("%s_%s.dmg", app, version)
	pkg := fmt.Sprintf("%s.pkg", app)

	return []Artifact{
		{
			Path:        filepath.Join(dir, dmg),
			Name:        dmg,
			ContentType: ContentTypeDiskImage,
		},
		{
			Path:        filepath.Join(dir, pkg),
			Name:        pkg,
			ContentType: ContentTypePackage,
		},
	}
}
