package interfaces

import (
	"context"

	"github.com/m-mizutani/stevedore/pkg/domain/model"
)

// ReleaseHost defines the hosting-service surface the pipeline needs:
// create a draft release for a tag, find one that already exists, and
// attach assets to it.
type ReleaseHost interface {
	// CreateRelease creates the release entry and returns the upload
	// target bound to it. The pipeline invokes this at most once per run.
	CreateRelease(ctx context.Context, entry *model.ReleaseEntry) (*model.UploadTarget, error)

	// FindReleaseByTag returns the upload target of an existing release
	// for the tag, or (nil, nil) when no release exists.
	FindReleaseByTag(ctx context.Context, tag string) (*model.UploadTarget, error)

	// UploadAsset attaches one artifact to the release identified by the
	// upload target, with its display name and declared content type.
	UploadAsset(ctx context.Context, target *model.UploadTarget, artifact model.Artifact) error
}
