package usecase

import (
	"context"
	"errors"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stevedore/pkg/domain/interfaces"
	"github.com/m-mizutani/stevedore/pkg/domain/model"
	"github.com/m-mizutani/stevedore/pkg/domain/types"
)

type publishUseCase struct {
	host    interfaces.ReleaseHost
	builder interfaces.BuildRunner
}

// NewPublish creates a new instance of PublishUseCase
func NewPublish(host interfaces.ReleaseHost, builder interfaces.BuildRunner) interfaces.PublishUseCase {
	return &publishUseCase{
		host:    host,
		builder: builder,
	}
}

// Publish runs the release pipeline for one tag reference, strictly in
// order: resolve the version, build the installers, create (or find) the
// draft release, upload the artifacts. The first failing step aborts all
// later ones. Upload failures are the exception: one artifact failing does
// not cancel the remaining upload and never rolls back the release entry,
// so a partial run can be completed later with ReuseRelease.
func (uc *publishUseCase) Publish(ctx context.Context, req *model.PublishRequest) (*model.PublishResult, error) {
	logger := ctxlog.From(ctx)

	result := &model.PublishResult{
		RunID: req.RunID,
		State: model.StateStart,
	}

	version, err := model.ResolveVersion(req.Ref)
	if err != nil {
		result.State = model.StateFailed
		return result, goerr.Wrap(err, "version resolution failed",
			goerr.V("step", model.StepResolveVersion),
			goerr.V("run_id", req.RunID))
	}
	result.Version = version
	result.State = model.StateVersionResolved

	logger.Info("Resolved release version",
		"run_id", req.RunID,
		"ref", req.Ref,
		"version", version,
	)

	artifacts := model.InstallerArtifacts(req.ArtifactDir, req.App, version)

	if err := uc.builder.Build(ctx, req.App, version); err != nil {
		result.State = model.StateFailed
		return result, goerr.Wrap(err, "artifact build failed",
			goerr.V("step", model.StepBuildArtifacts),
			goerr.V("run_id", req.RunID))
	}

	// The builder's exit status alone is not trusted: both installers
	// must exist on disk before any release entry is created, so a broken
	// build never leaves an orphan draft behind.
	for _, artifact := range artifacts {
		if _, err := os.Stat(artifact.Path); err != nil {
			result.State = model.StateFailed
			return result, goerr.Wrap(err, "builder did not produce expected artifact",
				goerr.V("step", model.StepBuildArtifacts),
				goerr.V("run_id", req.RunID),
				goerr.V("path", artifact.Path),
				goerr.T(types.ErrTagBuild))
		}
	}
	result.State = model.StateArtifactsBuilt

	logger.Info("Built installer artifacts",
		"run_id", req.RunID,
		"artifact_dir", req.ArtifactDir,
		"count", len(artifacts),
	)

	target, err := uc.resolveTarget(ctx, req, version)
	if err != nil {
		result.State = model.StateFailed
		return result, goerr.Wrap(err, "release creation failed",
			goerr.V("step", model.StepCreateRelease),
			goerr.V("run_id", req.RunID),
			goerr.V("tag", version))
	}
	result.ReleaseID = target.ReleaseID
	result.State = model.StateReleaseCreated

	logger.Info("Release entry ready",
		"run_id", req.RunID,
		"release_id", target.ReleaseID,
		"tag", version,
	)

	// Fixed upload order, disk image first. Failures are collected per
	// artifact; the sibling upload always runs.
	var uploadErrs []error
	for _, artifact := range artifacts {
		if err := uc.host.UploadAsset(ctx, target, artifact); err != nil {
			logger.Error("Artifact upload failed",
				"run_id", req.RunID,
				"asset", artifact.Name,
				"error", err,
			)
			uploadErrs = append(uploadErrs, goerr.Wrap(err, "artifact upload failed",
				goerr.V("step", model.StepUploadArtifact),
				goerr.V("run_id", req.RunID),
				goerr.V("asset", artifact.Name)))
			continue
		}

		result.Uploaded = append(result.Uploaded, artifact.Name)
		logger.Info("Uploaded artifact",
			"run_id", req.RunID,
			"asset", artifact.Name,
			"content_type", artifact.ContentType,
		)
	}

	if len(uploadErrs) > 0 {
		result.State = model.StateFailed
		return result, errors.Join(uploadErrs...)
	}

	result.State = model.StateDone
	return result, nil
}

// resolveTarget returns the upload target for this run. Creation happens
// at most once; with ReuseRelease an existing release for the tag is used
// instead, which is the manual recovery path after a partial upload.
func (uc *publishUseCase) resolveTarget(ctx context.Context, req *model.PublishRequest, version string) (*model.UploadTarget, error) {
	logger := ctxlog.From(ctx)

	if req.ReuseRelease {
		target, err := uc.host.FindReleaseByTag(ctx, version)
		if err != nil {
			return nil, err
		}
		if target != nil {
			logger.Info("Reusing existing release for tag",
				"run_id", req.RunID,
				"tag", version,
				"release_id", target.ReleaseID,
			)
			return target, nil
		}
		logger.Info("No existing release for tag, creating one",
			"run_id", req.RunID,
			"tag", version,
		)
	}

	entry := model.NewDraftRelease(req.Owner, req.Repo, req.App, version)
	return uc.host.CreateRelease(ctx, entry)
}
