package model

// RunState tracks how far a pipeline run has progressed. A run moves
// strictly forward; any step may move it to StateFailed and nothing moves
// it out of StateFailed (recovery is a manual re-run).
type RunState string

const (
	StateStart           RunState = "start"
	StateVersionResolved RunState = "version_resolved"
	StateArtifactsBuilt  RunState = "artifacts_built"
	StateReleaseCreated  RunState = "release_created"
	StateDone            RunState = "done"
	StateFailed          RunState = "failed"
)

// Pipeline step names, used to attribute failures
const (
	StepResolveVersion = "resolve_version"
	StepBuildArtifacts = "build_artifacts"
	StepCreateRelease  = "create_release"
	StepUploadArtifact = "upload_artifact"
)

// PublishRequest carries everything one pipeline run needs. It is built
// once at the entry point, so a run is deterministic under test.
type PublishRequest struct {
	RunID       string // Unique ID for this pipeline run
	Ref         string // Triggering reference (refs/tags/<version>)
	App         string // Application name, used in artifact filenames
	Owner       string // Repository owner at the hosting service
	Repo        string // Repository name at the hosting service
	ArtifactDir string // Directory the builder writes artifacts into

	// ReuseRelease uploads into an existing release for the tag instead
	// of creating a new one. This is the recovery path after a partial
	// upload failure.
	ReuseRelease bool
}

// PublishResult reports the outcome of one pipeline run
type PublishResult struct {
	RunID     string
	Version   string
	State     RunState
	ReleaseID int64
	Uploaded  []string // Display names of successfully uploaded artifacts
}
