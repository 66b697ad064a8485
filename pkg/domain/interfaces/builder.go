package interfaces

import "context"

// BuildRunner invokes the external artifact builder with the application
// name and release version. The builder is an opaque, synchronous step;
// the pipeline only checks its exit status and the files it leaves behind.
type BuildRunner interface {
	Build(ctx context.Context, app, version string) error
}
