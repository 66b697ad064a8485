package exec

import (
	"context"
	"os"
	osexec "os/exec"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stevedore/pkg/domain/interfaces"
	"github.com/m-mizutani/stevedore/pkg/domain/types"
)

type runner struct {
	command string
	args    []string
	workDir string
}

// NewRunner creates a BuildRunner that invokes the external builder
// command. The application name and release version are appended as
// positional arguments after any configured arguments.
func NewRunner(command string, args []string, workDir string) interfaces.BuildRunner {
	return &runner{
		command: command,
		args:    args,
		workDir: workDir,
	}
}

// Build runs the builder synchronously. Builder stdout/stderr pass through
// to the pipeline's own streams so build logs stay visible to the operator.
func (r *runner) Build(ctx context.Context, app, version string) error {
	logger := ctxlog.From(ctx)

	args := append(append([]string{}, r.args...), app, version)
	cmd := osexec.CommandContext(ctx, r.command, args...)
	cmd.Dir = r.workDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Info("Invoking artifact builder",
		"command", r.command,
		"app", app,
		"version", version,
	)

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "builder command failed",
			goerr.V("command", r.command),
			goerr.V("app", app),
			goerr.V("version", version),
			goerr.T(types.ErrTagBuild))
	}

	return nil
}
