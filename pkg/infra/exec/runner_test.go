package exec_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/stevedore/pkg/domain/types"
	execinfra "github.com/m-mizutani/stevedore/pkg/infra/exec"
)

func TestRunner_Build_PassesPositionalArguments(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses a POSIX shell as the builder")
	}

	workDir := t.TempDir()

	// A stand-in builder: writes the two installer files the real build
	// toolchain would produce, named from its positional arguments.
	script := `mkdir -p dist && touch "dist/${0}_${1}.dmg" "dist/${0}.pkg"`
	runner := execinfra.NewRunner("sh", []string{"-c", script}, workDir)

	gt.NoError(t, runner.Build(context.Background(), "DCKit", "1.2.0"))

	_, err := os.Stat(filepath.Join(workDir, "dist", "DCKit_1.2.0.dmg"))
	gt.NoError(t, err)
	_, err = os.Stat(filepath.Join(workDir, "dist", "DCKit.pkg"))
	gt.NoError(t, err)
}

func TestRunner_Build_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses a POSIX shell as the builder")
	}

	runner := execinfra.NewRunner("sh", []string{"-c", "exit 1"}, t.TempDir())

	err := runner.Build(context.Background(), "DCKit", "1.2.0")
	gt.Error(t, err)
	gt.Value(t, goerr.HasTag(err, types.ErrTagBuild)).Equal(true)
}

func TestRunner_Build_CommandNotFound(t *testing.T) {
	runner := execinfra.NewRunner("no-such-builder-command", nil, t.TempDir())

	err := runner.Build(context.Background(), "DCKit", "1.2.0")
	gt.Error(t, err)
	gt.Value(t, goerr.HasTag(err, types.ErrTagBuild)).Equal(true)
}
