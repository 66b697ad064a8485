package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/stevedore/pkg/domain/types"
)

// Build holds artifact build configuration. Values may come from flags,
// environment variables, or a TOML config file; flags win, then the file,
// then defaults.
type Build struct {
	App         string   `toml:"app"`
	ArtifactDir string   `toml:"artifact_dir"`
	Command     string   `toml:"command"`
	Args        []string `toml:"args"`

	ConfigFile string `toml:"-"`
}

// Flags returns CLI flags for build configuration
func (c *Build) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "app",
			Usage:       "Application name, used in artifact filenames and the release name",
			Destination: &c.App,
			Sources:     cli.EnvVars("STEVEDORE_APP"),
		},
		&cli.StringFlag{
			Name:        "artifact-dir",
			Usage:       "Directory the builder writes installer artifacts into (default: dist)",
			Destination: &c.ArtifactDir,
			Sources:     cli.EnvVars("STEVEDORE_ARTIFACT_DIR"),
		},
		&cli.StringFlag{
			Name:        "builder-cmd",
			Usage:       "External builder command, invoked with app name and version appended (default: ./build.sh)",
			Destination: &c.Command,
			Sources:     cli.EnvVars("STEVEDORE_BUILDER_CMD"),
		},
		&cli.StringSliceFlag{
			Name:        "builder-arg",
			Usage:       "Extra argument passed to the builder before app name and version (repeatable)",
			Destination: &c.Args,
			Sources:     cli.EnvVars("STEVEDORE_BUILDER_ARGS"),
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "TOML config file with build settings",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("STEVEDORE_CONFIG"),
		},
	}
}

// Load fills unset fields from the config file (if given) and applies
// defaults. The application name has no sensible default and must be set
// one way or the other.
func (c *Build) Load() error {
	if c.ConfigFile != "" {
		data, err := os.ReadFile(c.ConfigFile)
		if err != nil {
			return goerr.Wrap(err, "failed to read config file",
				goerr.V("path", c.ConfigFile),
				goerr.T(types.ErrTagConfig))
		}

		var file Build
		if err := toml.Unmarshal(data, &file); err != nil {
			return goerr.Wrap(err, "failed to parse config file",
				goerr.V("path", c.ConfigFile),
				goerr.T(types.ErrTagConfig))
		}

		if c.App == "" {
			c.App = file.App
		}
		if c.ArtifactDir == "" {
			c.ArtifactDir = file.ArtifactDir
		}
		if c.Command == "" {
			c.Command = file.Command
		}
		if len(c.Args) == 0 {
			c.Args = file.Args
		}
	}

	if c.ArtifactDir == "" {
		c.ArtifactDir = "dist"
	}
	if c.Command == "" {
		c.Command = "./build.sh"
	}

	if c.App == "" {
		return goerr.New("application name is not set", goerr.T(types.ErrTagConfig))
	}

	return nil
}
