package config

import "github.com/urfave/cli/v3"

// GitHub holds release hosting configuration. The token is a bearer
// credential supplied by the invoking environment; the masq tag keeps it
// out of log output.
type GitHub struct {
	Token string `masq:"secret"`
	Owner string
	Repo  string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token used for release creation and uploads",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("STEVEDORE_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "Repository owner the release is published under",
			Required:    true,
			Destination: &c.Owner,
			Sources:     cli.EnvVars("STEVEDORE_GITHUB_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Repository name the release is published under",
			Required:    true,
			Destination: &c.Repo,
			Sources:     cli.EnvVars("STEVEDORE_GITHUB_REPO"),
		},
	}
}
