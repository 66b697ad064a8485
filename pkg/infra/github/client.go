package github

import (
	"context"
	"net/http"
	"os"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stevedore/pkg/domain/interfaces"
	"github.com/m-mizutani/stevedore/pkg/domain/model"
	"github.com/m-mizutani/stevedore/pkg/domain/types"
)

type client struct {
	githubClient *github.Client
	owner        string
	repo         string
}

// Option is a functional option for client construction
type Option func(*github.Client) (*github.Client, error)

// WithBaseURLs overrides the API and upload endpoints. Used by tests to
// point the client at a local server.
func WithBaseURLs(apiURL, uploadURL string) Option {
	return func(c *github.Client) (*github.Client, error) {
		return c.WithEnterpriseURLs(apiURL, uploadURL)
	}
}

// NewClient creates a ReleaseHost backed by the GitHub API. The token is a
// ready-to-use bearer credential supplied by the invoking environment; it
// is attached to the HTTP transport only and never appears in request
// bodies or log output.
func NewClient(token, owner, repo string, opts ...Option) (interfaces.ReleaseHost, error) {
	if token == "" {
		return nil, goerr.New("github token is empty", goerr.T(types.ErrTagConfig))
	}
	if owner == "" || repo == "" {
		return nil, goerr.New("github repository is not set",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.T(types.ErrTagConfig))
	}

	githubClient := github.NewClient(nil).WithAuthToken(token)

	for _, opt := range opts {
		var err error
		githubClient, err = opt(githubClient)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure GitHub client")
		}
	}

	return &client{
		githubClient: githubClient,
		owner:        owner,
		repo:         repo,
	}, nil
}

// CreateRelease creates a release entry for the tag and returns the upload
// target bound to it
func (c *client) CreateRelease(ctx context.Context, entry *model.ReleaseEntry) (*model.UploadTarget, error) {
	release := &github.RepositoryRelease{
		TagName:    github.Ptr(entry.Tag),
		Name:       github.Ptr(entry.Name),
		Body:       github.Ptr(entry.Body),
		Draft:      github.Ptr(entry.Draft),
		Prerelease: github.Ptr(entry.Prerelease),
	}

	created, _, err := c.githubClient.Repositories.CreateRelease(ctx, c.owner, c.repo, release)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release",
			goerr.V("owner", c.owner),
			goerr.V("repo", c.repo),
			goerr.V("tag", entry.Tag),
			goerr.T(types.ErrTagRelease))
	}

	return &model.UploadTarget{
		ReleaseID: created.GetID(),
		UploadURL: created.GetUploadURL(),
	}, nil
}

// FindReleaseByTag returns the upload target of an existing release for
// the tag, or (nil, nil) when the tag has no release yet
func (c *client) FindReleaseByTag(ctx context.Context, tag string) (*model.UploadTarget, error) {
	release, resp, err := c.githubClient.Repositories.GetReleaseByTag(ctx, c.owner, c.repo, tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to look up release by tag",
			goerr.V("owner", c.owner),
			goerr.V("repo", c.repo),
			goerr.V("tag", tag),
			goerr.T(types.ErrTagRelease))
	}

	return &model.UploadTarget{
		ReleaseID: release.GetID(),
		UploadURL: release.GetUploadURL(),
	}, nil
}

// UploadAsset attaches one artifact file to the release identified by the
// upload target
func (c *client) UploadAsset(ctx context.Context, target *model.UploadTarget, artifact model.Artifact) error {
	file, err := os.Open(artifact.Path)
	if err != nil {
		return goerr.Wrap(err, "failed to open artifact file",
			goerr.V("path", artifact.Path),
			goerr.T(types.ErrTagUpload))
	}
	defer file.Close()

	opts := &github.UploadOptions{
		Name:      artifact.Name,
		MediaType: artifact.ContentType,
	}

	if _, _, err := c.githubClient.Repositories.UploadReleaseAsset(ctx, c.owner, c.repo, target.ReleaseID, opts, file); err != nil {
		return goerr.Wrap(err, "failed to upload release asset",
			goerr.V("asset", artifact.Name),
			goerr.V("release_id", target.ReleaseID),
			goerr.T(types.ErrTagUpload))
	}

	return nil
}
