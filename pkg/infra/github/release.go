package github

import (
	"context"
	"os"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

func toRelease(r *github.RepositoryRelease) *model.Release {
	return &model.Release{
		ID:         r.GetID(),
		TagName:    r.GetTagName(),
		Name:       r.GetName(),
		Body:       r.GetBody(),
		Draft:      r.GetDraft(),
		Prerelease: r.GetPrerelease(),
		HTMLURL:    r.GetHTMLURL(),
		UploadURL:  r.GetUploadURL(),
	}
}

// CreateRelease creates a release from the descriptor
func (c *Client) CreateRelease(ctx context.Context, repo model.Repo, desc model.ReleaseDescriptor, draft bool) (*model.Release, error) {
	req := &github.RepositoryRelease{
		TagName:    github.Ptr(desc.TagName),
		Name:       github.Ptr(desc.Name),
		Body:       github.Ptr(desc.Body),
		Draft:      github.Ptr(draft),
		Prerelease: github.Ptr(desc.Prerelease),
	}
	if desc.TargetCommitish != "" {
		req.TargetCommitish = github.Ptr(desc.TargetCommitish)
	}

	release, _, err := c.githubClient.Repositories.CreateRelease(ctx, repo.Owner, repo.Name, req)
	if err != nil {
		return nil, wrapError(err, "failed to create release",
			goerr.V("repo", repo.FullName()), goerr.V("tag", desc.TagName))
	}
	return toRelease(release), nil
}

// GetReleaseByTag returns the release for tag
func (c *Client) GetReleaseByTag(ctx context.Context, repo model.Repo, tag string) (*model.Release, error) {
	release, _, err := c.githubClient.Repositories.GetReleaseByTag(ctx, repo.Owner, repo.Name, tag)
	if err != nil {
		return nil, wrapError(err, "failed to get release by tag",
			goerr.V("repo", repo.FullName()), goerr.V("tag", tag))
	}
	return toRelease(release), nil
}

// UpdateRelease patches fields of an existing release
func (c *Client) UpdateRelease(ctx context.Context, repo model.Repo, releaseID int64, patch model.ReleasePatch) (*model.Release, error) {
	req := &github.RepositoryRelease{
		TagName:    patch.TagName,
		Name:       patch.Name,
		Body:       patch.Body,
		Draft:      patch.Draft,
		Prerelease: patch.Prerelease,
	}

	release, _, err := c.githubClient.Repositories.EditRelease(ctx, repo.Owner, repo.Name, releaseID, req)
	if err != nil {
		return nil, wrapError(err, "failed to update release",
			goerr.V("repo", repo.FullName()), goerr.V("release_id", releaseID))
	}
	return toRelease(release), nil
}

// UploadReleaseAsset uploads the file at asset.Path to the release
func (c *Client) UploadReleaseAsset(ctx context.Context, repo model.Repo, releaseID int64, asset model.UploadAsset) (*model.UploadedAsset, error) {
	f, err := os.Open(asset.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open asset", goerr.V("path", asset.Path))
	}
	defer f.Close()

	opts := &github.UploadOptions{
		Name:      asset.Name,
		Label:     asset.Label,
		MediaType: asset.ContentType,
	}

	uploaded, _, err := c.githubClient.Repositories.UploadReleaseAsset(ctx, repo.Owner, repo.Name, releaseID, opts, f)
	if err != nil {
		return nil, wrapError(err, "failed to upload release asset",
			goerr.V("repo", repo.FullName()),
			goerr.V("release_id", releaseID),
			goerr.V("name", asset.Name),
		)
	}

	return &model.UploadedAsset{
		ID:                 uploaded.GetID(),
		Name:               uploaded.GetName(),
		BrowserDownloadURL: uploaded.GetBrowserDownloadURL(),
	}, nil
}
