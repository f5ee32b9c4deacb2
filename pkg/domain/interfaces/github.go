package interfaces

//go:generate moq -out mocks/github_mock.go -pkg mocks . GitHubClient AssetResolver

import (
	"context"

	"github.com/m-mizutani/crier/pkg/domain/model"
)

// GitHubClient defines operations for interacting with GitHub API.
// Failures carrying an HTTP status wrap *model.APIError.
type GitHubClient interface {
	// GetRepository returns the canonical repository and the caller's permission on it
	GetRepository(ctx context.Context, repo model.Repo) (*model.Repository, error)

	// CreateRelease creates a release from the descriptor
	CreateRelease(ctx context.Context, repo model.Repo, desc model.ReleaseDescriptor, draft bool) (*model.Release, error)

	// GetReleaseByTag returns the release for tag. A missing release is a 404 APIError.
	GetReleaseByTag(ctx context.Context, repo model.Repo, tag string) (*model.Release, error)

	// UpdateRelease patches fields of an existing release
	UpdateRelease(ctx context.Context, repo model.Repo, releaseID int64, patch model.ReleasePatch) (*model.Release, error)

	// UploadReleaseAsset attaches a local file to a release
	UploadReleaseAsset(ctx context.Context, repo model.Repo, releaseID int64, asset model.UploadAsset) (*model.UploadedAsset, error)

	// CreateIssue opens an issue
	CreateIssue(ctx context.Context, repo model.Repo, issue model.NewIssue) (*model.Issue, error)

	// CreateComment creates a comment on a pull request or issue
	CreateComment(ctx context.Context, repo model.Repo, number int, body string) (*model.Comment, error)

	// AddLabels attaches labels to a pull request or issue
	AddLabels(ctx context.Context, repo model.Repo, number int, labels []string) error

	// CloseIssue sets the issue state to closed
	CloseIssue(ctx context.Context, repo model.Repo, number int) (*model.Issue, error)

	// SearchIssues returns every issue and pull request matching the query
	SearchIssues(ctx context.Context, query string) ([]*model.Issue, error)

	// GetPullRequest returns a pull request
	GetPullRequest(ctx context.Context, repo model.Repo, number int) (*model.PullRequest, error)

	// ListPullRequestCommits returns the SHAs of every commit of a pull request
	ListPullRequestCommits(ctx context.Context, repo model.Repo, number int) ([]string, error)

	// AssociatedPullRequests returns the pull requests associated with the commits in
	// one query. Callers bound len(shas) by types.CommitChunkSize.
	AssociatedPullRequests(ctx context.Context, repo model.Repo, shas []string) ([]*model.PullRequest, error)
}

// AssetResolver expands asset specs into concrete files
type AssetResolver interface {
	Resolve(ctx context.Context, cwd string, specs []model.AssetSpec) ([]model.ResolvedAsset, error)
}
