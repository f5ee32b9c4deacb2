package github

import (
	"context"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// GetPullRequest returns a pull request
func (c *Client) GetPullRequest(ctx context.Context, repo model.Repo, number int) (*model.PullRequest, error) {
	pr, _, err := c.githubClient.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		return nil, wrapError(err, "failed to get pull request",
			goerr.V("repo", repo.FullName()), goerr.V("number", number))
	}

	return &model.PullRequest{
		Number:         pr.GetNumber(),
		Title:          pr.GetTitle(),
		Body:           pr.GetBody(),
		HTMLURL:        pr.GetHTMLURL(),
		MergeCommitSHA: pr.GetMergeCommitSHA(),
	}, nil
}

// ListPullRequestCommits returns the SHAs of every commit of a pull request
func (c *Client) ListPullRequestCommits(ctx context.Context, repo model.Repo, number int) ([]string, error) {
	opts := &github.ListOptions{PerPage: types.PerPage}

	var shas []string
	for {
		commits, resp, err := c.githubClient.PullRequests.ListCommits(ctx, repo.Owner, repo.Name, number, opts)
		if err != nil {
			return nil, wrapError(err, "failed to list pull request commits",
				goerr.V("repo", repo.FullName()), goerr.V("number", number), goerr.V("page", opts.Page))
		}

		for _, commit := range commits {
			shas = append(shas, commit.GetSHA())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return shas, nil
}
