package github

import (
	"context"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func toIssue(i *github.Issue) *model.Issue {
	return &model.Issue{
		Number:        i.GetNumber(),
		Title:         i.GetTitle(),
		Body:          i.GetBody(),
		State:         i.GetState(),
		HTMLURL:       i.GetHTMLURL(),
		IsPullRequest: i.IsPullRequest(),
	}
}

// CreateIssue opens an issue
func (c *Client) CreateIssue(ctx context.Context, repo model.Repo, issue model.NewIssue) (*model.Issue, error) {
	req := &github.IssueRequest{
		Title: github.Ptr(issue.Title),
		Body:  github.Ptr(issue.Body),
	}
	if len(issue.Labels) > 0 {
		req.Labels = &issue.Labels
	}
	if len(issue.Assignees) > 0 {
		req.Assignees = &issue.Assignees
	}

	created, _, err := c.githubClient.Issues.Create(ctx, repo.Owner, repo.Name, req)
	if err != nil {
		return nil, wrapError(err, "failed to create issue", goerr.V("repo", repo.FullName()))
	}
	return toIssue(created), nil
}

// CreateComment creates a comment on a pull request or issue
func (c *Client) CreateComment(ctx context.Context, repo model.Repo, number int, body string) (*model.Comment, error) {
	comment, _, err := c.githubClient.Issues.CreateComment(ctx, repo.Owner, repo.Name, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return nil, wrapError(err, "failed to create comment",
			goerr.V("repo", repo.FullName()), goerr.V("number", number))
	}

	return &model.Comment{
		ID:      comment.GetID(),
		HTMLURL: comment.GetHTMLURL(),
	}, nil
}

// AddLabels attaches labels to a pull request or issue
func (c *Client) AddLabels(ctx context.Context, repo model.Repo, number int, labels []string) error {
	if _, _, err := c.githubClient.Issues.AddLabelsToIssue(ctx, repo.Owner, repo.Name, number, labels); err != nil {
		return wrapError(err, "failed to add labels",
			goerr.V("repo", repo.FullName()), goerr.V("number", number), goerr.V("labels", labels))
	}
	return nil
}

// CloseIssue sets the issue state to closed
func (c *Client) CloseIssue(ctx context.Context, repo model.Repo, number int) (*model.Issue, error) {
	issue, _, err := c.githubClient.Issues.Edit(ctx, repo.Owner, repo.Name, number, &github.IssueRequest{
		State: github.Ptr("closed"),
	})
	if err != nil {
		return nil, wrapError(err, "failed to close issue",
			goerr.V("repo", repo.FullName()), goerr.V("number", number))
	}
	return toIssue(issue), nil
}

// SearchIssues returns every issue and pull request matching the query
func (c *Client) SearchIssues(ctx context.Context, query string) ([]*model.Issue, error) {
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: types.PerPage},
	}

	var issues []*model.Issue
	for {
		result, resp, err := c.githubClient.Search.Issues(ctx, query, opts)
		if err != nil {
			return nil, wrapError(err, "failed to search issues", goerr.V("query", query))
		}

		for _, i := range result.Issues {
			issues = append(issues, toIssue(i))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return issues, nil
}
