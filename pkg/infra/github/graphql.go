package github

import (
	"context"
	"fmt"
	"reflect"

	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shurcooL/githubv4"
)

type pullRequestNode struct {
	Number      githubv4.Int
	Title       githubv4.String
	Body        githubv4.String
	URL         githubv4.URI
	MergeCommit *struct {
		Oid githubv4.GitObjectID
	}
}

type pageInfo struct {
	HasNextPage githubv4.Boolean
	EndCursor   githubv4.String
}

type associatedPullRequests struct {
	PageInfo pageInfo
	Nodes    []pullRequestNode
}

// commitObject is one aliased object lookup of a chunk query. It is nil when the
// commit is unknown to the forge.
type commitObject struct {
	Commit struct {
		AssociatedPullRequests associatedPullRequests `graphql:"associatedPullRequests(first: $first)"`
	} `graphql:"... on Commit"`
}

// chunkQueryType builds
//
//	repository(owner: $owner, name: $name) { commit0: object(oid: $oid0) { ... } ... }
//
// with one aliased field per SHA so that a chunk is resolved in a single request.
func chunkQueryType(n int) reflect.Type {
	fields := make([]reflect.StructField, n)
	for i := range n {
		fields[i] = reflect.StructField{
			Name: fmt.Sprintf("Commit%d", i),
			Type: reflect.TypeOf((*commitObject)(nil)),
			Tag:  reflect.StructTag(fmt.Sprintf(`graphql:"commit%d: object(oid: $oid%d)"`, i, i)),
		}
	}

	repository := reflect.StructOf(fields)
	return reflect.StructOf([]reflect.StructField{
		{
			Name: "Repository",
			Type: repository,
			Tag:  `graphql:"repository(owner: $owner, name: $name)"`,
		},
	})
}

// AssociatedPullRequests returns the pull requests associated with the commits.
// Commits with more associated pull requests than one page are followed up one by one.
func (c *Client) AssociatedPullRequests(ctx context.Context, repo model.Repo, shas []string) ([]*model.PullRequest, error) {
	if len(shas) == 0 {
		return nil, nil
	}
	if len(shas) > types.CommitChunkSize {
		return nil, goerr.New("too many commits for one query",
			goerr.V("count", len(shas)), goerr.V("limit", types.CommitChunkSize))
	}

	query := reflect.New(chunkQueryType(len(shas)))
	variables := map[string]any{
		"owner": githubv4.String(repo.Owner),
		"name":  githubv4.String(repo.Name),
		"first": githubv4.Int(types.PerPage),
	}
	for i, sha := range shas {
		variables[fmt.Sprintf("oid%d", i)] = githubv4.GitObjectID(sha)
	}

	if err := c.graphqlClient.Query(ctx, query.Interface(), variables); err != nil {
		return nil, goerr.Wrap(err, "failed to query associated pull requests",
			goerr.V("repo", repo.FullName()), goerr.V("commits", len(shas)))
	}

	var prs []*model.PullRequest
	repository := query.Elem().Field(0)
	for i, sha := range shas {
		obj, ok := repository.Field(i).Interface().(*commitObject)
		if !ok || obj == nil {
			continue
		}

		conn := obj.Commit.AssociatedPullRequests
		for _, node := range conn.Nodes {
			prs = append(prs, toPullRequest(node))
		}

		if conn.PageInfo.HasNextPage {
			rest, err := c.remainingAssociatedPullRequests(ctx, repo, sha, conn.PageInfo.EndCursor)
			if err != nil {
				return nil, err
			}
			prs = append(prs, rest...)
		}
	}

	return prs, nil
}

func (c *Client) remainingAssociatedPullRequests(ctx context.Context, repo model.Repo, sha string, cursor githubv4.String) ([]*model.PullRequest, error) {
	type pageQuery struct {
		Repository struct {
			Object *struct {
				Commit struct {
					AssociatedPullRequests associatedPullRequests `graphql:"associatedPullRequests(first: $first, after: $after)"`
				} `graphql:"... on Commit"`
			} `graphql:"object(oid: $oid)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	var prs []*model.PullRequest
	for {
		var q pageQuery
		variables := map[string]any{
			"owner": githubv4.String(repo.Owner),
			"name":  githubv4.String(repo.Name),
			"oid":   githubv4.GitObjectID(sha),
			"first": githubv4.Int(types.PerPage),
			"after": githubv4.NewString(cursor),
		}
		if err := c.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, goerr.Wrap(err, "failed to query associated pull requests",
				goerr.V("repo", repo.FullName()), goerr.V("sha", sha), goerr.V("cursor", cursor))
		}
		if q.Repository.Object == nil {
			return prs, nil
		}

		conn := q.Repository.Object.Commit.AssociatedPullRequests
		for _, node := range conn.Nodes {
			prs = append(prs, toPullRequest(node))
		}
		if !conn.PageInfo.HasNextPage {
			return prs, nil
		}
		cursor = conn.PageInfo.EndCursor
	}
}

func toPullRequest(node pullRequestNode) *model.PullRequest {
	pr := &model.PullRequest{
		Number: int(node.Number),
		Title:  string(node.Title),
		Body:   string(node.Body),
	}
	if node.URL.URL != nil {
		pr.HTMLURL = node.URL.String()
	}
	if node.MergeCommit != nil {
		pr.MergeCommitSHA = string(node.MergeCommit.Oid)
	}
	return pr
}
