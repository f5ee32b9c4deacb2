package usecase

import (
	"context"
	"slices"

	"github.com/m-mizutani/crier/pkg/domain/interfaces"
	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/crier/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// resolveAssociatedPRs looks up pull requests associated with the commits, one query per
// chunk of types.CommitChunkSize commits, and returns them unique by number.
func resolveAssociatedPRs(ctx context.Context, client interfaces.GitHubClient, repo model.Repo, hashes []string) ([]*model.PullRequest, error) {
	seen := make(map[int]struct{})
	var prs []*model.PullRequest

	for chunk := range slices.Chunk(hashes, types.CommitChunkSize) {
		found, err := client.AssociatedPullRequests(ctx, repo, chunk)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve associated pull requests",
				goerr.V("repo", repo.FullName()), goerr.V("commits", len(chunk)))
		}

		for _, pr := range found {
			if _, ok := seen[pr.Number]; ok {
				continue
			}
			seen[pr.Number] = struct{}{}
			prs = append(prs, pr)
		}
	}

	return prs, nil
}

// verifyAssociations keeps the pull requests that really contain a release commit
func verifyAssociations(ctx context.Context, client interfaces.GitHubClient, repo model.Repo, prs []*model.PullRequest, hashes []string) ([]*model.PullRequest, error) {
	shaSet := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		shaSet[h] = struct{}{}
	}

	verified, err := async.Map(ctx, prs, types.DefaultConcurrency, func(ctx context.Context, pr *model.PullRequest) (bool, error) {
		return verifyAssociation(ctx, client, repo, pr, shaSet)
	})
	if err != nil {
		return nil, err
	}

	var result []*model.PullRequest
	for i, pr := range prs {
		if verified[i] {
			result = append(result, pr)
		}
	}
	return result, nil
}

// verifyAssociation reports whether one of the pull request's commits, or its merge
// commit, is part of the release. The association index may return pull requests whose
// head was rebased after the commit was associated.
func verifyAssociation(ctx context.Context, client interfaces.GitHubClient, repo model.Repo, pr *model.PullRequest, shaSet map[string]struct{}) (bool, error) {
	logger := ctxlog.From(ctx)

	commits, err := client.ListPullRequestCommits(ctx, repo, pr.Number)
	if err != nil {
		return false, goerr.Wrap(err, "failed to list pull request commits", goerr.V("number", pr.Number))
	}
	for _, sha := range commits {
		if _, ok := shaSet[sha]; ok {
			return true, nil
		}
	}

	merged, err := client.GetPullRequest(ctx, repo, pr.Number)
	if err != nil {
		return false, goerr.Wrap(err, "failed to get pull request", goerr.V("number", pr.Number))
	}
	if _, ok := shaSet[merged.MergeCommitSHA]; ok && merged.MergeCommitSHA != "" {
		return true, nil
	}

	logger.Debug("Pull request is not part of the release", "number", pr.Number)
	return false, nil
}
