package usecase

import (
	"context"

	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// mergeReleaseNotes adds links to the other release channels to the GitHub release body
func (uc *successUseCase) mergeReleaseNotes(ctx context.Context, repo model.Repo, pctx *model.PipelineContext, opts *model.Options) error {
	logger := ctxlog.From(ctx)

	if opts.AddReleases == model.AddReleasesOff {
		return nil
	}

	var own *model.ReleaseRecord
	for i := range pctx.Releases {
		if pctx.Releases[i].Name == types.ReleaseName && pctx.Releases[i].ID != 0 {
			own = &pctx.Releases[i]
			break
		}
	}
	if own == nil {
		logger.Debug("No GitHub release to add links to")
		return nil
	}

	links := model.ReleaseLinks(pctx.Releases)
	if links == "" {
		logger.Debug("No other release to link", "release_id", own.ID)
		return nil
	}

	body := model.MergeReleaseNotes(pctx.NextRelease.Notes, links, opts.AddReleases)
	updated, err := uc.githubClient.UpdateRelease(ctx, repo, own.ID, model.ReleasePatch{Body: &body})
	if err != nil {
		return goerr.Wrap(err, "failed to add release links to the release notes",
			goerr.V("repo", repo.FullName()), goerr.V("release_id", own.ID))
	}

	logger.Info("Updated GitHub release notes with links to other releases", "url", updated.HTMLURL)
	return nil
}
