package usecase

import (
	"context"

	"github.com/m-mizutani/crier/pkg/domain/interfaces"
	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/crier/pkg/utils/tmpl"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type failUseCase struct {
	githubClient interfaces.GitHubClient
}

// NewFail creates a new instance of FailUseCase
func NewFail(githubClient interfaces.GitHubClient) interfaces.FailUseCase {
	return &failUseCase{
		githubClient: githubClient,
	}
}

// Fail reports the errors of a failing release. It comments on the open tracking issue
// or opens a new one carrying the tracking marker.
func (uc *failUseCase) Fail(ctx context.Context, sess interfaces.Session, pctx *model.PipelineContext, opts *model.Options) error {
	if err := requireVerified(sess); err != nil {
		return err
	}
	repo := sess.Repo()
	logger := ctxlog.From(ctx).With("repo", repo.FullName())

	if opts.FailComment.Disabled || opts.FailTitle.Disabled {
		logger.Info("Skip reporting the failed release")
		return nil
	}

	title := textOr(opts.FailTitle.Text, defaultFailTitle)
	body, err := tmpl.Render("failComment", textOr(opts.FailComment.Text, defaultFailComment), model.NewTemplateContext(pctx))
	if err != nil {
		return goerr.Wrap(err, "failed to render fail comment", goerr.T(types.ErrTagConfig))
	}

	issues, err := findTrackingIssues(ctx, uc.githubClient, repo, title)
	if err != nil {
		return err
	}

	if len(issues) > 0 {
		issue := issues[0]
		comment, err := uc.githubClient.CreateComment(ctx, repo, issue.Number, body)
		if err != nil {
			return goerr.Wrap(err, "failed to comment on the failed release issue", goerr.V("number", issue.Number))
		}
		logger.Info("Updated issue of the failed release", "number", issue.Number, "url", comment.HTMLURL)
		return nil
	}

	labels := opts.Labels
	if labels == nil {
		labels = defaultFailLabels
	}

	created, err := uc.githubClient.CreateIssue(ctx, repo, model.NewIssue{
		Title:     title,
		Body:      types.TrackingIssueMarker + "\n\n" + body,
		Labels:    labels,
		Assignees: opts.Assignees,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to open issue of the failed release", goerr.V("title", title))
	}
	logger.Info("Created issue of the failed release", "number", created.Number, "url", created.HTMLURL)

	return nil
}
