package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/crier/pkg/domain/interfaces"
	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/crier/pkg/utils/async"
	"github.com/m-mizutani/crier/pkg/utils/issueref"
	"github.com/m-mizutani/crier/pkg/utils/tmpl"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type successUseCase struct {
	githubClient interfaces.GitHubClient
	parser       *issueref.Parser
}

// NewSuccess creates a new instance of SuccessUseCase
func NewSuccess(githubClient interfaces.GitHubClient, parser *issueref.Parser) interfaces.SuccessUseCase {
	return &successUseCase{
		githubClient: githubClient,
		parser:       parser,
	}
}

// Success comments on and labels every pull request and issue resolved by the release,
// closes open tracking issues of earlier failures and finally merges links to other
// release channels into the release notes.
func (uc *successUseCase) Success(ctx context.Context, sess interfaces.Session, pctx *model.PipelineContext, opts *model.Options) error {
	if err := requireVerified(sess); err != nil {
		return err
	}
	repo := sess.Repo()
	logger := ctxlog.From(ctx).With("repo", repo.FullName())
	ctx = ctxlog.With(ctx, logger)

	collector := &errorCollector{}

	if opts.SuccessComment.Disabled {
		logger.Info("Skip commenting on issues and pull requests")
	} else {
		targets, err := uc.resolveTargets(ctx, repo, pctx.Commits)
		if err != nil {
			return err
		}
		logger.Info("Found issues and pull requests resolved by the release", "count", len(targets))

		if err := uc.notifyTargets(ctx, repo, targets, pctx, opts, collector); err != nil {
			return err
		}
	}

	if opts.FailComment.Disabled || opts.FailTitle.Disabled {
		logger.Info("Skip closing issues of failed releases")
	} else if err := uc.closeTrackingIssues(ctx, repo, opts, collector); err != nil {
		return err
	}

	if err := collector.err(); err != nil {
		return goerr.Wrap(err, "failed to update issues and pull requests", goerr.V("repo", repo.FullName()))
	}

	return uc.mergeReleaseNotes(ctx, repo, pctx, opts)
}

// resolveTargets returns verified pull requests of the release followed by the issues
// their bodies and the commit messages close
func (uc *successUseCase) resolveTargets(ctx context.Context, repo model.Repo, commits []model.Commit) ([]model.Target, error) {
	hashes := model.CommitHashes(commits)

	associated, err := resolveAssociatedPRs(ctx, uc.githubClient, repo, hashes)
	if err != nil {
		return nil, err
	}

	prs, err := verifyAssociations(ctx, uc.githubClient, repo, associated, hashes)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to verify associated pull requests", goerr.V("repo", repo.FullName()))
	}

	texts := make([]string, 0, len(prs)+len(commits))
	for _, pr := range prs {
		texts = append(texts, pr.Body)
	}
	for _, c := range commits {
		texts = append(texts, c.Message)
	}

	return model.MergeTargets(prs, uc.parser.ClosedIssuesIn(texts, repo)), nil
}

// notifyTargets comments on and labels every target concurrently. Failures are left in
// the collector; the returned error aborts the run.
func (uc *successUseCase) notifyTargets(ctx context.Context, repo model.Repo, targets []model.Target, pctx *model.PipelineContext, opts *model.Options, collector *errorCollector) error {
	commentText := textOr(opts.SuccessComment.Text, defaultSuccessComment)
	labelTexts := opts.ReleasedLabels.Templates
	if labelTexts == nil {
		labelTexts = []string{defaultReleasedLabel}
	}
	if _, err := tmpl.Parse("successComment", commentText); err != nil {
		return goerr.Wrap(err, "invalid success comment template", goerr.T(types.ErrTagConfig))
	}
	for _, text := range labelTexts {
		if _, err := tmpl.Parse("releasedLabels", text); err != nil {
			return goerr.Wrap(err, "invalid released label template", goerr.T(types.ErrTagConfig))
		}
	}
	base := model.NewTemplateContext(pctx)

	return async.Each(ctx, targets, types.DefaultConcurrency, func(ctx context.Context, target model.Target) error {
		logger := ctxlog.From(ctx)
		data := base.WithIssue(target)

		body, err := tmpl.Render("successComment", commentText, data)
		if err != nil {
			return goerr.Wrap(err, "failed to render success comment", goerr.V("number", target.Number))
		}

		comment, err := uc.githubClient.CreateComment(ctx, repo, target.Number, body)
		if err != nil {
			return collector.handle(ctx, target.Number, fmt.Sprintf("failed to comment on %s", target.Kind), err)
		}
		logger.Info("Added comment", "kind", target.Kind.String(), "number", target.Number, "url", comment.HTMLURL)

		if opts.ReleasedLabels.Disabled {
			return nil
		}

		labels, err := tmpl.RenderAll("releasedLabels", labelTexts, data)
		if err != nil {
			return goerr.Wrap(err, "failed to render released labels", goerr.V("number", target.Number))
		}
		if len(labels) == 0 {
			return nil
		}

		if err := uc.githubClient.AddLabels(ctx, repo, target.Number, labels); err != nil {
			return collector.handle(ctx, target.Number, fmt.Sprintf("failed to add labels to %s", target.Kind), err)
		}
		logger.Info("Added labels", "kind", target.Kind.String(), "number", target.Number, "labels", labels)

		return nil
	})
}

// closeTrackingIssues closes the open issues reporting earlier failures of the release
func (uc *successUseCase) closeTrackingIssues(ctx context.Context, repo model.Repo, opts *model.Options, collector *errorCollector) error {
	logger := ctxlog.From(ctx)

	title := textOr(opts.FailTitle.Text, defaultFailTitle)
	issues, err := findTrackingIssues(ctx, uc.githubClient, repo, title)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		logger.Debug("No open issue of a failed release", "title", title)
		return nil
	}

	return async.Each(ctx, issues, types.DefaultConcurrency, func(ctx context.Context, issue *model.Issue) error {
		closed, err := uc.githubClient.CloseIssue(ctx, repo, issue.Number)
		if err != nil {
			return collector.handle(ctx, issue.Number, "failed to close issue", err)
		}
		ctxlog.From(ctx).Info("Closed issue of a failed release", "number", closed.Number, "url", closed.HTMLURL)
		return nil
	})
}

// findTrackingIssues returns open issues titled title that carry the tracking marker
func findTrackingIssues(ctx context.Context, client interfaces.GitHubClient, repo model.Repo, title string) ([]*model.Issue, error) {
	query := fmt.Sprintf(`in:title repo:%s type:issue state:open "%s"`,
		repo.FullName(), strings.ReplaceAll(title, `"`, ""))

	found, err := client.SearchIssues(ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search issues of failed releases", goerr.V("query", query))
	}

	var issues []*model.Issue
	for _, issue := range found {
		if issue.IsPullRequest || !strings.Contains(issue.Body, types.TrackingIssueMarker) {
			continue
		}
		issues = append(issues, issue)
	}
	return issues, nil
}
