package cli

import (
	"context"

	"github.com/m-mizutani/crier/pkg/domain/model"
	fsinfra "github.com/m-mizutani/crier/pkg/infra/fs"
	"github.com/m-mizutani/crier/pkg/usecase"
	"github.com/m-mizutani/crier/pkg/utils/issueref"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdRelease() *cli.Command {
	var cfg runConfig

	return &cli.Command{
		Name:  "release",
		Usage: "Publish the release and announce it; report a failure in a tracking issue",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			record, err := runRelease(ctx, r, issueref.New(cfg.github.Host(r.opts)))
			if err != nil {
				reportFailure(ctx, r, err)
				return err
			}

			printSummary(true, "Released "+r.pctx.NextRelease.GitTag)
			return printRecord(record)
		},
	}
}

// runRelease publishes the release, then announces it with the new record added to the
// pipeline's releases
func runRelease(ctx context.Context, r *run, parser *issueref.Parser) (*model.ReleaseRecord, error) {
	result, err := usecase.NewRelease(r.client, fsinfra.NewResolver()).Publish(ctx, r.session, r.pctx, r.opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to publish release")
	}
	logAssetSummary(ctx, result.Assets)

	if result.State == model.ReleaseStateDraft {
		ctxlog.From(ctx).Info("Release is a draft, skip announcing it")
		return &result.Record, nil
	}

	r.pctx.Releases = append(r.pctx.Releases, result.Record)
	if err := usecase.NewSuccess(r.client, parser).Success(ctx, r.session, r.pctx, r.opts); err != nil {
		return &result.Record, goerr.Wrap(err, "failed to announce release")
	}

	return &result.Record, nil
}

// reportFailure opens or updates the tracking issue. Its own failure is only logged so
// that the original error is the one returned.
func reportFailure(ctx context.Context, r *run, cause error) {
	r.pctx.Errors = append(r.pctx.Errors, model.PipelineError{
		Message: "Release failed",
		Details: "```\n" + cause.Error() + "\n```",
	})

	if err := usecase.NewFail(r.client).Fail(ctx, r.session, r.pctx, r.opts); err != nil {
		ctxlog.From(ctx).Error("Failed to report the failed release", "error", err)
	}
}
