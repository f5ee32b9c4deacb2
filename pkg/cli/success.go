package cli

import (
	"context"

	"github.com/m-mizutani/crier/pkg/usecase"
	"github.com/m-mizutani/crier/pkg/utils/issueref"
	"github.com/urfave/cli/v3"
)

func cmdSuccess() *cli.Command {
	var cfg runConfig

	return &cli.Command{
		Name:  "success",
		Usage: "Comment on and label resolved issues and pull requests, and close failure reports",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			uc := usecase.NewSuccess(r.client, issueref.New(cfg.github.Host(r.opts)))
			if err := uc.Success(ctx, r.session, r.pctx, r.opts); err != nil {
				return err
			}

			printSummary(true, "Announced release "+r.pctx.NextRelease.GitTag)
			return nil
		},
	}
}

func cmdFail() *cli.Command {
	var cfg runConfig

	return &cli.Command{
		Name:  "fail",
		Usage: "Report the errors of a failed release in a tracking issue",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			if err := usecase.NewFail(r.client).Fail(ctx, r.session, r.pctx, r.opts); err != nil {
				return err
			}

			printSummary(true, "Reported failed release")
			return nil
		},
	}
}
