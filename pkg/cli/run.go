package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/crier/pkg/cli/config"
	"github.com/m-mizutani/crier/pkg/domain/interfaces"
	"github.com/m-mizutani/crier/pkg/domain/model"
	fsinfra "github.com/m-mizutani/crier/pkg/infra/fs"
	"github.com/m-mizutani/crier/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// runConfig is the configuration shared by every command
type runConfig struct {
	options  config.Options
	pipeline config.Pipeline
	github   config.GitHub
}

func (c *runConfig) Flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, c.options.Flags()...)
	flags = append(flags, c.pipeline.Flags()...)
	flags = append(flags, c.github.Flags()...)
	return flags
}

// run is a verified invocation against one repository
type run struct {
	client  interfaces.GitHubClient
	session interfaces.Session
	pctx    *model.PipelineContext
	opts    *model.Options
}

// setup loads the configuration, builds the GitHub client and verifies the session
func (c *runConfig) setup(ctx context.Context) (*run, error) {
	opts, token, err := c.options.Load()
	if err != nil {
		return nil, err
	}
	if c.github.Token == "" {
		c.github.Token = token
	}

	pctx, err := c.pipeline.Load()
	if err != nil {
		return nil, err
	}

	client, err := c.github.NewClient(opts)
	if err != nil {
		return nil, err
	}

	sess, err := usecase.NewVerifier(client).Verify(ctx, pctx, opts)
	if err != nil {
		return nil, err
	}

	return &run{client: client, session: sess, pctx: pctx, opts: opts}, nil
}

func printRecord(record *model.ReleaseRecord) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return goerr.Wrap(err, "failed to write release record")
	}
	return nil
}

func printSummary(ok bool, msg string) {
	if ok {
		color.New(color.FgGreen, color.Bold).Fprint(stderr, "✔ ")
	} else {
		color.New(color.FgRed, color.Bold).Fprint(stderr, "✘ ")
	}
	fmt.Fprintln(stderr, msg)
}

func cmdVerify() *cli.Command {
	var cfg runConfig

	return &cli.Command{
		Name:  "verify",
		Usage: "Verify configuration and GitHub authentication",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := cfg.setup(ctx)
			if err != nil {
				return err
			}
			printSummary(true, "Verified "+r.session.Repo().FullName())
			return nil
		},
	}
}

func cmdPublish() *cli.Command {
	var cfg runConfig

	return &cli.Command{
		Name:  "publish",
		Usage: "Create a GitHub release, upload assets and publish it",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			uc := usecase.NewRelease(r.client, fsinfra.NewResolver())
			result, err := uc.Publish(ctx, r.session, r.pctx, r.opts)
			if err != nil {
				return err
			}

			logAssetSummary(ctx, result.Assets)
			printSummary(true, fmt.Sprintf("Release %s is %s", r.pctx.NextRelease.GitTag, result.State))
			return printRecord(&result.Record)
		},
	}
}

func cmdAddChannel() *cli.Command {
	var cfg runConfig

	return &cli.Command{
		Name:  "add-channel",
		Usage: "Make an existing release available on a new channel",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			uc := usecase.NewRelease(r.client, fsinfra.NewResolver())
			record, err := uc.AddChannel(ctx, r.session, r.pctx, r.opts)
			if err != nil {
				return err
			}

			printSummary(true, "Updated release "+record.URL)
			return printRecord(record)
		},
	}
}

func logAssetSummary(ctx context.Context, assets []model.AssetResult) {
	counts := map[model.AssetStatus]int{}
	for _, a := range assets {
		counts[a.Status]++
	}
	if len(assets) == 0 {
		return
	}
	ctxlog.From(ctx).Info("Uploaded assets",
		"uploaded", counts[model.AssetUploaded],
		"skipped", counts[model.AssetSkipped],
		"failed", counts[model.AssetFailed],
	)
}
