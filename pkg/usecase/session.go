package usecase

import (
	"context"
	"net/http"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/crier/pkg/domain/interfaces"
	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type session struct {
	repo     model.Repo
	verified bool
}

func (s *session) Repo() model.Repo { return s.repo }
func (s *session) Verified() bool   { return s.verified }

// Verifier checks the configuration and the credentials before any release operation
type Verifier struct {
	githubClient interfaces.GitHubClient
}

// NewVerifier creates a new Verifier
func NewVerifier(githubClient interfaces.GitHubClient) *Verifier {
	return &Verifier{
		githubClient: githubClient,
	}
}

// Verify validates options, resolves the canonical repository and checks push permission.
// The returned session is passed to every later operation of the run.
func (v *Verifier) Verify(ctx context.Context, pctx *model.PipelineContext, opts *model.Options) (interfaces.Session, error) {
	logger := ctxlog.From(ctx)

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if version := pctx.NextRelease.Version; version != "" {
		if _, err := semver.StrictNewVersion(version); err != nil {
			return nil, goerr.Wrap(err, "next release version is not a valid semantic version",
				goerr.V("version", version), goerr.T(types.ErrTagConfig))
		}
	}

	parsed, err := model.ParseRepositoryURL(pctx.RepositoryURL)
	if err != nil {
		return nil, err
	}

	repo, err := v.githubClient.GetRepository(ctx, parsed)
	if err != nil {
		switch model.HTTPStatus(err) {
		case http.StatusUnauthorized:
			return nil, goerr.Wrap(err, "invalid GitHub token",
				goerr.V("repo", parsed.FullName()), goerr.T(types.ErrTagAuth))
		case http.StatusNotFound:
			return nil, goerr.Wrap(err, "repository does not exist or is not accessible",
				goerr.V("repo", parsed.FullName()), goerr.T(types.ErrTagAuth))
		}
		return nil, goerr.Wrap(err, "failed to verify repository", goerr.V("repo", parsed.FullName()))
	}

	if !repo.CanPush {
		return nil, goerr.New("GitHub token does not allow to push to the repository",
			goerr.V("repo", repo.Repo.FullName()), goerr.T(types.ErrTagAuth))
	}

	if !repo.Repo.Equal(parsed) {
		logger.Warn("Repository URL does not match the canonical repository, using the canonical one",
			"configured", parsed.FullName(),
			"canonical", repo.Repo.FullName(),
		)
	}

	logger.Info("Verified GitHub authentication", "repo", repo.Repo.FullName())

	return &session{repo: repo.Repo, verified: true}, nil
}

func requireVerified(sess interfaces.Session) error {
	if sess == nil || !sess.Verified() {
		return goerr.New("release operation requires a verified session", goerr.T(types.ErrTagAuth))
	}
	return nil
}
