package usecase

import (
	"context"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/m-mizutani/crier/pkg/domain/interfaces"
	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/crier/pkg/utils/async"
	"github.com/m-mizutani/crier/pkg/utils/tmpl"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const defaultContentType = "application/octet-stream"

type releaseUseCase struct {
	githubClient  interfaces.GitHubClient
	assetResolver interfaces.AssetResolver
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(githubClient interfaces.GitHubClient, assetResolver interfaces.AssetResolver) interfaces.ReleaseUseCase {
	return &releaseUseCase{
		githubClient:  githubClient,
		assetResolver: assetResolver,
	}
}

// stateMachine guards the draft/publish transitions of one release
type stateMachine struct {
	mu    sync.Mutex
	state model.ReleaseState
}

func (m *stateMachine) transition(to model.ReleaseState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	allowed := false
	switch {
	case m.state.IsTerminal():
	case m.state == model.ReleaseStateNone:
		allowed = to == model.ReleaseStateDraftCreated
	case m.state == model.ReleaseStateDraftCreated:
		allowed = to == model.ReleaseStatePublished || to == model.ReleaseStateDraft
	}
	if !allowed {
		return goerr.New("invalid release state transition",
			goerr.V("from", m.state.String()), goerr.V("to", to.String()))
	}

	m.state = to
	return nil
}

func (m *stateMachine) current() model.ReleaseState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Publish creates the release as a draft, uploads assets and publishes it unless a
// draft release is configured
func (uc *releaseUseCase) Publish(ctx context.Context, sess interfaces.Session, pctx *model.PipelineContext, opts *model.Options) (*model.PublishResult, error) {
	if err := requireVerified(sess); err != nil {
		return nil, err
	}
	repo := sess.Repo()
	logger := ctxlog.From(ctx).With("repo", repo.FullName(), "tag", pctx.NextRelease.GitTag)
	ctx = ctxlog.With(ctx, logger)

	sm := &stateMachine{}
	desc := model.NewReleaseDescriptor(pctx.Branch, pctx.NextRelease)

	// Create as draft first so that the upload endpoint exists before anything is published
	release, err := uc.githubClient.CreateRelease(ctx, repo, desc, true)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release", goerr.V("repo", repo.FullName()), goerr.V("tag", desc.TagName))
	}
	if err := sm.transition(model.ReleaseStateDraftCreated); err != nil {
		return nil, err
	}
	logger.Info("Created draft release", "release_id", release.ID, "url", release.HTMLURL)

	result := &model.PublishResult{
		Record: model.ReleaseRecord{Name: types.ReleaseName, URL: release.HTMLURL, ID: release.ID},
	}

	if len(opts.Assets) > 0 {
		assets, err := uc.uploadAssets(ctx, repo, release.ID, pctx, opts)
		if err != nil {
			return nil, err
		}
		result.Assets = assets
	}

	if opts.DraftRelease {
		if err := sm.transition(model.ReleaseStateDraft); err != nil {
			return nil, err
		}
		logger.Info("Kept release as draft", "url", release.HTMLURL)
		result.State = sm.current()
		return result, nil
	}

	published, err := uc.publish(ctx, repo, release.ID, sm)
	if err != nil {
		return nil, err
	}
	logger.Info("Published GitHub release", "url", published.HTMLURL)

	result.Record.URL = published.HTMLURL
	result.State = sm.current()
	return result, nil
}

func (uc *releaseUseCase) publish(ctx context.Context, repo model.Repo, releaseID int64, sm *stateMachine) (*model.Release, error) {
	if sm.current() != model.ReleaseStateDraftCreated {
		return nil, goerr.New("release is not a draft", goerr.V("state", sm.current().String()))
	}

	draft := false
	published, err := uc.githubClient.UpdateRelease(ctx, repo, releaseID, model.ReleasePatch{Draft: &draft})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to publish release", goerr.V("release_id", releaseID))
	}
	if err := sm.transition(model.ReleaseStatePublished); err != nil {
		return nil, err
	}
	return published, nil
}

// uploadAssets uploads every resolved asset concurrently. A missing file or a failed
// upload is logged and reported in the result without failing the release.
func (uc *releaseUseCase) uploadAssets(ctx context.Context, repo model.Repo, releaseID int64, pctx *model.PipelineContext, opts *model.Options) ([]model.AssetResult, error) {
	resolved, err := uc.assetResolver.Resolve(ctx, pctx.CWD, opts.Assets)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve assets")
	}

	data := model.NewTemplateContext(pctx)
	return async.Map(ctx, resolved, types.DefaultConcurrency, func(ctx context.Context, asset model.ResolvedAsset) (model.AssetResult, error) {
		return uc.uploadAsset(ctx, repo, releaseID, asset, data), nil
	})
}

func (uc *releaseUseCase) uploadAsset(ctx context.Context, repo model.Repo, releaseID int64, asset model.ResolvedAsset, data model.TemplateContext) model.AssetResult {
	logger := ctxlog.From(ctx)
	result := model.AssetResult{Path: asset.Path, Name: asset.Name, Status: model.AssetSkipped}

	if asset.Missing {
		logger.Error("The asset cannot be read, and will be ignored", "path", asset.Path)
		return result
	}

	info, err := os.Stat(asset.Path)
	if err != nil {
		logger.Error("The asset cannot be read, and will be ignored", "path", asset.Path, "error", err)
		return result
	}
	if !info.Mode().IsRegular() {
		logger.Error("The asset is not a file, and will be ignored", "path", asset.Path)
		return result
	}

	name, err := tmpl.Render("assetName", textOr(asset.Name, filepath.Base(asset.Path)), data)
	if err != nil || name == "" {
		name = filepath.Base(asset.Path)
	}
	result.Name = name

	var label string
	if asset.Label != "" {
		if label, err = tmpl.Render("assetLabel", asset.Label, data); err != nil {
			label = asset.Label
		}
	}

	uploaded, err := uc.githubClient.UploadReleaseAsset(ctx, repo, releaseID, model.UploadAsset{
		Path:        asset.Path,
		Name:        name,
		Label:       label,
		ContentType: contentType(asset.Path),
	})
	if err != nil {
		logger.Error("Failed to upload asset", "path", asset.Path, "name", name, "status", model.HTTPStatus(err), "error", err)
		result.Status = model.AssetFailed
		result.Err = err
		return result
	}

	logger.Info("Published file", "name", name, "url", uploaded.BrowserDownloadURL)
	result.Status = model.AssetUploaded
	result.URL = uploaded.BrowserDownloadURL
	return result
}

// contentType derives the content type from the extension, then from the content
func contentType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	if m, err := mimetype.DetectFile(path); err == nil && m != nil {
		return m.String()
	}
	return defaultContentType
}

// AddChannel makes an existing release available on a new channel. The release of the
// tag is updated, or created as published when the tag has none.
func (uc *releaseUseCase) AddChannel(ctx context.Context, sess interfaces.Session, pctx *model.PipelineContext, opts *model.Options) (*model.ReleaseRecord, error) {
	if err := requireVerified(sess); err != nil {
		return nil, err
	}
	repo := sess.Repo()

	desc := model.NewReleaseDescriptor(pctx.Branch, pctx.NextRelease)
	if desc.TagName == "" {
		desc.TagName = pctx.CurrentRelease.GitTag
	}
	logger := ctxlog.From(ctx).With("repo", repo.FullName(), "tag", desc.TagName)

	existing, err := uc.githubClient.GetReleaseByTag(ctx, repo, desc.TagName)
	switch {
	case err == nil:
		updated, err := uc.githubClient.UpdateRelease(ctx, repo, existing.ID, model.ReleasePatch{
			TagName:    &desc.TagName,
			Name:       &desc.Name,
			Prerelease: &desc.Prerelease,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to update release", goerr.V("release_id", existing.ID))
		}
		logger.Info("Updated GitHub release", "url", updated.HTMLURL)
		return &model.ReleaseRecord{Name: types.ReleaseName, URL: updated.HTMLURL, ID: updated.ID}, nil

	case model.HTTPStatus(err) == http.StatusNotFound:
		logger.Warn("No release for the tag, creating a new one")
		created, err := uc.githubClient.CreateRelease(ctx, repo, desc, false)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create release", goerr.V("tag", desc.TagName))
		}
		logger.Info("Published GitHub release", "url", created.HTMLURL)
		return &model.ReleaseRecord{Name: types.ReleaseName, URL: created.HTMLURL, ID: created.ID}, nil

	default:
		return nil, goerr.Wrap(err, "failed to get release by tag", goerr.V("tag", desc.TagName))
	}
}
