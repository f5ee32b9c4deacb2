package interfaces

import (
	"context"

	"github.com/m-mizutani/crier/pkg/domain/model"
)

// Session is a verified run against one repository
type Session interface {
	Repo() model.Repo
	Verified() bool
}

// ReleaseUseCase publishes release objects
type ReleaseUseCase interface {
	// Publish creates the release, attaches assets and publishes it unless a draft is requested
	Publish(ctx context.Context, sess Session, pctx *model.PipelineContext, opts *model.Options) (*model.PublishResult, error)

	// AddChannel creates or updates the release of an existing tag for a new channel
	AddChannel(ctx context.Context, sess Session, pctx *model.PipelineContext, opts *model.Options) (*model.ReleaseRecord, error)
}

// SuccessUseCase cross-links a published release with the issues and pull requests it resolves
type SuccessUseCase interface {
	Success(ctx context.Context, sess Session, pctx *model.PipelineContext, opts *model.Options) error
}

// FailUseCase reports a failing release in a tracking issue
type FailUseCase interface {
	Fail(ctx context.Context, sess Session, pctx *model.PipelineContext, opts *model.Options) error
}
