package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

// errorCollector accumulates per-target failures of concurrent handlers
type errorCollector struct {
	mu   sync.Mutex
	errs []*model.OperationError
}

func (c *errorCollector) add(err *model.OperationError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
}

// err returns nil when nothing was collected
func (c *errorCollector) err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.errs) == 0 {
		return nil
	}
	return &model.AggregateError{Errors: append([]*model.OperationError(nil), c.errs...)}
}

// handle applies the per-target error policy: 403 and 404 skip the target unless the 403
// is a rate limit, cancellation aborts the batch, and anything else is collected. It
// returns an error only to abort.
func (c *errorCollector) handle(ctx context.Context, number int, message string, err error) error {
	logger := ctxlog.From(ctx)

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	status := model.HTTPStatus(err)
	if status == http.StatusNotFound || (status == http.StatusForbidden && !model.IsRateLimited(err)) {
		logger.Warn(message+", skipping",
			"number", number,
			"status", status,
			"error", err,
		)
		return nil
	}

	logger.Error(message, "number", number, "error", err)
	c.add(model.NewOperationError(number, message, err))
	return nil
}
