package async

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Each runs handler for every item concurrently and waits for all of them.
//
// Parameters:
//   - ctx: Parent context; cancelling it stops items that have not started
//   - items: Work items, handled in no particular order
//   - limit: Maximum handlers in flight (values < 1 mean unbounded)
//   - handler: Work function; a returned error cancels the remaining items
//
// Behavior:
//   - A handler that wants fail-soft semantics records its failure and returns nil
//   - A panic in a handler is recovered, logged with its stack and returned as an error
//   - Returns the first error returned by a handler, or ctx.Err() on cancellation
func Each[T any](ctx context.Context, items []T, limit int, handler func(ctx context.Context, item T) error) error {
	if len(items) == 0 {
		return nil
	}
	if limit < 1 {
		limit = len(items)
	}

	sem := semaphore.NewWeighted(int64(limit))
	eg, egCtx := errgroup.WithContext(ctx)

	for _, item := range items {
		if err := sem.Acquire(egCtx, 1); err != nil {
			break
		}

		eg.Go(func() (err error) {
			defer sem.Release(1)
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					ctxlog.From(egCtx).Error("panic in async handler",
						"recover", r,
						"stack", string(stack))
					err = goerr.New("panic in async handler", goerr.V("recover", fmt.Sprint(r)))
				}
			}()

			return handler(egCtx, item)
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Map runs handler for every item like Each and returns results in input order
func Map[T, R any](ctx context.Context, items []T, limit int, handler func(ctx context.Context, item T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	indexes := make([]int, len(items))
	for i := range indexes {
		indexes[i] = i
	}

	err := Each(ctx, indexes, limit, func(ctx context.Context, i int) error {
		r, err := handler(ctx, items[i])
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
