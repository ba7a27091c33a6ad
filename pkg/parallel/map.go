package parallel

import (
	"context"
	"errors"
	"fmt"
)

// ErrTaskPanicked marks a result whose function panicked.
var ErrTaskPanicked = errors.New("task panicked")

// Result pairs the output for one input item with its error.
type Result[R any] struct {
	Value R
	Err   error
}

// Map applies fn to every item on a fresh pool of workers and returns one
// Result per item in input order. Items not yet started when ctx is done
// get ctx.Err() without fn being called. A panic in fn is reported as
// ErrTaskPanicked for that item only.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error), opts ...Option) ([]Result[R], error) {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results, nil
	}
	if workers > len(items) {
		workers = len(items)
	}

	pool, err := NewWorkerPool(workers, opts...)
	if err != nil {
		return nil, err
	}

	for i := range items {
		ok := pool.Submit(func() {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			defer func() {
				if r := recover(); r != nil {
					results[i].Err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
				}
			}()
			results[i].Value, results[i].Err = fn(ctx, items[i])
		})
		if !ok {
			results[i].Err = errors.New("worker pool closed")
		}
	}
	pool.Wait()

	return results, ctx.Err()
}
