package file

import (
	"context"
	"time"

	"github.com/aleister1102/siftview/internal/common"
)

type outcome[T any] struct {
	value T
	err   error
}

// runBounded runs op on its own goroutine and returns early once ctx ends
// or timeout elapses. An abandoned op finishes in the background and its
// result is dropped.
func runBounded[T any](ctx context.Context, timeout time.Duration, operation string, op func() (T, error)) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	done := make(chan outcome[T], 1)
	go func() {
		value, err := op()
		done <- outcome[T]{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, common.WrapErrorf(ctx.Err(), "file %s cancelled", operation)
	case res := <-done:
		return res.value, res.err
	}
}
