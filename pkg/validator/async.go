package validator

import (
	"context"
	"fmt"
	"time"
)

// Future is the pending result of an asynchronous validation.
type Future struct {
	outcome Outcome
	err     error
	done    chan struct{}
}

// Await blocks until the validation completes.
func (f *Future) Await() (Outcome, error) {
	<-f.done
	return f.outcome, f.err
}

// AwaitContext waits for the validation or for ctx, whichever comes first.
// The validation itself keeps running if ctx ends first.
func (f *Future) AwaitContext(ctx context.Context) (Outcome, error) {
	select {
	case <-f.done:
		return f.outcome, f.err
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// AwaitWithTimeout waits at most timeout for the validation and returns ErrTimeout otherwise.
func (f *Future) AwaitWithTimeout(timeout time.Duration) (Outcome, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.outcome, f.err
	case <-timer.C:
		return Outcome{}, ErrTimeout
	}
}

// IsComplete reports whether the validation has finished without blocking.
func (f *Future) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAll awaits futures in order and stops at the first error.
// Outcomes gathered before the error are returned with it.
func WaitAll(futures ...*Future) ([]Outcome, error) {
	outcomes := make([]Outcome, len(futures))

	for i, future := range futures {
		outcome, err := future.Await()
		outcomes[i] = outcome
		if err != nil {
			return outcomes, err
		}
	}

	return outcomes, nil
}

func goValidate(ctx context.Context, fn func() Outcome) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.outcome = Outcome{}
				f.err = fmt.Errorf("%w: %v", ErrValidationPanicked, r)
			}
		}()

		// Do not start work the caller has already abandoned.
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.outcome = fn()
	}()

	return f
}
