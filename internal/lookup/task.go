// Package lookup models the application's fire-and-forget external requests
// (routing, geolocation) as cancellable one-shot tasks. A task runs exactly
// once, delivers a result or an error exactly once, and exposes "still
// pending" as a distinct observable state.
package lookup

import (
	"context"
	"sync"
)

// State is the observable lifecycle state of a Task.
type State int

const (
	// Pending means the task has started but not yet delivered an outcome.
	Pending State = iota
	// Succeeded means the task completed and Result returns its value.
	Succeeded
	// Failed means the task completed with an error, including cancellation.
	Failed
)

// Task is a cancellable one-shot request with a result-or-failure outcome.
// There is no retry and no timeout beyond what the caller's context imposes.
type Task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	state  State
	result T
	err    error
}

// Start launches fn in its own goroutine and returns the running task.
// Cancelling the returned task (or the parent context) aborts fn through its
// context; a cancelled task ends in the Failed state with the context error.
func Start[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer cancel()
		result, err := fn(ctx)

		t.mu.Lock()
		if err != nil {
			t.state = Failed
			t.err = err
		} else {
			t.state = Succeeded
			t.result = result
		}
		t.mu.Unlock()

		close(t.done)
	}()

	return t
}

// Done returns a channel closed when the task has delivered its outcome.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// State returns the task's current lifecycle state.
func (t *Task[T]) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Result returns the task's outcome. While the task is Pending it returns
// the zero value and a nil error; callers that need to block should use Wait.
func (t *Task[T]) Result() (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result, t.err
}

// Cancel aborts the task. It is safe to call at any time, including after
// completion, where it has no effect.
func (t *Task[T]) Cancel() {
	t.cancel()
}

// Wait blocks until the task delivers its outcome or ctx is cancelled.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.Result()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
