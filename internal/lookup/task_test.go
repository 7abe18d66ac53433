package lookup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik2365/Travel-diaries/internal/lookup"
)

func TestTask_Succeeds(t *testing.T) {
	task := lookup.Start(context.Background(), func(_ context.Context) (int, error) {
		return 42, nil
	})

	result, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, lookup.Succeeded, task.State())
}

func TestTask_Fails(t *testing.T) {
	boom := errors.New("boom")
	task := lookup.Start(context.Background(), func(_ context.Context) (int, error) {
		return 0, boom
	})

	_, err := task.Wait(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, lookup.Failed, task.State())
}

func TestTask_PendingWhileRunning(t *testing.T) {
	release := make(chan struct{})
	task := lookup.Start(context.Background(), func(_ context.Context) (int, error) {
		<-release
		return 1, nil
	})

	assert.Equal(t, lookup.Pending, task.State())

	// Result does not block; pending yields the zero value.
	result, err := task.Result()
	assert.Zero(t, result)
	assert.NoError(t, err)

	close(release)
	_, err = task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lookup.Succeeded, task.State())
}

func TestTask_CancelAbortsFn(t *testing.T) {
	started := make(chan struct{})
	task := lookup.Start(context.Background(), func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})

	<-started
	task.Cancel()

	_, err := task.Wait(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, lookup.Failed, task.State())
}

func TestTask_ParentContextCancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	task := lookup.Start(ctx, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	cancel()

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("task did not finish after parent cancellation")
	}
	assert.Equal(t, lookup.Failed, task.State())
}

func TestTask_CancelAfterCompletionIsNoOp(t *testing.T) {
	task := lookup.Start(context.Background(), func(_ context.Context) (string, error) {
		return "done", nil
	})

	result, err := task.Wait(context.Background())
	require.NoError(t, err)

	task.Cancel()

	// The delivered outcome is immutable.
	again, err := task.Result()
	require.NoError(t, err)
	assert.Equal(t, result, again)
	assert.Equal(t, lookup.Succeeded, task.State())
}

func TestTask_WaitHonoursCallerContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	task := lookup.Start(context.Background(), func(_ context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := task.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
