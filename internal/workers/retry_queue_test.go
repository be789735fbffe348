package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryQueue_BackoffGrowsAndCaps(t *testing.T) {
	q := NewRetryQueue(func(context.Context) {}, time.Hour, 3)
	defer q.Stop()

	var delays []time.Duration
	for i := 0; i < 6; i++ {
		delays = append(delays, q.RecordFailure())
	}

	assert.Equal(t, []time.Duration{
		time.Hour,
		2 * time.Hour,
		4 * time.Hour,
		8 * time.Hour,
		8 * time.Hour,
		8 * time.Hour,
	}, delays)
	assert.Equal(t, 6, q.Attempt())
	assert.True(t, q.Pending())
}

func TestRetryQueue_SuccessResets(t *testing.T) {
	q := NewRetryQueue(func(context.Context) {}, time.Hour, 5)
	defer q.Stop()

	q.RecordFailure()
	q.RecordFailure()
	require.True(t, q.Pending())

	q.RecordSuccess()
	assert.False(t, q.Pending())
	assert.Equal(t, 0, q.Attempt())
	assert.Equal(t, time.Hour, q.RecordFailure())
}

func TestRetryQueue_FiresOnce(t *testing.T) {
	var calls atomic.Int32
	fired := make(chan struct{}, 4)
	q := NewRetryQueue(func(context.Context) {
		calls.Add(1)
		fired <- struct{}{}
	}, 10*time.Millisecond, 2)
	defer q.Stop()

	// a second failure reschedules instead of stacking
	q.RecordFailure()
	q.RecordFailure()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("retry callback did not fire")
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, q.Pending())
}

func TestRetryQueue_SuccessCancelsPending(t *testing.T) {
	var calls atomic.Int32
	q := NewRetryQueue(func(context.Context) { calls.Add(1) }, 20*time.Millisecond, 0)
	defer q.Stop()

	q.RecordFailure()
	q.RecordSuccess()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestRetryQueue_StopCancelsAndIgnoresLaterFailures(t *testing.T) {
	var calls atomic.Int32
	q := NewRetryQueue(func(context.Context) { calls.Add(1) }, 20*time.Millisecond, 0)

	q.RecordFailure()
	q.Stop()
	assert.False(t, q.Pending())
	assert.Equal(t, time.Duration(0), q.RecordFailure())
	assert.False(t, q.Pending())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	// idempotent
	q.Stop()
}

func TestRetryQueue_CallbackGetsRunContext(t *testing.T) {
	type key struct{}
	got := make(chan any, 1)
	q := NewRetryQueue(func(ctx context.Context) { got <- ctx.Value(key{}) }, 5*time.Millisecond, 0)
	defer q.Stop()

	q.Run(context.WithValue(context.Background(), key{}, "bound"))
	q.RecordFailure()

	select {
	case v := <-got:
		assert.Equal(t, "bound", v)
	case <-time.After(2 * time.Second):
		t.Fatal("retry callback did not fire")
	}
}

func TestRetryQueue_StopWaitsForRunningCallback(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool
	q := NewRetryQueue(func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		finished.Store(true)
	}, time.Millisecond, 0)

	q.RecordFailure()
	<-started
	q.Stop()

	assert.True(t, finished.Load())
}

func TestRetryQueue_Defaults(t *testing.T) {
	q := NewRetryQueue(func(context.Context) {}, 0, -1)
	defer q.Stop()

	assert.Equal(t, defaultRetryBase, q.RecordFailure())
	assert.Equal(t, defaultRetryBase, q.RecordFailure())
}
