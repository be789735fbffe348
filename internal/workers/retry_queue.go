// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
)

const defaultRetryBase = time.Second

// RetryQueue schedules a single deferred callback after failures, with the
// delay growing as base * 2^n up to base * 2^maxExponent. At most one retry
// is pending at any time: a new failure reschedules it instead of stacking
// another one.
type RetryQueue struct {
	callback    func(ctx context.Context)
	base        time.Duration
	maxExponent int

	mu         sync.Mutex
	backoff    retry.Backoff
	attempt    int
	timer      *time.Timer
	generation uint64
	stopped    bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRetryQueue creates an idle queue. A non-positive base falls back to one
// second; a negative maxExponent is treated as zero.
func NewRetryQueue(callback func(ctx context.Context), base time.Duration, maxExponent int) *RetryQueue {
	if base <= 0 {
		base = defaultRetryBase
	}
	if maxExponent < 0 {
		maxExponent = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	q := &RetryQueue{
		callback:    callback,
		base:        base,
		maxExponent: maxExponent,
		ctx:         ctx,
		cancel:      cancel,
	}
	q.backoff = q.newBackoff()

	return q
}

func (q *RetryQueue) newBackoff() retry.Backoff {
	maxDelay := q.base << q.maxExponent
	if maxDelay <= 0 || maxDelay < q.base {
		// shift overflow
		maxDelay = q.base
	}
	return retry.WithCappedDuration(maxDelay, retry.NewExponential(q.base))
}

// Run binds retry callbacks to ctx. Retries scheduled before Run use a
// background context.
func (q *RetryQueue) Run(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return
	}
	q.cancel()
	q.ctx, q.cancel = context.WithCancel(ctx)
}

// RecordFailure schedules the callback after the next backoff delay,
// replacing any pending retry, and returns that delay. It is a no-op after
// Stop.
func (q *RetryQueue) RecordFailure() time.Duration {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return 0
	}

	delay, _ := q.backoff.Next()
	q.attempt++

	if q.timer != nil {
		q.timer.Stop()
	}
	q.generation++
	gen := q.generation
	q.timer = time.AfterFunc(delay, func() { q.fire(gen) })

	return delay
}

func (q *RetryQueue) fire(gen uint64) {
	q.mu.Lock()
	if q.stopped || gen != q.generation {
		q.mu.Unlock()
		return
	}
	q.timer = nil
	ctx := q.ctx
	q.wg.Add(1)
	q.mu.Unlock()

	defer q.wg.Done()
	q.callback(ctx)
}

// RecordSuccess cancels a pending retry and resets the backoff.
func (q *RetryQueue) RecordSuccess() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.clearLocked()
	q.attempt = 0
	q.backoff = q.newBackoff()
}

// Stop cancels any pending retry and waits for a running callback to return.
// Later failures are ignored.
func (q *RetryQueue) Stop() {
	q.mu.Lock()
	q.stopped = true
	q.clearLocked()
	q.cancel()
	q.mu.Unlock()

	q.wg.Wait()
}

func (q *RetryQueue) clearLocked() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	q.generation++
}

// Pending reports whether a retry is scheduled.
func (q *RetryQueue) Pending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.timer != nil
}

// Attempt returns the number of failures recorded since the last success.
func (q *RetryQueue) Attempt() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.attempt
}
