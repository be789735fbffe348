// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// orderWorker records its id into a shared log on Run and Stop.
type orderWorker struct {
	id  int
	log *[]string
	ctx context.Context
}

func (w *orderWorker) Run(ctx context.Context) {
	w.ctx = ctx
	*w.log = append(*w.log, "run", string(rune('0'+w.id)))
}

func (w *orderWorker) Stop() {
	*w.log = append(*w.log, "stop", string(rune('0'+w.id)))
}

func TestWorkers_RunAndStopOrder(t *testing.T) {
	var log []string
	w1 := &orderWorker{id: 1, log: &log}
	w2 := &orderWorker{id: 2, log: &log}

	ws := NewWorkers(w1, nil, w2)
	ctx := context.Background()
	ws.Run(ctx)
	ws.Stop()

	assert.Equal(t, []string{"run", "1", "run", "2", "stop", "2", "stop", "1"}, log)
	assert.Equal(t, ctx, w1.ctx)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_ZeroValue(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

func TestRetryQueue_ImplementsWorker(t *testing.T) {
	var _ Worker = NewRetryQueue(func(context.Context) {}, 0, 0)
}
