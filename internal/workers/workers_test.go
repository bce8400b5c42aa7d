// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
)

// blockingWorker counts its runs and blocks until ctx is cancelled.
type blockingWorker struct {
	runCount atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.runCount.Add(1)
	<-ctx.Done()
	return nil
}

type failingWorker struct {
	err error
}

func (f failingWorker) Run(context.Context) error {
	return f.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(logger.Nop(), w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_JoinsErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	ws := NewWorkers(logger.Nop(), failingWorker{err: errA}, failingWorker{err: errB}, failingWorker{})

	err := ws.Run(context.Background())

	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestWorkers_Add(t *testing.T) {
	ws := NewWorkers(logger.Nop())
	ws.Add(failingWorker{})
	ws.Add(failingWorker{})

	assert.Equal(t, 2, ws.Len())
}
