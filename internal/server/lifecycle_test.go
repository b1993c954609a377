package server

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type blockingService struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (b *blockingService) Run(ctx context.Context) error {
	b.started.Store(true)
	<-ctx.Done()
	b.stopped.Store(true)
	return ctx.Err()
}

func runAsync(lc *Lifecycle, ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() { done <- lc.Run(ctx) }()
	return done
}

func TestLifecycle_CancelStopsAllServices(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	svc1 := &blockingService{}
	svc2 := &blockingService{}
	lc.Add("svc1", svc1)
	lc.Add("svc2", svc2)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(lc, ctx)

	require.Eventually(t, func() bool {
		return svc1.started.Load() && svc2.started.Load()
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}
	assert.True(t, svc1.stopped.Load())
	assert.True(t, svc2.stopped.Load())
}

func TestLifecycle_ReturnsWhenServicesFinish(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	var ran atomic.Int32
	lc.Add("one", ServiceFunc(func(context.Context) error { ran.Add(1); return nil }))
	lc.Add("two", ServiceFunc(func(context.Context) error { ran.Add(1); return nil }))

	select {
	case err := <-runAsync(lc, context.Background()):
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not return after services finished")
	}
	assert.Equal(t, int32(2), ran.Load())
}

func TestLifecycle_ServiceErrorCancelsOthers(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	blocker := &blockingService{}
	boom := errors.New("boom")
	lc.Add("blocker", blocker)
	lc.Add("failing", ServiceFunc(func(context.Context) error { return boom }))

	select {
	case err := <-runAsync(lc, context.Background()):
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failing")
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not return after a service error")
	}
	assert.True(t, blocker.stopped.Load())
}

func TestLifecycle_NoServices(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	assert.NoError(t, lc.Run(context.Background()))
}
