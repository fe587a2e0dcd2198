package worker_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/fostercareuk/directory-service/internal/worker"
)

type fakeWorker struct {
	name    string
	started atomic.Bool
	stop    chan struct{}
}

func newFakeWorker(name string) *fakeWorker {
	return &fakeWorker{name: name, stop: make(chan struct{})}
}

func (w *fakeWorker) Name() string { return w.name }

func (w *fakeWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	select {
	case <-w.stop:
	case <-ctx.Done():
	}
	return nil
}

func (w *fakeWorker) Stop() error {
	close(w.stop)
	return nil
}

func TestManager(t *testing.T) {
	t.Run("start without workers fails", func(t *testing.T) {
		m := worker.NewManager(zap.NewNop())

		err := m.Start(context.Background())

		assert.Error(t, err)
	})

	t.Run("runs and stops registered workers", func(t *testing.T) {
		m := worker.NewManager(zap.NewNop())
		first := newFakeWorker("first")
		second := newFakeWorker("second")
		m.Register(first)
		m.Register(second)

		err := m.Start(context.Background())
		assert.NoError(t, err)

		err = m.Stop()

		assert.NoError(t, err)
		assert.True(t, first.started.Load())
		assert.True(t, second.started.Load())
	})
}
