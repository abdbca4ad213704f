package app

import (
	"context"
	"sync"
	"sync/atomic"

	"blackjack/internal/debug"
	"blackjack/internal/shutdown"
)

// Runner is a blocking loop that stops when its context is cancelled.
type Runner interface {
	Run(ctx context.Context) error
}

type Lifecycle struct {
	shutdown *shutdown.Manager
	logger   debug.Logger

	mu        sync.Mutex
	err       error
	wg        sync.WaitGroup
	requested atomic.Bool
}

func NewLifecycle(sm *shutdown.Manager, log debug.Logger) *Lifecycle {
	return &Lifecycle{
		shutdown: sm,
		logger:   log,
	}
}

// Start runs r in the background and begins listening for termination
// signals. onStop is called when r returns an error, or when a signal
// ends it before Shutdown was called.
func (l *Lifecycle) Start(ctx context.Context, r Runner, onStop func()) {
	l.shutdown.Listen()

	runCtx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-l.shutdown.Context().Done():
		case <-runCtx.Done():
		}
		cancel()
	}()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer cancel()

		err := r.Run(runCtx)
		if err != nil {
			l.mu.Lock()
			l.err = err
			l.mu.Unlock()

			l.logger.Error("Lifecycle", err, map[string]interface{}{
				"stage": "frame loop",
			})
		}

		if err != nil || !l.requested.Load() && l.shutdown.Context().Err() != nil {
			onStop()
		}
	}()
}

// Shutdown stops every registered component once and waits for the
// background loop to return.
func (l *Lifecycle) Shutdown() {
	l.requested.Store(true)
	l.shutdown.Shutdown()
	l.wg.Wait()
}

// Err reports the error that ended the background loop, if any.
func (l *Lifecycle) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
