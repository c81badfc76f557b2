// Package polling implements the poll-until-terminal loop used to watch
// long-running backend operations (repository indexing, audits, generic
// jobs). A watcher fires at a fixed interval with no backoff and stops as
// soon as a step reports a terminal observation, an error, or the watcher
// is cancelled.
package polling

import (
	"context"
	"time"
)

// StepFunc performs one status poll. Returning done=true stops the
// watcher. Returning an error also stops the watcher; steps that want to
// keep polling through transient failures should swallow the error and
// return done=false.
type StepFunc func(ctx context.Context) (done bool, err error)

// Watcher is a handle to a running poll loop. The owning view's teardown
// must always call Cancel; it is safe to call more than once and safe to
// call after the loop has already stopped.
type Watcher struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Start begins polling immediately and then at every interval tick.
// The step receives a context that is cancelled by Cancel; steps should
// consult it before publishing results so that nothing is acted on after
// the owner has gone away.
func Start(interval time.Duration, step StepFunc) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go w.run(ctx, interval, step)
	return w
}

// Cancel stops the watcher. Any poll already in flight may still complete
// its HTTP request, but its result is discarded because the step context
// is cancelled.
func (w *Watcher) Cancel() {
	w.cancel()
}

// Done is closed once the loop has fully stopped, whatever the reason.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) run(ctx context.Context, interval time.Duration, step StepFunc) {
	defer close(w.done)
	defer w.cancel()

	if done, err := step(ctx); done || err != nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if done, err := step(ctx); done || err != nil {
				return
			}
		}
	}
}
