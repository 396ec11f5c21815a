package flip

import (
	"time"

	"github.com/zoobzio/clockz"

	"github.com/grindlemire/go-flip/internal/debug"
)

// Watcher represents a deferred event source that starts when the loop runs.
type Watcher interface {
	// Start begins the watcher goroutine. Called by Loop.Run or Loop.Watch.
	// The eventQueue channel and stopCh are provided by the Loop.
	Start(eventQueue chan<- func(), stopCh <-chan struct{})
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// Watch creates a channel watcher. The handler is called on the loop
// whenever data arrives on the channel.
func Watch[T any](ch <-chan T, handler func(T)) Watcher {
	return &ChannelWatcher[T]{ch: ch, handler: handler}
}

// Start the watcher.
func (w *ChannelWatcher[T]) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case val, ok := <-w.ch:
				if !ok {
					return
				}
				select {
				case eventQueue <- func() { w.handler(val) }:
				case <-stopCh:
					return
				}
			}
		}
	}()
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	clock    clockz.Clock
	interval time.Duration
	handler  func()
}

// OnTimer creates a timer watcher that fires at the given interval.
// The handler is called on the loop.
func OnTimer(clock clockz.Clock, interval time.Duration, handler func()) Watcher {
	return &timerWatcher{clock: clock, interval: interval, handler: handler}
}

// Start the watcher.
func (w *timerWatcher) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		debug.Logger().Debug("timerWatcher started")
		ticker := w.clock.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C():
				select {
				case eventQueue <- w.handler:
				case <-stopCh:
					return
				}
			}
		}
	}()
}
