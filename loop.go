package flip

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flip/internal/debug"
)

// Loop is the single-threaded main loop. Every Flipper, Zone, Element and
// Timeline operation is expected to run on it; other goroutines hand work
// over with Post or through a Watcher.
type Loop struct {
	clock          clockz.Clock
	logger         *zap.Logger
	frameDuration  time.Duration
	eventQueueSize int
	onFrame        func()

	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once

	mu       sync.Mutex
	running  bool
	watchers []Watcher
}

// NewLoop creates a Loop with the given options.
func NewLoop(opts ...LoopOption) (*Loop, error) {
	l := &Loop{
		clock:          clockz.RealClock,
		logger:         debug.Logger(),
		frameDuration:  time.Second / 60,
		eventQueueSize: 256,
		stopCh:         make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("configure loop: %w", err)
		}
	}
	l.eventQueue = make(chan func(), l.eventQueueSize)
	return l, nil
}

// Post enqueues fn to run on the loop. Safe to call from any goroutine.
// It returns false if the loop is stopping or the queue is full.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopCh:
		return false
	default:
	}
	select {
	case l.eventQueue <- fn:
		return true
	default:
		l.logger.Debug("event queue full, dropping update")
		return false
	}
}

// Watch registers a watcher. If the loop is already running the watcher
// starts immediately, otherwise it starts when Run is called.
func (l *Loop) Watch(w Watcher) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		w.Start(l.eventQueue, l.stopCh)
		return
	}
	l.watchers = append(l.watchers, w)
}

// Run processes queued work and calls the frame hook once per frame until
// Stop is called or ctx is done. Watchers are stopped on return.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return fmt.Errorf("loop already running")
	}
	l.running = true
	for _, w := range l.watchers {
		w.Start(l.eventQueue, l.stopCh)
	}
	l.watchers = nil
	l.mu.Unlock()
	defer l.Stop()

	frames := l.clock.NewTicker(l.frameDuration)
	defer frames.Stop()

	l.frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stopCh:
			return nil
		case handler := <-l.eventQueue:
			handler()
		case <-frames.C():
			l.frame()
		}
	}
}

// Drain runs everything currently queued without blocking and returns how
// many functions ran. Work queued by those functions runs too.
func (l *Loop) Drain() int {
	n := 0
	for {
		select {
		case handler := <-l.eventQueue:
			handler()
			n++
		default:
			return n
		}
	}
}

// Stop signals Run to exit and stops all watchers.
// Stop is idempotent - multiple calls are safe.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
}

func (l *Loop) frame() {
	if l.onFrame != nil {
		l.onFrame()
	}
}
