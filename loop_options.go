package flip

import (
	"fmt"
	"time"

	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
)

// LoopOption is a functional option for configuring a Loop.
type LoopOption func(*Loop) error

// WithFrameRate sets how often the frame hook runs.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) LoopOption {
	return func(l *Loop) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		l.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) LoopOption {
	return func(l *Loop) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		l.eventQueueSize = size
		return nil
	}
}

// WithOnFrame sets the hook run once per frame, typically a redraw.
func WithOnFrame(fn func()) LoopOption {
	return func(l *Loop) error {
		l.onFrame = fn
		return nil
	}
}

// WithLoopClock sets the clock frames are timed against.
func WithLoopClock(clock clockz.Clock) LoopOption {
	return func(l *Loop) error {
		if clock == nil {
			return fmt.Errorf("clock must not be nil")
		}
		l.clock = clock
		return nil
	}
}

// WithLoopLogger sets the loop's logger.
func WithLoopLogger(logger *zap.Logger) LoopOption {
	return func(l *Loop) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		l.logger = logger
		return nil
	}
}
