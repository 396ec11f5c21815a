package flip

import "go.uber.org/zap"

// ZoneOption is a functional option for configuring a Zone.
type ZoneOption func(*Zone) error

// WithFinalize sets a distinct handler for committed reorders.
// Without it, finalize notifications go to the consider handler.
func WithFinalize(h Handler) ZoneOption {
	return func(z *Zone) error {
		if h == nil {
			return ErrNilHandler
		}
		z.onFinalize = h
		return nil
	}
}

// WithZoneEasing sets the timing curve of the zone's animations.
// Default is EaseOut.
func WithZoneEasing(e Easing) ZoneOption {
	return func(z *Zone) error {
		z.easing = e
		return nil
	}
}

// WithLogger sets the zone's logger. The zone's Flipper logs through it too.
func WithLogger(l *zap.Logger) ZoneOption {
	return func(z *Zone) error {
		if l == nil {
			l = zap.NewNop()
		}
		z.logger = l
		return nil
	}
}
