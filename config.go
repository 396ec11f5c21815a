package flip

import (
	"maps"
	"time"
)

// DefaultFlipDuration is how long an item takes to glide to its new position
// when Config.FlipDuration is zero.
const DefaultFlipDuration = 200 * time.Millisecond

// Config is the per-zone configuration. The whole value, defaults merged in,
// is handed to the reorder engine on Init and on every Update.
type Config struct {
	// Items is the ordered list the container renders, one child per item.
	Items []any

	// FlipDuration is the length of the reposition animation. Zero selects
	// DefaultFlipDuration.
	FlipDuration time.Duration

	// IDKey names the item field holding the identity key. Empty selects
	// the process-wide default (see SetDefaultIDKey).
	IDKey string

	// Extra carries engine options this package does not interpret.
	Extra map[string]any
}

// withDefaults returns a copy of c with unset fields filled in.
func (c Config) withDefaults(idKey string) Config {
	if c.FlipDuration == 0 {
		c.FlipDuration = DefaultFlipDuration
	}
	if c.IDKey == "" {
		c.IDKey = idKey
	}
	c.Extra = maps.Clone(c.Extra)
	return c
}

// KeyName returns the identity key name items are read with: IDKey, or the
// process-wide default when it is empty.
func (c Config) KeyName() string {
	if c.IDKey != "" {
		return c.IDKey
	}
	return DefaultIDKeyName()
}

// IDs returns the identity key of every item, in order.
func (c Config) IDs() []any {
	return ItemIDs(c.Items, c.KeyName())
}
