package parameter

// Scroll physics tuning. Hosts override per-viewport or via config.

const (
	// DefaultScrollSpeed is the scalar multiplier applied to wheel input,
	// in content units per line-step per second. Negative inverts direction.
	DefaultScrollSpeed = 200.0

	// DefaultFriction is the exponential deceleration rate of a fling,
	// per second. Must be strictly positive and finite; validated at
	// config load, never in the per-frame physics path.
	DefaultFriction = 4.2

	// FlingStopThreshold is the speed (content units per second) at or
	// below which a fling snaps to a full stop.
	FlingStopThreshold = 16.0
)
