package component

import (
	"github.com/lixenwraith/scrollview/parameter"
)

// DragState is the pointer-drag phase of a scroll view.
// The anchor coordinate only exists while dragging, so "no anchor means not
// dragging" holds structurally. The zero value is Idle.
type DragState struct {
	dragging bool
	anchor   float64
}

// DragIdle returns the released state.
func DragIdle() DragState {
	return DragState{}
}

// DragAt returns an active drag anchored at the given vertical coordinate.
func DragAt(anchor float64) DragState {
	return DragState{dragging: true, anchor: anchor}
}

// Anchor returns the last sampled pointer coordinate and whether a drag is active.
func (d DragState) Anchor() (float64, bool) {
	return d.anchor, d.dragging
}

// Dragging reports whether a drag is active.
func (d DragState) Dragging() bool {
	return d.dragging
}

// ScrollViewComponent holds the per-viewport scroll state.
// The viewport entity carrying it is expected to be clipped by the
// presentation layer; content offsets are applied to its children.
type ScrollViewComponent struct {
	// ScrollSpeed is the multiplier applied to wheel input.
	// Negative values invert scroll direction.
	ScrollSpeed float64

	// Friction is the exponential deceleration rate of a fling, per second.
	// Must be strictly positive and finite; the physics core does not
	// validate it.
	Friction float64

	// Drag is the pointer sampler state machine.
	Drag DragState

	// Velocity is the current signed scroll velocity in content units
	// per second.
	Velocity float64

	// MaxScroll is the most negative permissible offset, always <= 0.
	// Refreshed from layout measurements while a drag or fling is active.
	MaxScroll float64
}

// NewScrollView returns a scroll view with default tuning.
func NewScrollView() ScrollViewComponent {
	return ScrollViewComponent{
		ScrollSpeed: parameter.DefaultScrollSpeed,
		Friction:    parameter.DefaultFriction,
	}
}
