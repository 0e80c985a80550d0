package event

import (
	"github.com/lixenwraith/scrollview/core"
)

// WheelPayload is one discrete wheel step.
// DeltaY is positive for scrolling the content downward (wheel toward the
// user on conventional setups is negative).
type WheelPayload struct {
	Unit   core.ScrollUnit
	DeltaY float64
}

// ScrollToPayload requests an absolute content offset on a viewport.
// The target is clamped against the viewport's current bounds when applied.
type ScrollToPayload struct {
	Viewport core.Entity
	TargetY  float64
}

// OffsetChangedPayload reports a published content offset.
type OffsetChangedPayload struct {
	Viewport core.Entity
	Content  core.Entity
	OffsetY  float64
}

// DragPayload identifies the viewport a drag transition occurred on.
type DragPayload struct {
	Viewport core.Entity
}

// FlingStoppedPayload identifies the viewport whose momentum reached a
// full stop.
type FlingStoppedPayload struct {
	Viewport core.Entity
}
