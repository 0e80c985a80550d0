package event

// EventType represents the type of scroll event
type EventType int

const (
	// === Input Events (host -> systems, input queue) ===

	// EventWheel carries one discrete wheel step toward hovered viewports
	// Trigger: Host input adapter on wheel motion
	// Consumer: WheelSystem | Payload: *WheelPayload
	EventWheel EventType = iota

	// EventScrollToRequest signals a programmatic jump to an absolute offset
	// Trigger: Host code (keyboard paging, scroll-into-view)
	// Consumer: WheelSystem | Payload: *ScrollToPayload
	EventScrollToRequest

	// === Notification Events (systems -> host, notification queue) ===

	// EventOffsetChanged signals a content offset moved this frame
	// Trigger: PublishSystem after the fling stage
	// Consumer: Host presentation layer | Payload: *OffsetChangedPayload
	EventOffsetChanged

	// EventDragStarted signals a pointer drag began on a viewport
	// Trigger: PointerSystem on Idle -> Dragging transition
	// Consumer: Host (cursor feedback, telemetry) | Payload: *DragPayload
	EventDragStarted

	// EventDragEnded signals a pointer drag released
	// Trigger: PointerSystem on Dragging -> Idle transition
	// Consumer: Host | Payload: *DragPayload
	EventDragEnded

	// EventFlingStopped signals momentum decayed below the stop threshold
	// Trigger: FlingSystem when velocity snaps to zero
	// Consumer: Host | Payload: *FlingStoppedPayload
	EventFlingStopped
)

// Event represents a single scroll event with frame metadata
type Event struct {
	Type    EventType
	Payload any
	Frame   int64
}
