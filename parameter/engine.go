package parameter

// Event queue sizing. Power of two so the ring index is a mask.
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
