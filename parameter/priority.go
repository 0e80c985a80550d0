package parameter

// System Execution Priorities (lower runs first)
// The scroll pipeline is a strict chain: a drag's velocity estimate must be
// sampled before fling consumes it, and fling must run before publish.
const (
	PriorityCreate  = 10
	PriorityPointer = 20
	PriorityTouch   = 30
	PriorityWheel   = 40
	PriorityFling   = 50
	PriorityPublish = 60
)
