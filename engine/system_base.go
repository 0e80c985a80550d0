package engine

// System is the interface all pipeline stages implement.
// Systems run once per frame in priority order (lower first).
type System interface {
	// Name returns the system's registry name
	Name() string

	// Priority orders execution; lower values run first
	Priority() int

	// Update runs the system for the current frame
	Update()
}

// SystemBase provides common dependencies for all systems
// Embed in a system struct to eliminate boilerplate
type SystemBase struct {
	World *World
}

// NewSystemBase initializes base dependencies from the world
// Call once in the system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{World: w}
}
