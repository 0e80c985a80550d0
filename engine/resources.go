package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/event"
	"github.com/lixenwraith/scrollview/status"
)

// Resource holds singleton world resources, initialized during world
// creation and accessed by systems via World.Resources. Input-side
// resources are written by the host adapter before each Update; systems
// consume them read-only.
type Resource struct {
	Time        *TimeResource
	Layout      *LayoutResource
	Pointer     *PointerResource
	Touch       *TouchResource
	Interaction *InteractionResource

	// Input carries host -> systems events (wheel, scroll-to requests)
	Input *QueueResource

	// Notify carries systems -> host events (offset changed, drag lifecycle)
	Notify *QueueResource

	// Presenter is the presentation-layer boundary
	Presenter *PresenterResource

	// Telemetry
	Status *status.Registry
}

func newResource() Resource {
	return Resource{
		Time:        &TimeResource{},
		Layout:      NewLayoutResource(),
		Pointer:     &PointerResource{},
		Touch:       NewTouchResource(),
		Interaction: NewInteractionResource(),
		Input:       &QueueResource{Queue: event.NewQueue()},
		Notify:      &QueueResource{Queue: event.NewQueue()},
		Presenter:   &PresenterResource{},
		Status:      status.NewRegistry(),
	}
}

// === Frame clock ===

// TimeResource wraps frame time data for systems
// It is updated by the host at the start of a frame, under the world lock
type TimeResource struct {
	// RealTime is the wall-clock time of the current frame
	RealTime time.Time

	// DeltaTime is the duration since the last frame
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
// Must be called under the world update lock to prevent races with system reads
func (tr *TimeResource) Update(realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// DeltaSeconds returns the frame delta as float seconds
func (tr *TimeResource) DeltaSeconds() float64 {
	return tr.DeltaTime.Seconds()
}

// === Layout measurement collaborator ===

// LayoutResource holds per-entity measured box heights, refreshed by the
// host once layout is resolved each frame. The bounds resolver consumes
// it read-only; a missing measurement is a valid "no layout yet" state.
type LayoutResource struct {
	mu      sync.RWMutex
	heights map[core.Entity]float64
}

func NewLayoutResource() *LayoutResource {
	return &LayoutResource{
		heights: make(map[core.Entity]float64),
	}
}

// SetHeight records the measured height for an entity
func (l *LayoutResource) SetHeight(e core.Entity, h float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.heights[e] = h
}

// Height returns the measured height and whether one exists
func (l *LayoutResource) Height(e core.Entity) (float64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	h, ok := l.heights[e]
	return h, ok
}

// Remove forgets the measurement for an entity
func (l *LayoutResource) Remove(e core.Entity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.heights, e)
}

// Clear forgets all measurements
func (l *LayoutResource) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.heights = make(map[core.Entity]float64)
}

// === Pointer collaborator ===

// PointerResource holds the global pointer position for the current frame.
// Available is false when the pointer is outside the window; samplers then
// skip the frame entirely.
type PointerResource struct {
	Available bool
	X, Y      float64
}

// Update modifies PointerResource fields in-place (zero allocation)
// Must be called under the world update lock
func (p *PointerResource) Update(available bool, x, y float64) {
	p.Available = available
	p.X = x
	p.Y = y
}

// === Touch collaborator ===

// Touch is one active touch point with its device-reported per-frame delta
type Touch struct {
	ID             int64
	X, Y           float64
	DeltaX, DeltaY float64
}

// TouchResource holds the active touch points for the current frame
type TouchResource struct {
	mu      sync.RWMutex
	touches []Touch
}

func NewTouchResource() *TouchResource {
	return &TouchResource{}
}

// Set replaces the active touch set for this frame
func (t *TouchResource) Set(touches []Touch) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touches = append(t.touches[:0], touches...)
}

// All returns a copy of the active touches
func (t *TouchResource) All() []Touch {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.touches) == 0 {
		return nil
	}
	result := make([]Touch, len(t.touches))
	copy(result, t.touches)
	return result
}

// Clear removes all active touches
func (t *TouchResource) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touches = t.touches[:0]
}

// === Interaction-state collaborator ===

// InteractionResource holds the host-supplied tri-state per viewport entity
type InteractionResource struct {
	mu     sync.RWMutex
	states map[core.Entity]core.Interaction
}

func NewInteractionResource() *InteractionResource {
	return &InteractionResource{
		states: make(map[core.Entity]core.Interaction),
	}
}

// Set records the interaction state for an entity
func (ir *InteractionResource) Set(e core.Entity, state core.Interaction) {
	ir.mu.Lock()
	defer ir.mu.Unlock()
	if state == core.InteractionNone {
		delete(ir.states, e)
		return
	}
	ir.states[e] = state
}

// Get returns the interaction state for an entity (None if unset)
func (ir *InteractionResource) Get(e core.Entity) core.Interaction {
	ir.mu.RLock()
	defer ir.mu.RUnlock()
	return ir.states[e]
}

// Remove forgets the state for an entity
func (ir *InteractionResource) Remove(e core.Entity) {
	ir.mu.Lock()
	defer ir.mu.Unlock()
	delete(ir.states, e)
}

// Clear forgets all interaction states
func (ir *InteractionResource) Clear() {
	ir.mu.Lock()
	defer ir.mu.Unlock()
	ir.states = make(map[core.Entity]core.Interaction)
}

// === Event queues ===

// QueueResource wraps an event queue for system access
type QueueResource struct {
	Queue *event.Queue
}

// === Presentation layer boundary ===

// Presenter is the minimal presentation interface the scroll pipeline
// drives. Hosts implement it over their rendering layer.
type Presenter interface {
	// ApplyViewportStyle receives the one-time structural directives for a
	// new viewport: clip overflow on the scroll axis, stretch the box, and
	// mark it hit-testable for interaction tracking.
	ApplyViewportStyle(viewport core.Entity)

	// SetContentOffset repositions a content entity by a direct positional
	// translation along the scroll axis. Invoked only when the offset
	// changed in the current frame.
	SetContentOffset(content core.Entity, offsetY float64)
}

// PresenterResource wraps the presenter for system access.
// A nil Layer is valid; publishing then only emits notification events.
type PresenterResource struct {
	Layer Presenter
}
