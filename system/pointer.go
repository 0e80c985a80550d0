package system

import (
	"sync/atomic"

	"github.com/lixenwraith/scrollview/component"
	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/engine"
	"github.com/lixenwraith/scrollview/event"
	"github.com/lixenwraith/scrollview/parameter"
	"github.com/lixenwraith/scrollview/physics"
)

// PointerSystem samples pointer drags into a smoothed scroll velocity.
// Per viewport it runs an Idle/Dragging state machine keyed on the pressed
// interaction state: the anchor tracks the last sampled pointer Y, each
// dragged frame contributes delta/dt through exponential smoothing, and
// release carries the velocity into the fling stage untouched.
type PointerSystem struct {
	engine.SystemBase

	dragFrames *atomic.Int64
	dragStarts *atomic.Int64

	// dragging reports whether any viewport held a live drag after the
	// last sampled frame
	dragging *atomic.Bool
}

// NewPointerSystem creates the pointer drag sampler
func NewPointerSystem(world *engine.World) *PointerSystem {
	s := &PointerSystem{
		SystemBase: engine.NewSystemBase(world),
	}

	s.Init()
	return s
}

func (s *PointerSystem) Init() {
	s.dragFrames = s.World.Resources.Status.Ints.Get("pointer.drag_frames")
	s.dragStarts = s.World.Resources.Status.Ints.Get("pointer.drag_starts")
	s.dragging = s.World.Resources.Status.Bools.Get("pointer.dragging")
}

func (s *PointerSystem) Name() string {
	return "pointer"
}

func (s *PointerSystem) Priority() int {
	return parameter.PriorityPointer
}

func (s *PointerSystem) Update() {
	pointer := s.World.Resources.Pointer
	if !pointer.Available {
		// No global pointer position this frame: no viewport is updated,
		// active drags keep their anchor
		return
	}

	dt := s.World.Resources.Time.DeltaSeconds()
	anyDragging := false

	for _, e := range s.World.Components.ScrollView.GetAllEntities() {
		view, ok := s.World.Components.ScrollView.GetComponent(e)
		if !ok {
			continue
		}

		if s.World.Resources.Interaction.Get(e) == core.InteractionPressed {
			s.sampleDrag(e, &view, pointer.Y, dt)
			anyDragging = true
		} else if view.Drag.Dragging() {
			// Released: drop the anchor, keep the velocity for the fling
			view.Drag = component.DragIdle()
			s.World.PushNotification(event.EventDragEnded, &event.DragPayload{Viewport: e})
		} else {
			continue
		}

		s.World.Components.ScrollView.SetComponent(e, view)
	}

	s.dragging.Store(anyDragging)
}

// sampleDrag advances one dragged frame: delta against the anchor (zero on
// the first frame so a fresh press never jumps), smoothed velocity, and a
// bounds refresh since layout can change mid-drag.
func (s *PointerSystem) sampleDrag(e core.Entity, view *component.ScrollViewComponent, pointerY, dt float64) {
	delta := 0.0
	if anchor, dragging := view.Drag.Anchor(); dragging {
		delta = pointerY - anchor
	} else {
		s.World.PushNotification(event.EventDragStarted, &event.DragPayload{Viewport: e})
		s.dragStarts.Add(1)
	}
	view.Drag = component.DragAt(pointerY)

	view.Velocity = physics.SmoothVelocity(view.Velocity, delta, dt)
	view.MaxScroll = resolveMaxScroll(s.World, e, view.MaxScroll)
	s.dragFrames.Add(1)
}
