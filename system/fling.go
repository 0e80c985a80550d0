package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/scrollview/engine"
	"github.com/lixenwraith/scrollview/event"
	"github.com/lixenwraith/scrollview/parameter"
	"github.com/lixenwraith/scrollview/physics"
	"github.com/lixenwraith/scrollview/status"
)

// FlingSystem advances momentum every frame for every viewport. It is not
// drag-state aware: while a drag is live the samplers have just written the
// smoothed velocity, so integration simply tracks the finger. Below the
// stop threshold velocity snaps to zero and the offset stays put.
type FlingSystem struct {
	engine.SystemBase

	// threshold is the stop velocity magnitude, tunable via config
	threshold float64

	activeFrames *atomic.Int64
	stops        *atomic.Int64
	lastSpeed    *status.AtomicFloat
}

// NewFlingSystem creates the momentum integrator
func NewFlingSystem(world *engine.World) *FlingSystem {
	s := &FlingSystem{
		SystemBase: engine.NewSystemBase(world),
	}

	s.Init()
	return s
}

func (s *FlingSystem) Init() {
	s.threshold = parameter.FlingStopThreshold
	s.activeFrames = s.World.Resources.Status.Ints.Get("fling.active_frames")
	s.stops = s.World.Resources.Status.Ints.Get("fling.stops")
	s.lastSpeed = s.World.Resources.Status.Floats.Get("fling.last_speed")
}

// SetStopThreshold overrides the default stop velocity (non-negative)
func (s *FlingSystem) SetStopThreshold(v float64) {
	if v >= 0 {
		s.threshold = v
	}
}

func (s *FlingSystem) Name() string {
	return "fling"
}

func (s *FlingSystem) Priority() int {
	return parameter.PriorityFling
}

func (s *FlingSystem) Update() {
	dt := s.World.Resources.Time.DeltaSeconds()

	for _, e := range s.World.Components.ScrollView.GetAllEntities() {
		view, ok := s.World.Components.ScrollView.GetComponent(e)
		if !ok {
			continue
		}

		// Bounds can go stale between drags (content mutated while idle),
		// so refresh from layout whenever measurements exist
		view.MaxScroll = resolveMaxScroll(s.World, e, view.MaxScroll)

		if math.Abs(view.Velocity) <= s.threshold {
			if view.Velocity != 0 {
				view.Velocity = 0
				s.World.Components.ScrollView.SetComponent(e, view)
				s.World.PushNotification(event.EventFlingStopped, &event.FlingStoppedPayload{Viewport: e})
				s.stops.Add(1)
			} else {
				s.World.Components.ScrollView.SetComponent(e, view)
			}
			continue
		}

		newVelocity := view.Velocity
		for _, child := range s.World.Children(e) {
			content, ok := s.World.Components.Content.GetComponent(child)
			if !ok {
				continue
			}
			offset, v := physics.Integrate(content.OffsetY, view.Velocity, view.Friction, dt)
			content.OffsetY = physics.Clamp(offset, view.MaxScroll)
			newVelocity = v
			s.World.Components.Content.SetComponent(child, content)
		}
		if newVelocity == view.Velocity {
			// No content child carried the integration; decay velocity alone
			_, newVelocity = physics.Integrate(0, view.Velocity, view.Friction, dt)
		}

		view.Velocity = newVelocity
		s.World.Components.ScrollView.SetComponent(e, view)
		s.activeFrames.Add(1)
		s.lastSpeed.Set(math.Abs(newVelocity))
	}
}
