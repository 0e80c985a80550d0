package system

import (
	"sync/atomic"

	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/engine"
	"github.com/lixenwraith/scrollview/parameter"
	"github.com/lixenwraith/scrollview/physics"
)

// TouchSystem samples active touch points into a smoothed scroll velocity.
// Unlike the pointer sampler there is no anchor tracking: the device reports
// the per-frame displacement directly. Only pressed viewports are updated;
// when several touches land on the same viewport in one frame the last
// processed touch wins.
type TouchSystem struct {
	engine.SystemBase

	touchSamples *atomic.Int64
}

// NewTouchSystem creates the touch drag sampler
func NewTouchSystem(world *engine.World) *TouchSystem {
	s := &TouchSystem{
		SystemBase: engine.NewSystemBase(world),
	}

	s.Init()
	return s
}

func (s *TouchSystem) Init() {
	s.touchSamples = s.World.Resources.Status.Ints.Get("touch.samples")
}

func (s *TouchSystem) Name() string {
	return "touch"
}

func (s *TouchSystem) Priority() int {
	return parameter.PriorityTouch
}

func (s *TouchSystem) Update() {
	touches := s.World.Resources.Touch.All()
	if len(touches) == 0 {
		return
	}

	dt := s.World.Resources.Time.DeltaSeconds()

	for _, e := range s.World.Components.ScrollView.GetAllEntities() {
		if s.World.Resources.Interaction.Get(e) != core.InteractionPressed {
			continue
		}
		view, ok := s.World.Components.ScrollView.GetComponent(e)
		if !ok {
			continue
		}

		// Each touch smooths against the frame-entry velocity, so the last
		// touch overwrites earlier ones instead of compounding
		base := view.Velocity
		for _, touch := range touches {
			view.Velocity = physics.SmoothVelocity(base, touch.DeltaY, dt)
			s.touchSamples.Add(1)
		}

		view.MaxScroll = resolveMaxScroll(s.World, e, view.MaxScroll)
		s.World.Components.ScrollView.SetComponent(e, view)
	}
}
