package system

import (
	"sync/atomic"

	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/engine"
	"github.com/lixenwraith/scrollview/event"
	"github.com/lixenwraith/scrollview/parameter"
	"github.com/lixenwraith/scrollview/physics"
)

// WheelSystem drains the input queue once per frame. Wheel steps apply an
// immediate offset delta to every hovered viewport's content, with no
// velocity accumulation, so wheel scrolling never produces a fling.
// Line and pixel units both scale by scroll_speed and the frame delta, so
// the two input kinds land comparably. Scroll-to requests from the host are
// handled in the same drain with the same clamp rules.
type WheelSystem struct {
	engine.SystemBase

	wheelEvents      *atomic.Int64
	scrollToRequests *atomic.Int64
}

// NewWheelSystem creates the wheel and scroll-to event consumer
func NewWheelSystem(world *engine.World) *WheelSystem {
	s := &WheelSystem{
		SystemBase: engine.NewSystemBase(world),
	}

	s.Init()
	return s
}

func (s *WheelSystem) Init() {
	s.wheelEvents = s.World.Resources.Status.Ints.Get("wheel.events")
	s.scrollToRequests = s.World.Resources.Status.Ints.Get("wheel.scroll_to_requests")
}

func (s *WheelSystem) Name() string {
	return "wheel"
}

func (s *WheelSystem) Priority() int {
	return parameter.PriorityWheel
}

func (s *WheelSystem) Update() {
	events := s.World.Resources.Input.Queue.Consume()
	if len(events) == 0 {
		return
	}

	dt := s.World.Resources.Time.DeltaSeconds()

	for _, ev := range events {
		switch ev.Type {
		case event.EventWheel:
			if payload, ok := ev.Payload.(*event.WheelPayload); ok {
				s.applyWheel(payload, dt)
				s.wheelEvents.Add(1)
			}
		case event.EventScrollToRequest:
			if payload, ok := ev.Payload.(*event.ScrollToPayload); ok {
				s.applyScrollTo(payload)
				s.scrollToRequests.Add(1)
			}
		}
	}
}

// applyWheel offsets the content of every hovered viewport by one wheel step
func (s *WheelSystem) applyWheel(payload *event.WheelPayload, dt float64) {
	for _, e := range s.World.Components.ScrollView.GetAllEntities() {
		if s.World.Resources.Interaction.Get(e) != core.InteractionHovered {
			continue
		}
		view, ok := s.World.Components.ScrollView.GetComponent(e)
		if !ok {
			continue
		}

		// Both units take the same time scaling so line steps and
		// high-resolution deltas land comparably
		var delta float64
		switch payload.Unit {
		case core.UnitLine:
			delta = payload.DeltaY * view.ScrollSpeed * dt
		case core.UnitPixel:
			delta = payload.DeltaY * view.ScrollSpeed * dt
		}

		s.shiftContents(e, view.MaxScroll, func(offset, maxScroll float64) float64 {
			return physics.Clamp(offset+delta, maxScroll)
		})
	}
}

// applyScrollTo jumps a viewport's content to an absolute offset.
// Momentum is cancelled so an in-flight fling cannot drag the content away
// from the requested position on the next frame.
func (s *WheelSystem) applyScrollTo(payload *event.ScrollToPayload) {
	e := payload.Viewport
	view, ok := s.World.Components.ScrollView.GetComponent(e)
	if !ok {
		return
	}

	view.Velocity = 0
	s.World.Components.ScrollView.SetComponent(e, view)

	s.shiftContents(e, view.MaxScroll, func(_, maxScroll float64) float64 {
		return physics.Clamp(payload.TargetY, maxScroll)
	})
}

// shiftContents rewrites each content child's offset through fn, clamping
// against bounds computed fresh from that child's measurements when layout
// is known, else against the viewport's last sampled bound.
func (s *WheelSystem) shiftContents(viewport core.Entity, fallbackMax float64, fn func(offset, maxScroll float64) float64) {
	viewportH, measured := s.World.Resources.Layout.Height(viewport)

	for _, child := range s.World.Children(viewport) {
		content, ok := s.World.Components.Content.GetComponent(child)
		if !ok {
			continue
		}

		maxScroll := fallbackMax
		if measured {
			if contentH, ok := s.World.Resources.Layout.Height(child); ok {
				maxScroll = physics.MaxScroll(viewportH, contentH)
			}
		}

		content.OffsetY = fn(content.OffsetY, maxScroll)
		s.World.Components.Content.SetComponent(child, content)
	}
}
