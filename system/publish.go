package system

import (
	"sync/atomic"

	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/engine"
	"github.com/lixenwraith/scrollview/event"
	"github.com/lixenwraith/scrollview/parameter"
)

// PublishSystem reflects final content offsets to the presentation layer.
// Change detection keeps the boundary quiet: only contents whose offset
// moved this frame reach the presenter, and each emits one
// EventOffsetChanged on the notification queue. Runs last.
type PublishSystem struct {
	engine.SystemBase

	// lastOffset is the offset published per content; entities absent from
	// the map count as the creation default of zero
	lastOffset map[core.Entity]float64

	published *atomic.Int64
}

// NewPublishSystem creates the offset publisher
func NewPublishSystem(world *engine.World) *PublishSystem {
	s := &PublishSystem{
		SystemBase: engine.NewSystemBase(world),
	}

	s.Init()
	return s
}

func (s *PublishSystem) Init() {
	s.lastOffset = make(map[core.Entity]float64)
	s.published = s.World.Resources.Status.Ints.Get("publish.offsets_published")
}

func (s *PublishSystem) Name() string {
	return "publish"
}

func (s *PublishSystem) Priority() int {
	return parameter.PriorityPublish
}

func (s *PublishSystem) Update() {
	presenter := s.World.Resources.Presenter.Layer

	for _, e := range s.World.Components.Content.GetAllEntities() {
		content, ok := s.World.Components.Content.GetComponent(e)
		if !ok {
			continue
		}
		if content.OffsetY == s.lastOffset[e] {
			continue
		}
		s.lastOffset[e] = content.OffsetY

		if presenter != nil {
			presenter.SetContentOffset(e, content.OffsetY)
		}
		s.World.PushNotification(event.EventOffsetChanged, &event.OffsetChangedPayload{
			Viewport: s.World.Parent(e),
			Content:  e,
			OffsetY:  content.OffsetY,
		})
		s.published.Add(1)
	}

	// Drop bookkeeping for destroyed contents
	for e := range s.lastOffset {
		if !s.World.Components.Content.HasEntity(e) {
			delete(s.lastOffset, e)
		}
	}
}
