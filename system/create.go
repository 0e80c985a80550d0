package system

import (
	"sync/atomic"

	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/engine"
	"github.com/lixenwraith/scrollview/parameter"
)

// CreateSystem forwards one-time structural directives for newly spawned
// viewports to the presenter: clip overflow on the scroll axis, stretch the
// box, mark it hit-testable. Runs first so new viewports are interactive
// within their spawn frame.
type CreateSystem struct {
	engine.SystemBase

	// styled tracks viewports already forwarded to the presenter
	styled map[core.Entity]bool

	viewportsStyled *atomic.Int64
}

// NewCreateSystem creates the viewport setup system
func NewCreateSystem(world *engine.World) *CreateSystem {
	s := &CreateSystem{
		SystemBase: engine.NewSystemBase(world),
	}

	s.Init()
	return s
}

func (s *CreateSystem) Init() {
	s.styled = make(map[core.Entity]bool)
	s.viewportsStyled = s.World.Resources.Status.Ints.Get("create.viewports_styled")
}

func (s *CreateSystem) Name() string {
	return "create"
}

func (s *CreateSystem) Priority() int {
	return parameter.PriorityCreate
}

func (s *CreateSystem) Update() {
	presenter := s.World.Resources.Presenter.Layer

	for _, e := range s.World.Components.ScrollView.GetAllEntities() {
		if s.styled[e] {
			continue
		}
		if presenter != nil {
			presenter.ApplyViewportStyle(e)
		}
		s.styled[e] = true
		s.viewportsStyled.Add(1)
	}

	// Forget destroyed viewports so handle reuse after a world reset
	// re-triggers styling
	for e := range s.styled {
		if !s.World.Components.ScrollView.HasEntity(e) {
			delete(s.styled, e)
		}
	}
}
