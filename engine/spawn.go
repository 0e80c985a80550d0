package engine

import (
	"github.com/lixenwraith/scrollview/component"
	"github.com/lixenwraith/scrollview/core"
)

// Entity construction helpers. UI construction code creates viewport and
// content entities with default field values; the per-frame systems mutate
// them from then on.

// SpawnScrollView creates a viewport entity carrying default scroll state.
// The CreateSystem picks it up on the next frame and forwards the one-time
// structural directives to the presenter.
func SpawnScrollView(w *World) core.Entity {
	e := w.CreateEntity()
	w.Components.ScrollView.SetComponent(e, component.NewScrollView())
	return e
}

// SpawnContent creates a content entity attached under a viewport.
// Exactly one content child per viewport is the expected usage; additional
// children are each scrolled independently with the parent's velocity.
func SpawnContent(w *World, viewport core.Entity) core.Entity {
	e := w.CreateEntity()
	w.Components.Content.SetComponent(e, component.ContentComponent{})
	w.AttachChild(viewport, e)
	return e
}
