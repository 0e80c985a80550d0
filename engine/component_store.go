package engine

import (
	"github.com/lixenwraith/scrollview/component"
	"github.com/lixenwraith/scrollview/core"
)

// ComponentStore provides typed stores for all scroll components
// Initialized once per world; systems access the fields directly
type ComponentStore struct {
	ScrollView *Store[component.ScrollViewComponent]
	Content    *Store[component.ContentComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		ScrollView: NewStore[component.ScrollViewComponent](),
		Content:    NewStore[component.ContentComponent](),
	}
}

// removeAll strips every component from an entity
func (cs *ComponentStore) removeAll(e core.Entity) {
	cs.ScrollView.RemoveEntity(e)
	cs.Content.RemoveEntity(e)
}

// clearAll empties every store
func (cs *ComponentStore) clearAll() {
	cs.ScrollView.ClearAllComponents()
	cs.Content.ClearAllComponents()
}
