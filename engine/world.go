package engine

import (
	"sync"

	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/event"
)

// World contains all entities, their components and the frame pipeline.
// Entity relationships use an explicit parent -> children index over integer
// handles; there are no pointer-based trees between viewport and content.
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	children map[core.Entity][]core.Entity
	parents  map[core.Entity]core.Entity

	// Component stores (public for direct system access)
	Components ComponentStore

	// Singleton resources shared by systems and the host
	Resources Resource

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an ECS world with initialized stores and resources
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		children:     make(map[core.Entity][]core.Entity),
		parents:      make(map[core.Entity]core.Entity),
		systems:      make([]System, 0),
	}
	w.Components = newComponentStore()
	w.Resources = newResource()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// AttachChild records child under parent in the relationship index.
// A child has at most one parent; re-attaching moves it.
func (w *World) AttachChild(parent, child core.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if prev, ok := w.parents[child]; ok {
		w.detachLocked(prev, child)
	}
	w.children[parent] = append(w.children[parent], child)
	w.parents[child] = parent
}

// Children returns a copy of the child list for an entity
func (w *World) Children(e core.Entity) []core.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	kids := w.children[e]
	if len(kids) == 0 {
		return nil
	}
	result := make([]core.Entity, len(kids))
	copy(result, kids)
	return result
}

// Parent returns the parent handle, or InvalidEntity for roots
func (w *World) Parent(e core.Entity) core.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if p, ok := w.parents[e]; ok {
		return p
	}
	return core.InvalidEntity
}

// DestroyEntity removes an entity, its components, and its whole subtree.
// Content children do not outlive their owning viewport.
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	subtree := w.collectSubtreeLocked(e)
	for _, victim := range subtree {
		delete(w.children, victim)
		delete(w.parents, victim)
	}
	if p, ok := w.parents[e]; ok {
		w.detachLocked(p, e)
	}
	delete(w.parents, e)
	w.mu.Unlock()

	for _, victim := range subtree {
		w.Components.removeAll(victim)
		w.Resources.Layout.Remove(victim)
		w.Resources.Interaction.Remove(victim)
	}
}

// collectSubtreeLocked gathers e and all descendants (lock held)
func (w *World) collectSubtreeLocked(e core.Entity) []core.Entity {
	result := []core.Entity{e}
	for i := 0; i < len(result); i++ {
		result = append(result, w.children[result[i]]...)
	}
	return result
}

func (w *World) detachLocked(parent, child core.Entity) {
	kids := w.children[parent]
	for i, k := range kids {
		if k == child {
			w.children[parent] = append(kids[:i], kids[i+1:]...)
			break
		}
	}
	if len(w.children[parent]) == 0 {
		delete(w.children, parent)
	}
}

// Clear removes all entities, components and relationships from the world
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.children = make(map[core.Entity][]core.Entity)
	w.parents = make(map[core.Entity]core.Entity)
	w.mu.Unlock()

	w.Components.clearAll()
	w.Resources.Layout.Clear()
	w.Resources.Interaction.Clear()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially in priority order.
// Each stage observes the previous stage's writes within the same frame.
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

// FrameNumber returns the current frame index from the time resource
func (w *World) FrameNumber() int64 {
	return w.Resources.Time.FrameNumber
}

// PushNotification emits an event on the notification queue with the
// current frame attached. This is the systems -> host channel.
func (w *World) PushNotification(eventType event.EventType, payload any) {
	w.Resources.Notify.Queue.Push(event.Event{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}
