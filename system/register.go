package system

import (
	"github.com/lixenwraith/scrollview/engine"
)

// Pipeline holds the registered scroll systems so hosts can apply tuning
// after registration.
type Pipeline struct {
	Create  *CreateSystem
	Pointer *PointerSystem
	Touch   *TouchSystem
	Wheel   *WheelSystem
	Fling   *FlingSystem
	Publish *PublishSystem
}

// RegisterAll wires the full scroll pipeline into a world. Priorities keep
// the chain strict: create, pointer, touch, wheel, fling, publish.
func RegisterAll(w *engine.World) *Pipeline {
	p := &Pipeline{
		Create:  NewCreateSystem(w),
		Pointer: NewPointerSystem(w),
		Touch:   NewTouchSystem(w),
		Wheel:   NewWheelSystem(w),
		Fling:   NewFlingSystem(w),
		Publish: NewPublishSystem(w),
	}
	w.AddSystem(p.Create)
	w.AddSystem(p.Pointer)
	w.AddSystem(p.Touch)
	w.AddSystem(p.Wheel)
	w.AddSystem(p.Fling)
	w.AddSystem(p.Publish)
	return p
}
