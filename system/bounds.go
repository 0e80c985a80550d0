package system

import (
	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/engine"
	"github.com/lixenwraith/scrollview/physics"
)

// resolveMaxScroll recomputes a viewport's scroll bound from the current
// layout measurements. The bound is the most negative max_scroll over all
// measured content children. Returns fallback when the viewport height or
// every content height is unmeasured (no layout yet this frame).
func resolveMaxScroll(w *engine.World, viewport core.Entity, fallback float64) float64 {
	viewportH, ok := w.Resources.Layout.Height(viewport)
	if !ok {
		return fallback
	}

	found := false
	result := 0.0
	for _, child := range w.Children(viewport) {
		if !w.Components.Content.HasEntity(child) {
			continue
		}
		contentH, ok := w.Resources.Layout.Height(child)
		if !ok {
			continue
		}
		m := physics.MaxScroll(viewportH, contentH)
		if !found || m < result {
			result = m
		}
		found = true
	}
	if !found {
		return fallback
	}
	return result
}
