package system

import (
	"math"
	"time"

	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/engine"
)

// newTestWorld builds a world with the full pipeline registered and a
// deterministic clock anchored at a fixed epoch.
func newTestWorld() *engine.World {
	w := engine.NewWorld()
	RegisterAll(w)
	w.Resources.Time.Update(time.Unix(1000, 0), 0, 0)
	return w
}

// step advances the frame clock by dt seconds and runs one pipeline pass
func step(w *engine.World, dt float64) {
	delta := time.Duration(dt * float64(time.Second))
	w.Resources.Time.Update(
		w.Resources.Time.RealTime.Add(delta),
		delta,
		w.Resources.Time.FrameNumber+1,
	)
	w.Update()
}

// spawnBareView creates a viewport with no content child and no layout
func spawnBareView(w *engine.World) core.Entity {
	return engine.SpawnScrollView(w)
}

// spawnMeasuredView creates a viewport+content pair with recorded heights
func spawnMeasuredView(w *engine.World, viewportH, contentH float64) (core.Entity, core.Entity) {
	viewport := engine.SpawnScrollView(w)
	content := engine.SpawnContent(w, viewport)
	w.Resources.Layout.SetHeight(viewport, viewportH)
	w.Resources.Layout.SetHeight(content, contentH)
	return viewport, content
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// recordingPresenter captures presenter boundary calls for assertions
type recordingPresenter struct {
	styled  []core.Entity
	offsets []offsetCall
}

type offsetCall struct {
	content core.Entity
	offsetY float64
}

func (p *recordingPresenter) ApplyViewportStyle(viewport core.Entity) {
	p.styled = append(p.styled, viewport)
}

func (p *recordingPresenter) SetContentOffset(content core.Entity, offsetY float64) {
	p.offsets = append(p.offsets, offsetCall{content: content, offsetY: offsetY})
}
