package system

import (
	"testing"

	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/engine"
)

func TestPipelineOrderIsStrict(t *testing.T) {
	w := newTestWorld()

	want := []string{"create", "pointer", "touch", "wheel", "fling", "publish"}
	systems := w.Systems()
	if len(systems) != len(want) {
		t.Fatalf("registered %d systems, want %d", len(systems), len(want))
	}
	for i, s := range systems {
		if s.Name() != want[i] {
			t.Errorf("position %d is %q, want %q", i, s.Name(), want[i])
		}
	}
}

func TestPipelineSystemsShareWorld(t *testing.T) {
	w := engine.NewWorld()

	p := RegisterAll(w)
	if p.Create.World != w || p.Pointer.World != w || p.Touch.World != w ||
		p.Wheel.World != w || p.Fling.World != w || p.Publish.World != w {
		t.Error("a pipeline system holds a different world than it was registered on")
	}
}

// A drag frame's freshly sampled velocity must reach the integrator within
// the same Update, so the content visibly tracks the finger with no
// one-frame lag.
func TestSampledVelocityConsumedSameFrame(t *testing.T) {
	w := newTestWorld()
	viewport, content := spawnMeasuredView(w, 100, 300)

	w.Resources.Interaction.Set(viewport, core.InteractionPressed)
	w.Resources.Pointer.Update(true, 10, 100)
	step(w, 0.016)

	// Large downward drag: positive delta, positive velocity, offset
	// integrates toward max_scroll in this very frame
	w.Resources.Pointer.Update(true, 10, 150)
	step(w, 0.016)

	got, _ := w.Components.Content.GetComponent(content)
	if got.OffsetY >= 0 {
		t.Errorf("offset = %v, want negative movement in the drag frame itself", got.OffsetY)
	}
}

func TestIndependentViewportsNoCrosstalk(t *testing.T) {
	w := newTestWorld()
	draggedView, draggedContent := spawnMeasuredView(w, 100, 300)
	otherView, otherContent := spawnMeasuredView(w, 100, 300)

	w.Resources.Interaction.Set(draggedView, core.InteractionPressed)
	w.Resources.Pointer.Update(true, 10, 100)
	step(w, 0.016)
	w.Resources.Pointer.Update(true, 10, 150)
	step(w, 0.016)

	dragged, _ := w.Components.ScrollView.GetComponent(draggedView)
	other, _ := w.Components.ScrollView.GetComponent(otherView)
	if dragged.Velocity == 0 {
		t.Error("dragged viewport gained no velocity")
	}
	if other.Velocity != 0 {
		t.Errorf("undragged viewport gained velocity %v", other.Velocity)
	}

	got, _ := w.Components.Content.GetComponent(draggedContent)
	if got.OffsetY == 0 {
		t.Error("dragged content did not move")
	}
	untouched, _ := w.Components.Content.GetComponent(otherContent)
	if untouched.OffsetY != 0 {
		t.Errorf("undragged content moved to %v", untouched.OffsetY)
	}
}
