package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollview/core"
)

// Viewport is one scrollable text pane on the screen. The host owns the
// pane geometry and its text; the scroll pipeline owns the offset.
type Viewport struct {
	// Entity is the scroll view handle in the world
	Entity core.Entity

	// Content is the child entity carrying the offset
	Content core.Entity

	// Rect is the pane's screen region in cells
	Rect core.Rect

	// Lines is the scrollable text, one content row per line
	Lines []string

	// Style draws the pane's text
	Style tcell.Style

	// interactive is set by the presenter's structural directive;
	// non-interactive panes are skipped during hit-testing
	interactive bool

	// offsetY is the last published content offset in rows
	offsetY float64
}

// OffsetY returns the last published content offset in rows (always <= 0)
func (v *Viewport) OffsetY() float64 {
	return v.offsetY
}

// contains reports whether a screen cell lies inside the pane
func (v *Viewport) contains(x, y int) bool {
	return v.interactive && v.Rect.Contains(core.Point{X: float64(x), Y: float64(y)})
}
