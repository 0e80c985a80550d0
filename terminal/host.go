// Package terminal adapts the scroll pipeline to a tcell screen: it owns
// the frame loop, hit-tests mouse events against registered panes, feeds
// the pointer/interaction/wheel collaborators, and renders scrolled text.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollview/config"
	"github.com/lixenwraith/scrollview/core"
	"github.com/lixenwraith/scrollview/engine"
	"github.com/lixenwraith/scrollview/event"
	"github.com/lixenwraith/scrollview/system"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Host drives the scroll world from terminal input. All world access
// happens on the frame-loop goroutine; only the event queues are touched
// from outside.
type Host struct {
	screen tcell.Screen
	world  *engine.World
	cfg    config.Config

	pipeline *system.Pipeline
	clock    engine.TimeProvider

	viewports []*Viewport
	byEntity  map[core.Entity]*Viewport
	byContent map[core.Entity]*Viewport

	// pressed is the viewport captured by the current button hold
	pressed core.Entity

	lastFrame time.Time
	frame     int64

	// OnEvent, when set, receives every notification drained from the
	// world after a frame
	OnEvent func(event.Event)
}

// NewHost wires a world, the scroll pipeline and the presenter boundary
// over an initialized screen
func NewHost(screen tcell.Screen, cfg config.Config) *Host {
	h := &Host{
		screen:    screen,
		world:     engine.NewWorld(),
		cfg:       cfg,
		clock:     engine.NewMonotonicTimeProvider(),
		byEntity:  make(map[core.Entity]*Viewport),
		byContent: make(map[core.Entity]*Viewport),
		pressed:   core.InvalidEntity,
	}
	h.pipeline = system.RegisterAll(h.world)
	h.pipeline.Fling.SetStopThreshold(cfg.StopThreshold)
	h.world.Resources.Presenter.Layer = h
	h.lastFrame = h.clock.Now()
	return h
}

// World exposes the scroll world for inspection (metrics, tests)
func (h *Host) World() *engine.World {
	return h.world
}

// SetClock swaps the frame clock; used by tests for deterministic time
func (h *Host) SetClock(clock engine.TimeProvider) {
	h.clock = clock
	h.lastFrame = clock.Now()
}

// AddViewport registers a scrollable text pane at the given screen region
func (h *Host) AddViewport(rect core.Rect, lines []string, style tcell.Style) *Viewport {
	e := engine.SpawnScrollView(h.world)
	h.world.Components.ScrollView.SetComponent(e, h.cfg.ScrollView())
	content := engine.SpawnContent(h.world, e)

	v := &Viewport{
		Entity:  e,
		Content: content,
		Rect:    rect,
		Lines:   lines,
		Style:   style,
	}
	h.viewports = append(h.viewports, v)
	h.byEntity[e] = v
	h.byContent[content] = v
	return v
}

// ScrollTo requests a programmatic jump to an absolute offset (in rows,
// always <= 0); the pipeline clamps it against current bounds
func (h *Host) ScrollTo(v *Viewport, offsetY float64) {
	h.world.Resources.Input.Queue.Push(event.Event{
		Type:    event.EventScrollToRequest,
		Payload: &event.ScrollToPayload{Viewport: v.Entity, TargetY: offsetY},
	})
}

// === Presenter boundary ===

// ApplyViewportStyle marks a pane hit-testable. Clipping and box stretch
// are inherent to cell rendering, so the directive reduces to interaction
// tracking here.
func (h *Host) ApplyViewportStyle(viewport core.Entity) {
	if v, ok := h.byEntity[viewport]; ok {
		v.interactive = true
	}
}

// SetContentOffset records the published offset for rendering
func (h *Host) SetContentOffset(content core.Entity, offsetY float64) {
	if v, ok := h.byContent[content]; ok {
		v.offsetY = offsetY
	}
}

// === Input translation ===

// HandleMouse folds one tcell mouse event into the input collaborators
func (h *Host) HandleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	h.world.Resources.Pointer.Update(true, float64(x), float64(y))

	if buttons&tcell.WheelUp != 0 {
		h.pushWheel(1)
	}
	if buttons&tcell.WheelDown != 0 {
		h.pushWheel(-1)
	}

	hit := h.hitTest(x, y)

	if buttons&tcell.Button1 != 0 {
		// A fresh press captures the pane under the pointer; the capture
		// survives until release even if the pointer leaves the pane
		if h.pressed == core.InvalidEntity && hit != nil {
			h.pressed = hit.Entity
		}
	} else {
		h.pressed = core.InvalidEntity
	}

	for _, v := range h.viewports {
		switch {
		case v.Entity == h.pressed:
			h.world.Resources.Interaction.Set(v.Entity, core.InteractionPressed)
		case h.pressed == core.InvalidEntity && hit == v:
			h.world.Resources.Interaction.Set(v.Entity, core.InteractionHovered)
		default:
			h.world.Resources.Interaction.Set(v.Entity, core.InteractionNone)
		}
	}
}

func (h *Host) pushWheel(deltaY float64) {
	h.world.Resources.Input.Queue.Push(event.Event{
		Type:    event.EventWheel,
		Payload: &event.WheelPayload{Unit: core.UnitLine, DeltaY: deltaY},
	})
}

func (h *Host) hitTest(x, y int) *Viewport {
	for _, v := range h.viewports {
		if v.contains(x, y) {
			return v
		}
	}
	return nil
}

// === Frame loop ===

// Step runs one frame: refresh layout measurements, advance the clock,
// run the pipeline, drain notifications
func (h *Host) Step() {
	now := h.clock.Now()
	dt := now.Sub(h.lastFrame)
	h.lastFrame = now
	h.frame++

	for _, v := range h.viewports {
		h.world.Resources.Layout.SetHeight(v.Entity, v.Rect.H)
		h.world.Resources.Layout.SetHeight(v.Content, float64(len(v.Lines)))
	}

	h.world.RunSafe(func() {
		h.world.Resources.Time.Update(now, dt, h.frame)
		h.world.UpdateLocked()
	})

	for _, ev := range h.world.Resources.Notify.Queue.Consume() {
		if h.OnEvent != nil {
			h.OnEvent(ev)
		}
	}
}

// Draw renders every pane's visible slice of text
func (h *Host) Draw() {
	h.screen.Clear()
	for _, v := range h.viewports {
		h.drawViewport(v)
	}
	h.screen.Show()
}

func (h *Host) drawViewport(v *Viewport) {
	top := int(v.Rect.Y)
	left := int(v.Rect.X)
	width := int(v.Rect.W)
	height := int(v.Rect.H)

	// offsetY <= 0 shifts content upward: row r shows line r - offset
	skip := -int(v.offsetY)

	for row := 0; row < height; row++ {
		line := ""
		if idx := row + skip; idx >= 0 && idx < len(v.Lines) {
			line = v.Lines[idx]
		}
		for col := 0; col < width; col++ {
			ch := ' '
			if col < len(line) {
				ch = rune(line[col])
			}
			h.screen.SetContent(left+col, top+row, ch, nil, v.Style)
		}
	}
}

// Run owns the terminal loop until Escape or Ctrl+C. Input events are
// polled on a separate goroutine and folded into the frame tick.
func (h *Host) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- h.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			h.Step()
			h.Draw()
		}
	}
}

// handleEvent returns false when the loop should exit
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		h.handleKey(ev)

	case *tcell.EventMouse:
		h.HandleMouse(ev)

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// handleKey maps paging keys onto scroll-to requests for the hovered or
// first pane
func (h *Host) handleKey(ev *tcell.EventKey) {
	v := h.keyTarget()
	if v == nil {
		return
	}

	page := v.Rect.H
	switch ev.Key() {
	case tcell.KeyPgUp:
		h.ScrollTo(v, v.offsetY+page)
	case tcell.KeyPgDn:
		h.ScrollTo(v, v.offsetY-page)
	case tcell.KeyHome:
		h.ScrollTo(v, 0)
	case tcell.KeyEnd:
		h.ScrollTo(v, -float64(len(v.Lines)))
	}
}

func (h *Host) keyTarget() *Viewport {
	pointer := h.world.Resources.Pointer
	if pointer.Available {
		if v := h.hitTest(int(pointer.X), int(pointer.Y)); v != nil {
			return v
		}
	}
	if len(h.viewports) > 0 {
		return h.viewports[0]
	}
	return nil
}

// Close releases the screen
func (h *Host) Close() {
	h.screen.Fini()
}
