package component

// ContentComponent marks an entity as scrollable content inside a scroll
// view and carries its vertical displacement.
//
// OffsetY may also be written directly by host code to jump to a position;
// the next clamping pass keeps it inside [MaxScroll, 0].
type ContentComponent struct {
	// OffsetY is the vertical displacement of the content relative to the
	// viewport's top edge. Always <= 0 once clamped.
	OffsetY float64
}
