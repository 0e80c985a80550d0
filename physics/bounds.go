package physics

// MaxScroll computes the most negative permissible content offset from the
// measured viewport and content heights: -max(contentH - viewportH, 0).
// Content that fits the viewport yields 0 (no scrolling possible).
// The result is always <= 0.
func MaxScroll(viewportH, contentH float64) float64 {
	overflow := contentH - viewportH
	if overflow <= 0 {
		return 0
	}
	return -overflow
}
