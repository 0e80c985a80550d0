package core

// Point is a position in content units (pixels for graphical hosts,
// cells for terminal hosts).
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in content units, used by hosts for
// viewport hit-testing.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r.
// The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ScrollUnit distinguishes wheel event magnitudes.
type ScrollUnit uint8

const (
	// UnitLine is a discrete notched-wheel step.
	UnitLine ScrollUnit = iota
	// UnitPixel is a high-resolution (trackpad) delta.
	UnitPixel
)

// String returns human-readable unit name
func (u ScrollUnit) String() string {
	if u == UnitPixel {
		return "Pixel"
	}
	return "Line"
}
