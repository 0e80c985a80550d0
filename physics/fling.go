package physics

import "math"

// Integrate advances a fling analytically over dt seconds using the exact
// solution of d(offset)/dt = v, dv/dt = -friction*v:
//
//	offset' = offset - v/friction + (v/friction)*e^(-friction*dt)
//	v'      = v * e^(-friction*dt)
//
// The closed form keeps the deceleration curve independent of frame rate.
// friction must be strictly positive and finite; passing zero divides by
// zero and yields non-finite output (enforced by the creator, not here).
func Integrate(offset, velocity, friction, dt float64) (float64, float64) {
	decay := math.Exp(-friction * dt)
	return offset - velocity/friction + velocity/friction*decay,
		velocity * decay
}

// Clamp bounds an offset to the permissible range [maxScroll, 0].
func Clamp(offset, maxScroll float64) float64 {
	if offset < maxScroll {
		return maxScroll
	}
	if offset > 0 {
		return 0
	}
	return offset
}
