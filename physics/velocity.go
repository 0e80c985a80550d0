package physics

// SmoothVelocity folds a per-frame displacement into a velocity estimate:
//
//	v' = (v + delta/dt) / 2
//
// Averaging with the previous estimate biases toward recent motion while
// damping single-frame sampling noise; a raw delta/dt derivative would make
// noisy input produce erratic instantaneous velocities. Under zero delta the
// estimate halves each frame and converges geometrically to zero.
func SmoothVelocity(velocity, delta, dt float64) float64 {
	if dt <= 0 {
		return velocity
	}
	return (velocity + delta/dt) / 2
}
