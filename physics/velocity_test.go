package physics

import (
	"math"
	"testing"
)

func TestSmoothVelocityDragSample(t *testing.T) {
	// Pointer moved up 50 units over a 0.1s frame from rest.
	got := SmoothVelocity(0, -50, 0.1)
	if got != -250 {
		t.Errorf("SmoothVelocity(0, -50, 0.1) = %v, want -250", got)
	}
}

func TestSmoothVelocityZeroDeltaConverges(t *testing.T) {
	// With no drive term the estimate halves each frame and never amplifies.
	v := -250.0
	prev := math.Abs(v)
	for i := 0; i < 30; i++ {
		v = SmoothVelocity(v, 0, 0.016)
		if math.Abs(v) > prev {
			t.Fatalf("velocity amplified at frame %d: %v", i, v)
		}
		prev = math.Abs(v)
	}
	if math.Abs(v) > 250.0/float64(1<<29) {
		t.Errorf("velocity did not converge geometrically: %v", v)
	}
}

func TestSmoothVelocityZeroDtIsNoop(t *testing.T) {
	if got := SmoothVelocity(-120, 30, 0); got != -120 {
		t.Errorf("SmoothVelocity with dt=0 = %v, want unchanged -120", got)
	}
}

func TestSmoothVelocityBiasesTowardRecentMotion(t *testing.T) {
	// A steady stream of identical samples converges to delta/dt.
	v := 0.0
	for i := 0; i < 40; i++ {
		v = SmoothVelocity(v, -8, 0.016)
	}
	want := -8.0 / 0.016
	if math.Abs(v-want) > 1e-6 {
		t.Errorf("steady-state velocity = %v, want %v", v, want)
	}
}
