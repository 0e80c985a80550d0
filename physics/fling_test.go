package physics

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestIntegrateZeroDtIsIdentity(t *testing.T) {
	cases := []struct {
		offset, velocity, friction float64
	}{
		{0, -250, 4.2},
		{-100, 500, 4.2},
		{-200, 16.5, 1.0},
	}
	for _, c := range cases {
		offset, velocity := Integrate(c.offset, c.velocity, c.friction, 0)
		if !almostEqual(offset, c.offset) {
			t.Errorf("Integrate(%v, %v, %v, 0) offset = %v, want %v",
				c.offset, c.velocity, c.friction, offset, c.offset)
		}
		if !almostEqual(velocity, c.velocity) {
			t.Errorf("Integrate(%v, %v, %v, 0) velocity = %v, want %v",
				c.offset, c.velocity, c.friction, velocity, c.velocity)
		}
	}
}

func TestIntegrateTerminalOffset(t *testing.T) {
	// As dt grows the velocity decays to zero and the offset approaches
	// offset - velocity/friction.
	offset0, velocity0, friction := -50.0, -250.0, 4.2

	offset, velocity := Integrate(offset0, velocity0, friction, 1000)
	if math.Abs(velocity) > tolerance {
		t.Errorf("velocity after long integration = %v, want ~0", velocity)
	}
	want := offset0 - velocity0/friction
	if math.Abs(offset-want) > 1e-6 {
		t.Errorf("terminal offset = %v, want %v", offset, want)
	}
}

func TestIntegrateMatchesClosedForm(t *testing.T) {
	// Scenario from the drag-release sequence: velocity -250 after a
	// 50-unit upward drag over 0.1s, then one 16ms fling frame.
	offset0, velocity0, friction, dt := 0.0, -250.0, 4.2, 0.016

	offset, velocity := Integrate(offset0, velocity0, friction, dt)

	decay := math.Exp(-friction * dt)
	wantOffset := offset0 - velocity0/friction + velocity0/friction*decay
	wantVelocity := velocity0 * decay

	if !almostEqual(offset, wantOffset) {
		t.Errorf("offset = %v, want %v", offset, wantOffset)
	}
	if !almostEqual(velocity, wantVelocity) {
		t.Errorf("velocity = %v, want %v", velocity, wantVelocity)
	}

	// One 16ms frame must move the offset, but not past the travel the
	// terminal bound allows.
	if offset >= offset0 {
		t.Errorf("offset did not advance in scroll direction: %v", offset)
	}
	if offset < offset0-(-velocity0/friction) {
		t.Errorf("offset %v overshot terminal bound", offset)
	}
}

func TestIntegrateVelocityDecaysMonotonically(t *testing.T) {
	velocity := 400.0
	offset := -10.0
	for i := 0; i < 100; i++ {
		newOffset, newVelocity := Integrate(offset, velocity, 4.2, 0.016)
		if math.Abs(newVelocity) >= math.Abs(velocity) {
			t.Fatalf("velocity magnitude grew at frame %d: %v -> %v", i, velocity, newVelocity)
		}
		offset, velocity = newOffset, newVelocity
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		offset, maxScroll, want float64
	}{
		{-50, -200, -50},
		{-250, -200, -200},
		{10, -200, 0},
		{0, 0, 0},
		{-5, 0, 0},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.offset, c.maxScroll); got != c.want {
			t.Errorf("Clamp(%v, %v) = %v, want %v", c.offset, c.maxScroll, got, c.want)
		}
	}
}
