package physics

import "testing"

func TestMaxScroll(t *testing.T) {
	cases := []struct {
		name                string
		viewportH, contentH float64
		want                float64
	}{
		{"content taller than viewport", 100, 300, -200},
		{"content fits exactly", 100, 100, 0},
		{"content shorter than viewport", 300, 100, 0},
		{"zero sizes", 0, 0, 0},
		{"zero viewport", 0, 50, -50},
		{"fractional heights", 120.5, 180.25, -59.75},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MaxScroll(c.viewportH, c.contentH)
			if got != c.want {
				t.Errorf("MaxScroll(%v, %v) = %v, want %v", c.viewportH, c.contentH, got, c.want)
			}
			if got > 0 {
				t.Errorf("MaxScroll(%v, %v) = %v, must never be positive", c.viewportH, c.contentH, got)
			}
		})
	}
}
