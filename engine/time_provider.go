package engine

import (
	"sync"
	"time"
)

// TimeProvider abstracts the frame clock so hosts and tests control how
// elapsed time reaches the time-scaled scroll computations
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock with monotonic readings;
// the production frame loop uses it
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the real frame clock
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a hand-advanced clock for deterministic scroll
// tests: drag and fling assertions step it one frame interval at a time
// instead of sleeping
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider creates a mock clock anchored at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime pins the clock to an absolute instant
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward, typically by one frame interval
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
