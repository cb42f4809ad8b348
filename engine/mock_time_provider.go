package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a controllable clock for tests
// With a non-zero step every Now call advances the clock after reading it,
// so consecutive reads bracket a fixed duration
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	step        time.Duration
}

// NewMockTimeProvider creates a mock clock at startTime that only moves when told to
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// NewSteppingTimeProvider creates a mock clock that advances by step on every read
func NewSteppingTimeProvider(startTime time.Time, step time.Duration) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime, step: step}
}

// Now returns the mocked time, then applies the step
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.currentTime
	m.currentTime = m.currentTime.Add(m.step)
	return now
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
