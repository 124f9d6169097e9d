// Package performance provides performance tracking for Pearlsite
// operations with lightweight markers and aggregate metrics.
package performance

import (
	"sync"
	"time"
)

// Marker represents a single performance measurement for an operation
type Marker struct {
	Operation string         `json:"operation"` // e.g., "auth:login", "catalog:list"
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	Duration  time.Duration  `json:"duration"`
	Success   bool           `json:"success"`
	Error     string         `json:"error,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Completed bool           `json:"completed"`
}

// Complete marks the operation as finished and calculates final metrics
func (m *Marker) Complete() {
	if m.Completed {
		return // Prevent double completion
	}
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.Completed = true
}

// SetSuccess marks the operation as successful or failed
func (m *Marker) SetSuccess(success bool) {
	m.Success = success
}

// SetError sets an error message and marks the operation as failed
func (m *Marker) SetError(err error) {
	if err != nil {
		m.Error = err.Error()
		m.Success = false
	}
}

// AddMetadata adds key-value metadata to the marker
func (m *Marker) AddMetadata(key string, value any) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]any)
	}
	m.Metadata[key] = value
}

// Tracker manages performance markers and aggregate operation counts
type Tracker struct {
	markers    []*Marker
	maxMarkers int
	opCounts   map[string]int
	mu         sync.RWMutex
	started    time.Time
}

// NewTracker creates a performance tracker retaining up to maxMarkers
// completed markers. Older markers are discarded first.
func NewTracker(maxMarkers int) *Tracker {
	if maxMarkers <= 0 {
		maxMarkers = 1000
	}
	return &Tracker{
		maxMarkers: maxMarkers,
		opCounts:   make(map[string]int),
		started:    time.Now(),
	}
}

// StartOperation creates and registers a new marker for an operation
func (t *Tracker) StartOperation(operation string) *Marker {
	marker := &Marker{
		Operation: operation,
		StartTime: time.Now(),
	}

	t.mu.Lock()
	t.opCounts[operation]++
	t.markers = append(t.markers, marker)
	if len(t.markers) > t.maxMarkers {
		t.markers = t.markers[len(t.markers)-t.maxMarkers:]
	}
	t.mu.Unlock()

	return marker
}

// OperationCount returns how many times an operation has started
func (t *Tracker) OperationCount(operation string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.opCounts[operation]
}

// Uptime returns how long the tracker has been running
func (t *Tracker) Uptime() time.Duration {
	return time.Since(t.started)
}

// RecentMarkers returns up to n most recent markers, newest last
func (t *Tracker) RecentMarkers(n int) []*Marker {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n <= 0 || n > len(t.markers) {
		n = len(t.markers)
	}
	out := make([]*Marker, n)
	copy(out, t.markers[len(t.markers)-n:])
	return out
}
