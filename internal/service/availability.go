package service

import (
	"sync"
	"time"
)

// AvailabilityStatus is a snapshot of the tracker state.
type AvailabilityStatus struct {
	Degraded      bool
	DegradedUntil time.Time
	Reason        string
}

// AvailabilityTracker remembers that the language model reported an exhausted
// quota, so that requests during the following cooldown go straight to the
// fallback template instead of failing upstream again.
type AvailabilityTracker struct {
	mu            sync.RWMutex
	cooldown      time.Duration
	now           func() time.Time
	degradedUntil time.Time
	reason        string
}

// NewAvailabilityTracker creates a tracker. A zero cooldown disables it.
func NewAvailabilityTracker(cooldown time.Duration) *AvailabilityTracker {
	return NewAvailabilityTrackerWithClock(cooldown, time.Now)
}

// NewAvailabilityTrackerWithClock creates a tracker that reads time from now.
func NewAvailabilityTrackerWithClock(cooldown time.Duration, now func() time.Time) *AvailabilityTracker {
	return &AvailabilityTracker{cooldown: cooldown, now: now}
}

// MarkDegraded starts a cooldown period.
func (t *AvailabilityTracker) MarkDegraded(reason string) {
	if t == nil || t.cooldown <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.degradedUntil = t.now().Add(t.cooldown)
	t.reason = reason
}

// MarkHealthy ends any cooldown period early.
func (t *AvailabilityTracker) MarkHealthy() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.degradedUntil = time.Time{}
	t.reason = ""
}

// Degraded reports whether a cooldown period is in effect.
func (t *AvailabilityTracker) Degraded() bool {
	return t.Status().Degraded
}

// Status returns the current state.
func (t *AvailabilityTracker) Status() AvailabilityStatus {
	if t == nil {
		return AvailabilityStatus{}
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.degradedUntil.IsZero() || !t.now().Before(t.degradedUntil) {
		return AvailabilityStatus{}
	}
	return AvailabilityStatus{Degraded: true, DegradedUntil: t.degradedUntil, Reason: t.reason}
}
