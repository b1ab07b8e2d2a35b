package service

import (
	"sync"
	"time"
)

// Reaper keeps one-shot deletion timers, at most one per user. It knows
// nothing about storage: the fire callback owns the re-check against
// persisted state, so a timer that outlives a cancellation is harmless.
type Reaper struct {
	grace time.Duration
	fire  func(userID uint)

	mu     sync.Mutex
	timers map[uint]*time.Timer
}

// NewReaper creates a Reaper that calls fire after grace elapses for an
// armed user.
func NewReaper(grace time.Duration, fire func(userID uint)) *Reaper {
	return &Reaper{
		grace:  grace,
		fire:   fire,
		timers: make(map[uint]*time.Timer),
	}
}

// Arm schedules the fire callback for userID after the grace period and
// returns the deadline. Arming a user that already has a pending timer
// restarts the delay; the old timer is stopped.
func (r *Reaper) Arm(userID uint) time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.timers[userID]; ok {
		t.Stop()
	}
	r.timers[userID] = time.AfterFunc(r.grace, func() {
		r.mu.Lock()
		delete(r.timers, userID)
		r.mu.Unlock()
		r.fire(userID)
	})
	return time.Now().Add(r.grace)
}

// Disarm stops the pending timer for userID, if any. Best effort: once the
// fire callback has started, stopping the timer no longer prevents it, and
// only the callback's state re-check does.
func (r *Reaper) Disarm(userID uint) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.timers[userID]
	if !ok {
		return false
	}
	delete(r.timers, userID)
	return t.Stop()
}

// Armed reports whether a timer is currently pending for userID.
func (r *Reaper) Armed(userID uint) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.timers[userID]
	return ok
}

// Stop cancels all pending timers. Used on shutdown; armed deletions are
// re-derivable from the persisted pending_deletion flags.
func (r *Reaper) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.timers {
		t.Stop()
		delete(r.timers, id)
	}
}
