package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fireRecorder collects fire callbacks in order.
type fireRecorder struct {
	mu    sync.Mutex
	fired []uint
	ch    chan uint
}

func newFireRecorder() *fireRecorder {
	return &fireRecorder{ch: make(chan uint, 16)}
}

func (f *fireRecorder) fire(userID uint) {
	f.mu.Lock()
	f.fired = append(f.fired, userID)
	f.mu.Unlock()
	f.ch <- userID
}

func (f *fireRecorder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fired)
}

func (f *fireRecorder) wait(t *testing.T, timeout time.Duration) uint {
	t.Helper()
	select {
	case id := <-f.ch:
		return id
	case <-time.After(timeout):
		t.Fatal("timed out waiting for fire callback")
		return 0
	}
}

func TestReaperFiresAfterGrace(t *testing.T) {
	t.Parallel()

	rec := newFireRecorder()
	r := NewReaper(10*time.Millisecond, rec.fire)

	deadline := r.Arm(42)
	assert.True(t, r.Armed(42))
	assert.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 50*time.Millisecond)

	id := rec.wait(t, time.Second)
	assert.Equal(t, uint(42), id)
	assert.False(t, r.Armed(42), "timer entry should be removed after firing")
}

func TestReaperDisarmPreventsFire(t *testing.T) {
	t.Parallel()

	rec := newFireRecorder()
	r := NewReaper(30*time.Millisecond, rec.fire)

	r.Arm(7)
	require.True(t, r.Disarm(7))
	assert.False(t, r.Armed(7))

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, rec.count())
}

func TestReaperDisarmUnknownUser(t *testing.T) {
	t.Parallel()

	r := NewReaper(time.Minute, func(uint) {})
	assert.False(t, r.Disarm(99))
}

func TestReaperRearmRestartsDelay(t *testing.T) {
	t.Parallel()

	rec := newFireRecorder()
	r := NewReaper(50*time.Millisecond, rec.fire)

	r.Arm(3)
	time.Sleep(30 * time.Millisecond)
	r.Arm(3) // restart the delay before the first timer elapses

	// The original deadline passes without a fire.
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, rec.count())

	// The restarted timer fires exactly once.
	rec.wait(t, time.Second)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestReaperStopCancelsAll(t *testing.T) {
	t.Parallel()

	rec := newFireRecorder()
	r := NewReaper(30*time.Millisecond, rec.fire)

	r.Arm(1)
	r.Arm(2)
	r.Stop()

	assert.False(t, r.Armed(1))
	assert.False(t, r.Armed(2))

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, rec.count())
}

func TestReaperIndependentTimersPerUser(t *testing.T) {
	t.Parallel()

	rec := newFireRecorder()
	r := NewReaper(10*time.Millisecond, rec.fire)

	r.Arm(1)
	r.Arm(2)

	seen := map[uint]bool{}
	seen[rec.wait(t, time.Second)] = true
	seen[rec.wait(t, time.Second)] = true
	assert.True(t, seen[1])
	assert.True(t, seen[2])
}
