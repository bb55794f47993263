// Package scheduletest provides a deterministic scheduler for tests.
package scheduletest

import (
	"sort"
	"sync"
	"time"

	"github.com/sportselling/landing/schedule"
)

// Compile-time assertion to ensure Manual implements schedule.Scheduler.
var _ schedule.Scheduler = (*Manual)(nil)

// Manual is a scheduler whose clock only moves when Advance is called.
// Actions run synchronously on the goroutine calling Advance.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	entries []*entry
}

type entry struct {
	owner    *Manual
	at       time.Duration
	seq      int
	fn       func()
	done     bool // fired or canceled
	canceled bool
}

// NewManual returns a scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc arms fn to run once the clock has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) schedule.Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := &entry{owner: m, at: m.now + d, seq: m.seq, fn: fn}
	m.seq++
	m.entries = append(m.entries, e)
	return e
}

// Cancel implements schedule.Handle.
func (e *entry) Cancel() bool {
	e.owner.mu.Lock()
	defer e.owner.mu.Unlock()
	if e.done {
		return false
	}
	e.done = true
	e.canceled = true
	return true
}

// Advance moves the clock forward by d and runs every action that became
// due, in deadline order. Actions armed by a running action are honored if
// they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.now = target
			m.compactLocked()
			m.mu.Unlock()
			return
		}
		next.done = true
		m.now = next.at
		m.mu.Unlock()

		next.fn()
	}
}

// Now reports how far the clock has advanced.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending counts actions that are armed and not yet fired or canceled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if !e.done {
			n++
		}
	}
	return n
}

// Canceled counts actions that were canceled before firing.
func (m *Manual) Canceled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.canceled {
			n++
		}
	}
	return n
}

func (m *Manual) nextDueLocked(target time.Duration) *entry {
	var due []*entry
	for _, e := range m.entries {
		if !e.done && e.at <= target {
			due = append(due, e)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

// compactLocked drops fired entries; canceled ones stay so Canceled can count them.
func (m *Manual) compactLocked() {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if !e.done || e.canceled {
			kept = append(kept, e)
		}
	}
	m.entries = kept
}
