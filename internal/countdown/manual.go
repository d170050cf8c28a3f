package countdown

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by an explicit simulated clock. It is meant
// for tests and for hosts that step time themselves.
type Manual struct {
	now     time.Duration
	seq     int
	pending []pendingFire
}

type pendingFire struct {
	at   time.Duration
	seq  int
	fire func()
}

// NewManual returns a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule queues fire to run once the clock passes now+d.
func (m *Manual) Schedule(d time.Duration, fire func()) {
	m.seq++
	m.pending = append(m.pending, pendingFire{at: m.now + d, seq: m.seq, fire: fire})
}

// Advance moves the clock forward by d, running every firing that falls due,
// including ones scheduled by earlier firings, in time order.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		i := m.next()
		if i < 0 || m.pending[i].at > target {
			break
		}
		p := m.pending[i]
		m.pending = append(m.pending[:i], m.pending[i+1:]...)
		m.now = p.at
		p.fire()
	}
	m.now = target
}

// Pending returns the number of queued firings, stale ones included.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Now returns the simulated time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// next returns the index of the earliest pending firing, or -1.
func (m *Manual) next() int {
	if len(m.pending) == 0 {
		return -1
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	return 0
}
