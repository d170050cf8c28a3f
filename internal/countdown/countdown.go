// Package countdown provides a restartable per-second countdown that runs
// on whatever event loop the host supplies through a Scheduler.
//
// Every Start or Stop begins a new generation. Firings scheduled by an
// older generation are ignored when they arrive, so a countdown that was
// restarted or stopped can never deliver a stale tick.
package countdown

import "time"

// Scheduler arranges for fire to be called once, after d, on the host's
// event thread. Implementations need not support cancellation.
type Scheduler interface {
	Schedule(d time.Duration, fire func())
}

// Countdown counts down from a start value, one step per interval.
// It is not safe for concurrent use; all calls, including scheduled
// firings, must happen on the same event thread.
type Countdown struct {
	sched    Scheduler
	interval time.Duration
	onTick   func(remaining int)
	onExpire func()

	gen       uint64
	remaining int
	running   bool
}

// New creates a stopped countdown. onTick receives the remaining count
// after each step that leaves it above zero; onExpire runs when it hits zero.
// Either callback may be nil, and either may Start or Stop the countdown.
func New(sched Scheduler, interval time.Duration, onTick func(remaining int), onExpire func()) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{
		sched:    sched,
		interval: interval,
		onTick:   onTick,
		onExpire: onExpire,
	}
}

// Start (re)arms the countdown from the given value, cancelling any run in
// progress. A non-positive value leaves it stopped.
func (c *Countdown) Start(from int) {
	c.gen++
	c.remaining = from
	c.running = from > 0
	if c.running {
		c.arm(c.gen)
	}
}

// Stop cancels the current run.
func (c *Countdown) Stop() {
	c.gen++
	c.running = false
}

// Running reports whether a run is in progress.
func (c *Countdown) Running() bool {
	return c.running
}

func (c *Countdown) arm(gen uint64) {
	c.sched.Schedule(c.interval, func() { c.fire(gen) })
}

func (c *Countdown) fire(gen uint64) {
	if gen != c.gen || !c.running {
		return
	}

	c.remaining--
	if c.remaining > 0 {
		if c.onTick != nil {
			c.onTick(c.remaining)
		}
		// The callback may have restarted or stopped us.
		if gen == c.gen && c.running {
			c.arm(gen)
		}
		return
	}

	c.running = false
	if c.onExpire != nil {
		c.onExpire()
	}
}
