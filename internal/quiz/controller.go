package quiz

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flags/internal/countdown"
	"github.com/vovakirdan/tui-flags/internal/countries"
)

// Tally accumulates results over the rounds one controller has played.
// It lives as long as the controller and is never persisted.
type Tally struct {
	Rounds int
	Won    int
	Points int
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used to draw challenges.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithScheduler enables the automatic countdown for timed modes.
// Without one, the host must call Tick itself.
func WithScheduler(s countdown.Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithDrawable filters out countries without flag art in modes that need it.
func WithDrawable(d Drawable) Option {
	return func(c *Controller) { c.drawable = d }
}

// WithLogger sets the logger for round lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller holds the current RoundState for a host and wires it to a
// countdown. All methods must be called from the host's event thread.
type Controller struct {
	pool     countries.Pool
	mode     Mode
	rng      *rand.Rand
	drawable Drawable
	sched    countdown.Scheduler
	logger   *log.Logger

	timer   *countdown.Countdown
	started bool

	state RoundState
	tally Tally
}

// NewController draws the first challenge for mode. Call Start to begin
// the countdown.
func NewController(pool countries.Pool, mode Mode, opts ...Option) *Controller {
	c := &Controller{
		pool: pool,
		mode: mode.normalized(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.sched != nil && c.mode.Timer {
		c.timer = countdown.New(c.sched, time.Second,
			func(int) { c.Tick() },
			func() { c.Tick() },
		)
	}

	c.state = NewRound(c.mode, c.draw())
	c.logRoundStart()
	return c
}

// Start arms the countdown for the current round.
func (c *Controller) Start() {
	c.started = true
	if c.timer != nil && !c.state.RoundOver {
		c.timer.Start(c.state.TimeRemaining)
	}
}

// Stop cancels the countdown. Ticks already in flight are discarded.
func (c *Controller) Stop() {
	c.started = false
	if c.timer != nil {
		c.timer.Stop()
	}
}

// State returns the current round.
func (c *Controller) State() RoundState {
	return c.state
}

// Mode returns the mode the controller was built with.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Pool returns the challenge pool.
func (c *Controller) Pool() countries.Pool {
	return c.pool
}

// Tally returns results accumulated so far.
func (c *Controller) Tally() Tally {
	return c.tally
}

// TimerRunning reports whether the countdown is armed.
func (c *Controller) TimerRunning() bool {
	return c.timer != nil && c.timer.Running()
}

// SetInput records input for item i.
func (c *Controller) SetInput(i int, value string) {
	c.apply(c.state.SetInput(i, value))
}

// Submit grades the current inputs.
func (c *Controller) Submit() {
	c.apply(c.state.Submit())
}

// SubmitAnswer submits value for the first item.
func (c *Controller) SubmitAnswer(value string) {
	c.apply(c.state.SubmitAnswer(value))
}

// Choose picks option i of a multiple-choice round.
func (c *Controller) Choose(option int) {
	c.apply(c.state.Choose(option))
}

// Tick advances the round clock by one second.
func (c *Controller) Tick() {
	c.apply(c.state.Tick())
}

// Advance starts the next round once the current one is over.
func (c *Controller) Advance() {
	if !c.state.RoundOver {
		return
	}
	c.apply(c.state.Advance(c.draw()))
	c.logRoundStart()
}

// Press is the single Submit/Next button: it submits while the round is
// open and advances once it is over.
func (c *Controller) Press() {
	if c.state.RoundOver {
		c.Advance()
		return
	}
	c.Submit()
}

func (c *Controller) draw() Challenge {
	return SelectChallenge(c.rng, c.pool, c.mode, c.drawable)
}

func (c *Controller) apply(next RoundState) {
	prev := c.state
	c.state = next

	if next.RoundOver && !prev.RoundOver && next.Round == prev.Round {
		c.tally.Rounds++
		c.tally.Points += next.Score
		if next.Won() {
			c.tally.Won++
		}
		c.logger.Debug("round over",
			"mode", c.mode.ID,
			"round", next.Round,
			"won", next.Won(),
			"score", next.Score,
			"attempts", next.Attempts,
		)
	}

	c.syncTimer(prev)
}

// syncTimer keeps the countdown in step with the round: stopped once the
// round is over, re-armed whenever the round's clock was reset.
func (c *Controller) syncTimer(prev RoundState) {
	if c.timer == nil || !c.started {
		return
	}
	switch {
	case c.state.RoundOver:
		if c.timer.Running() {
			c.timer.Stop()
		}
	case c.state.Epoch != prev.Epoch || !c.timer.Running():
		c.timer.Start(c.state.TimeRemaining)
	}
}

func (c *Controller) logRoundStart() {
	codes := make([]string, len(c.state.Challenge.Items))
	for i, item := range c.state.Challenge.Items {
		codes[i] = item.Code
	}
	c.logger.Debug("round start",
		"mode", c.mode.ID,
		"round", c.state.Round,
		"items", codes,
		"timer", c.mode.Timer,
	)
}
