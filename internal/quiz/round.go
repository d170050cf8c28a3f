package quiz

import (
	"golang.org/x/text/unicode/norm"
)

// MaskRune stands in for a letter that has not been revealed yet.
const MaskRune = '_'

// Feedback describes what the most recent event did to the round.
type Feedback int

const (
	FeedbackNone    Feedback = iota
	FeedbackCorrect          // every item answered; round won
	FeedbackWrong            // attempts exhausted; round lost
	FeedbackRetry            // some items still wrong, attempts remain
	FeedbackHit              // letter found in the name
	FeedbackMiss             // letter not in the name, attempts remain
	FeedbackTimeout          // the countdown ran out
)

// RoundState is the complete state of one round. Treat it as immutable:
// every method returns a new value and never modifies the receiver's slices.
type RoundState struct {
	Mode      Mode
	Challenge Challenge

	Inputs []string // one per item, as last entered by the player
	Marks  []Mark   // one per item

	// Letter-hint modes only.
	Mask    []rune // target name with unrevealed letters as MaskRune
	Guessed []rune // distinct letters tried so far, in order

	Attempts      int
	Score         int
	TimeRemaining int // seconds; meaningful only when Mode.Timer is set
	RoundOver     bool
	Feedback      Feedback

	// Round counts rounds played by the same host, starting at 1.
	// Epoch changes whenever the countdown has to be re-armed.
	Round int
	Epoch int
}

// NewRound starts a round for mode over ch.
func NewRound(mode Mode, ch Challenge) RoundState {
	mode = mode.normalized()
	n := len(ch.Items)

	s := RoundState{
		Mode:      mode,
		Challenge: ch,
		Inputs:    make([]string, n),
		Marks:     make([]Mark, n),
		Attempts:  mode.Attempts,
		Round:     1,
		Epoch:     1,
	}
	if mode.Timer {
		s.TimeRemaining = mode.TimeLimit
	}
	if mode.Rule == RuleLetter && n > 0 {
		s.Mask = maskName(ch.Items[0].Name)
	}

	// Nothing to answer: the round is over before it starts.
	if n == 0 {
		s.RoundOver = true
	}
	return s
}

// SetInput records what the player has typed or selected for item i.
// Input for an item that is already correct, or after the round is over,
// is ignored.
func (s RoundState) SetInput(i int, value string) RoundState {
	if s.RoundOver || i < 0 || i >= len(s.Inputs) || s.Marks[i] == MarkCorrect {
		return s
	}
	next := s.clone()
	next.Inputs[i] = value
	return next
}

// SubmitItem sets the input for item i and submits the round.
func (s RoundState) SubmitItem(i int, value string) RoundState {
	if i < 0 || i >= len(s.Inputs) {
		return s
	}
	return s.SetInput(i, value).Submit()
}

// SubmitAnswer submits value as the answer to the first item. It is the
// entry point for single-answer modes and for letter guesses.
func (s RoundState) SubmitAnswer(value string) RoundState {
	return s.SubmitItem(0, value)
}

// Choose submits option i of a multiple-choice challenge.
func (s RoundState) Choose(option int) RoundState {
	if !s.Challenge.HasOptions() || option < 0 || option >= len(s.Challenge.Options) {
		return s
	}
	return s.SubmitAnswer(s.Challenge.Options[option].Code)
}

// Submit grades the current inputs as one attempt.
//
// A submit after the round is over returns s unchanged; starting the next
// round is Advance's job. A submit with nothing entered for any open item
// is rejected the same way and costs no attempt.
func (s RoundState) Submit() RoundState {
	if s.RoundOver {
		return s
	}
	if s.Mode.Rule == RuleLetter {
		return s.guessLetter()
	}
	if !s.hasPendingInput() {
		return s
	}

	next := s.clone()
	next.Attempts--
	for i, item := range next.Challenge.Items {
		if next.Marks[i] == MarkCorrect {
			continue
		}
		if Matches(next.Mode.Rule, next.Inputs[i], item) {
			next.Marks[i] = MarkCorrect
			next.Score++
		} else {
			next.Marks[i] = MarkIncorrect
		}
	}
	next.settle()
	return next
}

// Tick advances the countdown by one second. When it reaches zero every
// open item is marked incorrect and an attempt is spent; the round ends
// unless the mode retries on expiry and attempts remain.
func (s RoundState) Tick() RoundState {
	if !s.Mode.Timer || s.RoundOver {
		return s
	}

	next := s.clone()
	next.TimeRemaining--
	if next.TimeRemaining > 0 {
		return next
	}

	next.TimeRemaining = 0
	next.Feedback = FeedbackTimeout
	for i := range next.Marks {
		if next.Marks[i] != MarkCorrect {
			next.Marks[i] = MarkIncorrect
		}
	}

	next.Attempts--
	if next.Mode.RetryOnExpiry && next.Attempts > 0 {
		next.resetClock()
		return next
	}
	next.Attempts = 0
	next.RoundOver = true
	return next
}

// Advance replaces a finished round with a fresh one over ch. Score,
// attempts and timer start over. Called before the round is over it
// returns s unchanged.
func (s RoundState) Advance(ch Challenge) RoundState {
	if !s.RoundOver {
		return s
	}
	next := NewRound(s.Mode, ch)
	next.Round = s.Round + 1
	next.Epoch = s.Epoch + 1
	return next
}

// Won reports whether the round ended with every item correct.
func (s RoundState) Won() bool {
	return s.RoundOver && len(s.Marks) > 0 && s.allCorrect()
}

// MaskString returns the letter mask as a string.
func (s RoundState) MaskString() string {
	return string(s.Mask)
}

// settle closes out a graded attempt.
func (s *RoundState) settle() {
	switch {
	case s.allCorrect():
		s.RoundOver = true
		s.Feedback = FeedbackCorrect
	case s.Attempts <= 0:
		s.Attempts = 0
		s.RoundOver = true
		s.Feedback = FeedbackWrong
	default:
		s.Feedback = FeedbackRetry
		s.resetClock()
	}
}

func (s *RoundState) resetClock() {
	if s.Mode.Timer {
		s.TimeRemaining = s.Mode.TimeLimit
		s.Epoch++
	}
}

func (s RoundState) allCorrect() bool {
	for _, m := range s.Marks {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// hasPendingInput reports whether any open item has non-blank input.
func (s RoundState) hasPendingInput() bool {
	for i, in := range s.Inputs {
		if s.Marks[i] != MarkCorrect && fold(in) != "" {
			return true
		}
	}
	return false
}

func (s RoundState) clone() RoundState {
	next := s
	next.Inputs = append([]string(nil), s.Inputs...)
	next.Marks = append([]Mark(nil), s.Marks...)
	if s.Mask != nil {
		next.Mask = append([]rune(nil), s.Mask...)
	}
	if s.Guessed != nil {
		next.Guessed = append([]rune(nil), s.Guessed...)
	}
	return next
}

// maskName hides every letter of name behind MaskRune; spaces and
// punctuation stay visible.
func maskName(name string) []rune {
	runes := []rune(norm.NFC.String(name))
	mask := make([]rune, len(runes))
	for i, r := range runes {
		if isMaskable(r) {
			mask[i] = MaskRune
		} else {
			mask[i] = r
		}
	}
	return mask
}
