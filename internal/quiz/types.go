// Package quiz implements the round state machine shared by every flag
// quiz mode. A RoundState is a value: each event (input, submit, tick,
// advance) returns the next state and leaves the previous one untouched.
// Package quiz never renders anything; hosts read state and display it.
package quiz

import "github.com/vovakirdan/tui-flags/internal/countries"

// Mark is the grading status of one challenge item.
type Mark int

const (
	MarkUnknown Mark = iota
	MarkCorrect
	MarkIncorrect
)

// String returns a human-readable name for the mark.
func (m Mark) String() string {
	switch m {
	case MarkUnknown:
		return "unknown"
	case MarkCorrect:
		return "correct"
	case MarkIncorrect:
		return "incorrect"
	default:
		return "invalid"
	}
}

// Kind tells the host how a mode is presented.
type Kind int

const (
	KindCountry  Kind = iota // one flag, pick its country name
	KindHints                // one flag, reveal its name letter by letter
	KindFlag                 // one name, pick its flag among options
	KindAdvanced             // several flags, type each name
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCountry:
		return "country"
	case KindHints:
		return "hints"
	case KindFlag:
		return "flag"
	case KindAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// Rule is how an input is compared against an item.
type Rule int

const (
	RuleName   Rule = iota // case-insensitive exact match on the country name
	RuleCode               // case-insensitive match on the country code
	RuleLetter             // one letter, revealed wherever it occurs in the name
)

// Default budgets shared by all built-in modes.
const (
	DefaultAttempts  = 3
	DefaultTimeLimit = 10 // seconds
)

// Mode describes one quiz screen.
type Mode struct {
	ID   string
	Kind Kind
	Rule Rule

	Items   int // number of questions per round
	Options int // when > 0, this many entries are drawn and one becomes the target

	Attempts int // attempts budget per round

	Timer         bool // countdown enabled
	TimeLimit     int  // seconds per attempt when Timer is set
	RetryOnExpiry bool // expiry consumes one attempt instead of ending the round

	RequireArt bool // only draw countries that have a drawable flag
}

// normalized fills in zero budgets with defaults.
func (m Mode) normalized() Mode {
	if m.Items <= 0 {
		m.Items = 1
	}
	if m.Rule == RuleLetter {
		// One hidden name at a time.
		m.Items = 1
		m.Options = 0
	}
	if m.Attempts <= 0 {
		m.Attempts = DefaultAttempts
	}
	if m.TimeLimit <= 0 {
		m.TimeLimit = DefaultTimeLimit
	}
	return m
}

// Challenge is the set of questions for one round.
type Challenge struct {
	// Items are the entries the player must answer, one grade each.
	Items []countries.Country

	// Options are the displayed choices in pick-the-flag style modes.
	// Options[Target] is the same entry as Items[0]. Empty otherwise.
	Options []countries.Country
	Target  int
}

// HasOptions reports whether the challenge is multiple choice.
func (c Challenge) HasOptions() bool {
	return len(c.Options) > 0
}
