// Package modes registers the built-in quiz modes.
package modes

import (
	"github.com/vovakirdan/tui-flags/internal/config"
	"github.com/vovakirdan/tui-flags/internal/quiz"
	"github.com/vovakirdan/tui-flags/internal/registry"
)

// Mode IDs, also used as config keys.
const (
	Country  = "country"
	Hints    = "hints"
	Flag     = "flag"
	Advanced = "advanced"
)

func init() {
	// Registration order is home screen order.
	registry.Register(Country, func() registry.Mode { return countryMode })
	registry.Register(Hints, func() registry.Mode { return hintsMode })
	registry.Register(Flag, func() registry.Mode { return flagMode })
	registry.Register(Advanced, func() registry.Mode { return advancedMode })
}

var countryMode = preset{
	id:    Country,
	title: "Guess the country",
	desc:  "Name the country a flag belongs to",
	kind:  quiz.KindCountry,
	rule:  quiz.RuleName,
	defaults: config.ModeConfig{
		Attempts: quiz.DefaultAttempts,
		Items:    1,
		Seconds:  quiz.DefaultTimeLimit,
	},
}

var hintsMode = preset{
	id:    Hints,
	title: "Guess with hints",
	desc:  "Reveal the country's name one letter at a time",
	kind:  quiz.KindHints,
	rule:  quiz.RuleLetter,
	defaults: config.ModeConfig{
		Attempts:      quiz.DefaultAttempts,
		Items:         1,
		Seconds:       quiz.DefaultTimeLimit,
		RetryOnExpiry: config.Bool(true),
	},
}

var flagMode = preset{
	id:    Flag,
	title: "Guess the flag",
	desc:  "Pick the right flag for a country name",
	kind:  quiz.KindFlag,
	rule:  quiz.RuleCode,
	defaults: config.ModeConfig{
		Attempts: 1,
		Items:    1,
		Options:  3,
		Seconds:  quiz.DefaultTimeLimit,
	},
	requireArt: true,
}

var advancedMode = preset{
	id:    Advanced,
	title: "Advanced",
	desc:  "Name three flags at once",
	kind:  quiz.KindAdvanced,
	rule:  quiz.RuleName,
	defaults: config.ModeConfig{
		Attempts:      quiz.DefaultAttempts,
		Items:         3,
		Seconds:       quiz.DefaultTimeLimit,
		RetryOnExpiry: config.Bool(true),
	},
	requireArt: true,
}

// preset is a built-in mode described by its defaults.
type preset struct {
	id         string
	title      string
	desc       string
	kind       quiz.Kind
	rule       quiz.Rule
	defaults   config.ModeConfig
	requireArt bool
}

func (p preset) ID() string          { return p.id }
func (p preset) Title() string       { return p.title }
func (p preset) Description() string { return p.desc }

// Build resolves the preset against cfg.
func (p preset) Build(cfg config.Config) quiz.Mode {
	mc := cfg.Resolve(p.id, p.defaults)

	m := quiz.Mode{
		ID:            p.id,
		Kind:          p.kind,
		Rule:          p.rule,
		Items:         mc.Items,
		Attempts:      mc.Attempts,
		Timer:         cfg.Timer.Enabled,
		TimeLimit:     mc.Seconds,
		RetryOnExpiry: mc.Retry(),
		RequireArt:    p.requireArt,
	}

	switch p.kind {
	case quiz.KindFlag:
		m.Items = 1
		m.Options = mc.Options
	case quiz.KindAdvanced:
		// Items come from config.
	default:
		m.Items = 1
	}
	return m
}
