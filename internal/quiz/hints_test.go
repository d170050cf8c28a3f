package quiz

import (
	"testing"

	"github.com/vovakirdan/tui-flags/internal/countries"
)

func hintsMode() Mode {
	return Mode{ID: "hints", Kind: KindHints, Rule: RuleLetter, Attempts: 3}
}

func TestMaskStartsHidden(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Brazil", "______"},
		{"New Zealand", "___ _______"},
		{"Côte d'Ivoire", "____ _'______"},
		{"Guinea-Bissau", "______-______"},
	}

	for _, tt := range tests {
		s := NewRound(hintsMode(), single(countries.Country{Code: "XX", Name: tt.name}))
		if got := s.MaskString(); got != tt.want {
			t.Errorf("mask(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGuessRevealsLetter(t *testing.T) {
	tests := []struct {
		country countries.Country
		letter  string
		want    string
	}{
		{brazil, "a", "__a___"},
		{canada, "a", "_a_a_a"},
		{canada, "A", "_a_a_a"},
		{canada, "c", "C_____"},
		{ivory, "o", "____ _'__o___"},
	}

	for _, tt := range tests {
		s := NewRound(hintsMode(), single(tt.country)).SubmitAnswer(tt.letter)
		if got := s.MaskString(); got != tt.want {
			t.Errorf("%s + %q: mask = %q, want %q", tt.country.Name, tt.letter, got, tt.want)
		}
		if s.Attempts != 3 {
			t.Errorf("%s + %q: hit cost an attempt (%d left)", tt.country.Name, tt.letter, s.Attempts)
		}
		if s.Feedback != FeedbackHit {
			t.Errorf("%s + %q: Feedback = %v, want FeedbackHit", tt.country.Name, tt.letter, s.Feedback)
		}
		if s.Inputs[0] != "" {
			t.Errorf("input not cleared after guess: %q", s.Inputs[0])
		}
	}
}

func TestGuessMissCostsAttempt(t *testing.T) {
	s := NewRound(hintsMode(), single(brazil))

	s = s.SubmitAnswer("x")
	if s.Attempts != 2 || s.Feedback != FeedbackMiss || s.RoundOver {
		t.Fatalf("after miss: attempts=%d feedback=%v over=%v", s.Attempts, s.Feedback, s.RoundOver)
	}
	if s.MaskString() != "______" {
		t.Errorf("miss revealed letters: %q", s.MaskString())
	}

	s = s.SubmitAnswer("q").SubmitAnswer("w")
	if !s.RoundOver || s.Attempts != 0 || s.Marks[0] != MarkIncorrect {
		t.Errorf("after three misses: over=%v attempts=%d mark=%v", s.RoundOver, s.Attempts, s.Marks[0])
	}
	if s.Feedback != FeedbackWrong {
		t.Errorf("Feedback = %v, want FeedbackWrong", s.Feedback)
	}
	checkInvariants(t, s)
}

func TestGuessCompletesName(t *testing.T) {
	s := NewRound(hintsMode(), single(canada))
	for _, l := range []string{"c", "a", "n"} {
		s = s.SubmitAnswer(l)
	}
	if s.RoundOver {
		t.Fatalf("round over early, mask %q", s.MaskString())
	}

	s = s.SubmitAnswer("d")
	if !s.Won() || s.Score != 1 || s.Feedback != FeedbackCorrect {
		t.Errorf("full reveal: won=%v score=%d feedback=%v", s.Won(), s.Score, s.Feedback)
	}
	if s.MaskString() != "Canada" {
		t.Errorf("mask = %q, want Canada", s.MaskString())
	}
	checkInvariants(t, s)
}

func TestGuessRejectsNonLetters(t *testing.T) {
	s := NewRound(hintsMode(), single(brazil))

	for _, in := range []string{"", " ", "ab", "1", "-", "'"} {
		next := s.SubmitAnswer(in)
		if next.Attempts != 3 || next.MaskString() != "______" || len(next.Guessed) != 0 {
			t.Errorf("input %q was graded: attempts=%d mask=%q", in, next.Attempts, next.MaskString())
		}
	}
}

func TestGuessedLettersTracked(t *testing.T) {
	s := NewRound(hintsMode(), single(brazil))
	s = s.SubmitAnswer("a").SubmitAnswer("x").SubmitAnswer("A")

	if string(s.Guessed) != "ax" {
		t.Errorf("Guessed = %q, want %q", string(s.Guessed), "ax")
	}
	if s.Attempts != 2 {
		t.Errorf("repeated hit should be free, attempts = %d", s.Attempts)
	}
}
