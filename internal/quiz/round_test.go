package quiz

import (
	"testing"

	"github.com/vovakirdan/tui-flags/internal/countries"
)

var (
	spain  = countries.Country{Code: "ES", Name: "Spain"}
	france = countries.Country{Code: "FR", Name: "France"}
	brazil = countries.Country{Code: "BR", Name: "Brazil"}
	canada = countries.Country{Code: "CA", Name: "Canada"}
	ivory  = countries.Country{Code: "CI", Name: "Côte d'Ivoire"}
)

func nameMode() Mode {
	return Mode{ID: "country", Kind: KindCountry, Rule: RuleName, Attempts: 3}
}

func single(c countries.Country) Challenge {
	return Challenge{Items: []countries.Country{c}, Target: -1}
}

// checkInvariants verifies properties every reachable state must hold.
func checkInvariants(t *testing.T, s RoundState) {
	t.Helper()
	if s.Attempts < 0 || s.Attempts > s.Mode.Attempts {
		t.Errorf("attempts %d out of [0,%d]", s.Attempts, s.Mode.Attempts)
	}
	if s.Score < 0 || s.Score > len(s.Challenge.Items) {
		t.Errorf("score %d out of [0,%d]", s.Score, len(s.Challenge.Items))
	}
	correct := 0
	for _, m := range s.Marks {
		if m == MarkCorrect {
			correct++
		}
	}
	if correct != s.Score {
		t.Errorf("score %d but %d items marked correct", s.Score, correct)
	}
	if s.Attempts == 0 && !s.RoundOver {
		t.Error("no attempts left but round still open")
	}
	if s.Mode.Timer && (s.TimeRemaining < 0 || s.TimeRemaining > s.Mode.TimeLimit) {
		t.Errorf("time %d out of [0,%d]", s.TimeRemaining, s.Mode.TimeLimit)
	}
}

func TestNewRound(t *testing.T) {
	s := NewRound(nameMode(), single(france))

	if s.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", s.Attempts)
	}
	if s.Score != 0 || s.RoundOver {
		t.Errorf("fresh round: score=%d over=%v", s.Score, s.RoundOver)
	}
	if len(s.Inputs) != 1 || len(s.Marks) != 1 || s.Marks[0] != MarkUnknown {
		t.Errorf("unexpected per-item state: inputs=%v marks=%v", s.Inputs, s.Marks)
	}
	if s.TimeRemaining != 0 {
		t.Errorf("untimed round has TimeRemaining %d", s.TimeRemaining)
	}
	if s.Round != 1 {
		t.Errorf("Round = %d, want 1", s.Round)
	}
	checkInvariants(t, s)
}

func TestNewRoundEmptyChallengeIsOver(t *testing.T) {
	s := NewRound(nameMode(), Challenge{Target: -1})
	if !s.RoundOver {
		t.Error("round with no items should start over")
	}
	if s.Won() {
		t.Error("empty round cannot be won")
	}
}

func TestSubmitCaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"France", true},
		{"FRANCE", true},
		{"france", true},
		{"  france ", true},
		{"Frances", false},
		{"Fr", false},
		{"Germany", false},
	}

	for _, tt := range tests {
		s := NewRound(nameMode(), single(france)).SubmitAnswer(tt.input)
		got := s.Marks[0] == MarkCorrect
		if got != tt.want {
			t.Errorf("SubmitAnswer(%q) correct = %v, want %v", tt.input, got, tt.want)
		}
		if tt.want && (!s.RoundOver || s.Score != 1 || s.Feedback != FeedbackCorrect) {
			t.Errorf("SubmitAnswer(%q): over=%v score=%d feedback=%v", tt.input, s.RoundOver, s.Score, s.Feedback)
		}
		checkInvariants(t, s)
	}
}

func TestSubmitFoldsAccents(t *testing.T) {
	s := NewRound(nameMode(), single(ivory)).SubmitAnswer("CÔTE D'IVOIRE")
	if !s.Won() {
		t.Errorf("accented upper-case answer not accepted: marks=%v", s.Marks)
	}
}

func TestAttemptsExhaust(t *testing.T) {
	s := NewRound(nameMode(), single(france))

	want := []int{2, 1, 0}
	for i, attempts := range want {
		s = s.SubmitAnswer("spain")
		if s.Attempts != attempts {
			t.Fatalf("after submit %d: Attempts = %d, want %d", i+1, s.Attempts, attempts)
		}
		if s.Marks[0] != MarkIncorrect {
			t.Errorf("after submit %d: mark = %v, want incorrect", i+1, s.Marks[0])
		}
		checkInvariants(t, s)
	}

	if !s.RoundOver {
		t.Fatal("round should be over after the last attempt")
	}
	if s.Feedback != FeedbackWrong {
		t.Errorf("Feedback = %v, want FeedbackWrong", s.Feedback)
	}

	// Further submits change nothing.
	after := s.SubmitAnswer("france")
	if after.Attempts != 0 || after.Score != 0 || after.Marks[0] != MarkIncorrect {
		t.Errorf("submit after round over changed state: %+v", after)
	}
}

func TestRetryThenCorrect(t *testing.T) {
	s := NewRound(nameMode(), single(france)).SubmitAnswer("spain")
	if s.RoundOver || s.Feedback != FeedbackRetry {
		t.Fatalf("after wrong guess: over=%v feedback=%v", s.RoundOver, s.Feedback)
	}

	s = s.SubmitAnswer("France")
	if !s.Won() {
		t.Fatalf("expected win, marks=%v", s.Marks)
	}
	if s.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", s.Attempts)
	}
}

func TestBlankSubmitIsRejected(t *testing.T) {
	s := NewRound(nameMode(), single(france))

	for _, blank := range []string{"", "   "} {
		next := s.SubmitAnswer(blank)
		if next.Attempts != 3 || next.Marks[0] != MarkUnknown || next.Feedback != FeedbackNone {
			t.Errorf("blank %q consumed an attempt: %+v", blank, next)
		}
	}
}

func TestStateIsImmutable(t *testing.T) {
	s := NewRound(nameMode(), single(france))
	_ = s.SetInput(0, "spain").Submit()

	if s.Inputs[0] != "" || s.Marks[0] != MarkUnknown || s.Attempts != 3 {
		t.Errorf("original state was modified: %+v", s)
	}
}

func TestSetInputIgnoresCorrectItems(t *testing.T) {
	mode := Mode{ID: "advanced", Kind: KindAdvanced, Rule: RuleName, Items: 3, Attempts: 3}
	ch := Challenge{Items: []countries.Country{france, spain, brazil}, Target: -1}

	s := NewRound(mode, ch).
		SetInput(0, "France").
		SetInput(1, "Germany").
		SetInput(2, "Brazil").
		Submit()

	if s.Marks[0] != MarkCorrect || s.Marks[1] != MarkIncorrect || s.Marks[2] != MarkCorrect {
		t.Fatalf("marks = %v", s.Marks)
	}
	if s.Score != 2 || s.Attempts != 2 || s.RoundOver {
		t.Fatalf("score=%d attempts=%d over=%v", s.Score, s.Attempts, s.RoundOver)
	}

	locked := s.SetInput(0, "changed")
	if locked.Inputs[0] != "France" {
		t.Errorf("correct item accepted new input %q", locked.Inputs[0])
	}

	s = s.SetInput(1, "spain").Submit()
	if !s.Won() || s.Score != 3 {
		t.Errorf("expected win with score 3, got score=%d marks=%v", s.Score, s.Marks)
	}
	checkInvariants(t, s)
}

func TestAdvancedBlankFieldCountsWrong(t *testing.T) {
	mode := Mode{ID: "advanced", Kind: KindAdvanced, Rule: RuleName, Items: 3, Attempts: 3}
	ch := Challenge{Items: []countries.Country{france, spain, brazil}, Target: -1}

	s := NewRound(mode, ch).SetInput(0, "France").Submit()
	if s.Marks[1] != MarkIncorrect || s.Marks[2] != MarkIncorrect {
		t.Errorf("blank fields should be graded incorrect, marks=%v", s.Marks)
	}
	if s.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", s.Attempts)
	}
}

func TestChooseOption(t *testing.T) {
	mode := Mode{ID: "flag", Kind: KindFlag, Rule: RuleCode, Options: 3, Attempts: 1}
	ch := Challenge{
		Items:   []countries.Country{spain},
		Options: []countries.Country{france, spain, brazil},
		Target:  1,
	}

	won := NewRound(mode, ch).Choose(1)
	if !won.Won() {
		t.Errorf("choosing the target should win, marks=%v", won.Marks)
	}

	lost := NewRound(mode, ch).Choose(0)
	if !lost.RoundOver || lost.Won() || lost.Attempts != 0 {
		t.Errorf("wrong pick with one attempt: over=%v won=%v attempts=%d", lost.RoundOver, lost.Won(), lost.Attempts)
	}

	same := NewRound(mode, ch).Choose(7)
	if same.Attempts != 1 || same.RoundOver {
		t.Error("out of range option should be ignored")
	}
}

func TestTickCountsDown(t *testing.T) {
	mode := nameMode()
	mode.Timer = true
	mode.TimeLimit = 10

	s := NewRound(mode, single(france))
	if s.TimeRemaining != 10 {
		t.Fatalf("TimeRemaining = %d, want 10", s.TimeRemaining)
	}
	for i := 9; i > 0; i-- {
		s = s.Tick()
		if s.TimeRemaining != i {
			t.Fatalf("TimeRemaining = %d, want %d", s.TimeRemaining, i)
		}
		checkInvariants(t, s)
	}
	if s.RoundOver {
		t.Fatal("round ended before time ran out")
	}

	s = s.Tick()
	if !s.RoundOver || s.TimeRemaining != 0 {
		t.Fatalf("after expiry: over=%v time=%d", s.RoundOver, s.TimeRemaining)
	}
	if s.Marks[0] != MarkIncorrect || s.Attempts != 0 || s.Feedback != FeedbackTimeout {
		t.Errorf("after expiry: mark=%v attempts=%d feedback=%v", s.Marks[0], s.Attempts, s.Feedback)
	}
	checkInvariants(t, s)

	// A finished round no longer counts down.
	if after := s.Tick(); after.TimeRemaining != 0 || after.Attempts != 0 {
		t.Errorf("tick after round over changed state: %+v", after)
	}
}

func TestTickWithoutTimerIsNoop(t *testing.T) {
	s := NewRound(nameMode(), single(france))
	if next := s.Tick(); next.TimeRemaining != 0 || next.RoundOver {
		t.Errorf("untimed tick changed state: %+v", next)
	}
}

func TestTickRetryOnExpiry(t *testing.T) {
	mode := nameMode()
	mode.Timer = true
	mode.TimeLimit = 2
	mode.RetryOnExpiry = true

	s := NewRound(mode, single(france))
	epoch := s.Epoch

	s = s.Tick().Tick()
	if s.RoundOver {
		t.Fatal("retry-on-expiry mode should keep the round open")
	}
	if s.Attempts != 2 || s.TimeRemaining != 2 {
		t.Errorf("after first expiry: attempts=%d time=%d", s.Attempts, s.TimeRemaining)
	}
	if s.Epoch == epoch {
		t.Error("expiry with retry should re-arm the clock")
	}

	s = s.Tick().Tick().Tick().Tick()
	if !s.RoundOver || s.Attempts != 0 {
		t.Errorf("after three expiries: over=%v attempts=%d", s.RoundOver, s.Attempts)
	}
	checkInvariants(t, s)
}

func TestWrongSubmitResetsClock(t *testing.T) {
	mode := nameMode()
	mode.Timer = true
	mode.TimeLimit = 10

	s := NewRound(mode, single(france)).Tick().Tick().Tick()
	epoch := s.Epoch

	s = s.SubmitAnswer("spain")
	if s.TimeRemaining != 10 {
		t.Errorf("TimeRemaining = %d, want 10 after a retry", s.TimeRemaining)
	}
	if s.Epoch == epoch {
		t.Error("retry should change the epoch")
	}
}

func TestAdvanceResetsRound(t *testing.T) {
	mode := nameMode()
	mode.Timer = true

	s := NewRound(mode, single(france)).SubmitAnswer("France")
	if !s.RoundOver {
		t.Fatal("expected round over")
	}

	next := s.Advance(single(spain))
	if next.RoundOver || next.Score != 0 || next.Attempts != 3 {
		t.Errorf("advance: over=%v score=%d attempts=%d", next.RoundOver, next.Score, next.Attempts)
	}
	if next.TimeRemaining != DefaultTimeLimit {
		t.Errorf("TimeRemaining = %d, want %d", next.TimeRemaining, DefaultTimeLimit)
	}
	if next.Round != 2 || next.Epoch <= s.Epoch {
		t.Errorf("round=%d epoch=%d (prev epoch %d)", next.Round, next.Epoch, s.Epoch)
	}
	if next.Challenge.Items[0] != spain {
		t.Errorf("new challenge not installed: %v", next.Challenge.Items)
	}

	// Advance before the round is over is ignored.
	if again := next.Advance(single(brazil)); again.Challenge.Items[0] != spain {
		t.Error("advance on an open round replaced the challenge")
	}
}
