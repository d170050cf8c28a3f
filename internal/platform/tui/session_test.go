package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flags/internal/config"
	"github.com/vovakirdan/tui-flags/internal/countries"
	"github.com/vovakirdan/tui-flags/internal/flagart"
	_ "github.com/vovakirdan/tui-flags/internal/modes"
)

func testEnv() Env {
	return Env{
		Pool:   countries.Default(),
		Art:    flagart.Default(),
		Config: config.DefaultConfig(),
		Source: "test data",
		Seed:   1,
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	sm, ok := m.(SessionModel)
	if !ok {
		t.Fatalf("unexpected model type %T", m)
	}
	return sm
}

func TestSessionStartsOnHome(t *testing.T) {
	m, err := NewSessionModel(testEnv(), 100, 40, "")
	if err != nil {
		t.Fatal(err)
	}
	if m.inRound {
		t.Fatal("session without a mode should start on the home screen")
	}
	view := m.View()
	if !strings.Contains(view, "Guess the country") || !strings.Contains(view, "Advanced") {
		t.Errorf("home screen does not list the modes:\n%s", view)
	}
}

func TestSessionOpensSelectedMode(t *testing.T) {
	m, _ := NewSessionModel(testEnv(), 100, 40, "")

	// Second entry is the hints mode.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.inRound || m.round == nil {
		t.Fatal("enter did not open a round")
	}
	if id := m.round.ctrl.Mode().ID; id != "hints" {
		t.Errorf("opened %q, want hints", id)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.inRound {
		t.Error("esc did not return to the home screen")
	}
}

func TestSessionTimerToggle(t *testing.T) {
	m, _ := NewSessionModel(testEnv(), 100, 40, "")

	m = send(t, m, keyRunes("t"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.round.ctrl.Mode().Timer {
		t.Error("timer toggle was not passed to the round")
	}
	if !m.round.ctrl.TimerRunning() {
		t.Error("countdown not started on entry")
	}

	// Leaving the screen stops the countdown.
	ctrl := m.round.ctrl
	send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if ctrl.TimerRunning() {
		t.Error("countdown still running after leaving the screen")
	}
}

func TestFlagModePickByNumber(t *testing.T) {
	m, err := NewSessionModel(testEnv(), 100, 40, "flag")
	if err != nil {
		t.Fatal(err)
	}

	m = send(t, m, keyRunes("1"))
	s := m.round.ctrl.State()
	if !s.RoundOver {
		t.Fatal("picking an option with one attempt should end the round")
	}
	if s.Won() != (s.Challenge.Target == 0) {
		t.Errorf("won=%v but target was %d", s.Won(), s.Challenge.Target)
	}

	// Enter on a finished round starts the next one.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.round.ctrl.State(); got.RoundOver || got.Round != 2 {
		t.Errorf("enter did not advance: over=%v round=%d", got.RoundOver, got.Round)
	}
}

func TestHintsModeGuess(t *testing.T) {
	m, err := NewSessionModel(testEnv(), 100, 40, "hints")
	if err != nil {
		t.Fatal(err)
	}

	before := m.round.ctrl.State()
	name := before.Challenge.Items[0].Name
	letter := strings.ToLower(string([]rune(name)[0]))

	m = send(t, m, keyRunes(letter), tea.KeyMsg{Type: tea.KeyEnter})
	s := m.round.ctrl.State()
	if strings.Count(s.MaskString(), "_") >= strings.Count(before.MaskString(), "_") {
		t.Errorf("guessing %q revealed nothing in %q", letter, s.MaskString())
	}
	if m.round.letter.Value() != "" {
		t.Error("letter input not cleared after a guess")
	}
}

func TestUnknownModeFails(t *testing.T) {
	if _, err := NewSessionModel(testEnv(), 100, 40, "nope"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestHUDShowsScore(t *testing.T) {
	m, err := NewSessionModel(testEnv(), 120, 40, "advanced")
	if err != nil {
		t.Fatal(err)
	}

	items := m.round.ctrl.State().Challenge.Items
	if len(items) < 3 {
		t.Fatalf("advanced round drew %d items, want 3", len(items))
	}
	if view := m.View(); !strings.Contains(view, "Score: 0/3") {
		t.Errorf("fresh round does not show the score:\n%s", view)
	}

	m = send(t, m,
		keyRunes(items[0].Name),
		tea.KeyMsg{Type: tea.KeyTab},
		keyRunes(items[1].Name),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	s := m.round.ctrl.State()
	if s.Score != 2 || s.Attempts != 2 || s.RoundOver {
		t.Fatalf("score=%d attempts=%d over=%v, want 2/2/open", s.Score, s.Attempts, s.RoundOver)
	}
	view := m.View()
	if !strings.Contains(view, "Score: 2/3") {
		t.Errorf("HUD does not show the score:\n%s", view)
	}
	if !strings.Contains(view, "Won 0/0 (0 pts)") {
		t.Errorf("HUD does not show the session points:\n%s", view)
	}
}

func TestHUDShowsPoints(t *testing.T) {
	m, err := NewSessionModel(testEnv(), 100, 40, "flag")
	if err != nil {
		t.Fatal(err)
	}

	target := m.round.ctrl.State().Challenge.Target
	m = send(t, m, keyRunes(string(rune('1'+target))))
	if !m.round.ctrl.State().Won() {
		t.Fatal("picking the target should win the round")
	}
	if view := m.View(); !strings.Contains(view, "Won 1/1 (1 pts)") {
		t.Errorf("HUD does not show the tally:\n%s", view)
	}
}
