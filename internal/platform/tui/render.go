package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flags/internal/flagart"
	"github.com/vovakirdan/tui-flags/internal/quiz"
)

// Flag art sizes
const (
	flagW      = 24
	flagH      = 8
	smallFlagW = 16
	smallFlagH = 6
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	wrongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	optionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeOptionStyle = optionStyle.
				BorderForeground(lipgloss.Color("229"))
)

// centerText centers text within given width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// renderFlag draws the flag for code, or a placeholder when there is no art.
func renderFlag(art *flagart.Catalog, code string, width, height int) string {
	if art != nil {
		if f, ok := art.Lookup(code); ok {
			return flagart.Render(f, width, height)
		}
	}
	return flagart.Placeholder(code, width, height)
}

// markGlyph is the per-item grading indicator.
func markGlyph(m quiz.Mark) string {
	switch m {
	case quiz.MarkCorrect:
		return correctStyle.Render("✓")
	case quiz.MarkIncorrect:
		return wrongStyle.Render("✗")
	default:
		return " "
	}
}

// hud is the status line: round, score, attempts, timer and session tally.
func hud(s quiz.RoundState, tally quiz.Tally) string {
	parts := []string{
		fmt.Sprintf("Round %d", s.Round),
		fmt.Sprintf("Score: %d/%d", s.Score, len(s.Challenge.Items)),
		fmt.Sprintf("Attempts: %d", s.Attempts),
	}
	if s.Mode.Timer {
		timer := fmt.Sprintf("Time: %ds", s.TimeRemaining)
		if s.TimeRemaining <= 3 && !s.RoundOver {
			timer = warnStyle.Render(timer)
		}
		parts = append(parts, timer)
	}
	parts = append(parts, fmt.Sprintf("Won %d/%d (%d pts)", tally.Won, tally.Rounds, tally.Points))
	return strings.Join(parts, "  |  ")
}

// feedbackLine describes the outcome of the last event.
func feedbackLine(s quiz.RoundState) string {
	switch s.Feedback {
	case quiz.FeedbackCorrect:
		return correctStyle.Render("Correct!")
	case quiz.FeedbackWrong:
		return wrongStyle.Render("Out of attempts")
	case quiz.FeedbackRetry:
		return wrongStyle.Render("Not quite, try again")
	case quiz.FeedbackHit:
		return correctStyle.Render("Good guess")
	case quiz.FeedbackMiss:
		return wrongStyle.Render("Not in the name")
	case quiz.FeedbackTimeout:
		return wrongStyle.Render("Time's up")
	default:
		return ""
	}
}

// answerLine reveals the correct answer once a single-item round is over.
func answerLine(s quiz.RoundState) string {
	if !s.RoundOver || len(s.Challenge.Items) == 0 {
		return ""
	}
	return "Correct answer: " + selectedStyle.Render(s.Challenge.Items[0].Name)
}
