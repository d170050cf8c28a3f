package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flags/internal/quiz"
)

// Answer table column widths
const (
	answerColMark   = 3
	answerColGuess  = 22
	answerColAnswer = 26
)

// answerTable lists every item of a finished round with the player's
// input next to the correct name.
func answerTable(s quiz.RoundState) string {
	columns := []table.Column{
		{Title: "", Width: answerColMark},
		{Title: "Your answer", Width: answerColGuess},
		{Title: "Correct answer", Width: answerColAnswer},
	}

	rows := make([]table.Row, len(s.Challenge.Items))
	for i, item := range s.Challenge.Items {
		mark := "✗"
		if s.Marks[i] == quiz.MarkCorrect {
			mark = "✓"
		}
		guess := s.Inputs[i]
		if guess == "" {
			guess = "-"
		}
		rows[i] = table.Row{mark, guess, item.Name}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	// Table styles
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = lipgloss.NewStyle()
	t.SetStyles(st)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	return tableStyle.Render(t.View())
}
