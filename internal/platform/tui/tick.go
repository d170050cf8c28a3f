// Package tui provides the Bubble Tea host for the flag quiz.
// It handles the terminal UI loop, key bindings, and screen orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fireMsg delivers a scheduled callback back onto the Bubble Tea event loop.
type fireMsg struct {
	fire func()
}

// teaScheduler turns countdown scheduling requests into tea.Tick commands.
// Requests made during an Update are collected and returned by drain.
type teaScheduler struct {
	pending []tea.Cmd
}

// Schedule implements countdown.Scheduler.
func (s *teaScheduler) Schedule(d time.Duration, fire func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return fireMsg{fire: fire}
	}))
}

// drain returns the commands queued since the last call.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
