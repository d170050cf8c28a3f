package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-flags/internal/quiz"
)

// HomeKeyMap defines the key bindings for the home screen.
type HomeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Timer  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HomeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Timer, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HomeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Timer, k.Quit},
	}
}

// DefaultHomeKeyMap returns default key bindings.
func DefaultHomeKeyMap() HomeKeyMap {
	return HomeKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Timer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle timer"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RoundKeyMap defines the key bindings shared by round screens. Printable
// keys go to text inputs, so only control keys are bound here.
type RoundKeyMap struct {
	Press  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RoundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Next, k.Left, k.Right, k.Filter, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RoundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Press, k.Next, k.Prev},
		{k.Left, k.Right, k.Filter},
		{k.Back, k.Quit},
	}
}

// DefaultRoundKeyMap returns default key bindings. Bindings that do not
// apply to a mode are disabled by the round screen.
func DefaultRoundKeyMap() RoundKeyMap {
	return RoundKeyMap{
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit/next"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "prev option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "next option"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "home"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// forMode enables only the bindings the given kind of screen uses.
func (k RoundKeyMap) forMode(kind quiz.Kind) RoundKeyMap {
	k.Next.SetEnabled(kind == quiz.KindAdvanced)
	k.Prev.SetEnabled(kind == quiz.KindAdvanced)
	k.Left.SetEnabled(kind == quiz.KindFlag)
	k.Right.SetEnabled(kind == quiz.KindFlag)
	k.Filter.SetEnabled(kind == quiz.KindCountry)
	return k
}
