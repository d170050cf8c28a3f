package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flags/internal/registry"
)

// MenuItem represents a selectable mode on the home screen.
type MenuItem struct {
	ModeID      string
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the home screen.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	timer    bool
	source   string // label for the country data in play
	keys     HomeKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem // Set when user selects a mode
}

// NewMenuModel creates a new home screen model.
func NewMenuModel(width, height int, timer bool, source string) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes))
	for _, m := range modes {
		items = append(items, MenuItem{
			ModeID:      m.ID,
			Title:       m.Title,
			Description: m.Description,
		})
	}

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		timer:  timer,
		source: source,
		keys:   DefaultHomeKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Timer):
		m.timer = !m.timer

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F L A G S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtleStyle.Render("Playing "+m.source), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		title := fmt.Sprintf("%-20s", item.Title)
		if i == m.cursor {
			cursor = "> "
			title = selectedStyle.Render(title)
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s %s", cursor, title, subtleStyle.Render(item.Description)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	timer := "off"
	if m.timer {
		timer = "on"
	}
	b.WriteString(centerText("Timer: "+selectedStyle.Render(timer), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// TimerEnabled reports the state of the timer toggle.
func (m MenuModel) TimerEnabled() bool {
	return m.timer
}
