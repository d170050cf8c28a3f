package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vovakirdan/tui-flags/internal/countries"
	"github.com/vovakirdan/tui-flags/internal/quiz"
	"github.com/vovakirdan/tui-flags/internal/registry"
)

// countryItem is one entry of the country picker.
type countryItem struct {
	countries.Country
}

func (i countryItem) Title() string       { return i.Name }
func (i countryItem) Description() string { return i.Code }
func (i countryItem) FilterValue() string { return i.Name }

// Model is the Bubble Tea model for one quiz mode. It owns the quiz
// controller for as long as the screen is shown.
type Model struct {
	ctrl  *quiz.Controller
	sched *teaScheduler
	env   Env
	title string

	keys RoundKeyMap
	help help.Model

	picker list.Model        // country picker
	letter textinput.Model   // letter guesses
	fields []textinput.Model // one per item in multi-item rounds
	focus  int
	option int // highlighted option in multiple-choice rounds

	round    int // round the widgets were last reset for
	width    int
	height   int
	back     bool
	quitting bool
}

// NewModel creates the screen for modeID. The timer flag overrides the
// configured timer setting.
func NewModel(env Env, modeID string, timer bool, width, height int) (Model, error) {
	mode, err := registry.Create(modeID)
	if err != nil {
		return Model{}, err
	}

	cfg := env.Config
	cfg.Timer.Enabled = timer
	qm := mode.Build(cfg)

	seed := env.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sched := &teaScheduler{}
	opts := []quiz.Option{
		quiz.WithRand(rand.New(rand.NewSource(seed))),
		quiz.WithScheduler(sched),
		quiz.WithLogger(env.logger()),
	}
	if env.Art != nil {
		opts = append(opts, quiz.WithDrawable(env.Art.Has))
	}

	m := Model{
		ctrl:   quiz.NewController(env.Pool, qm, opts...),
		sched:  sched,
		env:    env,
		title:  mode.Title(),
		keys:   DefaultRoundKeyMap().forMode(qm.Kind),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width

	switch qm.Kind {
	case quiz.KindCountry:
		m.picker = newPicker(env.Pool, width, m.pickerHeight())
	case quiz.KindHints:
		m.letter = textinput.New()
		m.letter.Prompt = "Letter: "
		m.letter.CharLimit = 1
		m.letter.Width = 3
	}
	m.resetWidgets()
	return m, nil
}

// newPicker builds the filterable country list, sorted by name.
func newPicker(pool countries.Pool, width, height int) list.Model {
	byName := make(map[string]countries.Country, pool.Len())
	for _, c := range pool.Countries() {
		byName[c.Name] = c
	}
	names := pool.Names()
	collate.New(language.English, collate.IgnoreCase).SortStrings(names)

	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = countryItem{byName[name]}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, width, height)
	l.Title = "Countries"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

// Init starts the countdown for the first round.
func (m Model) Init() tea.Cmd {
	m.ctrl.Start()
	cmds := []tea.Cmd{m.sched.drain()}
	if m.ctrl.Mode().Kind == quiz.KindHints || m.ctrl.Mode().Kind == quiz.KindAdvanced {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fireMsg:
		msg.fire()
		return m, m.sync()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.ctrl.Mode().Kind == quiz.KindCountry {
			m.picker.SetSize(msg.Width, m.pickerHeight())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kind := m.ctrl.Mode().Kind

	if key.Matches(msg, m.keys.Quit) {
		m.ctrl.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	// While typing a search the picker owns every key.
	if kind == quiz.KindCountry && m.picker.SettingFilter() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Back) {
		if kind == quiz.KindCountry && m.picker.FilterState() == list.FilterApplied {
			m.picker.ResetFilter()
			return m, nil
		}
		m.ctrl.Stop()
		m.back = true
		return m, nil
	}

	if key.Matches(msg, m.keys.Press) {
		m.press()
		return m, m.sync()
	}

	var cmd tea.Cmd
	switch kind {
	case quiz.KindCountry:
		m.picker, cmd = m.picker.Update(msg)

	case quiz.KindHints:
		m.letter, cmd = m.letter.Update(msg)

	case quiz.KindFlag:
		cmd = m.handleOptionKey(msg)

	case quiz.KindAdvanced:
		cmd = m.handleFieldKey(msg)
	}

	return m, tea.Batch(cmd, m.sync())
}

// handleOptionKey moves the highlight, or picks an option by its number.
func (m *Model) handleOptionKey(msg tea.KeyMsg) tea.Cmd {
	n := len(m.ctrl.State().Challenge.Options)
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.option > 0 {
			m.option--
		}
	case key.Matches(msg, m.keys.Right):
		if m.option < n-1 {
			m.option++
		}
	default:
		s := msg.String()
		if len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < n {
			m.option = int(s[0] - '1')
			m.press()
		}
	}
	return nil
}

// handleFieldKey moves focus between fields or edits the focused one.
func (m *Model) handleFieldKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	if m.focus < 0 || m.focus >= len(m.fields) {
		return nil
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	m.ctrl.SetInput(m.focus, m.fields[m.focus].Value())
	return cmd
}

// moveFocus focuses the next field in direction dir that is still open.
func (m *Model) moveFocus(dir int) tea.Cmd {
	s := m.ctrl.State()
	n := len(m.fields)
	if n == 0 {
		return nil
	}
	for step := 1; step <= n; step++ {
		i := ((m.focus+dir*step)%n + n) % n
		if s.Marks[i] != quiz.MarkCorrect {
			return m.focusField(i)
		}
	}
	return nil
}

func (m *Model) focusField(i int) tea.Cmd {
	for j := range m.fields {
		m.fields[j].Blur()
	}
	m.focus = i
	return m.fields[i].Focus()
}

// press is the single submit/next action.
func (m *Model) press() {
	s := m.ctrl.State()
	if s.RoundOver {
		m.ctrl.Advance()
		return
	}

	switch m.ctrl.Mode().Kind {
	case quiz.KindCountry:
		if item, ok := m.picker.SelectedItem().(countryItem); ok {
			m.ctrl.SubmitAnswer(item.Name)
		}
	case quiz.KindHints:
		m.ctrl.SubmitAnswer(m.letter.Value())
		m.letter.Reset()
	case quiz.KindFlag:
		m.ctrl.Choose(m.option)
	default:
		m.ctrl.Press()
	}
}

// sync brings widgets in line with the controller and collects any timer
// commands it scheduled.
func (m *Model) sync() tea.Cmd {
	var cmds []tea.Cmd
	s := m.ctrl.State()
	if s.Round != m.round {
		cmds = append(cmds, m.resetWidgets())
	}

	// Correct fields are locked.
	if m.ctrl.Mode().Kind == quiz.KindAdvanced && !s.RoundOver {
		for i := range m.fields {
			if s.Marks[i] == quiz.MarkCorrect {
				m.fields[i].Blur()
			}
		}
		if m.focus < len(s.Marks) && s.Marks[m.focus] == quiz.MarkCorrect {
			cmds = append(cmds, m.moveFocus(1))
		}
	}

	cmds = append(cmds, m.sched.drain())
	return tea.Batch(cmds...)
}

// resetWidgets clears all input for a fresh round.
func (m *Model) resetWidgets() tea.Cmd {
	s := m.ctrl.State()
	m.round = s.Round
	m.option = 0

	switch m.ctrl.Mode().Kind {
	case quiz.KindCountry:
		m.picker.ResetFilter()
		m.picker.ResetSelected()
	case quiz.KindHints:
		m.letter.Reset()
		return m.letter.Focus()
	case quiz.KindAdvanced:
		m.fields = make([]textinput.Model, len(s.Challenge.Items))
		for i := range m.fields {
			ti := textinput.New()
			ti.Prompt = fmt.Sprintf("%d> ", i+1)
			ti.CharLimit = 60
			ti.Width = smallFlagW
			m.fields[i] = ti
		}
		if len(m.fields) > 0 {
			return m.focusField(0)
		}
	}
	return nil
}

func (m Model) pickerHeight() int {
	h := m.height - flagH - 12
	if h < 6 {
		h = 6
	}
	return h
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.ctrl.State()
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(subtleStyle.Render(hud(s, m.ctrl.Tally())))
	b.WriteString("\n\n")

	if len(s.Challenge.Items) == 0 {
		b.WriteString(wrongStyle.Render("No countries available for this mode."))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	switch m.ctrl.Mode().Kind {
	case quiz.KindCountry:
		b.WriteString(m.viewCountry(s))
	case quiz.KindHints:
		b.WriteString(m.viewHints(s))
	case quiz.KindFlag:
		b.WriteString(m.viewOptions(s))
	case quiz.KindAdvanced:
		b.WriteString(m.viewFields(s))
	}

	b.WriteString("\n")
	if line := feedbackLine(s); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if s.RoundOver {
		b.WriteString(subtleStyle.Render("Press enter for the next round"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) viewCountry(s quiz.RoundState) string {
	var b strings.Builder
	b.WriteString(renderFlag(m.env.Art, s.Challenge.Items[0].Code, flagW, flagH))
	b.WriteString("\n\n")
	if s.RoundOver {
		b.WriteString(answerLine(s))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewHints(s quiz.RoundState) string {
	var b strings.Builder
	b.WriteString(renderFlag(m.env.Art, s.Challenge.Items[0].Code, flagW, flagH))
	b.WriteString("\n\n")

	spaced := strings.Join(strings.Split(s.MaskString(), ""), " ")
	b.WriteString(selectedStyle.Render(spaced))
	b.WriteString("\n\n")

	if len(s.Guessed) > 0 {
		b.WriteString(subtleStyle.Render("Guessed: " + strings.Join(strings.Split(string(s.Guessed), ""), " ")))
		b.WriteString("\n")
	}
	if s.RoundOver {
		b.WriteString(answerLine(s))
	} else {
		b.WriteString(m.letter.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewOptions(s quiz.RoundState) string {
	var b strings.Builder
	b.WriteString("Which flag belongs to ")
	b.WriteString(selectedStyle.Render(s.Challenge.Items[0].Name))
	b.WriteString("?\n\n")

	boxes := make([]string, len(s.Challenge.Options))
	for i, opt := range s.Challenge.Options {
		style := optionStyle
		if i == m.option && !s.RoundOver {
			style = activeOptionStyle
		}
		label := fmt.Sprintf("%d", i+1)
		if s.RoundOver && i == s.Challenge.Target {
			label += " " + correctStyle.Render("✓")
		}
		boxes[i] = style.Render(label + "\n" + renderFlag(m.env.Art, opt.Code, smallFlagW, smallFlagH))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewFields(s quiz.RoundState) string {
	cols := make([]string, len(s.Challenge.Items))
	for i, item := range s.Challenge.Items {
		var col strings.Builder
		col.WriteString(renderFlag(m.env.Art, item.Code, smallFlagW, smallFlagH))
		col.WriteString("\n")
		if i < len(m.fields) {
			col.WriteString(m.fields[i].View())
		}
		col.WriteString(" ")
		col.WriteString(markGlyph(s.Marks[i]))
		cols[i] = lipgloss.NewStyle().MarginRight(2).Render(col.String())
	}

	out := lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n"
	if s.RoundOver {
		out += "\n" + answerTable(s) + "\n"
	}
	return out
}

// BackToMenu returns true if user requested to go back to the home screen.
func (m Model) BackToMenu() bool {
	return m.back
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program. With an empty modeID it opens on the
// home screen; otherwise it goes straight into that mode.
func Run(env Env, modeID string, width, height int) error {
	app, err := NewSessionModel(env, width, height, modeID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
