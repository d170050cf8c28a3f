package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-flags/internal/config"
	"github.com/vovakirdan/tui-flags/internal/countries"
	"github.com/vovakirdan/tui-flags/internal/flagart"
)

// Env is everything a session needs to build quiz screens. It is shared
// read-only between SSH sessions.
type Env struct {
	Pool   countries.Pool
	Art    *flagart.Catalog
	Config config.Config

	// Source labels the country data on the home screen.
	Source string

	// Seed fixes the draw order; 0 means seed from the clock.
	Seed int64

	Logger *log.Logger
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.flags/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for the quiz.
type SSHServer struct {
	config SSHServerConfig
	env    Env
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, env Env) (*SSHServer, error) {
	logger := env.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "flags-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		env:    env,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".flags", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Every session draws its own sequence.
	env := s.env
	env.Seed = time.Now().UnixNano()
	env.Logger = s.logger.With("user", sshSession.User())

	model, err := NewSessionModel(env, pty.Window.Width, pty.Window.Height, "")
	if err != nil {
		s.logger.Error("cannot create session", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "countries", s.env.Pool.Len())

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full quiz session flow: home -> round -> home.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	env      Env
	width    int
	height   int
	menu     MenuModel
	round    *Model
	inRound  bool
	quitting bool
}

// NewSessionModel creates a new session model. A non-empty modeID opens
// that mode directly instead of the home screen.
func NewSessionModel(env Env, width, height int, modeID string) (SessionModel, error) {
	m := SessionModel{
		env:    env,
		width:  width,
		height: height,
		menu:   NewMenuModel(width, height, env.Config.Timer.Enabled, env.Source),
	}

	if modeID != "" {
		round, err := NewModel(env, modeID, env.Config.Timer.Enabled, width, height)
		if err != nil {
			return SessionModel{}, err
		}
		m.round = &round
		m.inRound = true
	}
	return m, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.inRound && m.round != nil {
		return m.round.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.inRound && m.round != nil {
		return m.updateRound(msg)
	}

	// Timer firings from a screen that was left; its countdown is stopped.
	if fm, ok := msg.(fireMsg); ok {
		fm.fire()
		return m, nil
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when on the home screen.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	// Check if user quit
	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Check if a mode was selected
	if selected := m.menu.Selected(); selected != nil {
		round, err := NewModel(m.env, selected.ModeID, m.menu.TimerEnabled(), m.width, m.height)
		if err != nil {
			// Shouldn't happen since the menu only shows registered modes
			m.env.logger().Error("cannot open mode", "mode", selected.ModeID, "error", err)
			m.menu = NewMenuModel(m.width, m.height, m.menu.TimerEnabled(), m.env.Source)
			return m, nil
		}

		m.round = &round
		m.inRound = true
		return m, m.round.Init()
	}

	return m, cmd
}

// updateRound handles updates when a round screen is shown.
func (m SessionModel) updateRound(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.round.Update(msg)
	if round, ok := newModel.(Model); ok {
		m.round = &round
	}

	// Check if user went back to the home screen
	if m.round.BackToMenu() {
		timer := m.round.ctrl.Mode().Timer
		m.inRound = false
		m.round = nil
		m.menu = NewMenuModel(m.width, m.height, timer, m.env.Source)
		return m, m.menu.Init()
	}

	// Check if user quit entirely
	if m.round.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inRound && m.round != nil {
		return m.round.View()
	}

	return m.menu.View()
}
