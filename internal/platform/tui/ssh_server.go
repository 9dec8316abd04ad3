package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/jailrun/internal/core"
	"github.com/vovakirdan/jailrun/internal/storage"
)

// SSHServerConfig configures the SSH server.
type SSHServerConfig struct {
	Address     string // host:port, e.g. ":23234"
	HostKeyPath string // generated on first start; empty means ~/.jailrun/host_key
	DBPath      string
	IdleTimeout time.Duration
	TickRate    int

	// Logger receives session lifecycle lines. Nil means a prefixed stderr logger.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns the settings `jailrun serve` starts from.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.jailrun/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves the game picker over SSH. Every session gets its own
// program, game and simulation; only the score store is shared.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer opens the score store and prepares the listener. A store that
// cannot be opened is logged and the server runs without scores.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	srv := &SSHServer{config: cfg, logger: cfg.Logger}
	if srv.logger == nil {
		srv.logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "jailrun-ssh",
		})
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	if store, err := storage.Open(cfg.DBPath); err != nil {
		srv.logger.Warn("could not open scores database", "error", err)
	} else {
		srv.store = store
	}

	// Middleware runs last to first: sessions are logged, then checked for a
	// terminal, then handed to Bubble Tea.
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return srv, nil
}

// hostKeyPath resolves the host key location and makes sure its directory
// exists so wish can write a new key there.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".jailrun", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// Store returns the shared score store, or nil when it could not be opened.
func (s *SSHServer) Store() *storage.Store {
	return s.store
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
	}
}

// teaHandler builds the session program. activeterm guarantees a PTY.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	logger := s.logger.With("user", sess.User())
	return NewSessionModel(s.store, cfg, logger), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("session started")
		next(sess)
		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe blocks until ctx is cancelled, the process is interrupted or
// the listener fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errc:
		s.logger.Error("server error", "error", err)
		//nolint:errcheck // The listen error is the one worth reporting
		s.Shutdown()
		return err
	}
}

// Shutdown closes the store and gives open sessions ten seconds to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.closeStore()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
