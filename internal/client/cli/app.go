// Package cli implements the interactive terminal frontend: the REPL, the
// sign-up and sign-in prompt flows, and the wiring between the API client,
// the session store, the status bar, and the logger.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/todoterm/todoterm/internal/client/api"
	"github.com/todoterm/todoterm/internal/client/config"
	"github.com/todoterm/todoterm/internal/client/services"
	"github.com/todoterm/todoterm/internal/client/session"
	"github.com/todoterm/todoterm/internal/client/status"
	"github.com/todoterm/todoterm/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired-up client application state.
type App struct {
	config *config.Config
	auth   services.AuthService
	bar    *status.Bar
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	userName   string
	submitting bool
}

// NewApp wires the application: local session database, API client, status
// bar, and a logger whose output is mirrored into the status bar.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := session.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	bar := status.NewBar(os.Stdout, cfg.StatusTTL)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logging.NewConsole(os.Stderr, level, logging.NewMirrorHook(bar))

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)

	return &App{
		config: cfg,
		auth:   services.NewAuthService(apiClient, store),
		bar:    bar,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and releases resources on exit.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.auth.Close(ctx) }()
	a.Root(ctx)
}

// Root drives the interactive loop on stdin.
func (a *App) Root(ctx context.Context) {
	a.log.Info(ctx, "Welcome to the Todo CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// getStatus renders the prompt decoration: the logged-in user, if any.
func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}
