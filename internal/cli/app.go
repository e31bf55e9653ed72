// Package cli implements the interactive frontend of TraceSnap: a small REPL
// that reads commands, invokes the core services, and prints the results.
// It owns no domain state beyond the current filter/search selection and the
// presentation theme.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/tracesnap/internal/config"
	"github.com/dmitrijs2005/tracesnap/internal/logging"
	"github.com/dmitrijs2005/tracesnap/internal/repositories/kvstore"
	"github.com/dmitrijs2005/tracesnap/internal/services"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	auth    *services.AuthService
	session *services.SessionService
	posts   *services.PostService
	store   kvstore.Repository
	reader  *bufio.Reader
	out     io.Writer

	// Presentation state, mirrored from the original UI: the active status
	// filter, the current search query, and the theme.
	filter string
	search string
	theme  string
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := kvstore.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := kvstore.NewSQLiteRepository(db)

	auth, err := services.NewAuthService(ctx, store, log)
	if err != nil {
		return nil, err
	}
	session, err := services.NewSessionService(ctx, store, log)
	if err != nil {
		return nil, err
	}
	posts, err := services.NewPostService(ctx, store, log)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:  c,
		log:     log,
		auth:    auth,
		session: session,
		posts:   posts,
		store:   store,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		filter:  services.FilterAll,
	}

	a.theme, err = loadTheme(ctx, store)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, "store opened", "dsn", c.DatabaseDSN, "theme", a.theme)
	return a, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) getStatus() string {
	if cur := a.session.Current(); cur != nil {
		return fmt.Sprintf("(%s)", cur.Username)
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to TraceSnap CLI (type 'help' for commands)")
	if cur := a.session.Current(); cur != nil {
		fmt.Fprintf(a.out, "Resumed session for %s\n", cur.Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}
