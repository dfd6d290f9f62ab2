package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/signin/internal/client/authstate"
	"github.com/dmitrijs2005/signin/internal/client/client"
	"github.com/dmitrijs2005/signin/internal/client/config"
	"github.com/dmitrijs2005/signin/internal/client/notify"
	"github.com/dmitrijs2005/signin/internal/client/services"
	"github.com/dmitrijs2005/signin/internal/client/signin"
	"github.com/dmitrijs2005/signin/internal/client/validation"
	"github.com/dmitrijs2005/signin/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config      *config.Config
	db          *sql.DB
	authService services.AuthService
	state       *authstate.State
	form        *signin.Form
	log         logging.Logger
	scanner     *bufio.Scanner
	out         io.Writer
}

// NewApp opens the session database and wires the sign-in stack for cfg.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.LoginURL(), nil, log)
	state := authstate.New()
	as := services.NewAuthService(apiClient, services.NewSessionStore(db), state, log)
	form := signin.NewForm(as, notify.NewWriter(os.Stdout), validation.New(), log)

	return &App{
		config:      c,
		db:          db,
		authService: as,
		state:       state,
		form:        form,
		log:         log,
		scanner:     bufio.NewScanner(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run restores the stored session and serves the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.close(ctx)

	cancel := a.state.Subscribe(func(c authstate.Change) {
		switch c.Kind {
		case authstate.LoggedIn:
			a.log.Debug(ctx, "auth state changed", "state", "logged_in", "user_id", c.User.ID)
		case authstate.LoggedOut:
			a.log.Debug(ctx, "auth state changed", "state", "logged_out")
		}
	})
	defer cancel()

	if u, ok, err := a.authService.Restore(ctx); err != nil {
		a.log.Warn(ctx, "stored session not restored", "error", err)
	} else if ok {
		fmt.Fprintf(a.out, "Welcome back, %s\n", displayName(u.Name, u.Email))
	}

	a.form.OnTriggerChange(func(t signin.Trigger) {
		if t.Progress {
			fmt.Fprintln(a.out, t.Label)
		}
	})

	fmt.Fprintln(a.out, "Sign-in CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.scanner)
	return nil
}

func (a *App) close(ctx context.Context) {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "error closing database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.state.Current()
	return ok
}

func (a *App) getStatus() string {
	u, ok := a.state.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", u.Email)
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
