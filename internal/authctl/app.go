// Package authctl implements the administrative command line of gophauth:
// schema migrations, one-shot token sweeps and credential management.
package authctl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// ErrUsage is returned for unknown commands or missing arguments.
var ErrUsage = errors.New("usage")

const usage = `usage: authctl <command> [args]

commands:
  migrate                                 apply database migrations
  sweep [-y]                              delete expired and revoked refresh tokens
  set-password <email>                    replace a user's password and revoke their sessions
  create-user <username> <email> [role]   create a user (role: user or admin, default user)`

type Migrator interface {
	Migrate(ctx context.Context) error
}

type Sweeper interface {
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

type Users interface {
	SetPassword(ctx context.Context, email, password string) error
	CreateUser(ctx context.Context, username, email, password, role string) (*models.User, error)
}

type App struct {
	migrator Migrator
	sweeper  Sweeper
	users    Users
	in       *bufio.Reader
	out      io.Writer
	now      timex.Clock
}

func NewApp(m Migrator, s Sweeper, u Users, in io.Reader, out io.Writer) *App {
	return &App{
		migrator: m,
		sweeper:  s,
		users:    u,
		in:       bufio.NewReader(in),
		out:      out,
		now:      timex.Now,
	}
}

// Usage prints the command summary.
func (a *App) Usage() {
	fmt.Fprintln(a.out, usage)
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "migrate":
		return a.migrate(ctx)
	case "sweep":
		if len(rest) > 1 || (len(rest) == 1 && rest[0] != "-y") {
			return ErrUsage
		}
		return a.sweep(ctx, len(rest) == 1)
	case "set-password":
		if len(rest) != 1 {
			return ErrUsage
		}
		return a.setPassword(ctx, rest[0])
	case "create-user":
		if len(rest) < 2 || len(rest) > 3 {
			return ErrUsage
		}
		role := common.RoleUser
		if len(rest) == 3 {
			role = rest[2]
		}
		return a.createUser(ctx, rest[0], rest[1], role)
	case "help", "-h", "--help":
		a.Usage()
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (a *App) migrate(ctx context.Context) error {
	if err := a.migrator.Migrate(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "migrations applied")
	return nil
}

func (a *App) sweep(ctx context.Context, confirmed bool) error {
	if !confirmed {
		ok, err := a.Confirm("Delete expired and revoked refresh tokens?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "aborted")
			return nil
		}
	}
	n, err := a.sweeper.SweepExpired(ctx, a.now())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "removed %d refresh tokens\n", n)
	return nil
}

func (a *App) setPassword(ctx context.Context, email string) error {
	pw, err := GetNewPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(pw)

	if err := a.users.SetPassword(ctx, email, string(pw)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "password updated, sessions revoked")
	return nil
}

func (a *App) createUser(ctx context.Context, username, email, role string) error {
	pw, err := GetNewPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(pw)

	u, err := a.users.CreateUser(ctx, username, email, string(pw), role)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created %s user %s (%s)\n", u.Role, u.Username, u.ID)
	return nil
}

// Confirm asks a yes/no question; anything but "y" or "yes" is a no.
func (a *App) Confirm(prompt string) (bool, error) {
	answer, err := GetSimpleText(a.in, prompt+" [y/N]", a.out)
	if err != nil {
		return false, err
	}
	return answer == "y" || answer == "yes", nil
}
