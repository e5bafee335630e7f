package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// parse wraps FlagSet.Parse so --help exits the command cleanly.
func parse(fs *pflag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	username := fs.String("username", "", "account username")
	ok, err := parse(fs, args)
	if !ok {
		return err
	}
	if *username == "" {
		return fmt.Errorf("--username is required")
	}

	password, err := promptPassword("password: ")
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, *username, password); err != nil {
		return err
	}

	user := a.auth.CurrentUser()
	fmt.Fprintf(a.out, "logged in as %s (%s)\n", user.Username, joinRoles(user.Profiles))
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *app) cmdWhoami() error {
	user := a.auth.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.Username, user.Email)
	fmt.Fprintf(a.out, "profiles: %s\n", joinRoles(user.Profiles))
	summary := a.auth.ProfileSummary()
	if len(summary) == 0 {
		fmt.Fprintln(a.out, "capabilities: none")
		return nil
	}
	fmt.Fprintf(a.out, "capabilities: %s\n", strings.Join(summary, " • "))
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	username := fs.String("username", "", "account username")
	email := fs.String("email", "", "account email")
	profile := fs.String("profile", string(domain.RoleViewer), "profile: admin, manager, operator or viewer")
	ok, err := parse(fs, args)
	if !ok {
		return err
	}
	if *username == "" || *email == "" {
		return fmt.Errorf("--username and --email are required")
	}
	role, err := domain.ParseRole(*profile)
	if err != nil {
		return err
	}

	password, err := promptPassword("password: ")
	if err != nil {
		return err
	}

	if err := a.authAPI.Register(ctx, ports.RegisterInput{
		Username: *username,
		Email:    *email,
		Password: password,
		Profile:  role,
	}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "account created, log in to continue")
	return nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

func joinRoles(roles []domain.Role) string {
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ", ")
}
