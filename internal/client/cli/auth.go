package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/signin/internal/client/signin"
	"github.com/dmitrijs2005/signin/internal/client/validation"
	"github.com/dmitrijs2005/signin/internal/tokenx"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login fills the sign-in form and submits it. When email is empty it is
// prompted for; the password is always read from the terminal.
//
// Field errors are printed on Invalid. Success and failure messages come
// from the form's notifier, so a failed login is not an error here. The
// password bytes are cleared before returning.
func (a *App) Login(ctx context.Context, email string) error {
	if email == "" {
		var err error
		email, err = getSimpleText(a.scanner, "Enter email", a.out)
		if err != nil {
			return err
		}
	}
	a.form.SetEmail(email)
	a.form.Touch(validation.FieldEmail)

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)
	a.form.SetPassword(string(password))
	a.form.Touch(validation.FieldPassword)

	switch a.form.Submit(ctx) {
	case signin.Invalid:
		errs := a.form.Errors()
		for _, f := range validation.Fields {
			if e, ok := errs[f]; ok {
				fmt.Fprintf(a.out, "%s: %s\n", f, e.Message)
			}
		}
	case signin.Busy:
		fmt.Fprintln(a.out, "A sign-in is already in progress")
	}
	return nil
}

// Logout ends the current session and removes it from disk.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami prints the current user and, when the token is a JWT, its subject
// and expiry.
func (a *App) Whoami(ctx context.Context) error {
	u, ok := a.state.Current()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", displayName(u.Name, u.Email), u.Email, u.ID)

	info, err := tokenx.Inspect(u.Token)
	if errors.Is(err, tokenx.ErrNotJWT) {
		a.log.Debug(ctx, "token is opaque", "error", err)
		fmt.Fprintln(a.out, "token held (not a JWT)")
		return nil
	}
	if info.Subject != "" {
		fmt.Fprintf(a.out, "token subject: %s\n", info.Subject)
	}
	if !info.ExpiresAt.IsZero() {
		state := "valid"
		if info.ExpiresAt.Before(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "token expires: %s (%s)\n", info.ExpiresAt.Format(time.RFC3339), state)
	}
	return nil
}
