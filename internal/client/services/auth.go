// Package services contains application services for the sign-in client.
// This file defines the authentication service: login against the API,
// logout, and restoring a persisted session at start-up.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/signin/internal/client/authstate"
	"github.com/dmitrijs2005/signin/internal/client/client"
	"github.com/dmitrijs2005/signin/internal/client/models"
	"github.com/dmitrijs2005/signin/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server, then store the session and
//     make it current as one step; on any failure neither happens.
//   - Logout: remove the stored session and end the current one.
//   - Restore: make a previously stored session current again.
//
// All methods must honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.AuthenticatedUser, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (models.AuthenticatedUser, bool, error)
}

type authService struct {
	client client.Client
	store  SessionStore
	state  *authstate.State
	log    logging.Logger
}

// NewAuthService constructs an AuthService over the API client, the durable
// session store and the process session state.
func NewAuthService(c client.Client, store SessionStore, state *authstate.State, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNop()
	}
	return &authService{client: c, store: store, state: state, log: log.With("component", "auth_service")}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.AuthenticatedUser, error) {
	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		return models.AuthenticatedUser{}, fmt.Errorf("login error: %w", err)
	}

	user := resp.AuthenticatedUser()
	err = a.state.Establish(ctx, user, func(ctx context.Context) error {
		return a.store.Save(ctx, user)
	})
	if err != nil {
		return models.AuthenticatedUser{}, fmt.Errorf("session saving error: %w", err)
	}

	a.log.Info(ctx, "session established", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.state.Logout(ctx, a.store.Clear); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	a.log.Info(ctx, "session cleared")
	return nil
}

// Restore loads the stored session into the state. A stored user without a
// token is treated as no session.
func (a *authService) Restore(ctx context.Context) (models.AuthenticatedUser, bool, error) {
	u, err := a.store.Load(ctx)
	if errors.Is(err, models.ErrMissingToken) {
		a.log.Warn(ctx, "ignoring stored session without token")
		return models.AuthenticatedUser{}, false, nil
	}
	if err != nil {
		return models.AuthenticatedUser{}, false, fmt.Errorf("session loading error: %w", err)
	}
	if u == nil {
		return models.AuthenticatedUser{}, false, nil
	}

	if err := a.state.Login(*u); err != nil {
		return models.AuthenticatedUser{}, false, err
	}
	a.log.Debug(ctx, "session restored", "user_id", u.ID)
	return *u, true, nil
}
