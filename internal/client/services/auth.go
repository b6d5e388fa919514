// Package services contains the application services behind the CLI: the
// sign-up and sign-in flows, local validation, and session persistence.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/todoterm/todoterm/internal/client/api"
	"github.com/todoterm/todoterm/internal/client/session"
)

var (
	// ErrFieldsRequired is a local validation failure: some required field
	// is empty. No network call is made.
	ErrFieldsRequired = errors.New("all fields are required")

	// ErrPasswordTooShort is a local validation failure on sign-up.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrNoToken means the login call succeeded but the response carried no
	// token, which is a failure regardless of the HTTP status.
	ErrNoToken = errors.New("no token received")
)

// minPasswordLen is the sign-up password length floor, in characters.
const minPasswordLen = 6

// SessionStore is the durable storage surface the auth flows need.
// *session.Store satisfies it.
type SessionStore interface {
	Save(ctx context.Context, token, username string) error
	Current(ctx context.Context) (*session.Session, error)
	Clear(ctx context.Context) error
	Close() error
}

// AuthService drives the two credential forms.
//
// Contract:
//   - SignUp: validate locally, then create the account remotely.
//   - SignIn: validate locally, authenticate, persist token+username.
//   - CurrentSession: read back the persisted session, nil when absent.
//   - Logout: wipe the persisted session.
//   - Close: release storage resources.
//
// All methods honor context cancellation.
type AuthService interface {
	SignUp(ctx context.Context, username, email string, password []byte) error
	SignIn(ctx context.Context, username string, password []byte) (*session.Session, error)
	CurrentSession(ctx context.Context) (*session.Session, error)
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  SessionStore
}

// NewAuthService binds the auth flows to an API client and a session store.
func NewAuthService(client api.Client, store SessionStore) AuthService {
	return &authService{client: client, store: store}
}

// SignUp validates the form fields and registers the account. Validation
// failures (empty field, short password) return before any network call.
func (a *authService) SignUp(ctx context.Context, username, email string, password []byte) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || len(password) == 0 {
		return ErrFieldsRequired
	}
	if utf8.RuneCount(password) < minPasswordLen {
		return ErrPasswordTooShort
	}

	return a.client.Register(ctx, username, email, string(password))
}

// SignIn validates the form fields, authenticates, and persists the session.
// A 2xx response without a token fails with ErrNoToken and writes nothing.
func (a *authService) SignIn(ctx context.Context, username string, password []byte) (*session.Session, error) {
	username = strings.TrimSpace(username)

	if username == "" || len(password) == 0 {
		return nil, ErrFieldsRequired
	}

	res, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, ErrNoToken
	}

	if err := a.store.Save(ctx, res.Token, username); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &session.Session{Token: res.Token, Username: username}, nil
}

// CurrentSession proxies to the store.
func (a *authService) CurrentSession(ctx context.Context) (*session.Session, error) {
	return a.store.Current(ctx)
}

// Logout wipes the persisted session.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// Close releases the underlying store.
func (a *authService) Close(ctx context.Context) error {
	return a.store.Close()
}
