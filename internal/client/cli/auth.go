package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/todoterm/todoterm/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// sleepFn delays the switch to the tasks view after a successful login.
var sleepFn = time.Sleep

// Register prompts for the sign-up fields and attempts to create an account.
//
// Validation failures and request failures are routed to the status bar via
// the logger and returned; the form stays usable either way. On success the
// user is pointed back to the sign-in flow.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	done, ok := a.beginSubmit("Signing up")
	if !ok {
		return nil
	}
	defer done()

	if err := a.auth.SignUp(ctx, username, email, password); err != nil {
		a.log.Error(ctx, err.Error())
		return err
	}

	a.log.Info(ctx, "Registration successful, you can now log in")
	return nil
}

// Login prompts for credentials and attempts to authenticate. On success the
// session is already persisted by the auth service; after a short delay the
// REPL switches to the logged-in tasks view.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	done, ok := a.beginSubmit("Signing in")
	if !ok {
		return nil
	}
	defer done()

	sess, err := a.auth.SignIn(ctx, username, password)
	if err != nil {
		a.log.Error(ctx, err.Error())
		return err
	}

	a.log.Info(ctx, "Login successful")

	sleepFn(a.config.RedirectDelay)
	a.userName = sess.Username
	fmt.Fprintln(a.out, "Opening tasks view...")
	return nil
}

// Logout wipes the stored session and returns to the logged-out state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, err.Error())
		return err
	}
	a.userName = ""
	a.log.Info(ctx, "Logged out")
	return nil
}
