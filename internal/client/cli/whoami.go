package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/todoterm/todoterm/internal/client/token"
)

// nowFn is a test seam for the expiry check.
var nowFn = time.Now

// Whoami prints the persisted session: the username and what little can be
// read out of the stored token without verifying it.
func (a *App) Whoami(ctx context.Context) error {
	sess, err := a.auth.CurrentSession(ctx)
	if err != nil {
		a.log.Error(ctx, err.Error())
		return err
	}
	if sess == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", sess.Username)

	info := token.Inspect(sess.Token)
	switch {
	case !info.Decodable || info.ExpiresAt.IsZero():
		fmt.Fprintln(a.out, "Session token present")
	case info.Expired(nowFn()):
		fmt.Fprintf(a.out, "Session token expired at %s\n", info.ExpiresAt.Format(time.RFC3339))
	default:
		fmt.Fprintf(a.out, "Session token valid until %s\n", info.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}
