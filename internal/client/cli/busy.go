package cli

import "fmt"

// beginSubmit flips the form into its busy state and prints the busy label.
// The second return value is false when a submission is already in flight;
// the caller must refuse the new one. The returned func restores the idle
// state and is meant to run via defer, so the form returns to idle on every
// outcome.
func (a *App) beginSubmit(label string) (func(), bool) {
	if a.submitting {
		fmt.Fprintln(a.out, "Please wait...")
		return nil, false
	}
	a.submitting = true
	fmt.Fprintf(a.out, "%s...\n", label)
	return func() { a.submitting = false }, true
}
