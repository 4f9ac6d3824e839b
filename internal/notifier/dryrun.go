package notifier

import (
	"fmt"
	"io"

	"github.com/mhuber/bvv-alert/internal/tournament"
)

// DryRunNotifier prints the alert that would be emailed without sending
// anything.
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a new dry-run notifier writing to out.
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints the message that would be sent.
func (n *DryRunNotifier) Notify(records []tournament.Record) error {
	fmt.Fprintf(n.out, "--- Email (dry run) ---\nSubject: %s\n\n%s", Subject, formatBody(records))
	return nil
}
