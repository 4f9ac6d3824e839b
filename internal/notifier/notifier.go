package notifier

import (
	"github.com/mhuber/bvv-alert/internal/tournament"
)

// Notifier defines the interface for dispatching tournament alerts.
type Notifier interface {
	// Notify delivers a summary of the given tournaments. The caller
	// guarantees records is non-empty; "nothing to send" is decided by
	// the orchestrator, not here.
	Notify(records []tournament.Record) error
}
