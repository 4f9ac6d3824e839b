package notifier

import (
	"fmt"
	"strings"

	"github.com/mhuber/bvv-alert/internal/tournament"
)

// Subject is the alert email subject line.
const Subject = "BVV Tournament Alert!"

// formatBody builds the plain-text summary for a set of new
// tournaments.
func formatBody(records []tournament.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "There are %d new tournaments to apply!\n\n", len(records))
	b.WriteString("Tournament details:\n")
	b.WriteString("------------------------------------\n")

	for _, rec := range records {
		b.WriteString(rec.String())
		b.WriteString("\n")
	}

	return b.String()
}
