package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mhuber/bvv-alert/internal/tournament"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt      time.Time           `json:"checked_at"`
	Year           int                 `json:"year"`
	FirstRun       bool                `json:"first_run"`
	TotalCount     int                 `json:"total_count"`
	NewTournaments []tournament.Record `json:"new_tournaments"`
	NewCount       int                 `json:"new_count"`
	AllTournaments []tournament.Record `json:"all_tournaments,omitempty"`
	Emailed        bool                `json:"emailed"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.FirstRun {
		fmt.Fprintf(w, "First run: %d tournaments recorded.\n", result.TotalCount)
		if len(result.AllTournaments) > 0 {
			fmt.Fprintln(w, renderRecordTable(result.AllTournaments, verbose))
		}
		fmt.Fprintln(w, "The next run will only report tournaments you have not seen yet.")
		return nil
	}

	if result.NewCount == 0 {
		fmt.Fprintln(w, "You are up to date.")
		return nil
	}

	fmt.Fprintf(w, "There are %d new tournaments!\n\n", result.NewCount)
	fmt.Fprintln(w, renderRecordTable(result.NewTournaments, verbose))
	if result.Emailed {
		fmt.Fprintln(w, "An alert email has been sent.")
	}

	return nil
}

// sortedRecords flattens a snapshot into the listing order used for
// terminal output.
func sortedRecords(snap *tournament.Snapshot) []tournament.Record {
	records := make([]tournament.Record, 0, snap.Len())
	for _, rec := range snap.Tournaments {
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Class != b.Class {
			return a.Class < b.Class
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Location < b.Location
	})

	return records
}
