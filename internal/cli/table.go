package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mhuber/bvv-alert/internal/tournament"
)

// renderRecordTable renders tournaments as a terminal table. With
// verbose set, the content id is shown as an extra column.
func renderRecordTable(records []tournament.Record, verbose bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := table.Row{"Class", "Date", "Location", "Style", "Teams"}
	if verbose {
		header = append(header, "ID")
	}
	tw.AppendHeader(header)

	for _, rec := range records {
		row := table.Row{rec.Class, rec.Date, rec.Location, rec.PlayingStyle, rec.NumberOfTeams}
		if verbose {
			row = append(row, tournament.DeriveID(rec)[:12])
		}
		tw.AppendRow(row)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
