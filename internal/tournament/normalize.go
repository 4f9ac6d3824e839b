package tournament

import (
	"strings"

	"github.com/mhuber/bvv-alert/internal/config"
)

// RawRow is one already-tokenized row from the tournament page: the
// class label of the surrounding box plus the per-row cells.
type RawRow struct {
	Class         string
	Date          string
	Location      string
	PlayingStyle  string
	NumberOfTeams string
}

// Normalize maps a raw scraped row into a Record, applying the user's
// filter selections. It returns (record, true) for rows that pass the
// filter and (zero, false) for rows to skip. The class check is
// redundant with the scraper's box filtering but kept so Normalize is
// safe on its own even when the upstream filter is imperfect.
func Normalize(raw RawRow, cfg *config.Config) (Record, bool) {
	style := strings.TrimSpace(raw.PlayingStyle)
	if !cfg.HasStyle(style) {
		return Record{}, false
	}

	class := strings.TrimSpace(raw.Class)
	if !cfg.HasClass(class) {
		return Record{}, false
	}

	return Record{
		Class:         class,
		Date:          strings.TrimSpace(raw.Date),
		Location:      strings.TrimSpace(raw.Location),
		PlayingStyle:  style,
		NumberOfTeams: strings.TrimSpace(raw.NumberOfTeams),
	}, true
}
