package tournament

import (
	"crypto/sha256"
	"fmt"
)

// Record represents a single BVV beach tournament as displayed on the
// tournament page. All fields are kept as display strings; equality and
// identity are derived purely from their content.
type Record struct {
	Class         string `json:"class"`
	Date          string `json:"date"`
	Location      string `json:"location"`
	PlayingStyle  string `json:"playingStyle"`
	NumberOfTeams string `json:"numberTeams"`
}

// DeriveID computes the deterministic content ID for a record: the five
// fields concatenated in fixed order with no separator, hashed with
// SHA-256, lowercase hex digest. Two tournaments with identical display
// fields collapse to one ID; that is an accepted property of the data
// model, not a defect.
func DeriveID(r Record) string {
	h := sha256.New()
	h.Write([]byte(r.Class + r.Date + r.Location + r.PlayingStyle + r.NumberOfTeams))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the record as the multi-line detail block used in
// terminal output and email bodies.
func (r Record) String() string {
	return fmt.Sprintf(
		"Class: %s\nDate: %s\nLocation: %s\nPlaying style: %s\nNumber of teams: %s\n",
		r.Class, r.Date, r.Location, r.PlayingStyle, r.NumberOfTeams)
}
