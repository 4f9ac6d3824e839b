package tournament

import "sort"

// Snapshot is the complete set of known tournaments at a point in
// time, keyed by content ID.
type Snapshot struct {
	Tournaments map[string]Record `json:"tournaments"`
	UpdatedAt   string            `json:"updated_at"` // RFC3339
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Tournaments: make(map[string]Record),
	}
}

// CreateSnapshot builds a snapshot from a list of records, deriving the
// ID of each. Records with identical display fields collapse onto one
// key.
func CreateSnapshot(records []Record, updatedAt string) *Snapshot {
	snap := NewSnapshot()
	snap.UpdatedAt = updatedAt

	for _, rec := range records {
		snap.Tournaments[DeriveID(rec)] = rec
	}

	return snap
}

// Len returns the number of tournaments in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Tournaments)
}

// DiffResult contains the outcome of comparing two snapshots. FirstRun
// distinguishes "no prior snapshot existed" from "zero new
// tournaments"; the two get different user-facing messages.
type DiffResult struct {
	FirstRun       bool
	NewTournaments []Record
}

// Diff computes the tournaments present in current but absent from
// previous. A nil previous snapshot marks a first run: the diff is
// empty and FirstRun is set. Neither snapshot is mutated; the result is
// sorted by class, date, then location so repeated calls with the same
// inputs produce the same sequence.
func Diff(previous, current *Snapshot) *DiffResult {
	result := &DiffResult{
		NewTournaments: make([]Record, 0),
	}

	if previous == nil {
		result.FirstRun = true
		return result
	}

	for id, rec := range current.Tournaments {
		if _, exists := previous.Tournaments[id]; !exists {
			result.NewTournaments = append(result.NewTournaments, rec)
		}
	}

	sort.Slice(result.NewTournaments, func(i, j int) bool {
		a, b := result.NewTournaments[i], result.NewTournaments[j]
		if a.Class != b.Class {
			return a.Class < b.Class
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Location < b.Location
	})

	return result
}
