package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhuber/bvv-alert/internal/tournament"
)

func testSnapshot(t *testing.T, locations ...string) *tournament.Snapshot {
	t.Helper()

	records := make([]tournament.Record, 0, len(locations))
	for _, loc := range locations {
		records = append(records, tournament.Record{
			Class:         "BVV Beach Masters (Kat.2)",
			Date:          "Sa., 10.05.2025",
			Location:      loc,
			PlayingStyle:  "Männer",
			NumberOfTeams: "16",
		})
	}
	return tournament.CreateSnapshot(records, time.Now().UTC().Format(time.RFC3339))
}

func TestLoadSnapshotFirstRun(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	snap, err := store.LoadSnapshot()
	require.NoError(t, err)
	assert.Nil(t, snap, "missing snapshot file must report absent, not an error")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		locations []string
	}{
		{name: "empty snapshot", locations: nil},
		{name: "single tournament", locations: []string{"Augsburg"}},
		{name: "multiple tournaments", locations: []string{"Augsburg", "Bamberg", "Würzburg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(t.TempDir())
			require.NoError(t, err)

			saved := testSnapshot(t, tt.locations...)
			require.NoError(t, store.SaveSnapshot(saved))

			loaded, err := store.LoadSnapshot()
			require.NoError(t, err)
			require.NotNil(t, loaded)
			assert.Equal(t, saved.Tournaments, loaded.Tournaments)
			assert.Equal(t, saved.UpdatedAt, loaded.UpdatedAt)
		})
	}
}

func TestSaveSnapshotOverwrites(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SaveSnapshot(testSnapshot(t, "Augsburg", "Bamberg")))
	require.NoError(t, store.SaveSnapshot(testSnapshot(t, "Würzburg")))

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 1, loaded.Len(), "save must fully replace the previous snapshot")
}

func TestSaveSnapshotLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.SaveSnapshot(testSnapshot(t, "Augsburg")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, SnapshotFileName, entries[0].Name())
}

func TestLoadSnapshotCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "this is not json"},
		{name: "wrong shape", content: `{"tournaments": "a string, not a map"}`},
		{name: "truncated", content: `{"tournaments": {"abc": {"class":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			store, err := New(dir)
			require.NoError(t, err)

			path := filepath.Join(dir, SnapshotFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err = store.LoadSnapshot()
			require.Error(t, err)

			var corrupt *CorruptStateError
			require.True(t, errors.As(err, &corrupt), "expected CorruptStateError, got %T", err)
			assert.Equal(t, path, corrupt.Path)

			// The corrupt file must survive the failed load.
			_, statErr := os.Stat(path)
			assert.NoError(t, statErr, "corrupt snapshot must never be deleted automatically")
		})
	}
}

func TestLoadSnapshotReadFailure(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	// A directory at the snapshot path makes the read itself fail
	// before any parsing happens.
	path := filepath.Join(dir, SnapshotFileName)
	require.NoError(t, os.Mkdir(path, 0755))

	_, err = store.LoadSnapshot()
	require.Error(t, err)

	var corrupt *CorruptStateError
	assert.False(t, errors.As(err, &corrupt), "an I/O failure must not be reported as a corrupt snapshot")
}

func TestSaveSnapshotUnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply when running as root")
	}

	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.Chmod(dir, 0500))
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	err = store.SaveSnapshot(testSnapshot(t, "Augsburg"))
	require.Error(t, err)

	var persist *PersistenceError
	assert.True(t, errors.As(err, &persist), "expected PersistenceError, got %T", err)
}

func TestCheckCycleAcrossRuns(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	recA := tournament.Record{Class: "Freestyle", Date: "So., 15.06.2025", Location: "Nürnberg", PlayingStyle: "Mixed", NumberOfTeams: "12"}
	recB := tournament.Record{Class: "Freestyle", Date: "So., 22.06.2025", Location: "Regensburg", PlayingStyle: "Mixed", NumberOfTeams: "12"}
	now := time.Now().UTC().Format(time.RFC3339)

	// Run 1: nothing stored yet, first run.
	previous, err := store.LoadSnapshot()
	require.NoError(t, err)
	current := tournament.CreateSnapshot([]tournament.Record{recA}, now)
	diff := tournament.Diff(previous, current)
	assert.True(t, diff.FirstRun)
	assert.Empty(t, diff.NewTournaments)
	require.NoError(t, store.SaveSnapshot(current))

	// Run 2: one tournament added.
	previous, err = store.LoadSnapshot()
	require.NoError(t, err)
	current = tournament.CreateSnapshot([]tournament.Record{recA, recB}, now)
	diff = tournament.Diff(previous, current)
	assert.False(t, diff.FirstRun)
	require.Len(t, diff.NewTournaments, 1)
	assert.Equal(t, recB, diff.NewTournaments[0])
	require.NoError(t, store.SaveSnapshot(current))

	// Run 3: no change.
	previous, err = store.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, 2, previous.Len())
	diff = tournament.Diff(previous, tournament.CreateSnapshot([]tournament.Record{recA, recB}, now))
	assert.False(t, diff.FirstRun)
	assert.Empty(t, diff.NewTournaments)
}

func TestNullTournamentsMapIsRestored(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, SnapshotFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"tournaments": null, "updated_at": ""}`), 0644))

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.NotNil(t, loaded.Tournaments)
}
