// Package storage provides JSON-based persistence for tournament
// snapshots.
//
// The storage package owns the durable snapshot file that tracks
// tournaments across runs. A missing file is the normal first-run
// condition and is reported as an absent snapshot, not an error; an
// unreadable or malformed file is a CorruptStateError and is never
// deleted automatically. Saves replace the file wholesale through a
// temp-file rename, which keeps a crash from leaving a half-written
// snapshot behind.
package storage
