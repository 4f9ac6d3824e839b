// Package tournament provides types and functions for tracking BVV
// beach tournaments.
//
// The package handles tournament representation, identification, and
// change detection through snapshot-based diffing. Each tournament is
// assigned a deterministic SHA-256 ID derived from its five display
// fields, enabling reliable tracking across runs without any external
// identifier.
package tournament
