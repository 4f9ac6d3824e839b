// Package cli implements the command-line interface for bvv-alert.
//
// The cli package provides the Cobra-based CLI that runs one check: it
// loads (or interactively creates) the filter configuration, scrapes
// the BVV tournament page, diffs the result against the stored
// snapshot, persists the new snapshot, and reports newly appeared
// tournaments on the terminal and optionally via email. It coordinates
// the scraper, tournament, storage, and notifier packages.
package cli
