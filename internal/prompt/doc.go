// Package prompt implements the interactive configuration flow.
//
// The prompt walks the user through selecting playing styles and
// tournament classes from the catalogs and optionally capturing an
// email notification target. Each question runs a small input state
// machine (awaiting input, then valid or retry) instead of recursive
// re-prompting, and all I/O goes through injected reader/writer pairs
// so the flow is testable without a terminal.
package prompt
