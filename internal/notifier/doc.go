// Package notifier provides notification interfaces and implementations
// for new BVV tournaments.
//
// The notifier package formats a plain-text summary of newly appeared
// tournaments and delivers it through a transport. The default
// transport is SMTP email using the credentials from the user's
// configuration; a dry-run notifier prints the message instead of
// sending it. Delivery failures are reported to the caller but are
// never fatal for a run, since the snapshot has already been persisted
// by the time notifications go out.
package notifier
