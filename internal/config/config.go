package config

import (
	"fmt"
	"regexp"
)

// emailPattern is a deliberately loose address check. A non-matching
// address is only a soft warning, never a hard validation failure.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Email holds the SMTP notification target. All fields must be set for
// email notifications to be active; an all-empty Email means
// notifications are disabled.
type Email struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Password string `json:"password"`
	Host     string `json:"host"`
}

// Configured reports whether any email field has been set.
func (e Email) Configured() bool {
	return e.From != "" || e.To != "" || e.Password != "" || e.Host != ""
}

// Config is the validated filter configuration for one run.
// PlayingStyle and Classes map selection index to display label,
// matching the durable JSON shape. A Config is immutable once built.
type Config struct {
	PlayingStyle map[int]string `json:"playingStyle"`
	Classes      map[int]string `json:"classes"`
	Email        Email          `json:"email"`
}

// ValidationError is a fatal configuration error. It blocks the run
// before any network fetch is attempted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// New creates a Config from selection indices into the catalogs and an
// optional email target. The recipient defaults to the sender when not
// set separately.
func New(styleIndices, classIndices []int, email Email) *Config {
	if email.From != "" && email.To == "" {
		email.To = email.From
	}
	return &Config{
		PlayingStyle: LabelsByIndex(PlayingStyles, styleIndices),
		Classes:      LabelsByIndex(TournamentClasses, classIndices),
		Email:        email,
	}
}

// Validate checks the configuration invariants. At least one playing
// style and one tournament class must be selected; if an email target
// is present, all of its fields must be non-empty.
func (c *Config) Validate() error {
	if len(c.PlayingStyle) == 0 {
		return &ValidationError{Reason: "no playing style selected"}
	}
	if len(c.Classes) == 0 {
		return &ValidationError{Reason: "no tournament class selected"}
	}
	if c.Email.Configured() {
		if c.Email.From == "" {
			return &ValidationError{Reason: "email target is missing the sender address"}
		}
		if c.Email.To == "" {
			return &ValidationError{Reason: "email target is missing the recipient address"}
		}
		if c.Email.Password == "" {
			return &ValidationError{Reason: "email target is missing the password"}
		}
		if c.Email.Host == "" {
			return &ValidationError{Reason: "email target is missing the SMTP host"}
		}
	}
	return nil
}

// HasStyle reports whether the given playing-style label is selected.
func (c *Config) HasStyle(label string) bool {
	for _, selected := range c.PlayingStyle {
		if selected == label {
			return true
		}
	}
	return false
}

// HasClass reports whether the given tournament-class label is selected.
func (c *Config) HasClass(label string) bool {
	for _, selected := range c.Classes {
		if selected == label {
			return true
		}
	}
	return false
}

// NotifyEnabled reports whether a complete email target is configured.
func (c *Config) NotifyEnabled() bool {
	return c.Email.From != "" && c.Email.To != "" && c.Email.Password != "" && c.Email.Host != ""
}

// AddressLooksValid reports whether addr syntactically resembles an
// email address. Callers treat a false result as a warning; the user
// may proceed with the address anyway.
func AddressLooksValid(addr string) bool {
	return emailPattern.MatchString(addr)
}
