package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/mhuber/bvv-alert/internal/tournament"
)

// GenerateICS generates an iCalendar (.ics) entry for a tournament.
// Beach tournaments are day events; the entry spans the whole day of
// the (first) tournament date.
func GenerateICS(rec tournament.Record, pageURL string) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//bvv-alert//bvv-alert//DE\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("BEGIN:VEVENT\r\n")

	ics.WriteString(fmt.Sprintf("UID:%s@volleyball.bayern\r\n", tournament.DeriveID(rec)))

	now := time.Now().UTC()
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(now)))

	day := tournament.ParseDate(rec.Date)
	if day.IsZero() {
		// Unparseable date text, pencil the entry in a week out.
		day = time.Now().AddDate(0, 0, 7)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", start.Format("20060102")))
	ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", start.AddDate(0, 0, 1).Format("20060102")))

	summary := fmt.Sprintf("%s - %s (%s)", rec.Class, rec.Location, rec.PlayingStyle)
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	description := fmt.Sprintf("Date: %s\nTeams: %s\n\nRegister at: %s", rec.Date, rec.NumberOfTeams, pageURL)
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

	ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(rec.Location)))
	if pageURL != "" {
		ics.WriteString(fmt.Sprintf("URL:%s\r\n", pageURL))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")

	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
