package notifier

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mhuber/bvv-alert/internal/config"
	"github.com/mhuber/bvv-alert/internal/tournament"
)

func testRecords() []tournament.Record {
	return []tournament.Record{
		{
			Class:         "BVV Beach Masters (Kat.2)",
			Date:          "Sa., 10.05.2025",
			Location:      "Augsburg",
			PlayingStyle:  "Männer",
			NumberOfTeams: "16",
		},
		{
			Class:         "Freestyle",
			Date:          "So., 15.06.2025",
			Location:      "Nürnberg",
			PlayingStyle:  "Mixed",
			NumberOfTeams: "12",
		},
	}
}

func TestFormatBody(t *testing.T) {
	body := formatBody(testRecords())

	contains := []string{
		"There are 2 new tournaments to apply!",
		"Tournament details:",
		"Class: BVV Beach Masters (Kat.2)",
		"Date: Sa., 10.05.2025",
		"Location: Augsburg",
		"Playing style: Männer",
		"Number of teams: 16",
		"Class: Freestyle",
	}
	for _, want := range contains {
		if !strings.Contains(body, want) {
			t.Errorf("formatBody() missing %q in:\n%s", want, body)
		}
	}
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("a@example.com", "b@example.com", Subject, "hello"))

	tests := []struct {
		name string
		want string
	}{
		{name: "from header", want: "From: a@example.com\r\n"},
		{name: "to header", want: "To: b@example.com\r\n"},
		{name: "subject header", want: "Subject: BVV Tournament Alert!\r\n"},
		{name: "utf-8 content type", want: "Content-Type: text/plain; charset=utf-8\r\n"},
		{name: "header body separator", want: "\r\n\r\nhello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(msg, tt.want) {
				t.Errorf("message missing %q:\n%s", tt.want, msg)
			}
		})
	}
}

func TestNewEmailNotifierRejectsIncompleteTarget(t *testing.T) {
	tests := []struct {
		name   string
		target config.Email
	}{
		{name: "all empty", target: config.Email{}},
		{name: "missing password", target: config.Email{From: "a@example.com", To: "a@example.com", Host: "smtp.example.com"}},
		{name: "missing host", target: config.Email{From: "a@example.com", To: "a@example.com", Password: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEmailNotifier(tt.target); err == nil {
				t.Error("expected an error for an incomplete target")
			}
		})
	}
}

func TestDryRunNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewDryRunNotifier(&buf)

	if err := n.Notify(testRecords()); err != nil {
		t.Fatalf("Notify() error = %v, want nil", err)
	}

	out := buf.String()
	if !strings.Contains(out, Subject) {
		t.Errorf("dry-run output missing subject:\n%s", out)
	}
	if !strings.Contains(out, "There are 2 new tournaments") {
		t.Errorf("dry-run output missing summary:\n%s", out)
	}
}
