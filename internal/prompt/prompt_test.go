package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mhuber/bvv-alert/internal/config"
)

func run(t *testing.T, input string) (*Prompter, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestBuildConfigMinimal(t *testing.T) {
	// One style, no email, one class.
	p, _ := run(t, "0\nx\nno\n2\nx\n")

	cfg, err := p.BuildConfig()
	if err != nil {
		t.Fatalf("BuildConfig() error = %v", err)
	}

	if len(cfg.PlayingStyle) != 1 || cfg.PlayingStyle[0] != "Männer" {
		t.Errorf("unexpected playing styles: %+v", cfg.PlayingStyle)
	}
	if len(cfg.Classes) != 1 || cfg.Classes[2] != "BVV Beach Masters (Kat.2)" {
		t.Errorf("unexpected classes: %+v", cfg.Classes)
	}
	if cfg.Email.Configured() {
		t.Errorf("expected no email target, got %+v", cfg.Email)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("built config failed validation: %v", err)
	}
}

func TestBuildConfigWithEmail(t *testing.T) {
	input := strings.Join([]string{
		"1",                // Frauen
		"x",                //
		"yes",              // want email
		"me@example.com",   // from
		"secret",           // password
		"smtp.example.com", // host
		"yes",              // separate recipient
		"team@example.com", // to
		"0",                // Kat.1+
		"6",                // Freestyle
		"x",
	}, "\n") + "\n"

	p, _ := run(t, input)

	cfg, err := p.BuildConfig()
	if err != nil {
		t.Fatalf("BuildConfig() error = %v", err)
	}

	if cfg.Email.From != "me@example.com" {
		t.Errorf("From = %s", cfg.Email.From)
	}
	if cfg.Email.To != "team@example.com" {
		t.Errorf("To = %s", cfg.Email.To)
	}
	if cfg.Email.Password != "secret" || cfg.Email.Host != "smtp.example.com" {
		t.Errorf("unexpected credentials: %+v", cfg.Email)
	}
	if len(cfg.Classes) != 2 {
		t.Errorf("expected 2 classes, got %+v", cfg.Classes)
	}
}

func TestBuildConfigRecipientDefaultsToSender(t *testing.T) {
	input := "0\nx\ny\nme@example.com\nsecret\nsmtp.example.com\nn\n0\nx\n"
	p, _ := run(t, input)

	cfg, err := p.BuildConfig()
	if err != nil {
		t.Fatalf("BuildConfig() error = %v", err)
	}
	if cfg.Email.To != "me@example.com" {
		t.Errorf("To = %s, want the sender address", cfg.Email.To)
	}
}

func TestSelectIndicesRetries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{
			name:  "finish without selection retries",
			input: "x\n1\nx\n",
			want:  []int{1},
		},
		{
			name:  "out of range number retries",
			input: "99\n0\nx\n",
			want:  []int{0},
		},
		{
			name:  "non numeric input retries",
			input: "abc\n2\nx\n",
			want:  []int{2},
		},
		{
			name:  "duplicate selections collapse",
			input: "1\n1\n1\nx\n",
			want:  []int{1},
		},
		{
			name:  "selecting everything finishes without x",
			input: "0\n1\n2\n",
			want:  []int{0, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := run(t, tt.input)

			got, err := p.selectIndices(config.PlayingStyles)
			if err != nil {
				t.Fatalf("selectIndices() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("selectIndices() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("selectIndices() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "yes\n", want: true},
		{name: "short yes", input: "y\n", want: true},
		{name: "empty input defaults to yes", input: "\n", want: true},
		{name: "no", input: "no\n", want: false},
		{name: "short no", input: "N\n", want: false},
		{name: "garbage then no", input: "maybe\nno\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := run(t, tt.input)

			got, err := p.YesNo("?")
			if err != nil {
				t.Fatalf("YesNo() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("YesNo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmailAddressSoftWarning(t *testing.T) {
	t.Run("invalid address kept after override", func(t *testing.T) {
		p, out := run(t, "not-an-address\nyes\n")

		addr, err := p.emailAddress("Address?")
		if err != nil {
			t.Fatalf("emailAddress() error = %v", err)
		}
		if addr != "not-an-address" {
			t.Errorf("emailAddress() = %q, want the overridden address", addr)
		}
		if !strings.Contains(out.String(), "does not look like a valid email address") {
			t.Error("expected a soft warning in the output")
		}
	})

	t.Run("invalid address rejected then corrected", func(t *testing.T) {
		p, _ := run(t, "oops\nno\nme@example.com\n")

		addr, err := p.emailAddress("Address?")
		if err != nil {
			t.Fatalf("emailAddress() error = %v", err)
		}
		if addr != "me@example.com" {
			t.Errorf("emailAddress() = %q, want the corrected address", addr)
		}
	})

	t.Run("valid address passes without warning", func(t *testing.T) {
		p, out := run(t, "me@example.com\n")

		addr, err := p.emailAddress("Address?")
		if err != nil {
			t.Fatalf("emailAddress() error = %v", err)
		}
		if addr != "me@example.com" {
			t.Errorf("emailAddress() = %q", addr)
		}
		if strings.Contains(out.String(), "does not look like") {
			t.Error("unexpected warning for a valid address")
		}
	})
}

func TestBuildConfigInputExhausted(t *testing.T) {
	p, _ := run(t, "0\n")

	if _, err := p.BuildConfig(); err == nil {
		t.Error("expected an error when input ends mid-flow")
	}
}
