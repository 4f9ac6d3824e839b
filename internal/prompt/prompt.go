package prompt

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/mhuber/bvv-alert/internal/config"
)

// inputState drives one question's input loop.
type inputState int

const (
	awaitingInput inputState = iota
	inputValid
	inputRetry
)

// Prompter runs the interactive configuration flow.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a Prompter reading answers from in and writing questions
// to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// BuildConfig walks the user through all configuration questions and
// returns the resulting, not yet validated, configuration.
func (p *Prompter) BuildConfig() (*config.Config, error) {
	fmt.Fprintln(p.out, "Choose one or multiple playing styles from the list:")
	styles, err := p.selectIndices(config.PlayingStyles)
	if err != nil {
		return nil, err
	}

	email, err := p.emailTarget()
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(p.out, "\nChoose one or multiple tournament classes from the list:")
	classes, err := p.selectIndices(config.TournamentClasses)
	if err != nil {
		return nil, err
	}

	return config.New(styles, classes, email), nil
}

// selectIndices prints the catalog and collects one selection index per
// line until the user finishes with "x". At least one selection is
// required.
func (p *Prompter) selectIndices(catalog []config.Option) ([]int, error) {
	for idx, opt := range catalog {
		fmt.Fprintf(p.out, "(%d) %s\n", idx, opt.Label)
	}
	fmt.Fprintln(p.out, "\nType a number and press ENTER after each selection, or type X and press ENTER to finish:")

	selected := make(map[int]bool)

	for state := awaitingInput; state != inputValid; {
		if len(selected) == len(catalog) {
			break
		}

		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		line = strings.ToLower(strings.TrimSpace(line))

		switch {
		case line == "x":
			if len(selected) == 0 {
				fmt.Fprintln(p.out, "You have to select at least one item.")
				state = inputRetry
				continue
			}
			state = inputValid
		default:
			idx, err := strconv.Atoi(line)
			if err != nil || idx < 0 || idx >= len(catalog) {
				fmt.Fprintf(p.out, "Choose a number between 0 and %d.\n", len(catalog)-1)
				state = inputRetry
				continue
			}
			selected[idx] = true
			state = awaitingInput
		}
	}

	indices := make([]int, 0, len(selected))
	for idx := range selected {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	return indices, nil
}

// YesNo asks a yes/no question. Empty input counts as yes.
func (p *Prompter) YesNo(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s (Y)es/no\n", question)

	for state := awaitingInput; state != inputValid; {
		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Given input not recognized. Please try again.")
			state = inputRetry
		}
	}

	return false, nil
}

// emailTarget captures the optional notification target.
func (p *Prompter) emailTarget() (config.Email, error) {
	wantEmail, err := p.YesNo("\nDo you want to receive email notifications about new tournaments?")
	if err != nil {
		return config.Email{}, err
	}
	if !wantEmail {
		return config.Email{}, nil
	}

	from, err := p.emailAddress("Please enter your email address:")
	if err != nil {
		return config.Email{}, err
	}

	fmt.Fprintln(p.out, "\nNotifications are sent through your own email account, so your password is stored")
	fmt.Fprintln(p.out, "in plaintext in the config file alongside your other settings.")
	fmt.Fprintln(p.out, "Please enter your email password:")
	password, err := p.readLine()
	if err != nil {
		return config.Email{}, err
	}

	fmt.Fprintln(p.out, "Type in the host name of your email provider, such as 'smtp.gmail.com' for Gmail:")
	host, err := p.readLine()
	if err != nil {
		return config.Email{}, err
	}

	target := config.Email{
		From:     from,
		To:       from,
		Password: strings.TrimSpace(password),
		Host:     strings.TrimSpace(host),
	}

	separate, err := p.YesNo("Do you want to receive the alerts at a different address than your sender address?")
	if err != nil {
		return config.Email{}, err
	}
	if separate {
		to, err := p.emailAddress("Please enter the recipient address:")
		if err != nil {
			return config.Email{}, err
		}
		target.To = to
	}

	return target, nil
}

// emailAddress reads an address. A syntactically dubious address is a
// soft warning: the user may keep it anyway.
func (p *Prompter) emailAddress(question string) (string, error) {
	fmt.Fprintln(p.out, question)

	for state := awaitingInput; state != inputValid; {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		addr := strings.TrimSpace(line)

		if addr == "" {
			fmt.Fprintln(p.out, "The address must not be empty.")
			state = inputRetry
			continue
		}

		if !config.AddressLooksValid(addr) {
			keep, err := p.YesNo("This does not look like a valid email address. Do you still want to use it?")
			if err != nil {
				return "", err
			}
			if !keep {
				fmt.Fprintln(p.out, question)
				state = inputRetry
				continue
			}
		}

		return addr, nil
	}

	return "", nil
}

// readLine reads the next input line. Exhausted input aborts the flow.
func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("input ended before the configuration was complete")
	}
	return p.scanner.Text(), nil
}
