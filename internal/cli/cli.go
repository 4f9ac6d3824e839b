package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/mhuber/bvv-alert/internal/calendar"
	"github.com/mhuber/bvv-alert/internal/config"
	"github.com/mhuber/bvv-alert/internal/logger"
	"github.com/mhuber/bvv-alert/internal/notifier"
	"github.com/mhuber/bvv-alert/internal/prompt"
	"github.com/mhuber/bvv-alert/internal/scraper"
	"github.com/mhuber/bvv-alert/internal/storage"
	"github.com/mhuber/bvv-alert/internal/tournament"
)

const (
	ExitSuccess        = 0
	ExitError          = 1
	ExitNewTournaments = 2
)

var (
	flagConfigPath  string
	flagDataDir     string
	flagYear        int
	flagFormat      string
	flagShowAll     bool
	flagReconfigure bool
	flagNoEmail     bool
	flagDryRun      bool
	flagICSDir      string
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bvv-alert",
		Short: "Check for newly-added BVV beach tournaments",
		Long: `A CLI tool that watches the BVV beach tournament page.
It tracks tournaments matching your playing styles and classes across
runs and reports only the ones that appeared since the last check,
optionally by email.`,
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagConfigPath, "config", "", "Config file path (default: XDG config dir)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", filepath.Join(xdg.DataHome, "bvv-alert"), "Data directory for snapshots")
	cmd.Flags().IntVar(&flagYear, "year", 0, "Tournament year (default: current year)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagShowAll, "show-all", false, "On a first run, list all recorded tournaments")
	cmd.Flags().BoolVar(&flagReconfigure, "reconfigure", false, "Rebuild the configuration interactively")
	cmd.Flags().BoolVar(&flagNoEmail, "no-email", false, "Skip email notification for this run")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the alert email instead of sending it")
	cmd.Flags().StringVar(&flagICSDir, "ics-dir", "", "Write an .ics calendar file per new tournament into this directory")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := loadOrCreateConfig(cmd)
	if err != nil {
		return err
	}

	// Validation has to fail before anything touches the network.
	if err := cfg.Validate(); err != nil {
		return err
	}

	year := flagYear
	if year == 0 {
		year = time.Now().Year()
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sc := scraper.New(year)
	logger.Debug("fetching tournament page", logger.Fields{"url": sc.URL()})

	rows, err := sc.FetchRows(cfg)
	if err != nil {
		// Fatal for this run: the stored snapshot stays untouched.
		return fmt.Errorf("fetching tournaments: %w", err)
	}
	logger.Debug("fetched rows", logger.Fields{"count": len(rows)})

	records := make([]tournament.Record, 0, len(rows))
	for _, raw := range rows {
		if rec, ok := tournament.Normalize(raw, cfg); ok {
			records = append(records, rec)
		}
	}
	current := tournament.CreateSnapshot(records, time.Now().UTC().Format(time.RFC3339))

	previous, err := store.LoadSnapshot()
	if err != nil {
		var corrupt *storage.CorruptStateError
		if errors.As(err, &corrupt) {
			return fmt.Errorf("%w\nThe file was left in place. Inspect or remove it yourself to start fresh.", err)
		}
		return err
	}

	diff := tournament.Diff(previous, current)

	if err := store.SaveSnapshot(current); err != nil {
		return err
	}
	logger.Debug("saved snapshot", logger.Fields{"tournaments": current.Len()})

	result := &OutputResult{
		CheckedAt:      time.Now().UTC(),
		Year:           year,
		FirstRun:       diff.FirstRun,
		TotalCount:     current.Len(),
		NewTournaments: diff.NewTournaments,
		NewCount:       len(diff.NewTournaments),
	}
	if diff.FirstRun && flagShowAll {
		result.AllTournaments = sortedRecords(current)
	}

	if flagICSDir != "" && len(diff.NewTournaments) > 0 {
		if err := writeICSFiles(diff.NewTournaments, sc.URL()); err != nil {
			logger.Warn("writing calendar files failed", logger.Fields{"dir": flagICSDir, "error": err.Error()})
		}
	}

	result.Emailed = dispatchAlert(cmd, cfg, diff.NewTournaments)

	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if result.NewCount > 0 {
		os.Exit(ExitNewTournaments)
	}
	os.Exit(ExitSuccess)
	return nil
}

// loadOrCreateConfig loads the durable config, falling back to the
// interactive prompt flow on a missing file or --reconfigure.
func loadOrCreateConfig(cmd *cobra.Command) (*config.Config, error) {
	path := flagConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cfg != nil && !flagReconfigure {
		return cfg, nil
	}

	out := cmd.OutOrStdout()
	if cfg == nil {
		fmt.Fprintln(out, "No configuration found yet. This will only take a few seconds.")
	}

	cfg, err = prompt.New(cmd.InOrStdin(), out).BuildConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := config.Save(cfg, path); err != nil {
		return nil, err
	}
	logger.Debug("configuration saved", logger.Fields{"path": path})

	return cfg, nil
}

// dispatchAlert sends the email notification when there is something to
// send and a target is configured. Transport failures are warnings; the
// snapshot is already persisted, so the run itself succeeded.
func dispatchAlert(cmd *cobra.Command, cfg *config.Config, records []tournament.Record) bool {
	if len(records) == 0 {
		return false
	}
	if flagNoEmail || !cfg.NotifyEnabled() {
		return false
	}

	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier(cmd.OutOrStdout())
	} else {
		en, err := notifier.NewEmailNotifier(cfg.Email)
		if err != nil {
			logger.Warn("email notification skipped", logger.Fields{"error": err.Error()})
			return false
		}
		n = en
	}

	if err := n.Notify(records); err != nil {
		logger.Warn("email notification failed", logger.Fields{"error": err.Error()})
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: sending the alert email failed: %v\n", err)
		return false
	}

	return !flagDryRun
}

// writeICSFiles writes one calendar file per new tournament.
func writeICSFiles(records []tournament.Record, pageURL string) error {
	if err := os.MkdirAll(flagICSDir, 0755); err != nil {
		return fmt.Errorf("creating ics directory: %w", err)
	}

	for _, rec := range records {
		name := fmt.Sprintf("bvv-%s.ics", tournament.DeriveID(rec)[:12])
		path := filepath.Join(flagICSDir, name)
		ics := calendar.GenerateICS(rec, pageURL)
		if err := os.WriteFile(path, []byte(ics), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
