package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkolodziej/rain-alert/internal/forecast"
	"github.com/pkolodziej/rain-alert/internal/geocode"
	"github.com/pkolodziej/rain-alert/internal/logger"
	"github.com/pkolodziej/rain-alert/internal/notifier"
	"github.com/pkolodziej/rain-alert/internal/schedule"
	"github.com/pkolodziej/rain-alert/internal/state"
	"github.com/pkolodziej/rain-alert/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	// ExitChanged signals a rain state change to the invoking workflow,
	// e.g. to commit the refreshed state file artifact.
	ExitChanged = 2
)

var (
	flagCity          string
	flagProbThreshold int
	flagMMThreshold   float64
	flagDataDir       string
	flagFormat        string
	flagQuietHours    string
	flagBotToken      string
	flagChatID        string
	flagDryRun        bool
	flagInsecure      bool
	flagVerbose       bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rain-alert",
		Short: "Notify over Telegram when the 24h rain forecast flips",
		Long: `A one-shot CLI, meant to be run by an external cron, that checks the
24-hour rain forecast for a city and sends a Telegram message only when the
rain state changes (rain expected within 24h <-> no rain expected).
The last notified state is persisted to a small JSON file between runs.`,
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&flagCity, "city", "", "City name to watch (required)")
	cmd.Flags().IntVar(&flagProbThreshold, "prob-threshold", forecast.DefaultThresholds.Probability, "Precipitation probability threshold in % (alert when >=)")
	cmd.Flags().Float64Var(&flagMMThreshold, "mm-threshold", forecast.DefaultThresholds.Amount, "Hourly precipitation threshold in mm (alert when >=)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "~/.local/share/rain-alert", "Data directory for the state file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagQuietHours, "quiet-hours", "22:00-07:00", "Daily pause window HH:MM-HH:MM (empty disables)")
	cmd.Flags().StringVar(&flagBotToken, "bot-token", os.Getenv("TG_TOKEN"), "Telegram bot token (or env: TG_TOKEN)")
	cmd.Flags().StringVar(&flagChatID, "chat-id", os.Getenv("TG_CHAT"), "Telegram chat ID (or env: TG_CHAT)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the notification instead of sending; state is not persisted")
	cmd.Flags().BoolVar(&flagInsecure, "insecure", false, "Skip TLS certificate verification (emergency use)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging and hourly detail")

	cmd.MarkFlagRequired("city")

	return cmd
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	now := time.Now()

	// Quiet hours: a cron may fire overnight, but nobody wants a 3 AM ping
	window, err := schedule.Parse(flagQuietHours)
	if err != nil {
		return err
	}
	if window.Contains(now) {
		logger.Info("inside quiet hours, skipping run", logger.Fields{
			"window": window.String(),
		})
		result := &OutputResult{CheckedAt: now.UTC(), Skipped: true}
		if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	// Set up the notification channel before any network calls so missing
	// credentials fail fast
	var notify notifier.Notifier
	if flagDryRun {
		notify = notifier.NewDryRunNotifier(os.Stdout)
	} else {
		notify, err = notifier.NewTelegramNotifier(flagBotToken, flagChatID, flagInsecure)
		if err != nil {
			return err
		}
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	loc, err := lookupCity(flagCity, flagInsecure)
	if err != nil {
		return err
	}

	report, err := fetchReport(loc, now)
	if err != nil {
		return err
	}

	previous, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	trans := state.Evaluate(previous, report.RainExpected)
	logger.Debug("state evaluated", logger.Fields{
		"transition":    string(trans.Kind),
		"rain_expected": trans.RainExpected,
	})

	var message string
	if trans.ShouldNotify() {
		message = notifier.FormatMessage(trans, loc.DisplayName(), report)
		if err := applyTransition(notify, store, trans, message, !flagDryRun); err != nil {
			return err
		}
		logger.IncrCounter("notifications.sent")
	}

	result := &OutputResult{
		CheckedAt:      now.UTC(),
		Location:       loc.DisplayName(),
		RainExpected:   report.RainExpected,
		Transition:     string(trans.Kind),
		MaxProbability: report.MaxProbability,
		MaxAmount:      report.MaxAmount,
		Notified:       trans.ShouldNotify(),
		Message:        message,
	}
	if flagVerbose {
		result.Hours = report.Hours
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	// Set exit code based on whether the rain state changed
	if trans.ShouldNotify() {
		os.Exit(ExitChanged)
	} else {
		os.Exit(ExitSuccess)
	}

	return nil
}

// lookupCity geocodes the configured city
func lookupCity(city string, insecure bool) (*geocode.Location, error) {
	start := time.Now()
	loc, err := geocode.New(insecure).Lookup(city)
	logger.RecordTiming("api.geocode", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", city, err)
	}

	logger.Debug("city geocoded", logger.Fields{
		"location": loc.DisplayName(),
		"timezone": loc.Timezone,
	})
	return loc, nil
}

// fetchReport fetches the hourly forecast and evaluates the 24h rain window
func fetchReport(loc *geocode.Location, now time.Time) (*forecast.Report, error) {
	start := time.Now()
	hourly, err := forecast.New(flagInsecure).Fetch(loc.Latitude, loc.Longitude, loc.Timezone)
	logger.RecordTiming("api.forecast", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	thresholds := forecast.Thresholds{
		Probability: flagProbThreshold,
		Amount:      flagMMThreshold,
	}
	report := hourly.Evaluate(now, thresholds)

	logger.Info("forecast evaluated", logger.Fields{
		"rain_expected":       report.RainExpected,
		"max_probability_pct": report.MaxProbability,
		"max_mm":              report.MaxAmount,
		"hours_in_window":     len(report.Hours),
	})
	return report, nil
}

// applyTransition sends the notification and then persists the new state.
// The send happens first: a delivery failure leaves the old state on disk so
// the next scheduled run retries the notification.
func applyTransition(n notifier.Notifier, store *storage.Storage, trans *state.Transition, message string, persist bool) error {
	if err := n.Notify(message); err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}

	if !persist {
		return nil
	}

	if err := store.Save(trans.Next(message)); err != nil {
		return fmt.Errorf("saving state: %w", err)
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
