package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"zlayer/internal/config"
	"zlayer/internal/log"
	"zlayer/internal/presentation"
	"zlayer/internal/scan"
	"zlayer/internal/watcher"
)

var watchMode bool

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <path>",
	Short: "Scan a stylesheet for suspiciously large z-index literals",
	Long: `Scan a stylesheet file for literal z-index declarations whose values look
suspiciously large. Values above the severe threshold (default 9999) are
reported as severe, values above the warn threshold (default 1000) as
warnings. The file is read as UTF-8 text; no CSS parsing takes place.

An unreadable file is reported as a message, not a failure: the command
still exits 0, matching the reference behavior.

Examples:
  zlayer diagnose styles.css
  zlayer diagnose styles.css --json
  zlayer diagnose styles.css --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagnoseCmd.Flags().BoolVarP(&watchMode, "watch", "w", false,
		"re-scan whenever the file changes (until interrupted)")
	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	path := args[0]
	formatter := presentation.NewFormatter(cmd.OutOrStdout())

	diagnoseOnce(formatter, path)

	if !watchMode {
		return nil
	}
	return watchLoop(cmd.Context(), formatter, path)
}

// diagnoseOnce reads, scans, and reports a single pass over the stylesheet.
// A read failure is reported to the user and swallowed.
func diagnoseOnce(formatter *presentation.Formatter, path string) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's stylesheet argument
	if err != nil {
		log.ErrorErr(log.CatScan, "Failed to read stylesheet", err, "path", path)
		_ = formatter.FormatReadError(path, err)
		return
	}

	findings := scan.ScanWithThresholds(string(data), cfg.Thresholds())
	log.Debug(log.CatScan, "Scanned stylesheet", "path", path, "findings", len(findings))

	if jsonOutput {
		_ = formatter.FormatFindingList(presentation.FromDomainFindings(findings))
		return
	}
	_ = formatter.FormatFindings(path, findings)
}

// watchLoop re-runs the scan whenever the stylesheet changes, until the
// context is cancelled or the process is interrupted.
func watchLoop(ctx context.Context, formatter *presentation.Formatter, path string) error {
	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: cfg.Watch.Debounce,
	})
	if err != nil {
		return fmt.Errorf("starting watch mode: %w", err)
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return fmt.Errorf("starting watch mode: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info(log.CatWatcher, "Watching stylesheet", "path", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			log.Debug(log.CatWatcher, "Stylesheet changed, rescanning", "path", path)
			diagnoseOnce(formatter, path)
		}
	}
}
