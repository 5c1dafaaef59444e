package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"seedbox-mover/core/reconcile"
	"seedbox-mover/feature/prune"
	"seedbox-mover/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	pruneDays     int
	pruneMode     string
	pruneCategory string
	pruneInvert   bool
	pruneDryRun   bool
	pruneJSON     bool
	yesConfirm    bool
)

// pruneCmd lists deletion candidates and optionally removes their torrents.
var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Find and remove aged-out torrents Radarr already imported",
	Long: `Reconcile the download client with Radarr and report deletable media.

Modes:
  torrent   media backed by finished torrents older than --days
  media     media whose torrent is already gone from the client
  combined  both of the above (default)

Runs are dry by default. Torrents are only removed with --dry-run=false,
after an interactive confirmation or --yes. Media-only candidates are listed
but never deleted from disk.

Examples:
  # Report only
  seedbox-mover prune

  # Torrents finished more than 60 days ago, as JSON
  seedbox-mover prune --mode torrent --days 60 --json

  # Remove with auto-confirm (non-interactive)
  seedbox-mover prune --dry-run=false --yes`,
	RunE: runPrune,
}

func init() {
	pruneCmd.Flags().IntVar(&pruneDays, "days", reconcile.DefaultThresholdDays, "Retention threshold in whole days (default from PRUNE_DAYS)")
	pruneCmd.Flags().StringVar(&pruneMode, "mode", "", "Join strategy: torrent, media or combined (default from PRUNE_MODE)")
	pruneCmd.Flags().StringVar(&pruneCategory, "category", "", "Only consider torrents with this label (default from PRUNE_CATEGORY)")
	pruneCmd.Flags().BoolVar(&pruneInvert, "invert", false, "Select torrents finished less than --days ago")
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", true, "Report only; pass --dry-run=false to remove torrents")
	pruneCmd.Flags().BoolVar(&pruneJSON, "json", false, "Print the report as JSON")
	pruneCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm removal (non-interactive)")

	RootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := newDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	flags := cmd.Flags()
	if flags.Changed("category") {
		d.cfg.Prune.Category = pruneCategory
	}

	svc, err := d.service(ctx)
	if err != nil {
		return err
	}

	req, err := svc.Defaults()
	if err != nil {
		return err
	}
	if flags.Changed("days") {
		req.Days = pruneDays
	}
	if flags.Changed("mode") {
		if req.Mode, err = reconcile.ParseMode(pruneMode); err != nil {
			return err
		}
	}
	if flags.Changed("invert") {
		req.Invert = pruneInvert
	}
	if req.Days < 0 {
		return fmt.Errorf("--days must not be negative")
	}

	d.logger.Info("Starting reconciliation",
		zap.String("client", d.torrents.Name()),
		zap.String("media", d.media.Name()),
		zap.Int("days", req.Days),
		zap.String("mode", string(req.Mode)),
	)

	return executePrune(ctx, svc, req, pruneSession{
		dryRun: pruneDryRun,
		yes:    yesConfirm,
		json:   pruneJSON,
		in:     os.Stdin,
		out:    os.Stdout,
		prompt: os.Stderr,
	}, d.logger)
}

// pruneSession carries the interactive side of a prune run.
type pruneSession struct {
	dryRun bool
	yes    bool
	json   bool
	in     io.Reader
	out    io.Writer
	prompt io.Writer
}

// executePrune plans a dry run, prints it and, unless dry, applies the plan after confirmation.
func executePrune(ctx context.Context, svc *prune.Service, req prune.Request, s pruneSession, logger *zap.Logger) error {
	// Step 1: Plan (always a dry run)
	req.DryRun = true
	plan, err := svc.Run(ctx, req)
	if err != nil {
		return err
	}

	if s.dryRun || plan.Summary.TorrentBacked == 0 {
		if !s.dryRun {
			logger.Info("No torrents to remove")
		}
		return s.print(plan)
	}

	if err := s.print(plan); err != nil {
		return err
	}

	// Step 2: Apply after confirmation
	if !confirmRemoval(s, plan.Summary.TorrentBacked) {
		logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	final := svc.Apply(ctx, plan)
	if err := s.print(final); err != nil {
		return err
	}
	if n := len(final.Result.Failed); n > 0 {
		return fmt.Errorf("%w: %d of %d torrents", reconcile.ErrRemovalFailed, n, plan.Summary.TorrentBacked)
	}
	return nil
}

func (s pruneSession) print(r *reconcile.RunReport) error {
	if s.json {
		return report.WriteJSON(s.out, r)
	}
	return report.Write(s.out, r)
}

// confirmRemoval prompts the user for confirmation or uses --yes flag.
func confirmRemoval(s pruneSession, count int) bool {
	if s.yes {
		fmt.Fprintln(s.prompt, "\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprintf(s.prompt, "\n⚠️  Type 'yes' to remove %d torrents from the client: ", count)
	reader := bufio.NewReader(s.in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
