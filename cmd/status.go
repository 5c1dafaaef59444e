package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"seedbox-mover/feature/health"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// statusCmd probes both sources.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check connectivity to the download client and Radarr",
	Long: `Queries the configured torrent and media sources and prints how many
records each returned. With the database media source, also verifies that the
Radarr schema has every column the reader needs.`,
	RunE: runStatus,
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report := health.NewService(d.torrents, d.media, d.logger).Check(ctx)
	fmt.Fprintln(os.Stdout, renderStatus(report))

	if !report.Healthy {
		return fmt.Errorf("one or more checks failed")
	}
	return nil
}

func renderStatus(report *health.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Check", "Records", "Latency", "Status"})

	for _, src := range report.Sources {
		status := "ok"
		if src.Error != "" {
			status = src.Error
		}
		tw.AppendRow(table.Row{src.Name, src.Records, src.Latency.Round(time.Millisecond), status})
	}

	if report.Schema != nil {
		status := "ok"
		switch {
		case report.Schema.Error != "":
			status = report.Schema.Error
		case len(report.Schema.Missing) > 0:
			status = fmt.Sprintf("missing %v", report.Schema.Missing)
		}
		tw.AppendRow(table.Row{"radarr schema", "-", "-", status})
	}

	return tw.Render()
}
