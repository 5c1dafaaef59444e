package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"seedbox-mover/core/reconcile"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

var headers = table.Row{"#", "Path", "Size", "Original", "Label", "Ratio", "Finished", "Age"}

// RenderTable renders candidates as a table with a count and total size footer.
func RenderTable(candidates []reconcile.Candidate, now time.Time, colorize bool) string {
	tw := table.NewWriter()
	style := table.StyleRounded
	if colorize {
		style = table.StyleColoredBright
	}
	style.Format.Footer = text.FormatDefault
	tw.SetStyle(style)
	tw.AppendHeader(headers)

	var total int64
	for i, c := range candidates {
		total += c.Media.Size
		tw.AppendRow(candidateRow(i+1, c, now))
	}

	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d candidates", len(candidates)), humanize.IBytes(uint64(total))})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})
	return tw.Render()
}

func candidateRow(n int, c reconcile.Candidate, now time.Time) table.Row {
	row := table.Row{n, c.Media.FullPath(), humanize.IBytes(uint64(c.Media.Size)), c.Media.Name, "-", "-", "-", "-"}
	if c.Torrent == nil {
		return row
	}

	row[4] = c.Torrent.Label
	row[5] = strconv.FormatFloat(c.Torrent.Ratio, 'f', 2, 64)
	if age, ok := c.Torrent.AgeDays(now); ok {
		row[6] = c.Torrent.Finished.Format("2006-01-02")
		row[7] = fmt.Sprintf("%dd", age)
	}
	return row
}

// Write prints a human readable run report.
func Write(w io.Writer, r *reconcile.RunReport) error {
	colorize := IsTerminal(w)

	verb := "Removed"
	if r.Result.DryRun {
		verb = "Would remove"
	}

	if _, err := fmt.Fprintf(w, "Mode %s, threshold %d days, %s\n", r.Mode, r.Days, r.Started.Format(time.RFC3339)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, RenderTable(r.Candidates, r.Started, colorize)); err != nil {
		return err
	}

	fmt.Fprintf(w, "%d candidates (%d torrent, %d media only), %s reclaimable\n",
		r.Summary.Candidates, r.Summary.TorrentBacked, r.Summary.MediaOnly,
		humanize.IBytes(uint64(r.Summary.ReclaimedBytes)))
	fmt.Fprintf(w, "%s %d torrents\n", verb, len(r.Result.Removed))

	for _, f := range r.Result.Failed {
		fmt.Fprintf(w, "  failed: %s: %s\n", f.Candidate.Media.Name, f.Message)
	}
	if n := len(r.Result.Unhandled); n > 0 {
		fmt.Fprintf(w, "%d media files have no torrent and must be deleted on disk\n", n)
	}
	return nil
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
