package prune

import (
	"path/filepath"
	"strings"
)

// Config holds the default retention policy.
type Config struct {
	// Days is the age threshold in whole days.
	Days int `mapstructure:"days" default:"30"`
	// Category restricts pruning to torrents with this label. Empty disables the filter.
	Category string `mapstructure:"category" default:"radarr"`
	// Mode is the join strategy (torrent, media, combined).
	Mode string `mapstructure:"mode" default:"combined"`
	// Invert selects torrents younger than Days instead of older.
	Invert bool `mapstructure:"invert" default:"false"`
	// ListFile receives the removed locations after a live run. Dry runs write
	// the would-be list next to it with a ".dry" infix. Empty disables both.
	ListFile string `mapstructure:"list_file" default:"deletable.txt"`
}

// listFile returns the list destination for a run, e.g. deletable.dry.txt for dry runs.
func (c Config) listFile(dryRun bool) string {
	if c.ListFile == "" || !dryRun {
		return c.ListFile
	}
	ext := filepath.Ext(c.ListFile)
	return strings.TrimSuffix(c.ListFile, ext) + ".dry" + ext
}
