package rtorrent

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"seedbox-mover/core/reconcile"
	"seedbox-mover/core/utils"

	"github.com/kolo/xmlrpc"
	"go.uber.org/zap"
)

// multicallFields is the column order of every d.multicall2 row.
var multicallFields = []any{
	"",
	"main",
	"d.hash=",
	"d.name=",
	"d.ratio=",
	"d.custom1=",
	"d.timestamp.started=",
	"d.timestamp.finished=",
	"t.multicall=,t.url=",
	"d.base_path=",
	"d.is_multi_file=",
}

const (
	colHash = iota
	colName
	colRatio
	colLabel
	colStarted
	colFinished
	colTrackers
	colBasePath
	colMultiFile
	columnCount
)

// Caller is the subset of *xmlrpc.Client used by Source.
type Caller interface {
	Call(serviceMethod string, args any, reply any) error
}

// Source reads and removes torrents through rTorrent's XML-RPC interface.
type Source struct {
	client Caller
	logger *zap.Logger
}

// New dials nothing; it prepares an XML-RPC client for cfg.URL.
func New(cfg Config, logger *zap.Logger) (*Source, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("rtorrent url is required")
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ResponseHeaderTimeout: time.Duration(timeout) * time.Second,
	}
	client, err := xmlrpc.NewClient(cfg.URL, transport)
	if err != nil {
		return nil, fmt.Errorf("failed to create xmlrpc client: %w", err)
	}
	return NewWithCaller(client, logger), nil
}

// NewWithCaller wraps an existing caller.
func NewWithCaller(client Caller, logger *zap.Logger) *Source {
	return &Source{client: client, logger: logger}
}

// Name implements reconcile.TorrentSource.
func (s *Source) Name() string {
	return "rtorrent"
}

// ListAll implements reconcile.TorrentSource with a single d.multicall2 over the main view.
func (s *Source) ListAll(ctx context.Context) ([]reconcile.TorrentRecord, error) {
	var rows [][]any
	if err := s.call(ctx, "d.multicall2", multicallFields, &rows); err != nil {
		return nil, err
	}

	torrents := make([]reconcile.TorrentRecord, 0, len(rows))
	for i, row := range rows {
		if len(row) < columnCount {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i, columnCount, len(row))
		}
		torrents = append(torrents, decodeRow(row))
	}

	s.logger.Debug("Listed torrents", zap.Int("count", len(torrents)))
	return torrents, nil
}

// Remove implements reconcile.TorrentSource using d.erase.
func (s *Source) Remove(ctx context.Context, handle string) error {
	var ok int
	if err := s.call(ctx, "d.erase", []any{handle}, &ok); err != nil {
		return err
	}
	s.logger.Info("Erased torrent", zap.String("hash", handle))
	return nil
}

// call runs an XML-RPC call and gives up when ctx ends first.
func (s *Source) call(ctx context.Context, method string, args []any, reply any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- s.client.Call(method, args, reply)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		return nil
	}
}

func decodeRow(row []any) reconcile.TorrentRecord {
	name := utils.ToString(row[colName])
	if !utils.ToBool(row[colMultiFile]) {
		// Radarr records single-file torrents by the file name without extension
		name = strings.TrimSuffix(name, path.Ext(name))
	}

	var added time.Time
	if t := utils.ToUnixTime(row[colStarted]); t != nil {
		added = *t
	}

	return reconcile.TorrentRecord{
		Handle:   utils.ToString(row[colHash]),
		Name:     name,
		Ratio:    utils.ToFloat64(row[colRatio]) / 1000,
		Label:    utils.ToString(row[colLabel]),
		Added:    added,
		Finished: utils.ToUnixTime(row[colFinished]),
		Trackers: decodeTrackers(row[colTrackers]),
		Location: utils.ToString(row[colBasePath]),
	}
}

// decodeTrackers flattens the nested t.multicall result, keeping the last column of each group.
func decodeTrackers(val any) []string {
	groups, ok := val.([]any)
	if !ok {
		return nil
	}
	trackers := make([]string, 0, len(groups))
	for _, g := range groups {
		group, ok := g.([]any)
		if !ok || len(group) == 0 {
			continue
		}
		trackers = append(trackers, utils.ToString(group[len(group)-1]))
	}
	return trackers
}
