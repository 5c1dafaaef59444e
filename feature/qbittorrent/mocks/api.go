package mocks

import (
	"context"

	qbt "github.com/autobrr/go-qbittorrent"
	"github.com/stretchr/testify/mock"
)

// API is a mock implementation of qbittorrent.API.
type API struct {
	mock.Mock
}

func (m *API) LoginCtx(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *API) GetTorrentsCtx(ctx context.Context, o qbt.TorrentFilterOptions) ([]qbt.Torrent, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]qbt.Torrent), args.Error(1)
}

func (m *API) DeleteTorrentsCtx(ctx context.Context, hashes []string, deleteFiles bool) error {
	args := m.Called(ctx, hashes, deleteFiles)
	return args.Error(0)
}
