package mocks

import (
	"context"

	"seedbox-mover/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// TorrentSource is a mock implementation of reconcile.TorrentSource
type TorrentSource struct {
	mock.Mock
}

func (m *TorrentSource) Name() string {
	return "mock-torrents"
}

func (m *TorrentSource) ListAll(ctx context.Context) ([]reconcile.TorrentRecord, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]reconcile.TorrentRecord); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TorrentSource) Remove(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

// MediaSource is a mock implementation of reconcile.MediaSource
type MediaSource struct {
	mock.Mock
}

func (m *MediaSource) Name() string {
	return "mock-media"
}

func (m *MediaSource) ListAll(ctx context.Context) (reconcile.MediaIndex, error) {
	args := m.Called(ctx)
	if index, ok := args.Get(0).(reconcile.MediaIndex); ok {
		return index, args.Error(1)
	}
	return nil, args.Error(1)
}
