package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"seedbox-mover/core/reconcile"
	"seedbox-mover/core/reconcile/mocks"
	"seedbox-mover/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// schemaMedia is a media source that also reports schema problems.
type schemaMedia struct {
	*mocks.MediaSource
	missing []string
}

func (s schemaMedia) CheckSchema() ([]string, error) {
	return s.missing, nil
}

func sources(torrentErr error) (*mocks.TorrentSource, *mocks.MediaSource) {
	ts := new(mocks.TorrentSource)
	ms := new(mocks.MediaSource)
	if torrentErr != nil {
		ts.On("ListAll", mock.Anything).Return(nil, torrentErr)
	} else {
		ts.On("ListAll", mock.Anything).Return([]reconcile.TorrentRecord{{Name: "a"}, {Name: "b"}}, nil)
	}
	ms.On("ListAll", mock.Anything).Return(reconcile.MediaIndex{"a": {Name: "a"}}, nil)
	return ts, ms
}

func TestService_Check(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		ts, ms := sources(nil)
		report := health.NewService(ts, ms, zap.NewNop()).Check(context.Background())

		assert.True(t, report.Healthy)
		require.Len(t, report.Sources, 2)
		assert.Equal(t, "mock-torrents", report.Sources[0].Name)
		assert.Equal(t, 2, report.Sources[0].Records)
		assert.Equal(t, 1, report.Sources[1].Records)
		assert.Nil(t, report.Schema)
	})

	t.Run("Source down", func(t *testing.T) {
		ts, ms := sources(errors.New("connection refused"))
		report := health.NewService(ts, ms, zap.NewNop()).Check(context.Background())

		assert.False(t, report.Healthy)
		assert.Equal(t, "connection refused", report.Sources[0].Error)
		assert.Empty(t, report.Sources[1].Error)
	})

	t.Run("Schema drift", func(t *testing.T) {
		ts, ms := sources(nil)
		media := schemaMedia{MediaSource: ms, missing: []string{"Movies.MovieMetadataId"}}
		report := health.NewService(ts, media, zap.NewNop()).Check(context.Background())

		assert.False(t, report.Healthy)
		require.NotNil(t, report.Schema)
		assert.Equal(t, []string{"Movies.MovieMetadataId"}, report.Schema.Missing)
	})
}

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Healthy", nil, fiber.StatusOK},
		{"Unhealthy", errors.New("down"), fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, ms := sources(tt.err)
			app := fiber.New()
			require.NoError(t, health.NewFeature(health.NewService(ts, ms, zap.NewNop())).Load(app))

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)

			var report health.Report
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
			assert.Equal(t, tt.err == nil, report.Healthy)
		})
	}
}
