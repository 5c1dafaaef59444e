package cmd

import (
	"net/http/httptest"
	"testing"

	"seedbox-mover/core/loader"
	"seedbox-mover/core/metrics"
	"seedbox-mover/core/middleware/auth"
	"seedbox-mover/core/reconcile"
	"seedbox-mover/core/reconcile/mocks"
	"seedbox-mover/core/server"
	"seedbox-mover/feature/prune"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewApp(t *testing.T) {
	ts := new(mocks.TorrentSource)
	ms := new(mocks.MediaSource)
	ts.On("ListAll", mock.Anything).Return([]reconcile.TorrentRecord{}, nil)
	ms.On("ListAll", mock.Anything).Return(reconcile.MediaIndex{}, nil)

	svc := prune.NewService(ts, ms, prune.Config{Days: 30, Mode: "combined"}, nil, zap.NewNop())
	mgr := loader.NewManager()
	mgr.Register(prune.NewFeature(svc, server.Config{}, zap.NewNop()))

	reg := prometheus.NewRegistry()
	metrics.Register(reg)

	app, err := newApp(mgr, reg, "secret", zap.NewNop())
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		key  string
		want int
	}{
		{"Metrics are public", "/metrics", "", fiber.StatusOK},
		{"Candidates need a key", "/candidates", "", fiber.StatusUnauthorized},
		{"Candidates with key", "/candidates", "secret", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.key != "" {
				req.Header.Set(auth.HeaderName, tt.key)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
		})
	}
}
