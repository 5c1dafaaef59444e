package radarr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const moviesPayload = `[
  {
    "title": "Movie One",
    "path": "/movies/Movie One (2020)",
    "hasFile": true,
    "movieFile": {
      "relativePath": "Movie One (2020) Bluray-1080p.mkv",
      "sceneName": "Movie.One.2020.1080p.BluRay.x264-GRP",
      "size": 2040109465,
      "dateAdded": "2023-04-01T10:00:00Z"
    }
  },
  {
    "title": "No Scene Name",
    "path": "/movies/No Scene Name (2019)",
    "hasFile": true,
    "movieFile": {"relativePath": "x.mkv", "size": 1, "dateAdded": "2023-04-01T10:00:00Z"}
  },
  {
    "title": "Missing",
    "path": "/movies/Missing (2018)",
    "hasFile": false
  },
  {
    "title": "Movie One Again",
    "path": "/movies/Movie One Again",
    "hasFile": true,
    "movieFile": {
      "relativePath": "again.mkv",
      "sceneName": "Movie.One.2020.1080p.BluRay.x264-GRP",
      "size": 10,
      "dateAdded": "2023-05-01T10:00:00Z"
    }
  }
]`

func TestAPISource_ListAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/movie", r.URL.Path)
		if r.Header.Get("X-Api-Key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(moviesPayload))
	}))
	defer srv.Close()

	src, err := NewAPISource(Config{URL: srv.URL + "/", ApiKey: "secret"}, zap.NewNop())
	require.NoError(t, err)

	index, err := src.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, index, 1)

	rec := index["Movie.One.2020.1080p.BluRay.x264-GRP"]
	// Last duplicate wins
	assert.Equal(t, "Movie One Again", rec.Title)
	assert.Equal(t, "again.mkv", rec.Filename)
	assert.Equal(t, "/movies/Movie One Again", rec.BasePath)
	assert.Equal(t, int64(10), rec.Size)
	assert.True(t, rec.Added.Equal(time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)))
}

func TestAPISource_Errors(t *testing.T) {
	t.Run("Unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		src, err := NewAPISource(Config{URL: srv.URL, ApiKey: "wrong"}, zap.NewNop())
		require.NoError(t, err)

		_, err = src.ListAll(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not": "a list"`))
		}))
		defer srv.Close()

		src, err := NewAPISource(Config{URL: srv.URL, ApiKey: "k"}, zap.NewNop())
		require.NoError(t, err)

		_, err = src.ListAll(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})

	t.Run("Missing settings", func(t *testing.T) {
		_, err := NewAPISource(Config{URL: "", ApiKey: "k"}, zap.NewNop())
		assert.Error(t, err)
		_, err = NewAPISource(Config{URL: "http://radarr", ApiKey: " "}, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestIndexMovies_DownloadedFlag(t *testing.T) {
	index := indexMovies([]movie{{
		Title:      "Legacy",
		Downloaded: true,
		MovieFile:  &movieFile{SceneName: "Legacy.1999"},
	}})
	assert.Contains(t, index, "Legacy.1999")
	assert.Contains(t, index.Names(), "Legacy.1999")
}
