package rtorrent_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"seedbox-mover/feature/rtorrent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const multicallResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><array><data>
  <value><string>AAAA</string></value>
  <value><string>Movie.One.2020.1080p.mkv</string></value>
  <value><i4>1500</i4></value>
  <value><string>radarr</string></value>
  <value><i4>1600000000</i4></value>
  <value><i4>1600003600</i4></value>
  <value><array><data>
    <value><array><data><value><string>udp://tracker.one:80</string></value></data></array></value>
  </data></array></value>
  <value><string>/downloads/Movie.One.2020.1080p.mkv</string></value>
  <value><i4>0</i4></value>
</data></array></value>
<value><array><data>
  <value><string>BBBB</string></value>
  <value><string>Movie.Two.2021.2160p</string></value>
  <value><i4>250</i4></value>
  <value><string></string></value>
  <value><i4>1610000000</i4></value>
  <value><i4>0</i4></value>
  <value><array><data></data></array></value>
  <value><string>/downloads/Movie.Two.2021.2160p</string></value>
  <value><i4>1</i4></value>
</data></array></value>
</data></array></value></param></params></methodResponse>`

const eraseResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><i4>0</i4></value></param></params></methodResponse>`

const faultResponse = `<?xml version="1.0"?>
<methodResponse><fault><value><struct>
<member><name>faultCode</name><value><int>-501</int></value></member>
<member><name>faultString</name><value><string>Could not find info-hash.</string></value></member>
</struct></value></fault></methodResponse>`

func newServer(t *testing.T, handler func(method, body string) string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body := string(raw)
		start := strings.Index(body, "<methodName>") + len("<methodName>")
		end := strings.Index(body, "</methodName>")
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(handler(body[start:end], body)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSource_ListAll(t *testing.T) {
	var gotBody string
	srv := newServer(t, func(method, body string) string {
		gotBody = body
		assert.Equal(t, "d.multicall2", method)
		return multicallResponse
	})

	src, err := rtorrent.New(rtorrent.Config{URL: srv.URL, TimeoutSeconds: 5}, zap.NewNop())
	require.NoError(t, err)

	torrents, err := src.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, torrents, 2)

	single := torrents[0]
	assert.Equal(t, "AAAA", single.Handle)
	assert.Equal(t, "Movie.One.2020.1080p", single.Name)
	assert.InDelta(t, 1.5, single.Ratio, 0.0001)
	assert.Equal(t, "radarr", single.Label)
	assert.True(t, single.Added.Equal(time.Unix(1600000000, 0)))
	require.NotNil(t, single.Finished)
	assert.True(t, single.Finished.Equal(time.Unix(1600003600, 0)))
	assert.Equal(t, []string{"udp://tracker.one:80"}, single.Trackers)
	assert.Equal(t, "/downloads/Movie.One.2020.1080p.mkv", single.Location)

	multi := torrents[1]
	assert.Equal(t, "Movie.Two.2021.2160p", multi.Name)
	assert.Nil(t, multi.Finished)
	assert.False(t, multi.IsFinished())
	assert.Empty(t, multi.Trackers)

	assert.Contains(t, gotBody, "d.timestamp.finished=")
	assert.Contains(t, gotBody, "<string>main</string>")
}

func TestSource_Remove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotBody string
		srv := newServer(t, func(method, body string) string {
			gotBody = body
			assert.Equal(t, "d.erase", method)
			return eraseResponse
		})
		src, err := rtorrent.New(rtorrent.Config{URL: srv.URL}, zap.NewNop())
		require.NoError(t, err)

		assert.NoError(t, src.Remove(context.Background(), "AAAA"))
		assert.Contains(t, gotBody, "<string>AAAA</string>")
	})

	t.Run("Fault", func(t *testing.T) {
		srv := newServer(t, func(method, body string) string { return faultResponse })
		src, err := rtorrent.New(rtorrent.Config{URL: srv.URL}, zap.NewNop())
		require.NoError(t, err)

		err = src.Remove(context.Background(), "ZZZZ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "d.erase")
	})
}

type blockingCaller struct{ release chan struct{} }

func (b *blockingCaller) Call(string, any, any) error {
	<-b.release
	return nil
}

func TestSource_ContextCancelled(t *testing.T) {
	caller := &blockingCaller{release: make(chan struct{})}
	defer close(caller.release)

	src := rtorrent.NewWithCaller(caller, zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := src.ListAll(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := rtorrent.New(rtorrent.Config{}, zap.NewNop())
	assert.Error(t, err)
}

func TestSource_Name(t *testing.T) {
	assert.Equal(t, "rtorrent", rtorrent.NewWithCaller(nil, zap.NewNop()).Name())
}
