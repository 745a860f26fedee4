package e2e

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"feed_demo/internal/config"
	httpserver "feed_demo/internal/http"
	"feed_demo/internal/http/controller"
	"feed_demo/internal/metrics"
	"feed_demo/internal/queue"
	"feed_demo/internal/repository"
	"feed_demo/internal/service/feed"
	"feed_demo/internal/sse"
)

type noopPublisher struct{}

func (n *noopPublisher) Publish(context.Context, []byte, string) error {
	return nil
}

type testEnv struct {
	server *httptest.Server
	svc    *feed.Service
	hub    *sse.Hub
}

// newTestEnv serves the full router over repo with a running hub.
func newTestEnv(t *testing.T, cfg *config.Config, repo repository.SnapshotRepository, publisher queue.Publisher) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	store, err := feed.LoadStore(repo, logger)
	require.NoError(t, err)

	m := metrics.New()
	hub := sse.NewHub()
	svc := feed.NewService(store, repo, hub, m, logger)
	handler := controller.NewHandler(cfg, svc, hub, logger, publisher)
	router := httpserver.NewRouter(cfg, handler, m, logger)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		cancel()
	})
	return &testEnv{server: server, svc: svc, hub: hub}
}

func (e *testEnv) postJSON(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(method, e.server.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

type sseFrame struct {
	ID    string
	Event string
	Data  string
}

type sseReader struct {
	reader *bufio.Reader
}

func newSSEReader(body io.Reader) *sseReader {
	return &sseReader{reader: bufio.NewReader(body)}
}

// next returns the next non-comment frame or fails after timeout.
func (r *sseReader) next(timeout time.Duration) (sseFrame, error) {
	type result struct {
		frame sseFrame
		err   error
	}
	ch := make(chan result, 1)

	go func() {
		var frame sseFrame
		var dataLines []string
		for {
			line, err := r.reader.ReadString('\n')
			if err != nil {
				ch <- result{err: err}
				return
			}
			line = strings.TrimRight(line, "\r\n")
			switch {
			case line == "":
				if len(dataLines) > 0 {
					frame.Data = strings.Join(dataLines, "\n")
					ch <- result{frame: frame}
					return
				}
			case strings.HasPrefix(line, ":"):
			case strings.HasPrefix(line, "id:"):
				frame.ID = strings.TrimSpace(strings.TrimPrefix(line, "id:"))
			case strings.HasPrefix(line, "event:"):
				frame.Event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
			case strings.HasPrefix(line, "data:"):
				dataLines = append(dataLines, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
			}
		}
	}()

	select {
	case res := <-ch:
		return res.frame, res.err
	case <-time.After(timeout):
		return sseFrame{}, context.DeadlineExceeded
	}
}

func openStream(t *testing.T, env *testEnv, topic string) *sseReader {
	t.Helper()
	res, err := http.Get(env.server.URL + "/sse/" + topic)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))
	return newSSEReader(res.Body)
}
