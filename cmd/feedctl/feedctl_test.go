package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"feed_demo/internal/config"
	"feed_demo/internal/domain"
	httpserver "feed_demo/internal/http"
	"feed_demo/internal/http/controller"
	"feed_demo/internal/metrics"
	"feed_demo/internal/service/feed"
	"feed_demo/internal/sse"
	"feed_demo/internal/state"
	"feed_demo/internal/store/memory"
)

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, []byte, string) error { return nil }

func startServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{RabbitPublishPrefix: "command"}
	logger := zap.NewNop()
	m := metrics.New()
	hub := sse.NewHub()
	store := state.New(domain.Seed(), state.NewSequenceGenerator("p", 1), state.NewSequenceGenerator("n", 1))
	svc := feed.NewService(store, memory.New(logger), hub, m, logger)
	router := httpserver.NewRouter(cfg, controller.NewHandler(cfg, svc, hub, logger, noopPublisher{}), m, logger)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server.URL
}

func run(t *testing.T, server string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--server", server}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestUsersCommand(t *testing.T) {
	server := startServer(t)
	out, _, err := run(t, server, "users")
	require.NoError(t, err)
	require.Equal(t, "1\tAlice\n2\tBob\n3\tCharlie\n", out)
}

func TestPostCommands(t *testing.T) {
	server := startServer(t)

	out, _, err := run(t, server, "post", "add", "--title", "Hello", "--author", "3", "--content", "World")
	require.NoError(t, err)
	require.Equal(t, "p1\tCharlie\tHello\tlike=0 love=0 haha=0 wow=0 sad=0\n", out)

	out, _, err = run(t, server, "react", "p1", "love")
	require.NoError(t, err)
	require.Contains(t, out, "love=1")

	_, _, err = run(t, server, "react", "p1", "sad")
	require.Error(t, err)

	out, _, err = run(t, server, "post", "edit", "101", "--title", "Edited", "--content", "Body")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "101\tAlice\tEdited\t"))

	out, _, err = run(t, server, "posts")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[1], "p1\t"))

	out, _, err = run(t, server, "posts", "--author", "3")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	_, _, err = run(t, server, "post", "add", "--title", "missing flags")
	require.Error(t, err)
}

func TestNotificationsCommand(t *testing.T) {
	server := startServer(t)

	out, _, err := run(t, server, "notifications")
	require.NoError(t, err)
	require.Empty(t, out)

	out, _, err = run(t, server, "notifications", "--refresh")
	require.NoError(t, err)
	require.Equal(t, "n1\tPost \"Alice's First Post\" by Alice\n"+
		"n2\tPost \"Bob's First Post\" by Bob\n"+
		"n3\tPost \"Charlie's Post\" by Charlie\n", out)

	_, errOut, err := run(t, server, "notifications", "--refresh")
	require.NoError(t, err)
	require.Contains(t, errOut, "nothing generated")
}

func TestPublishCommand(t *testing.T) {
	server := startServer(t)

	out, _, err := run(t, server, "publish", domain.CommandAddReaction, "--post", "101", "--reaction", "like")
	require.NoError(t, err)
	require.Equal(t, "queued reaction.add\n", out)

	_, _, err = run(t, server, "publish", "post.delete")
	require.ErrorIs(t, err, domain.ErrInvalidCommandType)
}
