package http

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"msgboard/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_ServeReturnsNilAfterShutdown(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 0 // let the OS pick a free port

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true

	s := &httpServer{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		server: echoServer,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Serve(context.Background())
	}()

	// Wait for the listener to come up before shutting down.
	require.Eventually(t, func() bool {
		return s.server.ListenerAddr() != nil
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, s.stop(context.Background()))

	select {
	case err := <-serveErr:
		// Graceful shutdown is a clean exit, not a serve failure.
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after shutdown")
	}
}
