package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup := SetupLogger(Config{Level: "warn"}, &buf)
	defer cleanup()

	logger.Info("hidden")
	logger.Warn("shown", slog.String("table", "parcels"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "table=parcels")
}

func TestSetupLogger_Seq(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(body))
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger, cleanup := SetupLogger(Config{Level: "info", SeqURL: srv.URL}, &buf)
	_, ok := logger.Handler().(*multiHandler)
	require.True(t, ok)

	logger.Debug("below level")
	logger.Error("column type lookup failed", slog.String("table", "parcels"))
	cleanup()

	assert.Contains(t, buf.String(), "msg=\"column type lookup failed\"")
	assert.NotContains(t, buf.String(), "below level")

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "column type lookup failed")
	assert.Contains(t, bodies[0], "parcels")
	assert.NotContains(t, bodies[0], "below level")
}

func TestMultiHandler(t *testing.T) {
	var debugBuf, errBuf bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	}}

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	logger := slog.New(h).With(slog.String("op", "lookup_column_type"))
	logger.Debug("debug only")
	logger.Error("both")

	assert.Contains(t, debugBuf.String(), "debug only")
	assert.Contains(t, debugBuf.String(), "both")
	assert.NotContains(t, errBuf.String(), "debug only")
	assert.Contains(t, errBuf.String(), "op=lookup_column_type")
}
