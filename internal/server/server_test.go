package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sportselling/landing/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wasm_exec.js"), []byte("// go support"), 0o600))
	return &config.Config{
		Addr:            "127.0.0.1:0",
		WasmDir:         dir,
		WelcomeDelay:    150 * time.Millisecond,
		ShutdownTimeout: time.Second,
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	h := New(testConfig(t), zap.NewNop()).Handler()

	landing := get(t, h, "/")
	require.Equal(t, http.StatusOK, landing.Code)
	assert.Contains(t, landing.Body.String(), `data-welcome-delay="150ms"`)
	assert.Contains(t, landing.Body.String(), "Marketplace Preview")

	assert.Equal(t, http.StatusOK, get(t, h, "/healthz").Code)

	css := get(t, h, "/static/styles.css")
	assert.Equal(t, http.StatusOK, css.Code)
	assert.Contains(t, css.Body.String(), ".modal-backdrop")

	js := get(t, h, "/app/wasm_exec.js")
	assert.Equal(t, http.StatusOK, js.Code)
	assert.Equal(t, "// go support", js.Body.String())

	assert.Equal(t, http.StatusNotFound, get(t, h, "/nope").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := New(testConfig(t), zap.NewNop()).Handler()
	get(t, h, "/")
	get(t, h, "/")

	rec := get(t, h, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "landing_page_renders_total 2")
	assert.Contains(t, body, `landing_http_requests_total{code="200",route="/"} 2`)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	cfg := testConfig(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	cfg.Addr = ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(cfg, zap.NewNop()).Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Addr + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testConfig(t)
	cfg.Addr = ln.Addr().String()

	err = New(cfg, zap.NewNop()).Run(context.Background())
	assert.ErrorContains(t, err, "failed to listen")
}
