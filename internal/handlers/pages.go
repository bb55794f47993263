package handlers

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sportselling/landing/components/landing"
	"github.com/sportselling/landing/internal/metrics"
	"github.com/sportselling/landing/shell"
	"github.com/sportselling/landing/ssr"
)

// Pages serves the prerendered landing page.
type Pages struct {
	log     *zap.Logger
	metrics *metrics.Metrics
	shell   shell.Options
}

// NewPages creates the page handlers.
func NewPages(log *zap.Logger, m *metrics.Metrics, opts shell.Options) *Pages {
	return &Pages{log: log, metrics: m, shell: opts}
}

// WriteLanding renders the full landing document to w.
func (p *Pages) WriteLanding(w io.Writer) error {
	view := landing.New(landing.WithDelay(p.shell.WelcomeDelay))
	return shell.Page(p.shell, ssr.Render(view)).Render(w)
}

// Landing handles GET /. The page is rendered into a buffer first so a
// failed render still gets a clean 500 instead of a truncated document.
func (p *Pages) Landing(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var buf bytes.Buffer
	if err := p.WriteLanding(&buf); err != nil {
		p.metrics.RenderErrors.Inc()
		p.log.Error("landing render failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	p.metrics.PageRenders.Inc()
	p.metrics.RenderTime.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		p.log.Debug("client went away during write", zap.Error(err))
	}
}

// Health handles GET /healthz.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
