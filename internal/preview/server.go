// Package preview runs the development preview server: it serves the
// demo document rendered live on every request, exposes Prometheus
// metrics for the render sink, traces renders with OpenTelemetry, and
// reloads connected browsers over WebSocket when a watched path changes.
package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tagwright-dev/tagwright/internal/demo"
	"github.com/tagwright-dev/tagwright/pkg/builder"
	"github.com/tagwright-dev/tagwright/pkg/sink"
)

const tracerName = "tagwright/preview"

// Options configures the preview server.
type Options struct {
	// Addr is the listen address (default ":8791").
	Addr string

	// Title overrides the demo page title.
	Title string

	// Watch is a file or directory to poll for changes; when set,
	// connected browsers reload on change. Empty disables watching.
	Watch string

	// WatchInterval is the polling interval (default 500ms).
	WatchInterval time.Duration

	// Logger receives server logs (default slog.Default()).
	Logger *slog.Logger
}

// Server is the preview server.
type Server struct {
	opts       Options
	logger     *slog.Logger
	reload     *ReloadServer
	tracer     trace.Tracer
	registry   *prometheus.Registry
	metrics    *sink.Metrics
	httpServer *http.Server
}

// NewServer creates a preview server.
func NewServer(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = ":8791"
	}
	if opts.WatchInterval <= 0 {
		opts.WatchInterval = 500 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	s := &Server{
		opts:     opts,
		logger:   opts.Logger,
		reload:   NewReloadServer(),
		tracer:   otel.Tracer(tracerName),
		registry: registry,
		metrics:  sink.NewMetrics(sink.WithSubsystem("preview"), sink.WithRegistry(registry)),
	}
	s.httpServer = &http.Server{
		Addr:    opts.Addr,
		Handler: s.Handler(),
	}
	return s
}

// Handler returns the preview server's routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/__reload", s.reload.HandleWebSocket)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if s.opts.Watch != "" {
		watcher := NewWatcher(s.opts.Watch, s.opts.WatchInterval, func(path string) {
			s.logger.Info("change detected, reloading browsers",
				"path", path,
				"clients", s.reload.ClientCount())
			s.reload.NotifyReload()
		})
		go watcher.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.opts.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleIndex renders the demo document straight into the response.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "preview.render",
		trace.WithAttributes(attribute.String("http.route", "/")))
	defer span.End()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	stream := sink.NewStream(w)
	bw := builder.NewWriter(s.metrics.Wrap(stream))
	page := demo.Page{
		Title:      s.opts.Title,
		LiveReload: s.opts.Watch != "",
	}
	if err := page.Render(bw); err != nil {
		// Headers are already out; all we can do is record and log.
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("render failed", "err", err)
		return
	}
	stream.Flush()
	span.SetStatus(codes.Ok, "")
}
