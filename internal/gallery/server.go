package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/headless/internal/metrics"
	"github.com/vango-dev/headless/internal/stories"
	"github.com/vango-dev/headless/pkg/render"
)

const tracerName = "github.com/vango-dev/headless/internal/gallery"

// Config configures the gallery server.
type Config struct {
	// Addr is the listen address for ListenAndServe.
	Addr string

	// MetricsPath serves Prometheus metrics when metrics are enabled.
	// Default: "/metrics"
	MetricsPath string

	// ReadLimit is the largest accepted websocket message in bytes.
	ReadLimit int64

	// WriteTimeout bounds each websocket write.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Pretty indents rendered story HTML.
	Pretty bool

	// CheckOrigin validates websocket origins. Nil accepts same-origin
	// requests only.
	CheckOrigin func(r *http.Request) bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            "localhost:7070",
		MetricsPath:     "/metrics",
		ReadLimit:       64 * 1024,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Option configures a Server.
type Option func(*Server)

// WithConfig replaces the configuration. Zero durations and limits keep
// their defaults.
func WithConfig(c Config) Option {
	return func(s *Server) {
		def := DefaultConfig()
		if c.MetricsPath == "" {
			c.MetricsPath = def.MetricsPath
		}
		if c.ReadLimit <= 0 {
			c.ReadLimit = def.ReadLimit
		}
		if c.WriteTimeout <= 0 {
			c.WriteTimeout = def.WriteTimeout
		}
		if c.ShutdownTimeout <= 0 {
			c.ShutdownTimeout = def.ShutdownTimeout
		}
		s.config = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithMetrics registers the gallery collectors with reg and serves reg on
// the metrics path.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.metrics = metrics.New(metrics.WithRegistry(reg))
		s.gatherer = reg
	}
}

// WithTracer sets the tracer. The default uses the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *Server) {
		s.tracer = t
	}
}

// Server serves the story gallery: an index, one page per story and a
// websocket per page that drives a live session.
type Server struct {
	registry *stories.Registry
	config   Config
	logger   *slog.Logger
	metrics  *metrics.Collector
	gatherer prometheus.Gatherer
	tracer   trace.Tracer
	renderer *render.Renderer
	upgrader websocket.Upgrader
	sessions *sessionManager
	router   chi.Router
}

// New creates a gallery for the stories in reg.
func New(reg *stories.Registry, opts ...Option) *Server {
	s := &Server{
		registry: reg,
		config:   DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "gallery")
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	s.renderer = render.NewRenderer(render.RendererConfig{Pretty: s.config.Pretty})
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.config.CheckOrigin,
	}
	s.sessions = &sessionManager{sessions: make(map[string]*Session), server: s}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/stories", s.handleStoryList)
	r.Get("/stories/{id}", s.handleStory)
	r.Get("/stories/{id}/ws", s.handleWebSocket)
	if s.gatherer != nil {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the gallery's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Sessions returns the number of open sessions.
func (s *Server) Sessions() int {
	return s.sessions.count()
}

// ListenAndServe serves until ctx is done, then shuts down gracefully and
// closes every session.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("gallery listening", "addr", s.config.Addr, "stories", len(s.registry.All()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.sessions.closeAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("gallery stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// storyInfo is the JSON form of a story.
type storyInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Group       string `json:"group"`
	Description string `json:"description,omitempty"`
}

func (s *Server) handleStoryList(w http.ResponseWriter, r *http.Request) {
	all := s.registry.All()
	list := make([]storyInfo, len(all))
	for i, st := range all {
		list[i] = storyInfo{ID: st.ID, Title: st.Title, Group: st.Group, Description: st.Description}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		s.logger.Error("encode story list", "error", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := WriteIndex(w, s.renderer, s.registry, ServerLink); err != nil {
		s.logger.Error("render index", "error", err)
	}
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	story, ok := s.registry.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := WriteStory(w, s.renderer, story, true); err != nil {
		s.logger.Error("render story", "story", story.ID, "error", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	story, ok := s.registry.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(s.config.ReadLimit)

	sess := s.newSession(conn, story)
	s.sessions.add(sess)
	sess.readLoop(context.WithoutCancel(r.Context()))
}

// logRequests logs each request at debug level with its request ID.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
