// Package server exposes extraction, generation, preview, download and
// simulated deployment over HTTP.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikogura/brand-weaver/pkg/linkedin"
	"github.com/nikogura/brand-weaver/pkg/logging"
	"github.com/nikogura/brand-weaver/pkg/metrics"
	"github.com/nikogura/brand-weaver/pkg/profile"
	"github.com/nikogura/brand-weaver/pkg/session"
	"github.com/nikogura/brand-weaver/pkg/site"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
)

const (
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 60 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	rateLimitWindow        = time.Minute
)

// Extractor turns a LinkedIn identifier into profile data.
type Extractor interface {
	Extract(ctx context.Context, identifier string) (data profile.Data, err error)
}

// Config holds listener and limit settings.
type Config struct {
	ListenAddr         string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	ShutdownTimeout    time.Duration
	RateLimitPerMinute int
	Debug              bool
}

// SetDefaults fills unset durations and the listen address.
func (c *Config) SetDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":5000"
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = defaultReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = defaultWriteTimeout
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = defaultIdleTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}
}

// Server is the HTTP API with lifecycle management.
type Server struct {
	config    Config
	router    *gin.Engine
	server    *http.Server
	logger    logging.Logger
	store     session.Store
	extractor Extractor
	generator *site.Generator
	recorder  metrics.Recorder
	registry  *prom.Registry
	clock     func() time.Time
	done      chan struct{}
	stopOnce  sync.Once
}

// Option configures a Server.
type Option func(s *Server)

// WithStore sets the session store.
func WithStore(store session.Store) (opt Option) {
	opt = func(s *Server) {
		if store != nil {
			s.store = store
		}
	}
	return opt
}

// WithExtractor sets the profile extractor.
func WithExtractor(extractor Extractor) (opt Option) {
	opt = func(s *Server) {
		if extractor != nil {
			s.extractor = extractor
		}
	}
	return opt
}

// WithGenerator sets the site generator.
func WithGenerator(generator *site.Generator) (opt Option) {
	opt = func(s *Server) {
		if generator != nil {
			s.generator = generator
		}
	}
	return opt
}

// WithLogger sets the logger.
func WithLogger(logger logging.Logger) (opt Option) {
	opt = func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
	return opt
}

// WithRecorder sets the metrics recorder.
func WithRecorder(recorder metrics.Recorder) (opt Option) {
	opt = func(s *Server) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
	return opt
}

// WithRegistry serves reg on /metrics.
func WithRegistry(reg *prom.Registry) (opt Option) {
	opt = func(s *Server) {
		s.registry = reg
	}
	return opt
}

// WithClock sets the clock used for sample previews and export stamps.
func WithClock(clock func() time.Time) (opt Option) {
	opt = func(s *Server) {
		if clock != nil {
			s.clock = clock
		}
	}
	return opt
}

// New builds a Server. Without options it serves sample data from an
// in-memory store.
func New(cfg Config, opts ...Option) (s *Server) {
	cfg.SetDefaults()

	s = &Server{
		config:   cfg,
		logger:   logging.NewNop(),
		store:    session.NewMemoryStore(),
		recorder: metrics.NoopRecorder{},
		clock:    time.Now,
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.extractor == nil {
		s.extractor = linkedin.NewExtractor(nil,
			linkedin.WithSampleFallback(true),
			linkedin.WithExtractorClock(s.clock),
			linkedin.WithLogger(s.logger),
			linkedin.WithRecorder(s.recorder),
		)
	}
	if s.generator == nil {
		s.generator = site.New(site.WithClock(s.clock))
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()
	s.router.Use(RecoveryMiddleware(s.logger))
	s.router.Use(LoggerMiddleware(s.logger))
	s.router.Use(MetricsMiddleware(s.recorder))
	s.routes()

	s.server = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// Handler returns the router for use with httptest.
func (s *Server) Handler() (h http.Handler) {
	h = s.router
	return h
}

func (s *Server) routes() {
	s.router.GET("/health", s.handleHealth)
	if s.registry != nil {
		s.router.GET("/metrics", gin.WrapH(metrics.HTTPHandler(s.registry)))
	}

	api := s.router.Group("/api")
	api.POST("/extract", RateLimiter(s.config.RateLimitPerMinute, rateLimitWindow, s.done), s.handleExtract)
	api.POST("/generate", s.handleGenerate)
	api.GET("/preview", s.handlePreview)
	api.POST("/deploy", s.handleDeploy)
	api.GET("/dns-guidance", s.handleDNSGuidance)
	api.GET("/download/site", s.handleDownloadSite)
	api.GET("/download/data", s.handleDownloadData)
	api.GET("/download/zip", s.handleDownloadZip)
	api.GET("/presets", s.handlePresets)
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) (err error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server",
			logging.String("address", s.server.Addr),
			logging.Duration("read_timeout", s.server.ReadTimeout),
			logging.Duration("write_timeout", s.server.WriteTimeout),
		)
		serveErr := s.server.ListenAndServe()
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- errors.Wrap(serveErr, "server error")
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		s.stop()
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	err = s.Shutdown()
	return err
}

// Shutdown stops accepting requests and waits for in-flight ones up to the
// configured timeout.
func (s *Server) Shutdown() (err error) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.stop()

	err = s.server.Shutdown(shutdownCtx)
	if err != nil {
		err = errors.Wrap(err, "server shutdown error")
		return err
	}

	s.logger.Info("HTTP server stopped gracefully")
	return err
}

func (s *Server) stop() {
	s.stopOnce.Do(func() { close(s.done) })
}
