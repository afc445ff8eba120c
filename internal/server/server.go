package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/yaswanthreddy/portfolio/internal/chart"
	"github.com/yaswanthreddy/portfolio/internal/contact"
	"github.com/yaswanthreddy/portfolio/internal/page"
	"github.com/yaswanthreddy/portfolio/internal/rendering"
	"github.com/yaswanthreddy/portfolio/internal/server/middleware"
	"github.com/yaswanthreddy/portfolio/internal/server/ratelimit"
	"github.com/yaswanthreddy/portfolio/internal/types"
)

// maxBodyBytes bounds contact submissions; the form itself caps a message at 5000 characters.
const maxBodyBytes = 64 << 10

// shutdownTimeout is how long in-flight requests get to finish on shutdown.
const shutdownTimeout = 15 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	logger      *slog.Logger
	portfolio   *types.Portfolio
	cards       *rendering.Cards
	charts      chart.Charter
	renderer    *page.Renderer
	contact     contact.Acceptor
	rateLimiter *ratelimit.Limiter

	// pages holds every view rendered once at startup
	pages map[page.View][]byte
}

// Config holds server configuration. Only Portfolio is required.
type Config struct {
	Port        int
	Portfolio   *types.Portfolio
	Cards       *rendering.Cards // Built-in card templates when nil
	Charts      chart.Charter    // chart.Plotly when nil
	Pages       *page.Renderer   // Built-in layout when nil
	Contact     contact.Acceptor // Log-only contact.Service when nil
	Logger      *slog.Logger     // slog.Default() when nil
	CORSOrigins []string         // No cross-origin access when empty
	// Peers allowed to set the client address through forwarding headers.
	// Forwarding headers are ignored when empty.
	TrustedProxies []netip.Prefix
	RateLimit      *ratelimit.Config // ratelimit.LoadConfig() when nil
}

// New creates a new server instance. Every view is rendered up front so
// content errors surface here rather than on the first request.
func New(cfg Config) (*Server, error) {
	if cfg.Portfolio == nil {
		return nil, errors.New("server config: portfolio is required")
	}

	s := &Server{
		logger:    cfg.Logger,
		portfolio: cfg.Portfolio,
		cards:     cfg.Cards,
		charts:    cfg.Charts,
		renderer:  cfg.Pages,
		contact:   cfg.Contact,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.charts == nil {
		s.charts = chart.Plotly{}
	}
	if s.contact == nil {
		s.contact = contact.NewService(nil, contact.LogNotifier{Logger: s.logger}, nil, s.logger)
	}

	var err error
	if s.cards == nil {
		if s.cards, err = rendering.NewCards(); err != nil {
			return nil, err
		}
	}
	if s.renderer == nil {
		if s.renderer, err = page.NewRenderer(); err != nil {
			return nil, err
		}
	}

	if err := s.renderPages(); err != nil {
		return nil, err
	}

	rateConfig := cfg.RateLimit
	if rateConfig == nil {
		rateConfig = ratelimit.LoadConfig()
	}
	s.rateLimiter = ratelimit.NewLimiter(rateConfig)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(cfg.CORSOrigins, cfg.TrustedProxies),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the chi router. Middleware order: RequestID, real IP, logging,
// panic recovery, CORS, rate limiting, body size.
func (s *Server) routes(corsOrigins []string, trustedProxies []netip.Prefix) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewRealIP(trustedProxies))
	r.Use(middleware.NewSlogLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(corsOrigins))
	r.Use(middleware.NewRateLimiter(s.rateLimiter, s.logger))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/portfolio", s.handlePortfolio)
		r.Get("/cards/{kind}", s.handleCards)
		r.Get("/charts/skills", s.handleSkillChart)
		r.Get("/charts/timeline", s.handleTimelineChart)
	})

	r.Post("/contact", s.handleContact)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(page.StaticFS()))))

	r.Get("/", s.handlePage)
	r.Get("/{view}", s.handlePage)

	return r
}

func (s *Server) renderPages() error {
	builder := page.NewBuilder(s.cards, s.charts)
	s.pages = make(map[page.View][]byte, len(page.Views()))

	for _, view := range page.Views() {
		pg, err := builder.Build(view, s.portfolio)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := s.renderer.Execute(&buf, pg); err != nil {
			return fmt.Errorf("failed to render %s view: %w", view, err)
		}
		s.pages[view] = buf.Bytes()
	}
	return nil
}

// Handler returns the root HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		defer s.rateLimiter.Stop()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// Close stops background work without serving; use it when Start was never called.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}
