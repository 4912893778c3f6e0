package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vango-ui/internal/config"
	"github.com/vango-dev/vango-ui/internal/handlers"
	"github.com/vango-dev/vango-ui/internal/logger"
	"github.com/vango-dev/vango-ui/internal/metrics"
	"github.com/vango-dev/vango-ui/internal/middleware"
	"github.com/vango-dev/vango-ui/pkg/tw"
)

// Deps are the shared services the router wires into middleware.
type Deps struct {
	Logger   *logger.Logger
	Resolver *tw.Resolver
	Metrics  *metrics.Metrics     // optional; /metrics is mounted when set
	Tracer   trace.TracerProvider // optional; defaults to the global provider
}

// Router wires the story server routes and global middleware.
func Router(h *handlers.Handlers, deps Deps) http.Handler {
	if deps.Resolver == nil {
		deps.Resolver = tw.Default
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Tracing(deps.Tracer))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Resolver(deps.Resolver))

	// Health check
	r.Get("/health", h.Health)
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	// Stories
	r.Get("/", h.Index)
	r.Get("/stories/{group}/{name}", h.Story)

	// API
	r.Route("/api", func(r chi.Router) {
		r.Get("/merge", h.Merge)
		r.Get("/variants", h.VariantTables)
		r.Get("/variants/{component}", h.VariantTable)
	})

	return r
}

// New builds the HTTP server for cfg.
func New(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
