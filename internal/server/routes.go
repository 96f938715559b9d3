package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/slidesmith/slidesmith/internal/handler"
	"github.com/slidesmith/slidesmith/internal/middleware"
)

const mcpBasePath = "/mcp"

func (s *Server) setupRoutes() http.Handler {
	cfg := s.cfg

	log.Info().
		Bool("auth_enabled", cfg.EnableAuth && len(cfg.APIKeys) > 0).
		Bool("audit_logging", cfg.EnableAuditLogging).
		Int("allowed_dirs", len(cfg.AllowedDirs)).
		Str("mcp_path", mcpBasePath).
		Msg("service configuration")

	if cfg.EnableAuth && len(cfg.APIKeys) == 0 {
		log.Warn().Msg("WARNING: auth enabled but no API keys configured - all API requests will be rejected")
	}
	if len(cfg.AllowedDirs) == 0 {
		log.Warn().Msg("WARNING: no allowed directories configured - file access is unrestricted")
	}

	healthH := handler.NewHealthHandler(s.deck)
	presH := handler.NewPresentationHandler(s.deck)

	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins)))
	r.Use(chiMiddleware.RealIP)

	// Public routes
	r.Get("/health", healthH.Health)
	r.Get("/", healthH.Health)

	apiMiddleware := []func(http.Handler) http.Handler{
		middleware.RateLimit(cfg.RateLimitPerMinute),
	}
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		apiMiddleware = append(apiMiddleware, middleware.Auth(cfg.APIKeys, cfg.APIKeyHeader))
	}

	r.Group(func(r chi.Router) {
		for _, m := range apiMiddleware {
			r.Use(m)
		}

		// MCP over SSE
		r.Mount(mcpBasePath, s.bridge.SSEHandler(mcpBasePath))

		// Read-only inspection API
		r.Route(cfg.APIPrefix, func(r chi.Router) {
			r.Get("/presentation", presH.Info)
			r.Get("/presentation/slides", presH.Slides)
			r.Get("/presentation/slides/{slide_index}/shapes", presH.SlideShapes)
			r.Get("/presentation/slides/{slide_index}/text", presH.SlideText)
		})
	})

	return r
}
