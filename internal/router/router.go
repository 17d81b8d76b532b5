package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"quicktube-backend/internal/handlers"
	"quicktube-backend/internal/middleware"
)

func New(
	healthHandler *handlers.HealthHandler,
	videoHandler *handlers.VideoHandler,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigins))

	// Processing rate limiter (30 req/min per IP)
	processLimiter := middleware.NewRateLimiter(30, time.Minute)

	r.Get("/health", healthHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(processLimiter.Middleware)
			r.Post("/process-video", videoHandler.ProcessVideo)
		})
	})

	return r
}
