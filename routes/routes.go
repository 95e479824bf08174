package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/middleware"
)

type Options struct {
	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// SetupRoutes mounts the API under /api/v1 and the Swagger UI under /swagger.
// Only writes are rate limited.
func SetupRoutes(
	router chi.Router,
	opts Options,
	playerHandler *handlers.PlayerHandler,
	matchHandler *handlers.MatchHandler,
	tournamentHandler *handlers.TournamentHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	writeLimit := middleware.RateLimit(opts.RateLimitRequests, opts.RateLimitWindow)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", tournamentHandler.Health)
		r.Get("/ws", webSocketHandler.ServeWs)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.ListPlayers)
			r.Get("/count", playerHandler.CountPlayers)
			r.With(writeLimit).Post("/", playerHandler.RegisterPlayer)
			r.With(writeLimit).Delete("/", playerHandler.DeletePlayers)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", matchHandler.ListMatches)
			r.With(writeLimit).Post("/", matchHandler.ReportMatch)
			r.With(writeLimit).Delete("/", matchHandler.DeleteMatches)
		})

		r.Get("/standings", tournamentHandler.GetStandings)
		r.Get("/pairings", tournamentHandler.GetPairings)
		r.With(writeLimit).Post("/exports", tournamentHandler.ExportSnapshot)
	})
}
