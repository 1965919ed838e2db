package routes

import (
	"net/http"

	"github.com/cobrasfc/matchday/config"
	"github.com/cobrasfc/matchday/handlers"
	"github.com/cobrasfc/matchday/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	cfg *config.Config,
	tournamentHandler *handlers.TournamentHandler,
	teamHandler *handlers.TeamHandler,
	syncHandler *handlers.SyncHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.AdminTokenHeader},
		MaxAge:         300,
	}))

	requireAdmin := middleware.RequireAdmin(cfg.AdminToken, cfg.AdminTokenHash)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListMatchesHandler)

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Post("/{matchID}/score", tournamentHandler.SubmitScoreHandler)
		})
	})

	router.Get("/standings", tournamentHandler.StandingsHandler)

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.ListTeamsHandler)

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Put("/", teamHandler.UpdateTeamsHandler)
			r.Post("/{teamID}/crest", teamHandler.UploadCrestHandler)
		})
	})

	router.Get("/sync", syncHandler.GetHandler)
	router.With(requireAdmin).Post("/sync", syncHandler.PostHandler)

	router.With(requireAdmin).Post("/admin/reset", tournamentHandler.ResetHandler)

	router.Get("/ws", webSocketHandler.ServeWs)
}
