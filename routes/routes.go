package routes

import (
	_ "github.com/birdiehq/scorekeeper/docs" // swagger spec registration
	"github.com/birdiehq/scorekeeper/handlers"
	"github.com/birdiehq/scorekeeper/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Player      *handlers.PlayerHandler
	Hole        *handlers.HoleHandler
	Round       *handlers.RoundHandler
	Calcutta    *handlers.CalcuttaHandler
	Leaderboard *handlers.LeaderboardHandler
	WebSocket   *handlers.WebSocketHandler
}

func SetupRoutes(router *chi.Mux, h Handlers, jwtSecret string, allowedOrigins []string) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Post("/auth/login", h.Auth.Login)

	router.Route("/players", func(r chi.Router) {
		r.Get("/", h.Player.GetAllPlayers)
		r.Get("/{playerID}", h.Player.GetPlayerByID)
		r.Get("/{playerID}/rounds", h.Round.ListPlayerRounds)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", h.Player.CreatePlayer)
			r.Put("/{playerID}", h.Player.UpdatePlayer)
			r.Delete("/{playerID}", h.Player.DeletePlayer)
			r.Post("/{playerID}/photo", h.Player.UploadPlayerPhotoHandler)
		})
	})

	router.Route("/holes", func(r chi.Router) {
		r.Get("/", h.Hole.GetAllHoles)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Put("/{holeNumber}", h.Hole.UpdateHole)
		})
	})

	router.Route("/rounds", func(r chi.Router) {
		r.Get("/", h.Round.ListRounds)
		r.Get("/{roundID}", h.Round.GetRoundByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", h.Round.CreateRound)
		})
	})

	router.Route("/calcutta", func(r chi.Router) {
		r.Get("/teams", h.Calcutta.GetAllTeams)
		r.Get("/scorecards", h.Calcutta.GetScorecards)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/teams", h.Calcutta.CreateTeam)
			r.Delete("/teams/{teamID}", h.Calcutta.DeleteTeam)
		})
	})

	router.Get("/leaderboard", h.Leaderboard.GetLeaderboard)

	router.Get("/ws/leaderboard/{division}", h.WebSocket.ServeLeaderboard)
	router.Get("/ws/calcutta", h.WebSocket.ServeCalcutta)

	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/auth/register", h.Auth.Register)
	})
}
