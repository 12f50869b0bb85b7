package bootstrap

import (
	"github.com/vku007/objectapi/internal/config"
	"github.com/vku007/objectapi/internal/controllers"
	"github.com/vku007/objectapi/internal/httpapi"
	"github.com/vku007/objectapi/internal/httpapi/middleware"
)

// Base paths each controller is mounted at.
const (
	FilesPath = "/apiv2/internal/files"
	UsersPath = "/apiv2/internal/users"
	GamesPath = "/apiv2/internal/games"
)

// NewRouter assembles the route table with the global middleware chain
// (CORS, content-type gate, authentication) and the admin role guard on
// every internal route. The authentication middleware is injected so
// tests can substitute a stub for the JWKS-backed verifier.
func NewRouter(
	cfg config.Config,
	authn httpapi.Middleware,
	docs *controllers.DocumentController,
	users *controllers.UserController,
	games *controllers.GameController,
	external *controllers.ExternalController,
) *httpapi.Router {
	router := httpapi.New(
		middleware.CORS(cfg.CorsOrigin),
		middleware.ContentType(cfg.MaxBodyBytes),
		authn,
	)

	admin := middleware.RequireRole("admin")

	router.Handle("GET", "/apiv2/external/me", external.Me)

	router.Handle("GET", FilesPath, docs.List, admin)
	router.Handle("POST", FilesPath, docs.Create, admin)
	router.Handle("GET", FilesPath+"/:id", docs.Get, admin)
	router.Handle("GET", FilesPath+"/:id/meta", docs.Meta, admin)
	router.Handle("PUT", FilesPath+"/:id", docs.Replace, admin)
	router.Handle("PATCH", FilesPath+"/:id", docs.Merge, admin)
	router.Handle("DELETE", FilesPath+"/:id", docs.Delete, admin)

	router.Handle("GET", UsersPath, users.List, admin)
	router.Handle("POST", UsersPath, users.Create, admin)
	router.Handle("GET", UsersPath+"/:id", users.Get, admin)
	router.Handle("GET", UsersPath+"/:id/meta", users.Meta, admin)
	router.Handle("PUT", UsersPath+"/:id", users.Replace, admin)
	router.Handle("PATCH", UsersPath+"/:id", users.Merge, admin)
	router.Handle("DELETE", UsersPath+"/:id", users.Delete, admin)

	router.Handle("GET", GamesPath, games.List, admin)
	router.Handle("POST", GamesPath, games.Create, admin)
	router.Handle("GET", GamesPath+"/:id", games.Get, admin)
	router.Handle("GET", GamesPath+"/:id/meta", games.Meta, admin)
	router.Handle("PUT", GamesPath+"/:id", games.Replace, admin)
	router.Handle("PATCH", GamesPath+"/:id", games.Merge, admin)
	router.Handle("DELETE", GamesPath+"/:id", games.Delete, admin)

	router.Handle("POST", GamesPath+"/:id/rounds", games.AddRound, admin)
	router.Handle("POST", GamesPath+"/:gameId/rounds/:roundId/moves", games.AddMove, admin)
	router.Handle("PATCH", GamesPath+"/:gameId/rounds/:roundId/finish", games.FinishRound, admin)
	router.Handle("PATCH", GamesPath+"/:id/finish", games.FinishGame, admin)

	return router
}
