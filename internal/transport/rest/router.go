package rest

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glyphdict/glyphdict-backend/internal/config"
	"github.com/glyphdict/glyphdict-backend/internal/transport/middleware"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Catalog *CatalogHandler
	Admin   *AdminHandler
	Health  *HealthHandler
	Logger  *slog.Logger
	CORS    config.CORSConfig
	Auth    middleware.Middleware
}

// NewRouter builds the HTTP route tree with the standard middleware stack.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.CORS(deps.CORS))
	r.Use(deps.Auth)
	r.Use(middleware.Logger(deps.Logger))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no route for %s", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path))
	})

	r.Get("/health", deps.Health.Health)
	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)

	r.Route("/api", func(api chi.Router) {
		api.Get("/collection", deps.Catalog.ListCollection)
		api.Get("/journal", deps.Catalog.ListJournal)
		api.Post("/propose", deps.Catalog.Propose)
		api.Get("/me", Me)

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/entries", deps.Admin.CreateEntry)
			admin.Put("/entries", deps.Admin.UpdateEntry)
			admin.Delete("/entries", deps.Admin.DeleteEntry)
			admin.Post("/apply", deps.Admin.Apply)
		})
	})

	return r
}
