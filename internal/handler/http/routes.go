package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/coffee-shop/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(withTimeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/drinks", h.listDrinks)
		r.Get("/environment", h.getEnvironment)
		r.Get("/version", h.getServerVersion)
	})

	// routes guarded by a permission of the caller's access token
	router.Group(func(r chi.Router) {
		r.With(h.requirePermission(models.PermissionGetDrinksDetail)).Get("/drinks-detail", h.listDrinksDetail)
		r.With(h.requirePermission(models.PermissionPostDrinks)).Post("/drinks", h.createDrink)
		r.With(h.requirePermission(models.PermissionPatchDrinks)).Patch("/drinks/{id:[0-9]+}", h.updateDrink)
		r.With(h.requirePermission(models.PermissionDeleteDrinks)).Delete("/drinks/{id:[0-9]+}", h.deleteDrink)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// corsOptions admits the front end at the callback origin in production and
// any origin during development.
func (h *Handler) corsOptions() cors.Options {
	origins := []string{"*"}
	if h.env.Production() {
		origins = []string{callbackOrigin(h.env.Auth0().CallbackURL())}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}

// callbackOrigin reduces a callback URL to its scheme://host origin.
func callbackOrigin(callbackURL string) string {
	u, err := url.Parse(callbackURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return callbackURL
	}
	return u.Scheme + "://" + u.Host
}
