package http

import (
	"net/http"

	"github.com/MKhiriev/gatherly/internal/router"
	"github.com/MKhiriev/gatherly/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the HTTP handler tree: chi middleware in front of the ordered
// API router, plus the metrics endpoint. The metrics handler compresses its
// own output, so gzip is applied to the API routes only.
func (h *Handler) Init() *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	if h.requestTimeout > 0 {
		mux.Use(middleware.Timeout(h.requestTimeout))
	}
	mux.Use(h.withTraceID, h.withLogging)

	mux.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	mux.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Handle("/*", h.apiRouter())
	})

	return mux
}

// apiRouter registers the API routes. Routes are matched in the order they
// are registered here, so literal routes that overlap a parameterised one
// must come first (see /api/amenities/categories).
func (h *Handler) apiRouter() *router.Router {
	rt := router.New(
		router.WithBasePath(h.basePath),
		router.WithNotFound(http.HandlerFunc(h.notFound)),
	)

	// auth
	h.handle(rt, http.MethodPost, "/api/auth/register", h.register)
	h.handle(rt, http.MethodPost, "/api/auth/login", h.login)
	h.handle(rt, http.MethodGet, "/api/auth/me", h.authenticated(h.me))
	h.handle(rt, http.MethodPut, "/api/auth/profile", h.authenticated(h.updateProfile))
	h.handle(rt, http.MethodPost, "/api/auth/change-password", h.authenticated(h.changePassword))

	// venues
	h.handle(rt, http.MethodGet, "/api/venues", h.searchVenues)
	h.handle(rt, http.MethodGet, "/api/venues/:id", h.getVenue)
	h.handle(rt, http.MethodGet, "/api/venues/my/list", h.authorized(h.myVenues, models.RoleVenueManager))
	h.handle(rt, http.MethodPost, "/api/venues", h.authorized(h.createVenue, models.RoleVenueManager, models.RoleAdmin))
	h.handle(rt, http.MethodPut, "/api/venues/:id", h.authorized(h.updateVenue, models.RoleVenueManager, models.RoleAdmin))
	h.handle(rt, http.MethodDelete, "/api/venues/:id", h.authorized(h.deleteVenue, models.RoleVenueManager, models.RoleAdmin))

	// amenities
	h.handle(rt, http.MethodGet, "/api/amenities", h.listAmenities)
	h.handle(rt, http.MethodGet, "/api/amenities/categories", h.amenityCategories)
	h.handle(rt, http.MethodGet, "/api/amenities/:id", h.getAmenity)
	h.handle(rt, http.MethodPost, "/api/amenities", h.authorized(h.createAmenity, models.RoleAdmin))
	h.handle(rt, http.MethodPut, "/api/amenities/:id", h.authorized(h.updateAmenity, models.RoleAdmin))
	h.handle(rt, http.MethodDelete, "/api/amenities/:id", h.authorized(h.deleteAmenity, models.RoleAdmin))

	h.handle(rt, http.MethodGet, "/api/health", h.health)

	return rt
}
