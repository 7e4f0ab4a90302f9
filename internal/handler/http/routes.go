package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-posts-client/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the posts API router. Routes are mounted under the configured
// base path, "/api" by default.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	// browsers call the API directly from other origins
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}))
	router.Use(withTraceID(h.logger, h.traceIDs), withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	posts := func(r chi.Router) {
		r.Get("/posts", h.listPosts)
		r.Get("/posts/search", h.searchPosts)
		r.Post("/posts", h.createPost)
		r.Put("/posts/{id}", h.updatePost)
		r.Delete("/posts/{id}", h.deletePost)
	}

	if prefix := strings.TrimSuffix(h.cfg.BasePath, "/"); prefix != "" {
		router.Route(prefix, posts)
	} else {
		posts(router)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// Init builds the browser front end router. Every form posts to its own
// route and is answered with a redirect to the page.
func (h *WebHandler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(withTraceID(h.logger, h.traceIDs), withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.index)
	router.Post("/config", h.loadPosts)
	router.Post("/search", h.searchPosts)
	router.Post("/posts", h.createPost)
	router.Post("/posts/{id}/edit", h.editPost)
	router.Post("/posts/{id}/update", h.updatePost)
	router.Post("/posts/{id}/delete", h.deletePost)
	router.Post("/edit/cancel", h.cancelEdit)
	router.Post("/alert/dismiss", h.dismissAlert)
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(render.StaticFS())))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
