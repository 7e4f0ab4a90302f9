// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter mirrors the posts API layout without services: a sub-router
// mounted under /api with a parameterised route.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Route("/api", func(r chi.Router) {
		r.Get("/posts", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("posts"))
		})
		r.Post("/posts", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})
		r.Delete("/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "GET /api/posts passes through", method: http.MethodGet, path: "/api/posts", expectedStatus: http.StatusOK},
		{name: "POST /api/posts passes through", method: http.MethodPost, path: "/api/posts", expectedStatus: http.StatusCreated},
		{name: "DELETE /api/posts/1 passes through", method: http.MethodDelete, path: "/api/posts/1", expectedStatus: http.StatusOK},
		{name: "GET / passes through", method: http.MethodGet, path: "/", expectedStatus: http.StatusOK},

		{name: "PUT /api/posts is hidden", method: http.MethodPut, path: "/api/posts", expectedStatus: http.StatusNotFound},
		{name: "GET /api/posts/1 is hidden", method: http.MethodGet, path: "/api/posts/1", expectedStatus: http.StatusNotFound},
		{name: "PATCH /api/posts/1 is hidden", method: http.MethodPatch, path: "/api/posts/1", expectedStatus: http.StatusNotFound},
		{name: "POST / is hidden", method: http.MethodPost, path: "/", expectedStatus: http.StatusNotFound},

		{name: "unknown route", method: http.MethodGet, path: "/api/nonexistent", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "posts", rr.Body.String())
}

func TestCheckHTTPMethod_ForwardsServableRequest(t *testing.T) {
	router := buildRouter()
	handler := CheckHTTPMethod(router)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "posts", rr.Body.String())
}
