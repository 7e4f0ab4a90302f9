package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-posts-client/internal/app"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/utils"
	"github.com/MKhiriev/go-posts-client/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sort := models.SortOptions{
		Field:     models.SortField(query.Get("sort")),
		Direction: models.SortDirection(query.Get("direction")),
	}

	posts, err := h.services.PostService.List(r.Context(), sort)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listPosts")
		return
	}

	writePosts(w, posts)
}

func (h *Handler) searchPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	posts, err := h.services.PostService.Search(r.Context(), query.Get("title"), query.Get("content"))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.searchPosts")
		return
	}

	writePosts(w, posts)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	input, err := decodePostInput(r)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createPost")
		return
	}

	post, err := h.services.PostService.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createPost")
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.updatePost")
		return
	}

	input, err := decodePostInput(r)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.updatePost")
		return
	}

	post, err := h.services.PostService.Update(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.updatePost")
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.deletePost")
		return
	}

	if err = h.services.PostService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "*Handler.deletePost")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf(app.MsgPostDeleted, id),
	}, http.StatusOK)
}

// writePosts always encodes a JSON array, never null.
func writePosts(w http.ResponseWriter, posts []models.Post) {
	if posts == nil {
		posts = []models.Post{}
	}
	utils.WriteJSON(w, posts, http.StatusOK)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteError(w, messageFromError(err, status), status)
}

func decodePostInput(r *http.Request) (models.PostInput, error) {
	var input models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return models.PostInput{}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return input, nil
}

func postID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPostID, raw)
	}
	return id, nil
}
