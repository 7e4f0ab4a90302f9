package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-posts-client/internal/app"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/render"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/models"
)

// Form field names of the page.
const (
	formBaseURL   = "apiBaseUrl"
	formSort      = "sort"
	formDirection = "direction"
	formTerm      = "term"
	formTitle     = "title"
	formContent   = "content"
)

func (h *WebHandler) controller() service.PostsController {
	return h.services.PostsController
}

func (h *WebHandler) index(w http.ResponseWriter, r *http.Request) {
	state := h.controller().Snapshot()

	// nothing is listed until the first response arrives
	var view render.View
	if state.Loaded {
		view = render.Render(state.Posts, state.View)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, render.NewPage(state.Config, view, state.View, state.Alert)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*WebHandler.index").Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *WebHandler) loadPosts(w http.ResponseWriter, r *http.Request) {
	cfg := models.ClientConfig{APIBaseURL: strings.TrimSpace(r.PostFormValue(formBaseURL))}
	sort := models.SortOptions{
		Field:     models.SortField(r.PostFormValue(formSort)),
		Direction: models.SortDirection(r.PostFormValue(formDirection)),
	}

	h.controller().List(r.Context(), cfg, sort)
	redirectToPage(w, r)
}

func (h *WebHandler) searchPosts(w http.ResponseWriter, r *http.Request) {
	h.controller().Search(r.Context(), h.config(), r.PostFormValue(formTerm))
	redirectToPage(w, r)
}

func (h *WebHandler) createPost(w http.ResponseWriter, r *http.Request) {
	h.controller().Create(r.Context(), h.config(), r.PostFormValue(formTitle), r.PostFormValue(formContent))
	redirectToPage(w, r)
}

func (h *WebHandler) editPost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	h.controller().EnterEditMode(id, r.PostFormValue(formTitle), r.PostFormValue(formContent))
	redirectToPage(w, r)
}

func (h *WebHandler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	h.controller().Update(r.Context(), h.config(), id, r.PostFormValue(formTitle), r.PostFormValue(formContent))
	redirectToPage(w, r)
}

func (h *WebHandler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	h.controller().Delete(r.Context(), h.config(), id)
	redirectToPage(w, r)
}

func (h *WebHandler) cancelEdit(w http.ResponseWriter, r *http.Request) {
	h.controller().CancelEdit(r.Context(), h.config())
	redirectToPage(w, r)
}

func (h *WebHandler) dismissAlert(w http.ResponseWriter, r *http.Request) {
	h.controller().DismissAlert()
	redirectToPage(w, r)
}

// config is the base URL last submitted through the config form.
func (h *WebHandler) config() models.ClientConfig {
	return h.controller().Snapshot().Config
}

func (h *WebHandler) postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := postID(r)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*WebHandler.postID").Msg("bad post id")
		http.Error(w, app.MsgInvalidPostID, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func redirectToPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
