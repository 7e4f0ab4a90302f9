package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-posts-client/internal/config"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/utils"
	"github.com/MKhiriev/go-posts-client/models"
	"github.com/go-resty/resty/v2"
)

type httpPostsAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPostsAdapter constructs the resty implementation of [PostsAdapter].
// The request timeout comes from adapterCfg; zero means no timeout.
func NewHTTPPostsAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) PostsAdapter {
	return &httpPostsAdapter{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout),
		logger: log.WithComponent("posts-adapter"),
	}
}

// normalizeBaseURL turns the user supplied base URL into an absolute URL
// without a trailing slash. A missing scheme defaults to http.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidBaseURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidBaseURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: address must include host", ErrInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpPostsAdapter) newRequest(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// do executes req against baseURL+path and classifies the outcome. A nil
// response means the request never reached the server.
func (h *httpPostsAdapter) do(req *resty.Request, method, baseURL, path string) (*resty.Response, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	resp, err := req.Execute(method, base+path)
	if err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("url", base+path).Msg("request failed")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("request completed")

	return resp, nil
}

func decodeBody(resp *resty.Response, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}

// List implements [PostsAdapter].
func (h *httpPostsAdapter) List(ctx context.Context, baseURL string, sort models.SortOptions) ([]models.Post, error) {
	req := h.newRequest(ctx)
	if sort.IsSet() {
		req.SetQueryParam("sort", string(sort.Field)).
			SetQueryParam("direction", string(sort.EffectiveDirection()))
	}

	resp, err := h.do(req, http.MethodGet, baseURL, "/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0)
	if err = decodeBody(resp, &posts); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

// Search implements [PostsAdapter]. The term is sent unchanged in both the
// title and content parameters.
func (h *httpPostsAdapter) Search(ctx context.Context, baseURL string, term string) ([]models.Post, error) {
	req := h.newRequest(ctx).
		SetQueryParam("title", term).
		SetQueryParam("content", term)

	resp, err := h.do(req, http.MethodGet, baseURL, "/posts/search")
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0)
	if err = decodeBody(resp, &posts); err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}

	return posts, nil
}

// Create implements [PostsAdapter].
func (h *httpPostsAdapter) Create(ctx context.Context, baseURL string, input models.PostInput) (models.Post, error) {
	req := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input)

	resp, err := h.do(req, http.MethodPost, baseURL, "/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var created models.Post
	if err = decodeBody(resp, &created); err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}

	return created, nil
}

// Update implements [PostsAdapter].
func (h *httpPostsAdapter) Update(ctx context.Context, baseURL string, id int64, input models.PostInput) (models.Post, error) {
	req := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input)

	resp, err := h.do(req, http.MethodPut, baseURL, postPath(id))
	if err != nil {
		return models.Post{}, fmt.Errorf("update post %d: %w", id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var updated models.Post
	if err = decodeBody(resp, &updated); err != nil {
		return models.Post{}, fmt.Errorf("update post %d: %w", id, err)
	}

	return updated, nil
}

// Delete implements [PostsAdapter].
func (h *httpPostsAdapter) Delete(ctx context.Context, baseURL string, id int64) error {
	resp, err := h.do(h.newRequest(ctx), http.MethodDelete, baseURL, postPath(id))
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}

	// 204 and friends are not success here
	if resp.StatusCode() != http.StatusOK {
		return newAPIError(resp)
	}

	return nil
}

func postPath(id int64) string {
	return "/posts/" + strconv.FormatInt(id, 10)
}

// IsTransportError reports whether err means the server was never reached
// (network failure or an unusable base URL).
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrInvalidBaseURL)
}
