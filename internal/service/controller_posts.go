package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-posts-client/internal/adapter"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/render"
	"github.com/MKhiriev/go-posts-client/internal/store"
	"github.com/MKhiriev/go-posts-client/internal/validators"
	"github.com/MKhiriev/go-posts-client/models"
)

type postsController struct {
	adapter   adapter.PostsAdapter
	configs   store.ClientConfigRepository
	validator validators.Validator

	mu    sync.Mutex
	state State

	logger *logger.Logger
}

func NewPostsController(
	postsAdapter adapter.PostsAdapter,
	configs store.ClientConfigRepository,
	validator validators.Validator,
	logger *logger.Logger,
) PostsController {
	return &postsController{
		adapter:   postsAdapter,
		configs:   configs,
		validator: validator,
		logger:    logger.WithComponent("posts-controller"),
	}
}

func (c *postsController) Initialize(ctx context.Context) (models.ClientConfig, bool) {
	cfg, err := c.configs.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrClientConfigNotFound) {
			c.logger.Err(err).Str("func", "postsController.Initialize").Msg("failed to load saved base url")
		}
		return models.ClientConfig{}, false
	}
	if cfg.IsEmpty() {
		return models.ClientConfig{}, false
	}

	c.mu.Lock()
	c.state.Config = cfg
	c.mu.Unlock()

	c.List(ctx, cfg, models.SortOptions{})
	return cfg, true
}

func (c *postsController) List(ctx context.Context, cfg models.ClientConfig, sort models.SortOptions) {
	c.useConfig(cfg)

	if err := c.configs.Save(ctx, cfg); err != nil {
		c.logger.Err(err).Str("func", "postsController.List").Msg("failed to save base url")
	}

	if err := c.validator.Validate(ctx, sort); err != nil {
		c.setAlert(AlertInvalidSortOption + err.Error())
		return
	}

	posts, err := c.adapter.List(ctx, cfg.APIBaseURL, sort)
	if err != nil {
		c.handleError(err, "postsController.List", "error fetching posts", AlertLoadFailed)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Posts = posts
	c.state.View = models.ViewState{Sort: sort, CreateDraft: c.state.View.CreateDraft}
	c.state.Loaded = true
}

func (c *postsController) Search(ctx context.Context, cfg models.ClientConfig, term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		c.List(ctx, cfg, models.SortOptions{})
		return
	}

	c.useConfig(cfg)

	posts, err := c.adapter.Search(ctx, cfg.APIBaseURL, term)
	if err != nil {
		c.handleError(err, "postsController.Search", "error searching posts", AlertSearchFailed)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Posts = posts
	c.state.View = models.ViewState{SearchTerm: term, CreateDraft: c.state.View.CreateDraft}
	c.state.Loaded = true
}

func (c *postsController) Create(ctx context.Context, cfg models.ClientConfig, title, content string) {
	c.useConfig(cfg)

	c.mu.Lock()
	c.state.View.CreateDraft = models.PostInput{Title: title, Content: content}
	c.mu.Unlock()

	input := models.PostInput{Title: title, Content: content}.Trimmed()
	if err := c.validator.Validate(ctx, input); err != nil {
		c.setAlert(AlertEmptyCreate)
		return
	}

	if _, err := c.adapter.Create(ctx, cfg.APIBaseURL, input); err != nil {
		c.handleError(err, "postsController.Create", "error adding post", AlertCreateFailed)
		return
	}

	c.mu.Lock()
	c.state.View.CreateDraft = models.PostInput{}
	c.mu.Unlock()

	c.List(ctx, cfg, models.SortOptions{})
}

func (c *postsController) Delete(ctx context.Context, cfg models.ClientConfig, id int64) {
	c.useConfig(cfg)

	if err := c.adapter.Delete(ctx, cfg.APIBaseURL, id); err != nil {
		log := c.logger.Err(err).Str("func", "postsController.Delete").Int64("id", id)
		if adapter.IsTransportError(err) {
			log.Msg("error deleting post")
			return
		}
		log.Msg("server refused to delete post")
		c.setAlert(AlertDeleteFailed)
		return
	}

	c.List(ctx, cfg, c.currentSort())
}

func (c *postsController) EnterEditMode(id int64, title, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.hasPost(id) {
		return
	}

	c.state.View.Editing = &models.EditDraft{ID: id, Title: title, Content: content}
}

func (c *postsController) CancelEdit(ctx context.Context, cfg models.ClientConfig) {
	c.List(ctx, cfg, c.currentSort())
}

func (c *postsController) Update(ctx context.Context, cfg models.ClientConfig, id int64, title, content string) {
	c.useConfig(cfg)

	c.mu.Lock()
	if c.state.View.IsEditing(id) {
		c.state.View.Editing.Title = title
		c.state.View.Editing.Content = content
	}
	c.mu.Unlock()

	input := models.PostInput{Title: title, Content: content}.Trimmed()
	if err := c.validator.Validate(ctx, input); err != nil {
		c.setAlert(AlertEmptyUpdate)
		return
	}

	if _, err := c.adapter.Update(ctx, cfg.APIBaseURL, id, input); err != nil {
		c.handleError(err, "postsController.Update", "error updating post", AlertUpdateFailed)
		return
	}

	c.List(ctx, cfg, c.currentSort())
}

func (c *postsController) DismissAlert() {
	c.setAlert("")
}

func (c *postsController) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.clone()
}

func (c *postsController) View() render.View {
	s := c.Snapshot()
	return render.Render(s.Posts, s.View)
}

// handleError logs err and, when the server reported it, raises
// alertPrefix followed by the server message.
func (c *postsController) handleError(err error, fn, msg, alertPrefix string) {
	c.logger.Err(err).Str("func", fn).Msg(msg)

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		c.setAlert(alertPrefix + apiErr.Error())
	}
}

func (c *postsController) useConfig(cfg models.ClientConfig) {
	c.mu.Lock()
	c.state.Config = cfg
	c.mu.Unlock()
}

func (c *postsController) setAlert(alert string) {
	c.mu.Lock()
	c.state.Alert = alert
	c.mu.Unlock()
}

func (c *postsController) currentSort() models.SortOptions {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.View.Sort
}
