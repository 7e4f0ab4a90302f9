package service

import (
	"github.com/MKhiriev/go-posts-client/internal/adapter"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/store"
	"github.com/MKhiriev/go-posts-client/internal/validators"
)

// Services is the business layer of the development posts API.
type Services struct {
	PostService PostService
}

func NewServices(storage *store.PostStorage, logger *logger.Logger) *Services {
	postService := NewPostService(storage.PostRepository, logger)

	return &Services{
		PostService: NewPostValidationService(validators.NewPostValidator()).Wrap(postService),
	}
}

// ClientServices is the business layer shared by the client front ends.
type ClientServices struct {
	PostsController PostsController
}

func NewClientServices(storages *store.ClientStorages, postsAdapter adapter.PostsAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		PostsController: NewPostsController(
			postsAdapter,
			storages.ClientConfigRepository,
			validators.NewPostValidator(),
			logger,
		),
	}
}
