package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/store"
	"github.com/MKhiriev/go-posts-client/models"
)

type postService struct {
	repo store.PostRepository

	logger *logger.Logger
}

func NewPostService(repo store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		repo:   repo,
		logger: logger,
	}
}

func (s *postService) List(ctx context.Context, sort models.SortOptions) ([]models.Post, error) {
	posts, err := s.repo.List(ctx, sort)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

func (s *postService) Search(ctx context.Context, title, content string) ([]models.Post, error) {
	posts, err := s.repo.Search(ctx, title, content)
	if err != nil {
		return nil, fmt.Errorf("error searching posts: %w", err)
	}
	return posts, nil
}

func (s *postService) Create(ctx context.Context, input models.PostInput) (models.Post, error) {
	post, err := s.repo.Create(ctx, input.Trimmed())
	if err != nil {
		return models.Post{}, fmt.Errorf("error creating post: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", post.ID).Msg("post created")
	return post, nil
}

func (s *postService) Update(ctx context.Context, id int64, input models.PostInput) (models.Post, error) {
	post, err := s.repo.Update(ctx, id, input.Trimmed())
	if err != nil {
		return models.Post{}, fmt.Errorf("error updating post %d: %w", id, err)
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting post %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("post deleted")
	return nil
}
