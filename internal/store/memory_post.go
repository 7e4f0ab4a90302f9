package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-posts-client/models"
)

// SeedPosts are the posts a fresh in-memory repository starts with.
var SeedPosts = []models.Post{
	{ID: 1, Title: "First post", Content: "This is the first post."},
	{ID: 2, Title: "Second post", Content: "This is the second post."},
}

type memoryPostRepository struct {
	mu     sync.RWMutex
	posts  []models.Post
	nextID int64
}

// NewMemoryPostRepository returns a process-local repository holding a copy of
// seed. Ids continue after the largest seeded id.
func NewMemoryPostRepository(seed ...models.Post) PostRepository {
	posts := make([]models.Post, len(seed))
	copy(posts, seed)

	var maxID int64
	for _, p := range posts {
		maxID = max(maxID, p.ID)
	}

	return &memoryPostRepository{posts: posts, nextID: maxID + 1}
}

func (m *memoryPostRepository) List(_ context.Context, opts models.SortOptions) ([]models.Post, error) {
	m.mu.RLock()
	posts := m.snapshot()
	m.mu.RUnlock()

	if !opts.IsSet() {
		return posts, nil
	}

	less := postLess(opts.Field)
	desc := opts.EffectiveDirection() == models.SortDesc
	sort.SliceStable(posts, func(i, j int) bool {
		if desc {
			return less(posts[j], posts[i])
		}
		return less(posts[i], posts[j])
	})

	return posts, nil
}

func (m *memoryPostRepository) Search(_ context.Context, title, content string) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if title == "" && content == "" {
		return m.snapshot(), nil
	}

	title, content = strings.ToLower(title), strings.ToLower(content)

	found := make([]models.Post, 0)
	for _, p := range m.posts {
		if (title != "" && strings.Contains(strings.ToLower(p.Title), title)) ||
			(content != "" && strings.Contains(strings.ToLower(p.Content), content)) {
			found = append(found, p)
		}
	}

	return found, nil
}

func (m *memoryPostRepository) Create(_ context.Context, input models.PostInput) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post := input.ToPost(m.nextID)
	m.nextID++
	m.posts = append(m.posts, post)

	return post, nil
}

func (m *memoryPostRepository) Update(_ context.Context, id int64, input models.PostInput) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return models.Post{}, ErrPostNotFound
	}

	m.posts[i] = input.ToPost(id)
	return m.posts[i], nil
}

func (m *memoryPostRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrPostNotFound
	}

	m.posts = append(m.posts[:i], m.posts[i+1:]...)
	return nil
}

func (m *memoryPostRepository) indexOf(id int64) int {
	for i, p := range m.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (m *memoryPostRepository) snapshot() []models.Post {
	posts := make([]models.Post, len(m.posts))
	copy(posts, m.posts)
	return posts
}

func postLess(field models.SortField) func(a, b models.Post) bool {
	switch field {
	case models.SortByTitle:
		return func(a, b models.Post) bool { return a.Title < b.Title }
	case models.SortByContent:
		return func(a, b models.Post) bool { return a.Content < b.Content }
	default:
		return func(a, b models.Post) bool { return a.ID < b.ID }
	}
}
