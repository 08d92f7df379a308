package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jogolindo/jogolindo-api/internal/domain/social"
)

type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]social.Post
}

func NewPostRepository(posts []social.Post) *PostRepository {
	index := make(map[string]social.Post, len(posts))
	for _, p := range posts {
		index[p.ID] = p
	}

	return &PostRepository{posts: index}
}

// List returns posts newest first.
func (r *PostRepository) List(_ context.Context) ([]social.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]social.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	slices.SortStableFunc(out, func(a, b social.Post) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return out, nil
}

func (r *PostRepository) GetByID(_ context.Context, postID string) (social.Post, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[postID]

	return p, ok, nil
}

func (r *PostRepository) Create(_ context.Context, post social.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts[post.ID] = post

	return nil
}

func (r *PostRepository) Delete(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.posts, postID)

	return nil
}
