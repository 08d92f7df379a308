package memory

import (
	"context"
	"sync"

	"github.com/jogolindo/jogolindo-api/internal/domain/social"
)

type likeKey struct {
	userID string
	postID string
}

type LikeRepository struct {
	mu    sync.RWMutex
	likes map[likeKey]social.PostLike
}

func NewLikeRepository() *LikeRepository {
	return &LikeRepository{likes: make(map[likeKey]social.PostLike)}
}

func (r *LikeRepository) ListByPost(_ context.Context, postID string) ([]social.PostLike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]social.PostLike, 0)
	for k, l := range r.likes {
		if k.postID == postID {
			out = append(out, l)
		}
	}

	return out, nil
}

func (r *LikeRepository) GetByUserAndPost(_ context.Context, userID, postID string) (social.PostLike, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.likes[likeKey{userID: userID, postID: postID}]

	return l, ok, nil
}

func (r *LikeRepository) Upsert(_ context.Context, like social.PostLike) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := likeKey{userID: like.UserID, postID: like.PostID}
	if existing, ok := r.likes[key]; ok {
		like.ID = existing.ID
		like.CreatedAt = existing.CreatedAt
	}
	r.likes[key] = like

	return nil
}

func (r *LikeRepository) Delete(_ context.Context, userID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.likes, likeKey{userID: userID, postID: postID})

	return nil
}
