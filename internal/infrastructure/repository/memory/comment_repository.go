package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jogolindo/jogolindo-api/internal/domain/social"
)

type commentLikeKey struct {
	userID    string
	commentID string
}

type CommentRepository struct {
	mu       sync.RWMutex
	comments map[string]social.Comment
	likes    map[commentLikeKey]social.CommentLike
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[string]social.Comment),
		likes:    make(map[commentLikeKey]social.CommentLike),
	}
}

// ListByPost returns comments oldest first.
func (r *CommentRepository) ListByPost(_ context.Context, postID string) ([]social.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]social.Comment, 0)
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b social.Comment) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return out, nil
}

func (r *CommentRepository) GetByID(_ context.Context, commentID string) (social.Comment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.comments[commentID]

	return c, ok, nil
}

func (r *CommentRepository) Create(_ context.Context, comment social.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.comments[comment.ID] = comment

	return nil
}

func (r *CommentRepository) Delete(_ context.Context, commentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.comments, commentID)
	for k := range r.likes {
		if k.commentID == commentID {
			delete(r.likes, k)
		}
	}

	return nil
}

func (r *CommentRepository) CountByPost(_ context.Context, postID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, c := range r.comments {
		if c.PostID == postID {
			count++
		}
	}

	return count, nil
}

func (r *CommentRepository) AddLike(_ context.Context, like social.CommentLike) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := commentLikeKey{userID: like.UserID, commentID: like.CommentID}
	if _, ok := r.likes[key]; !ok {
		r.likes[key] = like
	}

	return nil
}

func (r *CommentRepository) RemoveLike(_ context.Context, userID, commentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.likes, commentLikeKey{userID: userID, commentID: commentID})

	return nil
}

func (r *CommentRepository) ListLikes(_ context.Context, commentID string) ([]social.CommentLike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]social.CommentLike, 0)
	for k, l := range r.likes {
		if k.commentID == commentID {
			out = append(out, l)
		}
	}

	return out, nil
}
