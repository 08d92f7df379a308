package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jogolindo/jogolindo-api/internal/domain/social"
)

type ratingKey struct {
	raterUserID string
	ratedUserID string
	postID      string
}

type RatingRepository struct {
	mu      sync.RWMutex
	ratings map[ratingKey]social.PlayerRating
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{ratings: make(map[ratingKey]social.PlayerRating)}
}

// ListByRatedUser returns evaluations newest first.
func (r *RatingRepository) ListByRatedUser(_ context.Context, ratedUserID string) ([]social.PlayerRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]social.PlayerRating, 0)
	for k, rating := range r.ratings {
		if k.ratedUserID == ratedUserID {
			out = append(out, rating)
		}
	}
	slices.SortStableFunc(out, func(a, b social.PlayerRating) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out, nil
}

func (r *RatingRepository) Upsert(_ context.Context, rating social.PlayerRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ratingKey{
		raterUserID: rating.RaterUserID,
		ratedUserID: rating.RatedUserID,
		postID:      rating.PostID,
	}
	if existing, ok := r.ratings[key]; ok {
		rating.ID = existing.ID
		rating.CreatedAt = existing.CreatedAt
	}
	r.ratings[key] = rating

	return nil
}
