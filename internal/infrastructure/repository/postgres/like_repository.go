package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jogolindo/jogolindo-api/internal/domain/social"
)

type LikeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) ListByPost(ctx context.Context, postID string) ([]social.PostLike, error) {
	query := `SELECT id, user_id, post_id, rating, created_at
		FROM post_likes
		WHERE post_id = $1
		ORDER BY created_at`

	var rows []postLikeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, postID); err != nil {
		return nil, fmt.Errorf("select post likes: %w", err)
	}

	out := make([]social.PostLike, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *LikeRepository) GetByUserAndPost(ctx context.Context, userID, postID string) (social.PostLike, bool, error) {
	query := `SELECT id, user_id, post_id, rating, created_at
		FROM post_likes
		WHERE user_id = $1 AND post_id = $2`

	var row postLikeTableModel
	if err := r.db.GetContext(ctx, &row, query, userID, postID); err != nil {
		if isNotFound(err) {
			return social.PostLike{}, false, nil
		}
		return social.PostLike{}, false, fmt.Errorf("get post like: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *LikeRepository) Upsert(ctx context.Context, like social.PostLike) error {
	query := `INSERT INTO post_likes (id, user_id, post_id, rating, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, post_id) DO UPDATE SET rating = EXCLUDED.rating`

	if _, err := r.db.ExecContext(ctx, query,
		like.ID, like.UserID, like.PostID, like.Rating, like.CreatedAt,
	); err != nil {
		return fmt.Errorf("upsert post like: %w", err)
	}

	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, userID, postID string) error {
	query := `DELETE FROM post_likes WHERE user_id = $1 AND post_id = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, postID); err != nil {
		return fmt.Errorf("delete post like: %w", err)
	}

	return nil
}
