package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jogolindo/jogolindo-api/internal/domain/social"
)

type RatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) ListByRatedUser(ctx context.Context, ratedUserID string) ([]social.PlayerRating, error) {
	query := `SELECT
			pr.id, pr.rater_user_id, pr.rated_user_id, pr.post_id,
			pr.passing, pr.shooting, pr.dribbling, pr.speed, pr.strength, pr.jumping,
			pr.created_at, pr.updated_at,
			u.name AS rater_name, u.profile_picture AS rater_photo_url
		FROM player_ratings pr
		LEFT JOIN users u ON u.id = pr.rater_user_id
		WHERE pr.rated_user_id = $1
		ORDER BY pr.created_at DESC`

	var rows []playerRatingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, ratedUserID); err != nil {
		return nil, fmt.Errorf("select player ratings: %w", err)
	}

	out := make([]social.PlayerRating, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *RatingRepository) Upsert(ctx context.Context, rating social.PlayerRating) error {
	query := `INSERT INTO player_ratings
			(id, rater_user_id, rated_user_id, post_id, passing, shooting, dribbling, speed, strength, jumping, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (rater_user_id, rated_user_id, post_id) DO UPDATE SET
			passing = EXCLUDED.passing,
			shooting = EXCLUDED.shooting,
			dribbling = EXCLUDED.dribbling,
			speed = EXCLUDED.speed,
			strength = EXCLUDED.strength,
			jumping = EXCLUDED.jumping,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query,
		rating.ID, rating.RaterUserID, rating.RatedUserID, rating.PostID,
		rating.Skills.Passing, rating.Skills.Shooting, rating.Skills.Dribbling,
		rating.Skills.Speed, rating.Skills.Strength, rating.Skills.Jumping,
		rating.CreatedAt, rating.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert player rating: %w", err)
	}

	return nil
}
