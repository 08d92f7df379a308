package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jogolindo/jogolindo-api/internal/domain/social"
)

type PostRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

const selectPostColumns = `
	p.id, p.user_id, p.title, p.description, p.video_url, p.thumbnail_url,
	p.duration, p.game_date, p.created_at, p.updated_at,
	u.name AS author_name, u.profile_picture AS author_photo_url, u.position AS author_position`

func (r *PostRepository) List(ctx context.Context) ([]social.Post, error) {
	query := `SELECT` + selectPostColumns + `
		FROM posts p
		LEFT JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC, p.id`

	var rows []postTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}

	out := make([]social.Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PostRepository) GetByID(ctx context.Context, postID string) (social.Post, bool, error) {
	query := `SELECT` + selectPostColumns + `
		FROM posts p
		LEFT JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`

	var row postTableModel
	if err := r.db.GetContext(ctx, &row, query, postID); err != nil {
		if isNotFound(err) {
			return social.Post{}, false, nil
		}
		return social.Post{}, false, fmt.Errorf("get post by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PostRepository) Create(ctx context.Context, post social.Post) error {
	query := `INSERT INTO posts (id, user_id, title, description, video_url, thumbnail_url, duration, game_date, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8, $9, $10)`

	if _, err := r.db.ExecContext(ctx, query,
		post.ID, post.UserID, post.Title, post.Description, post.VideoURL,
		post.ThumbnailURL, post.Duration, post.GameDate, post.CreatedAt, post.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	return nil
}

func (r *PostRepository) Delete(ctx context.Context, postID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	return nil
}
