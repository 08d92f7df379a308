package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jogolindo/jogolindo-api/internal/domain/social"
)

type CommentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

const selectCommentColumns = `
	c.id, c.user_id, c.post_id, c.content, c.created_at, c.updated_at,
	u.name AS author_name, u.profile_picture AS author_photo_url`

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]social.Comment, error) {
	query := `SELECT` + selectCommentColumns + `
		FROM post_comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at, c.id`

	var rows []commentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, postID); err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}

	out := make([]social.Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID string) (social.Comment, bool, error) {
	query := `SELECT` + selectCommentColumns + `
		FROM post_comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`

	var row commentTableModel
	if err := r.db.GetContext(ctx, &row, query, commentID); err != nil {
		if isNotFound(err) {
			return social.Comment{}, false, nil
		}
		return social.Comment{}, false, fmt.Errorf("get comment by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment social.Comment) error {
	query := `INSERT INTO post_comments (id, user_id, post_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.UserID, comment.PostID, comment.Content,
		comment.CreatedAt, comment.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM post_comments WHERE id = $1`, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	return nil
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM post_comments WHERE post_id = $1`
	if err := r.db.GetContext(ctx, &count, query, postID); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}

	return count, nil
}

func (r *CommentRepository) AddLike(ctx context.Context, like social.CommentLike) error {
	query := `INSERT INTO comment_likes (id, user_id, comment_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, comment_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query,
		like.ID, like.UserID, like.CommentID, like.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert comment like: %w", err)
	}

	return nil
}

func (r *CommentRepository) RemoveLike(ctx context.Context, userID, commentID string) error {
	query := `DELETE FROM comment_likes WHERE user_id = $1 AND comment_id = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, commentID); err != nil {
		return fmt.Errorf("delete comment like: %w", err)
	}

	return nil
}

func (r *CommentRepository) ListLikes(ctx context.Context, commentID string) ([]social.CommentLike, error) {
	query := `SELECT id, user_id, comment_id, created_at
		FROM comment_likes
		WHERE comment_id = $1
		ORDER BY created_at`

	var rows []commentLikeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, commentID); err != nil {
		return nil, fmt.Errorf("select comment likes: %w", err)
	}

	out := make([]social.CommentLike, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
