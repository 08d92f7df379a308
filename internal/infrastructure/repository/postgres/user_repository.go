package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jogolindo/jogolindo-api/internal/domain/user"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Upsert(ctx context.Context, p user.Principal) error {
	query := `INSERT INTO users (id, name, email, role, profile_picture, position, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NULLIF($6, ''), now(), now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			profile_picture = EXCLUDED.profile_picture,
			position = EXCLUDED.position,
			updated_at = now()`

	if _, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Email, string(p.Role), p.PhotoURL, p.Position,
	); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.Principal, bool, error) {
	query := `SELECT id, name, COALESCE(email, '') AS email, role,
			COALESCE(profile_picture, '') AS profile_picture,
			COALESCE(position, '') AS position
		FROM users
		WHERE id = $1`

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if isNotFound(err) {
			return user.Principal{}, false, nil
		}
		return user.Principal{}, false, fmt.Errorf("get user by id: %w", err)
	}

	return row.toDomain(), true, nil
}
