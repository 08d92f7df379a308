package user

import "context"

// Repository keeps the local profile row that social records reference.
// Verified callers are upserted here so their first write never targets a
// missing profile.
type Repository interface {
	Upsert(ctx context.Context, p Principal) error
	GetByID(ctx context.Context, userID string) (Principal, bool, error)
}
