package social

import "context"

// PostRepository describes post persistence needs from use cases.
type PostRepository interface {
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, postID string) (Post, bool, error)
	Create(ctx context.Context, post Post) error
	Delete(ctx context.Context, postID string) error
}

// LikeRepository stores star-rated post likes keyed by (user, post).
type LikeRepository interface {
	ListByPost(ctx context.Context, postID string) ([]PostLike, error)
	GetByUserAndPost(ctx context.Context, userID, postID string) (PostLike, bool, error)
	Upsert(ctx context.Context, like PostLike) error
	Delete(ctx context.Context, userID, postID string) error
}

// CommentRepository stores comments and their unrated likes.
type CommentRepository interface {
	ListByPost(ctx context.Context, postID string) ([]Comment, error)
	GetByID(ctx context.Context, commentID string) (Comment, bool, error)
	Create(ctx context.Context, comment Comment) error
	Delete(ctx context.Context, commentID string) error
	CountByPost(ctx context.Context, postID string) (int, error)

	AddLike(ctx context.Context, like CommentLike) error
	RemoveLike(ctx context.Context, userID, commentID string) error
	ListLikes(ctx context.Context, commentID string) ([]CommentLike, error)
}

// RatingRepository stores peer evaluations keyed by (rater, rated, post).
type RatingRepository interface {
	ListByRatedUser(ctx context.Context, ratedUserID string) ([]PlayerRating, error)
	Upsert(ctx context.Context, rating PlayerRating) error
}
