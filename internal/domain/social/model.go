package social

import (
	"fmt"
	"time"
)

// Author is the denormalized user block attached to feed items.
type Author struct {
	ID       string
	Name     string
	PhotoURL string
	Position string
}

// Post is one highlight video in the social feed. The aggregate counters
// (LikesCount, CommentsCount, AverageRating) are maintained optimistically
// on write and reconciled against the like rows by the feed job.
type Post struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Duration     int
	GameDate     string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Author *Author

	LikesCount    int
	CommentsCount int
	AverageRating float64
	ViewerRating  *int
}

// PostLike is a star-rated like; Rating is 1-5 and one row exists per
// (UserID, PostID) pair.
type PostLike struct {
	ID        string
	UserID    string
	PostID    string
	Rating    int
	CreatedAt time.Time
}

// Comment is one comment under a post.
type Comment struct {
	ID        string
	UserID    string
	PostID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *Author

	LikesCount  int
	ViewerLiked bool
}

// CommentLike is an unrated like on a comment, one per (UserID, CommentID).
type CommentLike struct {
	ID        string
	UserID    string
	CommentID string
	CreatedAt time.Time
}

// SkillRatings carries the six 1-5 technical skill marks of one evaluation.
type SkillRatings struct {
	Passing   int
	Shooting  int
	Dribbling int
	Speed     int
	Strength  int
	Jumping   int
}

// PlayerRating is one peer evaluation of a player, attached to the post that
// prompted it. A rater keeps a single row per (RaterUserID, RatedUserID,
// PostID); resubmitting replaces the marks.
type PlayerRating struct {
	ID          string
	RaterUserID string
	RatedUserID string
	PostID      string
	Skills      SkillRatings
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Rater *Author
}

// RatingSummary aggregates all evaluations of one player. Skill averages are
// rounded to one decimal and Overall maps the skill mean onto a 0-100 scale.
type RatingSummary struct {
	Passing      float64
	Shooting     float64
	Dribbling    float64
	Speed        float64
	Strength     float64
	Jumping      float64
	TotalRatings int
	Overall      int
}

// CreatePostInput is the caller-supplied part of a new post.
type CreatePostInput struct {
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Duration     int
	GameDate     string
}

// ShareChannel selects how a post link is shared.
type ShareChannel string

const (
	ShareWhatsApp ShareChannel = "whatsapp"
	ShareEmail    ShareChannel = "email"
)

// ParseShareChannel rejects anything outside the closed channel set.
func ParseShareChannel(s string) (ShareChannel, error) {
	switch ShareChannel(s) {
	case ShareWhatsApp, ShareEmail:
		return ShareChannel(s), nil
	}
	return "", fmt.Errorf("invalid share channel: %s", s)
}

func (p Post) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("post id is required")
	}
	if p.UserID == "" {
		return fmt.Errorf("post user id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("post title is required")
	}
	if p.VideoURL == "" {
		return fmt.Errorf("post video url is required")
	}
	return nil
}

func (l PostLike) Validate() error {
	if l.UserID == "" {
		return fmt.Errorf("like user id is required")
	}
	if l.PostID == "" {
		return fmt.Errorf("like post id is required")
	}
	if l.Rating < 1 || l.Rating > 5 {
		return fmt.Errorf("like rating must be between 1 and 5, got %d", l.Rating)
	}
	return nil
}

func (s SkillRatings) Validate() error {
	for _, v := range []struct {
		name  string
		value int
	}{
		{"passing", s.Passing},
		{"shooting", s.Shooting},
		{"dribbling", s.Dribbling},
		{"speed", s.Speed},
		{"strength", s.Strength},
		{"jumping", s.Jumping},
	} {
		if v.value < 1 || v.value > 5 {
			return fmt.Errorf("%s must be between 1 and 5, got %d", v.name, v.value)
		}
	}
	return nil
}
