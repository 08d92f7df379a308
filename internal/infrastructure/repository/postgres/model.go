package postgres

import (
	"database/sql"
	"time"

	"github.com/jogolindo/jogolindo-api/internal/domain/social"
	"github.com/jogolindo/jogolindo-api/internal/domain/user"
)

type userTableModel struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	Role           string `db:"role"`
	ProfilePicture string `db:"profile_picture"`
	Position       string `db:"position"`
}

func (m userTableModel) toDomain() user.Principal {
	role, err := user.ParseRole(m.Role)
	if err != nil {
		role = user.RoleAthlete
	}

	return user.Principal{
		ID:       m.ID,
		Email:    m.Email,
		Name:     m.Name,
		Role:     role,
		PhotoURL: m.ProfilePicture,
		Position: m.Position,
	}
}

type postTableModel struct {
	ID           string         `db:"id"`
	UserID       string         `db:"user_id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	VideoURL     string         `db:"video_url"`
	ThumbnailURL sql.NullString `db:"thumbnail_url"`
	Duration     int            `db:"duration"`
	GameDate     string         `db:"game_date"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`

	AuthorName     sql.NullString `db:"author_name"`
	AuthorPhotoURL sql.NullString `db:"author_photo_url"`
	AuthorPosition sql.NullString `db:"author_position"`
}

func (m postTableModel) toDomain() social.Post {
	p := social.Post{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Description:  m.Description.String,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL.String,
		Duration:     m.Duration,
		GameDate:     m.GameDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.AuthorName.Valid {
		p.Author = &social.Author{
			ID:       m.UserID,
			Name:     m.AuthorName.String,
			PhotoURL: m.AuthorPhotoURL.String,
			Position: m.AuthorPosition.String,
		}
	}
	return p
}

type postLikeTableModel struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	PostID    string    `db:"post_id"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
}

func (m postLikeTableModel) toDomain() social.PostLike {
	return social.PostLike{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
	}
}

type commentTableModel struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	PostID    string    `db:"post_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	AuthorName     sql.NullString `db:"author_name"`
	AuthorPhotoURL sql.NullString `db:"author_photo_url"`
}

func (m commentTableModel) toDomain() social.Comment {
	c := social.Comment{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.AuthorName.Valid {
		c.Author = &social.Author{
			ID:       m.UserID,
			Name:     m.AuthorName.String,
			PhotoURL: m.AuthorPhotoURL.String,
		}
	}
	return c
}

type commentLikeTableModel struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	CommentID string    `db:"comment_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (m commentLikeTableModel) toDomain() social.CommentLike {
	return social.CommentLike{
		ID:        m.ID,
		UserID:    m.UserID,
		CommentID: m.CommentID,
		CreatedAt: m.CreatedAt,
	}
}

type playerRatingTableModel struct {
	ID          string    `db:"id"`
	RaterUserID string    `db:"rater_user_id"`
	RatedUserID string    `db:"rated_user_id"`
	PostID      string    `db:"post_id"`
	Passing     int       `db:"passing"`
	Shooting    int       `db:"shooting"`
	Dribbling   int       `db:"dribbling"`
	Speed       int       `db:"speed"`
	Strength    int       `db:"strength"`
	Jumping     int       `db:"jumping"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	RaterName     sql.NullString `db:"rater_name"`
	RaterPhotoURL sql.NullString `db:"rater_photo_url"`
}

func (m playerRatingTableModel) toDomain() social.PlayerRating {
	r := social.PlayerRating{
		ID:          m.ID,
		RaterUserID: m.RaterUserID,
		RatedUserID: m.RatedUserID,
		PostID:      m.PostID,
		Skills: social.SkillRatings{
			Passing:   m.Passing,
			Shooting:  m.Shooting,
			Dribbling: m.Dribbling,
			Speed:     m.Speed,
			Strength:  m.Strength,
			Jumping:   m.Jumping,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.RaterName.Valid {
		r.Rater = &social.Author{
			ID:       m.RaterUserID,
			Name:     m.RaterName.String,
			PhotoURL: m.RaterPhotoURL.String,
		}
	}
	return r
}
