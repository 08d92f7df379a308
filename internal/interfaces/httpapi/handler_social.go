package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/jogolindo/jogolindo-api/internal/domain/social"
	"github.com/jogolindo/jogolindo-api/internal/usecase"
)

func (h *Handler) ListFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFeed")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	posts, err := h.socialService.ListFeed(ctx, principal.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list feed failed", "user_id", principal.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]postDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, postToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePost")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createPostRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	post, err := h.socialService.CreatePost(ctx, principal, social.CreatePostInput{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		GameDate:     req.GameDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create post failed", "user_id", principal.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, postToDTO(ctx, post))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePost")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	postID := strings.TrimSpace(r.PathValue("postID"))
	if err := h.socialService.DeletePost(ctx, principal.ID, postID); err != nil {
		h.logger.WarnContext(ctx, "delete post failed", "user_id", principal.ID, "post_id", postID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LikePost")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req likePostRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	postID := strings.TrimSpace(r.PathValue("postID"))
	post, err := h.socialService.LikePost(ctx, principal.ID, postID, req.Rating)
	if err != nil {
		h.logger.WarnContext(ctx, "like post failed", "user_id", principal.ID, "post_id", postID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, postToDTO(ctx, post))
}

func (h *Handler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnlikePost")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	postID := strings.TrimSpace(r.PathValue("postID"))
	post, err := h.socialService.UnlikePost(ctx, principal.ID, postID)
	if err != nil {
		h.logger.WarnContext(ctx, "unlike post failed", "user_id", principal.ID, "post_id", postID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, postToDTO(ctx, post))
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListComments")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	postID := strings.TrimSpace(r.PathValue("postID"))
	comments, err := h.socialService.ListComments(ctx, principal.ID, postID)
	if err != nil {
		h.logger.WarnContext(ctx, "list comments failed", "user_id", principal.ID, "post_id", postID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]commentDTO, 0, len(comments))
	for _, c := range comments {
		items = append(items, commentToDTO(ctx, c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddComment")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req addCommentRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	postID := strings.TrimSpace(r.PathValue("postID"))
	comment, err := h.socialService.AddComment(ctx, principal, postID, req.Content)
	if err != nil {
		h.logger.WarnContext(ctx, "add comment failed", "user_id", principal.ID, "post_id", postID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, commentToDTO(ctx, comment))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteComment")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	commentID := strings.TrimSpace(r.PathValue("commentID"))
	if err := h.socialService.DeleteComment(ctx, principal.ID, commentID); err != nil {
		h.logger.WarnContext(ctx, "delete comment failed", "user_id", principal.ID, "comment_id", commentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) LikeComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LikeComment")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	commentID := strings.TrimSpace(r.PathValue("commentID"))
	if err := h.socialService.LikeComment(ctx, principal.ID, commentID); err != nil {
		h.logger.WarnContext(ctx, "like comment failed", "user_id", principal.ID, "comment_id", commentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "liked"})
}

func (h *Handler) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnlikeComment")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	commentID := strings.TrimSpace(r.PathValue("commentID"))
	if err := h.socialService.UnlikeComment(ctx, principal.ID, commentID); err != nil {
		h.logger.WarnContext(ctx, "unlike comment failed", "user_id", principal.ID, "comment_id", commentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "unliked"})
}

func (h *Handler) SubmitPlayerRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPlayerRating")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req submitPlayerRatingRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	ratedUserID := strings.TrimSpace(r.PathValue("userID"))
	err := h.socialService.SubmitPlayerRating(ctx, principal.ID, ratedUserID, req.PostID, social.SkillRatings{
		Passing:   req.Passing,
		Shooting:  req.Shooting,
		Dribbling: req.Dribbling,
		Speed:     req.Speed,
		Strength:  req.Strength,
		Jumping:   req.Jumping,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit player rating failed", "user_id", principal.ID, "rated_user_id", ratedUserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "rated"})
}

func (h *Handler) GetPlayerRatingSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRatingSummary")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	summary, err := h.socialService.PlayerRatingSummary(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "player rating summary failed", "rated_user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ratingSummaryDTO{
		Passing:      summary.Passing,
		Shooting:     summary.Shooting,
		Dribbling:    summary.Dribbling,
		Speed:        summary.Speed,
		Strength:     summary.Strength,
		Jumping:      summary.Jumping,
		TotalRatings: summary.TotalRatings,
		Overall:      summary.Overall,
	})
}

func (h *Handler) SharePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SharePost")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req sharePostRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	channel, err := social.ParseShareChannel(req.Channel)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	postID := strings.TrimSpace(r.PathValue("postID"))
	link, err := h.socialService.SharePost(ctx, postID, channel, strings.TrimSpace(req.Recipient))
	if err != nil {
		h.logger.WarnContext(ctx, "share post failed", "user_id", principal.ID, "post_id", postID, "channel", req.Channel, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, shareLinkDTO{
		Channel: string(link.Channel),
		URL:     link.URL,
	})
}

type createPostRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"max=2000"`
	VideoURL     string `json:"videoUrl" validate:"required,url"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
	Duration     int    `json:"duration" validate:"min=0"`
	GameDate     string `json:"gameDate" validate:"omitempty,datetime=2006-01-02"`
}

type likePostRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type submitPlayerRatingRequest struct {
	PostID    string `json:"postId" validate:"required"`
	Passing   int    `json:"passing" validate:"required,min=1,max=5"`
	Shooting  int    `json:"shooting" validate:"required,min=1,max=5"`
	Dribbling int    `json:"dribbling" validate:"required,min=1,max=5"`
	Speed     int    `json:"speed" validate:"required,min=1,max=5"`
	Strength  int    `json:"strength" validate:"required,min=1,max=5"`
	Jumping   int    `json:"jumping" validate:"required,min=1,max=5"`
}

type sharePostRequest struct {
	Channel   string `json:"channel" validate:"required"`
	Recipient string `json:"recipient" validate:"omitempty,email"`
}

type authorDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl,omitempty"`
	Position string `json:"position,omitempty"`
}

type postDTO struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	VideoURL      string     `json:"videoUrl"`
	ThumbnailURL  string     `json:"thumbnailUrl,omitempty"`
	Duration      int        `json:"duration"`
	GameDate      string     `json:"gameDate"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
	Author        *authorDTO `json:"author,omitempty"`
	LikesCount    int        `json:"likesCount"`
	CommentsCount int        `json:"commentsCount"`
	AverageRating float64    `json:"averageRating"`
	ViewerRating  *int       `json:"viewerRating,omitempty"`
}

type commentDTO struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	PostID      string     `json:"postId"`
	Content     string     `json:"content"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
	Author      *authorDTO `json:"author,omitempty"`
	LikesCount  int        `json:"likesCount"`
	ViewerLiked bool       `json:"viewerLiked"`
}

type ratingSummaryDTO struct {
	Passing      float64 `json:"passing"`
	Shooting     float64 `json:"shooting"`
	Dribbling    float64 `json:"dribbling"`
	Speed        float64 `json:"speed"`
	Strength     float64 `json:"strength"`
	Jumping      float64 `json:"jumping"`
	TotalRatings int     `json:"totalRatings"`
	Overall      int     `json:"overall"`
}

type shareLinkDTO struct {
	Channel string `json:"channel"`
	URL     string `json:"url"`
}

func authorToDTO(ctx context.Context, a *social.Author) *authorDTO {
	ctx, span := startSpan(ctx, "httpapi.authorToDTO")
	defer span.End()

	if a == nil {
		return nil
	}
	return &authorDTO{
		ID:       a.ID,
		Name:     a.Name,
		PhotoURL: a.PhotoURL,
		Position: a.Position,
	}
}

func postToDTO(ctx context.Context, p social.Post) postDTO {
	ctx, span := startSpan(ctx, "httpapi.postToDTO")
	defer span.End()

	return postDTO{
		ID:            p.ID,
		UserID:        p.UserID,
		Title:         p.Title,
		Description:   p.Description,
		VideoURL:      p.VideoURL,
		ThumbnailURL:  p.ThumbnailURL,
		Duration:      p.Duration,
		GameDate:      p.GameDate,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339),
		Author:        authorToDTO(ctx, p.Author),
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		AverageRating: p.AverageRating,
		ViewerRating:  p.ViewerRating,
	}
}

func commentToDTO(ctx context.Context, c social.Comment) commentDTO {
	ctx, span := startSpan(ctx, "httpapi.commentToDTO")
	defer span.End()

	return commentDTO{
		ID:          c.ID,
		UserID:      c.UserID,
		PostID:      c.PostID,
		Content:     c.Content,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.UTC().Format(time.RFC3339),
		Author:      authorToDTO(ctx, c.Author),
		LikesCount:  c.LikesCount,
		ViewerLiked: c.ViewerLiked,
	}
}
