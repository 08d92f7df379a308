package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jogolindo/jogolindo-api/internal/domain/social"
	"github.com/jogolindo/jogolindo-api/internal/domain/user"
	"github.com/jogolindo/jogolindo-api/internal/platform/cache"
	idgen "github.com/jogolindo/jogolindo-api/internal/platform/id"
	"github.com/jonboulle/clockwork"
	"github.com/sourcegraph/conc/pool"
)

const feedFanOutWidth = 8

// SocialService owns the highlight feed: posts, star-rated likes, comments
// and peer skill ratings. Post counters are updated optimistically from the
// caller's action; the reconcile job recomputes them from stored rows.
type SocialService struct {
	posts    social.PostRepository
	likes    social.LikeRepository
	comments social.CommentRepository
	ratings  social.RatingRepository

	ids           idgen.Generator
	clock         clockwork.Clock
	statsCache    *cache.Store
	publicBaseURL string
}

func NewSocialService(
	posts social.PostRepository,
	likes social.LikeRepository,
	comments social.CommentRepository,
	ratings social.RatingRepository,
	ids idgen.Generator,
	clock clockwork.Clock,
	statsCache *cache.Store,
	publicBaseURL string,
) *SocialService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &SocialService{
		posts:         posts,
		likes:         likes,
		comments:      comments,
		ratings:       ratings,
		ids:           ids,
		clock:         clock,
		statsCache:    statsCache,
		publicBaseURL: strings.TrimRight(strings.TrimSpace(publicBaseURL), "/"),
	}
}

type postStats struct {
	likes         []social.PostLike
	commentsCount int
}

// ListFeed returns posts newest first with their counters rebuilt from the
// stored like and comment rows. Per-post stats are fanned out concurrently
// and cached briefly; writes invalidate the cached entry.
func (s *SocialService) ListFeed(ctx context.Context, viewerID string) ([]social.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "SocialService.ListFeed")
	defer span.End()

	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(feedFanOutWidth)
	for i := range posts {
		p.Go(func(ctx context.Context) error {
			stats, err := s.loadPostStats(ctx, posts[i].ID)
			if err != nil {
				return err
			}
			posts[i].RecomputeFromLikes(stats.likes, stats.commentsCount, viewerID)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("load feed stats: %w", err)
	}

	return posts, nil
}

func (s *SocialService) loadPostStats(ctx context.Context, postID string) (postStats, error) {
	value, err := s.statsCache.GetOrLoad(ctx, postID, func(ctx context.Context) (any, error) {
		likes, err := s.likes.ListByPost(ctx, postID)
		if err != nil {
			return nil, fmt.Errorf("list likes for post %s: %w", postID, err)
		}
		count, err := s.comments.CountByPost(ctx, postID)
		if err != nil {
			return nil, fmt.Errorf("count comments for post %s: %w", postID, err)
		}
		return postStats{likes: likes, commentsCount: count}, nil
	})
	if err != nil {
		return postStats{}, err
	}

	stats, ok := value.(postStats)
	if !ok {
		return postStats{}, fmt.Errorf("unexpected cached stats type for post %s", postID)
	}

	return stats, nil
}

func (s *SocialService) CreatePost(ctx context.Context, author user.Principal, input social.CreatePostInput) (social.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "SocialService.CreatePost")
	defer span.End()

	now := s.clock.Now()

	gameDate := strings.TrimSpace(input.GameDate)
	if gameDate == "" {
		gameDate = now.Format("2006-01-02")
	}

	id, err := s.ids.NewID()
	if err != nil {
		return social.Post{}, fmt.Errorf("generate post id: %w", err)
	}

	post := social.Post{
		ID:           id,
		UserID:       author.ID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		VideoURL:     strings.TrimSpace(input.VideoURL),
		ThumbnailURL: strings.TrimSpace(input.ThumbnailURL),
		Duration:     input.Duration,
		GameDate:     gameDate,
		CreatedAt:    now,
		UpdatedAt:    now,
		Author: &social.Author{
			ID:       author.ID,
			Name:     author.Name,
			PhotoURL: author.PhotoURL,
			Position: author.Position,
		},
	}
	if err := post.Validate(); err != nil {
		return social.Post{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.Duration < 0 {
		return social.Post{}, fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return social.Post{}, fmt.Errorf("create post: %w", err)
	}

	return post, nil
}

func (s *SocialService) DeletePost(ctx context.Context, viewerID, postID string) error {
	ctx, span := startUsecaseSpan(ctx, "SocialService.DeletePost")
	defer span.End()

	post, found, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: post=%s", ErrNotFound, postID)
	}
	if post.UserID != viewerID {
		return fmt.Errorf("%w: only the author can delete a post", ErrUnauthorized)
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	s.statsCache.Delete(ctx, postID)

	return nil
}

// LikePost upserts the caller's 1-5 rating and folds it into the post
// counters with the incremental-average arithmetic. The returned post is the
// optimistic view; the reconcile job remains authoritative.
func (s *SocialService) LikePost(ctx context.Context, viewerID, postID string, rating int) (social.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "SocialService.LikePost")
	defer span.End()

	post, found, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return social.Post{}, fmt.Errorf("get post: %w", err)
	}
	if !found {
		return social.Post{}, fmt.Errorf("%w: post=%s", ErrNotFound, postID)
	}

	like := social.PostLike{
		UserID:    viewerID,
		PostID:    postID,
		Rating:    rating,
		CreatedAt: s.clock.Now(),
	}
	if err := like.Validate(); err != nil {
		return social.Post{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return social.Post{}, fmt.Errorf("generate like id: %w", err)
	}
	like.ID = id

	stats, err := s.loadPostStats(ctx, postID)
	if err != nil {
		return social.Post{}, err
	}
	post.RecomputeFromLikes(stats.likes, stats.commentsCount, viewerID)

	if err := s.likes.Upsert(ctx, like); err != nil {
		return social.Post{}, fmt.Errorf("upsert like: %w", err)
	}
	s.statsCache.Delete(ctx, postID)

	post.ApplyLike(rating)

	return post, nil
}

// UnlikePost removes the caller's rating and backs it out of the counters.
func (s *SocialService) UnlikePost(ctx context.Context, viewerID, postID string) (social.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "SocialService.UnlikePost")
	defer span.End()

	post, found, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return social.Post{}, fmt.Errorf("get post: %w", err)
	}
	if !found {
		return social.Post{}, fmt.Errorf("%w: post=%s", ErrNotFound, postID)
	}

	stats, err := s.loadPostStats(ctx, postID)
	if err != nil {
		return social.Post{}, err
	}
	post.RecomputeFromLikes(stats.likes, stats.commentsCount, viewerID)

	if err := s.likes.Delete(ctx, viewerID, postID); err != nil {
		return social.Post{}, fmt.Errorf("delete like: %w", err)
	}
	s.statsCache.Delete(ctx, postID)

	post.RemoveLike()

	return post, nil
}

// ListComments returns a post's comments oldest first, each with its like
// count and whether the viewer liked it.
func (s *SocialService) ListComments(ctx context.Context, viewerID, postID string) ([]social.Comment, error) {
	ctx, span := startUsecaseSpan(ctx, "SocialService.ListComments")
	defer span.End()

	if _, found, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	} else if !found {
		return nil, fmt.Errorf("%w: post=%s", ErrNotFound, postID)
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(feedFanOutWidth)
	for i := range comments {
		p.Go(func(ctx context.Context) error {
			likes, err := s.comments.ListLikes(ctx, comments[i].ID)
			if err != nil {
				return fmt.Errorf("list likes for comment %s: %w", comments[i].ID, err)
			}
			comments[i].LikesCount = len(likes)
			comments[i].ViewerLiked = false
			for _, l := range likes {
				if l.UserID == viewerID {
					comments[i].ViewerLiked = true
					break
				}
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("load comment stats: %w", err)
	}

	return comments, nil
}

func (s *SocialService) AddComment(ctx context.Context, author user.Principal, postID, content string) (social.Comment, error) {
	ctx, span := startUsecaseSpan(ctx, "SocialService.AddComment")
	defer span.End()

	content = strings.TrimSpace(content)
	if content == "" {
		return social.Comment{}, fmt.Errorf("%w: comment content is required", ErrInvalidInput)
	}

	if _, found, err := s.posts.GetByID(ctx, postID); err != nil {
		return social.Comment{}, fmt.Errorf("get post: %w", err)
	} else if !found {
		return social.Comment{}, fmt.Errorf("%w: post=%s", ErrNotFound, postID)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return social.Comment{}, fmt.Errorf("generate comment id: %w", err)
	}

	now := s.clock.Now()
	comment := social.Comment{
		ID:        id,
		UserID:    author.ID,
		PostID:    postID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
		Author: &social.Author{
			ID:       author.ID,
			Name:     author.Name,
			PhotoURL: author.PhotoURL,
		},
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return social.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	s.statsCache.Delete(ctx, postID)

	return comment, nil
}

func (s *SocialService) DeleteComment(ctx context.Context, viewerID, commentID string) error {
	ctx, span := startUsecaseSpan(ctx, "SocialService.DeleteComment")
	defer span.End()

	comment, found, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: comment=%s", ErrNotFound, commentID)
	}
	if comment.UserID != viewerID {
		return fmt.Errorf("%w: only the author can delete a comment", ErrUnauthorized)
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	s.statsCache.Delete(ctx, comment.PostID)

	return nil
}

func (s *SocialService) LikeComment(ctx context.Context, viewerID, commentID string) error {
	ctx, span := startUsecaseSpan(ctx, "SocialService.LikeComment")
	defer span.End()

	if _, found, err := s.comments.GetByID(ctx, commentID); err != nil {
		return fmt.Errorf("get comment: %w", err)
	} else if !found {
		return fmt.Errorf("%w: comment=%s", ErrNotFound, commentID)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return fmt.Errorf("generate comment like id: %w", err)
	}

	if err := s.comments.AddLike(ctx, social.CommentLike{
		ID:        id,
		UserID:    viewerID,
		CommentID: commentID,
		CreatedAt: s.clock.Now(),
	}); err != nil {
		return fmt.Errorf("add comment like: %w", err)
	}

	return nil
}

func (s *SocialService) UnlikeComment(ctx context.Context, viewerID, commentID string) error {
	ctx, span := startUsecaseSpan(ctx, "SocialService.UnlikeComment")
	defer span.End()

	if err := s.comments.RemoveLike(ctx, viewerID, commentID); err != nil {
		return fmt.Errorf("remove comment like: %w", err)
	}

	return nil
}

// SubmitPlayerRating records the caller's evaluation of another player.
// One row exists per (rater, rated, post); resubmitting replaces the marks.
func (s *SocialService) SubmitPlayerRating(ctx context.Context, raterID, ratedUserID, postID string, skills social.SkillRatings) error {
	ctx, span := startUsecaseSpan(ctx, "SocialService.SubmitPlayerRating")
	defer span.End()

	if raterID == ratedUserID {
		return fmt.Errorf("%w: players cannot rate themselves", ErrInvalidInput)
	}
	if err := skills.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, found, err := s.posts.GetByID(ctx, postID); err != nil {
		return fmt.Errorf("get post: %w", err)
	} else if !found {
		return fmt.Errorf("%w: post=%s", ErrNotFound, postID)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return fmt.Errorf("generate rating id: %w", err)
	}

	now := s.clock.Now()
	if err := s.ratings.Upsert(ctx, social.PlayerRating{
		ID:          id,
		RaterUserID: raterID,
		RatedUserID: ratedUserID,
		PostID:      postID,
		Skills:      skills,
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return fmt.Errorf("upsert player rating: %w", err)
	}

	return nil
}

func (s *SocialService) PlayerRatingSummary(ctx context.Context, userID string) (social.RatingSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "SocialService.PlayerRatingSummary")
	defer span.End()

	ratings, err := s.ratings.ListByRatedUser(ctx, userID)
	if err != nil {
		return social.RatingSummary{}, fmt.Errorf("list player ratings: %w", err)
	}

	return social.SummarizeRatings(ratings), nil
}

// ShareLink is a ready-to-open share URL for a post.
type ShareLink struct {
	Channel social.ShareChannel
	URL     string
}

func (s *SocialService) SharePost(ctx context.Context, postID string, channel social.ShareChannel, recipient string) (ShareLink, error) {
	ctx, span := startUsecaseSpan(ctx, "SocialService.SharePost")
	defer span.End()

	post, found, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return ShareLink{}, fmt.Errorf("get post: %w", err)
	}
	if !found {
		return ShareLink{}, fmt.Errorf("%w: post=%s", ErrNotFound, postID)
	}

	authorName := ""
	if post.Author != nil {
		authorName = post.Author.Name
	}
	postURL := s.publicBaseURL + "/social/post/" + post.ID
	shareText := fmt.Sprintf("Confira esta jogada incrível de %s: %s", authorName, post.Title)

	switch channel {
	case social.ShareWhatsApp:
		return ShareLink{
			Channel: channel,
			URL:     "https://wa.me/?text=" + url.QueryEscape(shareText+"\n"+postURL),
		}, nil
	case social.ShareEmail:
		subject := "Jogada incrível: " + post.Title
		body := shareText + "\n\nAssista aqui: " + postURL
		return ShareLink{
			Channel: channel,
			URL: "mailto:" + recipient +
				"?subject=" + url.QueryEscape(subject) +
				"&body=" + url.QueryEscape(body),
		}, nil
	}

	return ShareLink{}, fmt.Errorf("%w: unsupported share channel %q", ErrInvalidInput, channel)
}
