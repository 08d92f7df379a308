package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestApplyLike_FirstLike(t *testing.T) {
	p := Post{LikesCount: 2, AverageRating: 3.0}

	p.ApplyLike(5)

	assert.Equal(t, 3, p.LikesCount)
	assert.InDelta(t, 3.7, p.AverageRating, 1e-9)
	require.NotNil(t, p.ViewerRating)
	assert.Equal(t, 5, *p.ViewerRating)
}

func TestApplyLike_RerateReplacesContribution(t *testing.T) {
	p := Post{LikesCount: 2, AverageRating: 3.0, ViewerRating: intPtr(1)}

	p.ApplyLike(5)

	assert.Equal(t, 2, p.LikesCount, "re-rating does not grow the count")
	assert.InDelta(t, 5.0, p.AverageRating, 1e-9)
	assert.Equal(t, 5, *p.ViewerRating)
}

func TestRemoveLike(t *testing.T) {
	p := Post{LikesCount: 2, AverageRating: 4.0, ViewerRating: intPtr(5)}

	p.RemoveLike()

	assert.Equal(t, 1, p.LikesCount)
	assert.InDelta(t, 3.0, p.AverageRating, 1e-9)
	assert.Nil(t, p.ViewerRating)
}

func TestRemoveLike_LastLikeZeroesAverage(t *testing.T) {
	p := Post{LikesCount: 1, AverageRating: 4.0, ViewerRating: intPtr(4)}

	p.RemoveLike()

	assert.Equal(t, 0, p.LikesCount)
	assert.Zero(t, p.AverageRating)
	assert.Nil(t, p.ViewerRating)
}

func TestRemoveLike_NoViewerRatingIsNoop(t *testing.T) {
	p := Post{LikesCount: 3, AverageRating: 3.3}

	p.RemoveLike()

	assert.Equal(t, 3, p.LikesCount)
	assert.InDelta(t, 3.3, p.AverageRating, 1e-9)
}

func TestSummarizeRatings_Empty(t *testing.T) {
	assert.Equal(t, RatingSummary{}, SummarizeRatings(nil))
}

func TestSummarizeRatings(t *testing.T) {
	ratings := []PlayerRating{
		{Skills: SkillRatings{Passing: 5, Shooting: 4, Dribbling: 3, Speed: 5, Strength: 2, Jumping: 4}},
		{Skills: SkillRatings{Passing: 4, Shooting: 3, Dribbling: 4, Speed: 4, Strength: 3, Jumping: 5}},
	}

	got := SummarizeRatings(ratings)

	assert.Equal(t, 2, got.TotalRatings)
	assert.InDelta(t, 4.5, got.Passing, 1e-9)
	assert.InDelta(t, 3.5, got.Shooting, 1e-9)
	assert.InDelta(t, 3.5, got.Dribbling, 1e-9)
	assert.InDelta(t, 4.5, got.Speed, 1e-9)
	assert.InDelta(t, 2.5, got.Strength, 1e-9)
	assert.InDelta(t, 4.5, got.Jumping, 1e-9)

	// (4.5+3.5+3.5+4.5+2.5+4.5)/6*20 = 77.666... -> 78
	assert.Equal(t, 78, got.Overall)
}

func TestSummarizeRatings_SingleUniform(t *testing.T) {
	got := SummarizeRatings([]PlayerRating{
		{Skills: SkillRatings{Passing: 5, Shooting: 5, Dribbling: 5, Speed: 5, Strength: 5, Jumping: 5}},
	})

	assert.Equal(t, 100, got.Overall)
}

func TestRecomputeFromLikes(t *testing.T) {
	p := Post{LikesCount: 99, AverageRating: 1.0, ViewerRating: intPtr(1)}

	p.RecomputeFromLikes([]PostLike{
		{UserID: "u1", Rating: 5},
		{UserID: "u2", Rating: 4},
		{UserID: "viewer", Rating: 2},
	}, 7, "viewer")

	assert.Equal(t, 3, p.LikesCount)
	assert.Equal(t, 7, p.CommentsCount)
	assert.InDelta(t, 3.7, p.AverageRating, 1e-9)
	require.NotNil(t, p.ViewerRating)
	assert.Equal(t, 2, *p.ViewerRating)
}

func TestRecomputeFromLikes_NoLikes(t *testing.T) {
	p := Post{LikesCount: 4, AverageRating: 4.2, ViewerRating: intPtr(3)}

	p.RecomputeFromLikes(nil, 0, "viewer")

	assert.Zero(t, p.LikesCount)
	assert.Zero(t, p.AverageRating)
	assert.Nil(t, p.ViewerRating)
}

func TestPostLikeValidate(t *testing.T) {
	ok := PostLike{UserID: "u", PostID: "p", Rating: 3}
	require.NoError(t, ok.Validate())

	bad := PostLike{UserID: "u", PostID: "p", Rating: 0}
	require.Error(t, bad.Validate())

	bad.Rating = 6
	require.Error(t, bad.Validate())
}

func TestSkillRatingsValidate(t *testing.T) {
	ok := SkillRatings{Passing: 1, Shooting: 2, Dribbling: 3, Speed: 4, Strength: 5, Jumping: 3}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Jumping = 0
	require.Error(t, bad.Validate())
}

func TestParseShareChannel(t *testing.T) {
	for _, raw := range []string{"whatsapp", "email"} {
		got, err := ParseShareChannel(raw)
		require.NoError(t, err)
		assert.Equal(t, ShareChannel(raw), got)
	}

	_, err := ParseShareChannel("direct_message")
	require.Error(t, err)
}
