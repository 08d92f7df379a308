package social

import "math"

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ApplyLike folds a viewer's star rating into the post counters without
// re-reading the like rows. A first-time like grows the count; re-rating
// replaces the viewer's previous contribution in the running average.
func (p *Post) ApplyLike(rating int) {
	if p.ViewerRating != nil {
		prev := float64(*p.ViewerRating)
		p.AverageRating = round1((p.AverageRating*float64(p.LikesCount) - prev + float64(rating)) / float64(p.LikesCount))
	} else {
		p.LikesCount++
		p.AverageRating = round1((p.AverageRating*float64(p.LikesCount-1) + float64(rating)) / float64(p.LikesCount))
	}
	r := rating
	p.ViewerRating = &r
}

// RemoveLike backs the viewer's rating out of the counters. A post the
// viewer never rated is left untouched.
func (p *Post) RemoveLike() {
	if p.ViewerRating == nil {
		return
	}
	prev := float64(*p.ViewerRating)
	p.LikesCount--
	if p.LikesCount > 0 {
		p.AverageRating = round1((p.AverageRating*float64(p.LikesCount+1) - prev) / float64(p.LikesCount))
	} else {
		p.AverageRating = 0
	}
	p.ViewerRating = nil
}

// SummarizeRatings averages all evaluations of one player. Each skill
// average is rounded to one decimal first, then Overall maps the mean of
// those rounded averages onto a 0-100 scale.
func SummarizeRatings(ratings []PlayerRating) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}

	var totals SkillRatings
	for _, r := range ratings {
		totals.Passing += r.Skills.Passing
		totals.Shooting += r.Skills.Shooting
		totals.Dribbling += r.Skills.Dribbling
		totals.Speed += r.Skills.Speed
		totals.Strength += r.Skills.Strength
		totals.Jumping += r.Skills.Jumping
	}

	n := float64(len(ratings))
	out := RatingSummary{
		Passing:      round1(float64(totals.Passing) / n),
		Shooting:     round1(float64(totals.Shooting) / n),
		Dribbling:    round1(float64(totals.Dribbling) / n),
		Speed:        round1(float64(totals.Speed) / n),
		Strength:     round1(float64(totals.Strength) / n),
		Jumping:      round1(float64(totals.Jumping) / n),
		TotalRatings: len(ratings),
	}

	skillSum := out.Passing + out.Shooting + out.Dribbling + out.Speed + out.Strength + out.Jumping
	out.Overall = int(math.Round(skillSum / 6 * 20))

	return out
}

// RecomputeFromLikes rebuilds the post counters from the authoritative like
// rows. Used by the reconcile job to fix drift from the optimistic path.
func (p *Post) RecomputeFromLikes(likes []PostLike, commentsCount int, viewerID string) {
	p.LikesCount = len(likes)
	p.CommentsCount = commentsCount
	p.ViewerRating = nil

	if len(likes) == 0 {
		p.AverageRating = 0
		return
	}

	sum := 0
	for _, l := range likes {
		sum += l.Rating
		if l.UserID == viewerID {
			r := l.Rating
			p.ViewerRating = &r
		}
	}
	p.AverageRating = round1(float64(sum) / float64(len(likes)))
}
