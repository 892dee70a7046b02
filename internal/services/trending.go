package services

import (
	"math"
	"time"
)

// Weights for the trending score. Likes and comments dominate; views
// are log-smoothed along with them so a burst of traffic cannot drown
// out real engagement.
const (
	trendingGravity       = 1.5
	trendingWeightLike    = 1.0
	trendingWeightComment = 2.0
	trendingWeightView    = 0.05
	trendingScale         = 100.0
)

// TrendingScore ranks an artwork by weighted engagement, log-smoothed
// and decayed by age. Newer artworks with fresh engagement float to
// the top; a week-old piece needs far more activity to stay there.
func TrendingScore(createdAt time.Time, likes, comments, views int) float64 {
	hours := time.Since(createdAt).Hours()
	if hours < 0 {
		hours = 0
	}

	weightedSum := float64(likes)*trendingWeightLike +
		float64(comments)*trendingWeightComment +
		float64(views)*trendingWeightView
	if weightedSum < 0 {
		weightedSum = 0
	}

	numerator := math.Log10(weightedSum+1) * trendingScale
	decay := math.Pow(hours+2, trendingGravity)

	return numerator / decay
}
