package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrendingScore_EngagementRaisesScore(t *testing.T) {
	created := time.Now().Add(-2 * time.Hour)

	quiet := TrendingScore(created, 1, 0, 10)
	busy := TrendingScore(created, 50, 20, 500)

	assert.Greater(t, busy, quiet)
}

func TestTrendingScore_DecaysWithAge(t *testing.T) {
	fresh := TrendingScore(time.Now().Add(-1*time.Hour), 20, 5, 100)
	stale := TrendingScore(time.Now().Add(-72*time.Hour), 20, 5, 100)

	assert.Greater(t, fresh, stale)
}

func TestTrendingScore_ZeroEngagement(t *testing.T) {
	score := TrendingScore(time.Now(), 0, 0, 0)
	assert.Equal(t, 0.0, score)
}
