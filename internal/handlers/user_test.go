package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
)

func toggleFollow(t *testing.T, userID, targetID string) (int, envelope) {
	c, w := newTestContext(t, "POST", "/api/users/"+targetID+"/follow", nil, userID, models.RoleViewer)
	c.Params = gin.Params{{Key: "id", Value: targetID}}
	ToggleFollow(c)
	return w.Code, decodeEnvelope(t, w)
}

func TestToggleFollow_SelfFollowRejected(t *testing.T) {
	SetupTestDB()

	user := createTestUser(t, "self_follower", models.RoleViewer)

	code, _ := toggleFollow(t, user.ID, user.ID)
	assert.Equal(t, http.StatusBadRequest, code)

	var rows int64
	database.DB.Model(&models.Follow{}).Where("follower_id = ?", user.ID).Count(&rows)
	assert.EqualValues(t, 0, rows)
}

func TestToggleFollow_CountersTrackRows(t *testing.T) {
	SetupTestDB()

	follower := createTestUser(t, "flw_follower", models.RoleViewer)
	target := createTestUser(t, "flw_target", models.RoleArtist)

	code, env := toggleFollow(t, follower.ID, target.ID)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Data["isFollowing"].(bool))

	// Separate dests: reusing one across different ids would fold the
	// stale primary key into the next query.
	var storedTarget, storedFollower models.User
	database.DB.First(&storedTarget, "id = ?", target.ID)
	assert.EqualValues(t, 1, storedTarget.FollowerCount)
	database.DB.First(&storedFollower, "id = ?", follower.ID)
	assert.EqualValues(t, 1, storedFollower.FollowingCount)

	// Toggle off restores both counters.
	code, env = toggleFollow(t, follower.ID, target.ID)
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, env.Data["isFollowing"].(bool))

	database.DB.First(&storedTarget, "id = ?", target.ID)
	assert.EqualValues(t, 0, storedTarget.FollowerCount)
	database.DB.First(&storedFollower, "id = ?", follower.ID)
	assert.EqualValues(t, 0, storedFollower.FollowingCount)
}

func TestToggleFollow_BannedTarget(t *testing.T) {
	SetupTestDB()

	follower := createTestUser(t, "ban_follower", models.RoleViewer)
	target := createTestUser(t, "ban_target", models.RoleArtist)
	database.DB.Model(&models.User{}).Where("id = ?", target.ID).Update("is_active", false)

	code, _ := toggleFollow(t, follower.ID, target.ID)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetUserProfile(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "prof_artist", models.RoleArtist)
	createTestArtwork(t, artist.ID, models.StatusActive)
	createTestArtwork(t, artist.ID, models.StatusDeleted)

	c, w := newTestContext(t, "GET", "/api/users/prof_artist", nil, "", models.RoleViewer)
	c.Params = gin.Params{{Key: "id", Value: "prof_artist"}}
	GetUserProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	// Deleted artworks are not counted.
	assert.EqualValues(t, 1, env.Data["artworkCount"])

	// Banned profiles 404.
	database.DB.Model(&models.User{}).Where("id = ?", artist.ID).Update("is_active", false)
	c, w = newTestContext(t, "GET", "/api/users/prof_artist", nil, "", models.RoleViewer)
	c.Params = gin.Params{{Key: "id", Value: "prof_artist"}}
	GetUserProfile(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
