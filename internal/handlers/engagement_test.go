package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
)

func toggleLike(t *testing.T, userID, artworkID string) (int, envelope) {
	c, w := newTestContext(t, "POST", "/api/artworks/"+artworkID+"/like", nil, userID, models.RoleViewer)
	c.Params = gin.Params{{Key: "id", Value: artworkID}}
	ToggleLike(c)
	return w.Code, decodeEnvelope(t, w)
}

func TestToggleLike_CounterConsistency(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "like_artist", models.RoleArtist)
	viewerA := createTestUser(t, "like_viewer_a", models.RoleViewer)
	viewerB := createTestUser(t, "like_viewer_b", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	// Two distinct users like.
	code, env := toggleLike(t, viewerA.ID, artwork.ID)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Data["isLiked"].(bool))
	assert.EqualValues(t, 1, env.Data["likeCount"])

	code, env = toggleLike(t, viewerB.ID, artwork.ID)
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, env.Data["likeCount"])

	// Same user toggles off; count returns to 1.
	code, env = toggleLike(t, viewerA.ID, artwork.ID)
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, env.Data["isLiked"].(bool))
	assert.EqualValues(t, 1, env.Data["likeCount"])

	// Counter matches the row count.
	var stored models.Artwork
	database.DB.First(&stored, "id = ?", artwork.ID)
	var rows int64
	database.DB.Model(&models.Like{}).Where("artwork_id = ?", artwork.ID).Count(&rows)
	assert.EqualValues(t, rows, stored.LikeCount)
	assert.EqualValues(t, 1, stored.LikeCount)
}

func TestToggleLike_DoubleToggleRestoresCount(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "dbl_artist", models.RoleArtist)
	viewer := createTestUser(t, "dbl_viewer", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	toggleLike(t, viewer.ID, artwork.ID)
	toggleLike(t, viewer.ID, artwork.ID)

	var stored models.Artwork
	database.DB.First(&stored, "id = ?", artwork.ID)
	assert.EqualValues(t, 0, stored.LikeCount)
}

func TestToggleLike_InactiveArtwork(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "hidden_artist", models.RoleArtist)
	viewer := createTestUser(t, "hidden_viewer", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusHidden)

	code, _ := toggleLike(t, viewer.ID, artwork.ID)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = toggleLike(t, viewer.ID, "missing-id")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestToggleFavorite(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "fav_artist", models.RoleArtist)
	viewer := createTestUser(t, "fav_viewer", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	c, w := newTestContext(t, "POST", "/api/artworks/"+artwork.ID+"/favorite", nil, viewer.ID, models.RoleViewer)
	c.Params = gin.Params{{Key: "id", Value: artwork.ID}}
	ToggleFavorite(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Data["isFavorited"].(bool))

	// Favorites carry no artwork counter.
	var stored models.Artwork
	database.DB.First(&stored, "id = ?", artwork.ID)
	assert.EqualValues(t, 0, stored.LikeCount)

	c, w = newTestContext(t, "POST", "/api/artworks/"+artwork.ID+"/favorite", nil, viewer.ID, models.RoleViewer)
	c.Params = gin.Params{{Key: "id", Value: artwork.ID}}
	ToggleFavorite(c)

	env = decodeEnvelope(t, w)
	assert.False(t, env.Data["isFavorited"].(bool))

	var rows int64
	database.DB.Model(&models.Favorite{}).Where("artwork_id = ?", artwork.ID).Count(&rows)
	assert.EqualValues(t, 0, rows)
}
