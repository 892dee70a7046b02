package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
)

func postComment(t *testing.T, userID, artworkID string, body interface{}) (int, envelope) {
	c, w := newTestContext(t, "POST", "/api/comments/artwork/"+artworkID, body, userID, models.RoleViewer)
	c.Params = gin.Params{{Key: "artworkId", Value: artworkID}}
	CreateComment(c)
	return w.Code, decodeEnvelope(t, w)
}

func deleteComment(t *testing.T, userID string, role models.Role, commentID string) int {
	c, w := newTestContext(t, "DELETE", "/api/comments/"+commentID, nil, userID, role)
	c.Params = gin.Params{{Key: "id", Value: commentID}}
	DeleteComment(c)
	return w.Code
}

func TestCreateComment_IncrementsCount(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "cmt_artist", models.RoleArtist)
	viewer := createTestUser(t, "cmt_viewer", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	code, _ := postComment(t, viewer.ID, artwork.ID, gin.H{"content": "lovely"})
	assert.Equal(t, http.StatusCreated, code)

	var stored models.Artwork
	database.DB.First(&stored, "id = ?", artwork.ID)
	assert.EqualValues(t, 1, stored.CommentCount)
}

func TestCreateComment_ParentValidation(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "par_artist", models.RoleArtist)
	viewer := createTestUser(t, "par_viewer", models.RoleViewer)
	artworkA := createTestArtwork(t, artist.ID, models.StatusActive)
	artworkB := createTestArtwork(t, artist.ID, models.StatusActive)

	parent := createTestComment(t, artworkA.ID, viewer.ID, nil)

	// Parent on a different artwork is rejected.
	code, _ := postComment(t, viewer.ID, artworkB.ID, gin.H{"content": "reply", "parentId": parent.ID})
	assert.Equal(t, http.StatusNotFound, code)

	// Deleted parent is rejected.
	database.DB.Model(&models.Comment{}).Where("id = ?", parent.ID).Update("status", models.StatusDeleted)
	code, _ = postComment(t, viewer.ID, artworkA.ID, gin.H{"content": "reply", "parentId": parent.ID})
	assert.Equal(t, http.StatusNotFound, code)
}

// Deleting a comment with k active direct replies drops CommentCount
// by exactly k+1 and leaves deeper descendants alone.
func TestDeleteComment_Cascade(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "cas_artist", models.RoleArtist)
	b := createTestUser(t, "cas_b", models.RoleViewer)
	cUser := createTestUser(t, "cas_c", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	// Build the thread through the handler so counters are real.
	_, env := postComment(t, b.ID, artwork.ID, gin.H{"content": "top"})
	top := env.Data["comment"].(map[string]interface{})["id"].(string)

	_, env = postComment(t, cUser.ID, artwork.ID, gin.H{"content": "reply 1", "parentId": top})
	reply1 := env.Data["comment"].(map[string]interface{})["id"].(string)

	postComment(t, b.ID, artwork.ID, gin.H{"content": "reply 2", "parentId": top})

	// Reply-of-reply, depth 2 under top.
	_, env = postComment(t, b.ID, artwork.ID, gin.H{"content": "deep", "parentId": reply1})
	deep := env.Data["comment"].(map[string]interface{})["id"].(string)

	var stored models.Artwork
	database.DB.First(&stored, "id = ?", artwork.ID)
	assert.EqualValues(t, 4, stored.CommentCount)

	code := deleteComment(t, b.ID, models.RoleViewer, top)
	assert.Equal(t, http.StatusOK, code)

	// Top and its 2 direct replies are deleted: count drops by 3.
	database.DB.First(&stored, "id = ?", artwork.ID)
	assert.EqualValues(t, 1, stored.CommentCount)

	// Fresh dest per lookup: a populated primary key would be folded
	// into the next query's conditions.
	var topStored, replyStored, deepStored models.Comment
	database.DB.First(&topStored, "id = ?", top)
	assert.Equal(t, models.StatusDeleted, topStored.Status)
	database.DB.First(&replyStored, "id = ?", reply1)
	assert.Equal(t, models.StatusDeleted, replyStored.Status)

	// Depth-2 reply is untouched.
	database.DB.First(&deepStored, "id = ?", deep)
	assert.Equal(t, models.StatusActive, deepStored.Status)
}

// Scenario: B comments, C replies, B deletes -> both rows deleted and
// the count returns to zero.
func TestDeleteComment_ThreadScenario(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "thr_artist", models.RoleArtist)
	b := createTestUser(t, "thr_b", models.RoleViewer)
	cUser := createTestUser(t, "thr_c", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	_, env := postComment(t, b.ID, artwork.ID, gin.H{"content": "nice piece"})
	bComment := env.Data["comment"].(map[string]interface{})["id"].(string)

	_, env = postComment(t, cUser.ID, artwork.ID, gin.H{"content": "agreed", "parentId": bComment})
	cReply := env.Data["comment"].(map[string]interface{})["id"].(string)

	var stored models.Artwork
	database.DB.First(&stored, "id = ?", artwork.ID)
	assert.EqualValues(t, 2, stored.CommentCount)

	deleteComment(t, b.ID, models.RoleViewer, bComment)

	database.DB.First(&stored, "id = ?", artwork.ID)
	assert.EqualValues(t, 0, stored.CommentCount)

	var comment models.Comment
	database.DB.First(&comment, "id = ?", cReply)
	assert.Equal(t, models.StatusDeleted, comment.Status)
}

func TestDeleteComment_Authorization(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "auth_artist", models.RoleArtist)
	owner := createTestUser(t, "auth_owner", models.RoleViewer)
	other := createTestUser(t, "auth_other", models.RoleViewer)
	admin := createTestUser(t, "auth_admin", models.RoleAdmin)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	comment := createTestComment(t, artwork.ID, owner.ID, nil)

	// A stranger cannot delete.
	code := deleteComment(t, other.ID, models.RoleViewer, comment.ID)
	assert.Equal(t, http.StatusNotFound, code)

	// An admin can.
	code = deleteComment(t, admin.ID, models.RoleAdmin, comment.ID)
	assert.Equal(t, http.StatusOK, code)
}
