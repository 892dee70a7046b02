package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
)

func postReport(t *testing.T, userID string, body interface{}) (int, envelope) {
	c, w := newTestContext(t, "POST", "/api/reports", body, userID, models.RoleViewer)
	CreateReport(c)
	return w.Code, decodeEnvelope(t, w)
}

func TestCreateReport_ExactlyOneTarget(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "rep_artist", models.RoleArtist)
	reporter := createTestUser(t, "rep_reporter", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	// No target.
	code, _ := postReport(t, reporter.ID, gin.H{"reason": "spam"})
	assert.Equal(t, http.StatusBadRequest, code)

	// Two targets.
	code, _ = postReport(t, reporter.ID, gin.H{
		"reason":         "spam",
		"artworkId":      artwork.ID,
		"reportedUserId": artist.ID,
	})
	assert.Equal(t, http.StatusBadRequest, code)

	// One target succeeds.
	code, _ = postReport(t, reporter.ID, gin.H{"reason": "spam", "artworkId": artwork.ID})
	assert.Equal(t, http.StatusCreated, code)
}

func TestCreateReport_DuplicateRejected(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "dup_artist", models.RoleArtist)
	reporter := createTestUser(t, "dup_reporter", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	code, _ := postReport(t, reporter.ID, gin.H{"reason": "spam", "artworkId": artwork.ID})
	assert.Equal(t, http.StatusCreated, code)

	// Same target again with a different reason still fails.
	code, env := postReport(t, reporter.ID, gin.H{"reason": "harassment", "artworkId": artwork.ID})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "already reported")

	// A different reporter may report the same target.
	other := createTestUser(t, "dup_other", models.RoleViewer)
	code, _ = postReport(t, other.ID, gin.H{"reason": "spam", "artworkId": artwork.ID})
	assert.Equal(t, http.StatusCreated, code)
}

// The composite unique index catches a duplicate that slips past the
// handler check, e.g. two submissions racing.
func TestCreateReport_DuplicateBlockedBySchema(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "sch_artist", models.RoleArtist)
	reporter := createTestUser(t, "sch_reporter", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	first := models.Report{
		ReporterID: reporter.ID,
		ArtworkID:  &artwork.ID,
		Reason:     models.ReasonSpam,
		Status:     models.ReportPending,
	}
	assert.NoError(t, database.DB.Create(&first).Error)

	second := models.Report{
		ReporterID: reporter.ID,
		ArtworkID:  &artwork.ID,
		Reason:     models.ReasonOther,
		Status:     models.ReportPending,
	}
	assert.Error(t, database.DB.Create(&second).Error)

	// A different target by the same reporter is still allowed.
	comment := createTestComment(t, artwork.ID, artist.ID, nil)
	third := models.Report{
		ReporterID: reporter.ID,
		CommentID:  &comment.ID,
		Reason:     models.ReasonSpam,
		Status:     models.ReportPending,
	}
	assert.NoError(t, database.DB.Create(&third).Error)
}

func TestCreateReport_SelfTargetGuards(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "self_artist", models.RoleArtist)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)
	comment := createTestComment(t, artwork.ID, artist.ID, nil)

	// Self-report.
	code, _ := postReport(t, artist.ID, gin.H{"reason": "spam", "reportedUserId": artist.ID})
	assert.Equal(t, http.StatusBadRequest, code)

	// Own artwork.
	code, _ = postReport(t, artist.ID, gin.H{"reason": "spam", "artworkId": artwork.ID})
	assert.Equal(t, http.StatusBadRequest, code)

	// Own comment.
	code, _ = postReport(t, artist.ID, gin.H{"reason": "spam", "commentId": comment.ID})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreateReport_TargetMustBeActive(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "act_artist", models.RoleArtist)
	reporter := createTestUser(t, "act_reporter", models.RoleViewer)
	hidden := createTestArtwork(t, artist.ID, models.StatusHidden)

	code, _ := postReport(t, reporter.ID, gin.H{"reason": "spam", "artworkId": hidden.ID})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = postReport(t, reporter.ID, gin.H{"reason": "spam", "artworkId": "no-such-artwork"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateReport_InvalidReason(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "rsn_artist", models.RoleArtist)
	reporter := createTestUser(t, "rsn_reporter", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	code, _ := postReport(t, reporter.ID, gin.H{"reason": "because", "artworkId": artwork.ID})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreateReport_ReturnsTargetSummary(t *testing.T) {
	SetupTestDB()

	artist := createTestUser(t, "sum_artist", models.RoleArtist)
	reporter := createTestUser(t, "sum_reporter", models.RoleViewer)
	artwork := createTestArtwork(t, artist.ID, models.StatusActive)

	code, env := postReport(t, reporter.ID, gin.H{"reason": "copyright", "artworkId": artwork.ID})
	assert.Equal(t, http.StatusCreated, code)

	report := env.Data["report"].(map[string]interface{})
	target := report["target"].(map[string]interface{})
	assert.Equal(t, "artwork", target["type"])
}
