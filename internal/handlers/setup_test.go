package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/config"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/middleware"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
)

// SetupTestDB points the global DB at a fresh in-memory SQLite
// database with the full schema.
func SetupTestDB() {
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	database.DB = db
	database.DB.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Comment{},
		&models.Like{},
		&models.Favorite{},
		&models.Follow{},
		&models.Report{},
		&models.Notification{},
	)

	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		UploadDir: "testdata/uploads",
	}
	logger.Init("production")
	gin.SetMode(gin.TestMode)
}

// newTestContext builds a gin context carrying an optional JSON body
// and authenticated identity.
func newTestContext(t *testing.T, method, path string, body interface{}, userID string, role models.Role) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	if userID != "" {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextRole, role)
	}
	return c, w
}

func createTestUser(t *testing.T, username string, role models.Role) models.User {
	t.Helper()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createTestArtwork(t *testing.T, artistID string, status models.ContentStatus) models.Artwork {
	t.Helper()

	artwork := models.Artwork{
		ArtistID: artistID,
		Title:    "Test Artwork",
		ImageURL: "/uploads/test.jpg",
		Status:   status,
	}
	if err := database.DB.Create(&artwork).Error; err != nil {
		t.Fatalf("create artwork: %v", err)
	}
	return artwork
}

func createTestComment(t *testing.T, artworkID, userID string, parentID *string) models.Comment {
	t.Helper()

	comment := models.Comment{
		ArtworkID: artworkID,
		UserID:    userID,
		ParentID:  parentID,
		Content:   "test comment",
		Status:    models.StatusActive,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}
	return comment
}

// envelope decodes the standard response envelope.
type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	return env
}
