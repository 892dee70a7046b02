package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&User{}, &Follow{}, &Report{}))
	return db
}

func TestFollow_SelfFollowRejectedByHook(t *testing.T) {
	db := openTestDB(t)

	err := db.Create(&Follow{FollowerID: "u1", FollowingID: "u1"}).Error
	assert.ErrorIs(t, err, ErrSelfFollow)

	assert.NoError(t, db.Create(&Follow{FollowerID: "u1", FollowingID: "u2"}).Error)
}

func TestReport_ExactlyOneTargetEnforcedByHook(t *testing.T) {
	db := openTestDB(t)

	artworkID := "a1"
	userID := "u2"

	err := db.Create(&Report{ReporterID: "u1", Reason: ReasonSpam}).Error
	assert.ErrorIs(t, err, ErrReportTarget)

	err = db.Create(&Report{ReporterID: "u1", Reason: ReasonSpam, ArtworkID: &artworkID, ReportedUserID: &userID}).Error
	assert.ErrorIs(t, err, ErrReportTarget)

	assert.NoError(t, db.Create(&Report{ReporterID: "u1", Reason: ReasonSpam, ArtworkID: &artworkID}).Error)
}

func TestRoleChecks(t *testing.T) {
	assert.True(t, RoleArtist.CanUpload())
	assert.True(t, RoleAdmin.CanUpload())
	assert.False(t, RoleViewer.CanUpload())

	assert.True(t, RoleAdmin.CanModerate())
	assert.False(t, RoleArtist.CanModerate())

	assert.True(t, ValidRole(RoleViewer))
	assert.False(t, ValidRole("owner"))
}
