package services

import (
	"testing"

	"github.com/wegnite/saasTemplate/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestSettingsGet_CreatesDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)
	user := seedUser(t, db, "set_user", 100)

	settings, err := svc.Get(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.DefaultTheme, settings.Theme)
	assert.Equal(t, models.DefaultLanguage, settings.Language)
	assert.True(t, settings.EmailNotifications)

	// Second access reuses the same row
	again, err := svc.Get(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)

	var count int64
	db.Model(&models.UserSetting{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSettingsUpdate_PartialFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)
	user := seedUser(t, db, "set_update", 100)

	_, err := svc.Update(user.ID, SettingsUpdate{
		Theme:             strPtr("light"),
		DefaultImageStyle: strPtr("anime"),
	})
	assert.NoError(t, err)

	var stored models.UserSetting
	db.Where("user_id = ?", user.ID).First(&stored)
	assert.Equal(t, "light", stored.Theme)
	assert.Equal(t, "anime", stored.DefaultImageStyle)
	// Untouched fields keep their values
	assert.Equal(t, models.DefaultLanguage, stored.Language)
	assert.True(t, stored.EmailNotifications)
}

func TestSettingsUpdate_DisableNotifications(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)
	user := seedUser(t, db, "set_notif", 100)

	_, err := svc.Update(user.ID, SettingsUpdate{EmailNotifications: boolPtr(false)})
	assert.NoError(t, err)

	var stored models.UserSetting
	db.Where("user_id = ?", user.ID).First(&stored)
	assert.False(t, stored.EmailNotifications)
}

func TestSettingsReset(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)
	user := seedUser(t, db, "set_reset", 100)

	_, err := svc.Update(user.ID, SettingsUpdate{
		Theme:              strPtr("light"),
		Language:           strPtr("en"),
		EmailNotifications: boolPtr(false),
		DefaultImageStyle:  strPtr("oil-painting"),
	})
	assert.NoError(t, err)

	_, err = svc.Reset(user.ID)
	assert.NoError(t, err)

	var stored models.UserSetting
	db.Where("user_id = ?", user.ID).First(&stored)
	assert.Equal(t, models.DefaultTheme, stored.Theme)
	assert.Equal(t, models.DefaultLanguage, stored.Language)
	assert.True(t, stored.EmailNotifications)
	assert.Empty(t, stored.DefaultImageStyle)
}
