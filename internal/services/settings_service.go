package services

import (
	"errors"

	"github.com/wegnite/saasTemplate/internal/models"

	"gorm.io/gorm"
)

// SettingsUpdate carries optional preference changes; nil fields are left
// untouched.
type SettingsUpdate struct {
	Theme              *string
	Language           *string
	EmailNotifications *bool
	DefaultImageStyle  *string
	DefaultAspectRatio *string
}

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the user's settings, creating a defaults row on first access.
func (s *SettingsService) Get(userID uint) (*models.UserSetting, error) {
	var settings models.UserSetting
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.UserSetting{
		UserID:             userID,
		Theme:              models.DefaultTheme,
		Language:           models.DefaultLanguage,
		EmailNotifications: true,
	}
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update upserts the user's settings with the provided fields.
func (s *SettingsService) Update(userID uint, update SettingsUpdate) (*models.UserSetting, error) {
	settings, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Theme != nil {
		updates["theme"] = *update.Theme
	}
	if update.Language != nil {
		updates["language"] = *update.Language
	}
	if update.EmailNotifications != nil {
		updates["email_notifications"] = *update.EmailNotifications
	}
	if update.DefaultImageStyle != nil {
		updates["default_image_style"] = *update.DefaultImageStyle
	}
	if update.DefaultAspectRatio != nil {
		updates["default_aspect_ratio"] = *update.DefaultAspectRatio
	}

	if len(updates) > 0 {
		if err := s.db.Model(settings).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// Reset restores every preference to its default value.
func (s *SettingsService) Reset(userID uint) (*models.UserSetting, error) {
	settings, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	err = s.db.Model(settings).Updates(map[string]interface{}{
		"theme":                models.DefaultTheme,
		"language":             models.DefaultLanguage,
		"email_notifications":  true,
		"default_image_style":  "",
		"default_aspect_ratio": "",
	}).Error
	if err != nil {
		return nil, err
	}

	return settings, nil
}
