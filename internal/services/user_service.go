package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wegnite/saasTemplate/internal/models"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// UserProfile carries the mutable fields synced from the identity provider.
type UserProfile struct {
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// UserService manages identity-provider user mirrors. Lookups go through a
// redis read-through cache when a client is configured; a nil cache
// disables it.
type UserService struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewUserService(db *gorm.DB, cache *redis.Client) *UserService {
	return &UserService{db: db, cache: cache}
}

func userCacheKey(clerkID string) string {
	return fmt.Sprintf("user:clerk:%s", clerkID)
}

// FindByID loads a user with subscription and settings preloaded.
func (s *UserService) FindByID(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Subscription").Preload("Settings").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByClerkID resolves the local mirror of an identity-provider account.
func (s *UserService) FindByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	if s.cache != nil {
		val, err := s.cache.Get(ctx, userCacheKey(clerkID)).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return &user, nil
			}
		}
	}

	var user models.User
	err := s.db.Preload("Subscription").Preload("Settings").
		Where("clerk_id = ?", clerkID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(user); err == nil {
			s.cache.Set(ctx, userCacheKey(clerkID), data, time.Hour)
		}
	}

	return &user, nil
}

// Create inserts a new user together with a default settings row.
func (s *UserService) Create(clerkID string, profile UserProfile) (*models.User, error) {
	user := models.User{
		ClerkID:         clerkID,
		Email:           profile.Email,
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		ProfileImageURL: profile.ProfileImageURL,
		Credits:         100,
		Plan:            models.PlanFree,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		settings := models.UserSetting{
			UserID:             user.ID,
			Theme:              models.DefaultTheme,
			Language:           models.DefaultLanguage,
			EmailNotifications: true,
		}
		return tx.Create(&settings).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpsertByClerkID creates the mirror row on first sync and updates the
// mutable profile fields on later syncs. It is the webhook write path.
func (s *UserService) UpsertByClerkID(ctx context.Context, clerkID string, profile UserProfile) (*models.User, error) {
	var existing models.User
	err := s.db.Where("clerk_id = ?", clerkID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.Create(clerkID, profile)
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"email":             profile.Email,
		"first_name":        profile.FirstName,
		"last_name":         profile.LastName,
		"profile_image_url": profile.ProfileImageURL,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.invalidate(ctx, clerkID)

	return &existing, nil
}

// DeleteByClerkID removes a user and its dependents. Deleting an absent
// user is not an error, so webhook redeliveries are harmless.
func (s *UserService) DeleteByClerkID(ctx context.Context, clerkID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("clerk_id = ?", clerkID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		for _, m := range []interface{}{
			&models.UsageLog{},
			&models.ImageGeneration{},
			&models.TextGeneration{},
			&models.AudioProcessing{},
			&models.UserSetting{},
			&models.Subscription{},
		} {
			if err := tx.Where("user_id = ?", user.ID).Delete(m).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, clerkID)
	return nil
}

func (s *UserService) invalidate(ctx context.Context, clerkID string) {
	if s.cache != nil && clerkID != "" {
		s.cache.Del(ctx, userCacheKey(clerkID))
	}
}
