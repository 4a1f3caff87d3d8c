package services

import (
	"testing"

	"github.com/wegnite/saasTemplate/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newImageService(db *gorm.DB) *ImageService {
	return NewImageService(db, NewCreditsService(db), NewMockGenerator(0))
}

func TestImageGenerate(t *testing.T) {
	db := setupTestDB(t)
	svc := newImageService(db)
	user := seedUser(t, db, "img_user", 100)

	result := svc.Generate(user.ID, ImageGenerationParams{Prompt: "a cat on a roof"})
	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, 5.0, result.CreditsUsed)
	assert.Len(t, result.Images, 1)
	assert.Equal(t, "realistic", result.Images[0].Style)
	assert.Equal(t, "1:1", result.Images[0].AspectRatio)
	assert.Equal(t, models.GenerationStatusCompleted, result.Images[0].Status)

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, 95.0, stored.Credits)
}

func TestImageGenerate_Batch(t *testing.T) {
	db := setupTestDB(t)
	svc := newImageService(db)
	user := seedUser(t, db, "img_batch", 100)

	result := svc.Generate(user.ID, ImageGenerationParams{
		Prompt:      "mountain sunrise",
		Style:       "anime",
		AspectRatio: "16:9",
		Quantity:    3,
	})
	assert.True(t, result.Success)
	assert.Equal(t, 15.0, result.CreditsUsed)
	assert.Len(t, result.Images, 3)

	// One ledger entry for the whole batch, one record per image
	var logs []models.UsageLog
	db.Where("user_id = ?", user.ID).Find(&logs)
	assert.Len(t, logs, 1)
	assert.Equal(t, 15.0, logs[0].CreditsUsed)

	var count int64
	db.Model(&models.ImageGeneration{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(3), count)

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, 85.0, stored.Credits)
}

func TestImageGenerate_HighQuality(t *testing.T) {
	db := setupTestDB(t)
	svc := newImageService(db)
	user := seedUser(t, db, "img_hq", 100)

	result := svc.Generate(user.ID, ImageGenerationParams{
		Prompt:  "portrait",
		Quality: QualityHigh,
	})
	assert.True(t, result.Success)
	assert.Equal(t, 7.5, result.CreditsUsed)

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, 92.5, stored.Credits)
}

func TestImageGenerate_EmptyPrompt(t *testing.T) {
	db := setupTestDB(t)
	svc := newImageService(db)
	user := seedUser(t, db, "img_empty", 100)

	result := svc.Generate(user.ID, ImageGenerationParams{Prompt: ""})
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	// Validation happens before any side effect
	var logCount, recCount int64
	db.Model(&models.UsageLog{}).Where("user_id = ?", user.ID).Count(&logCount)
	db.Model(&models.ImageGeneration{}).Where("user_id = ?", user.ID).Count(&recCount)
	assert.Equal(t, int64(0), logCount)
	assert.Equal(t, int64(0), recCount)

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, 100.0, stored.Credits)
}

func TestImageGenerate_QuantityCap(t *testing.T) {
	db := setupTestDB(t)
	svc := newImageService(db)
	user := seedUser(t, db, "img_cap", 100)

	result := svc.Generate(user.ID, ImageGenerationParams{Prompt: "x", Quantity: 5})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "quantity")

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, 100.0, stored.Credits)
}

func TestImageGenerate_InsufficientCredits(t *testing.T) {
	db := setupTestDB(t)
	svc := newImageService(db)
	user := seedUser(t, db, "img_broke", 3)

	result := svc.Generate(user.ID, ImageGenerationParams{Prompt: "expensive"})
	assert.False(t, result.Success)
	assert.Equal(t, ErrInsufficientCredits.Error(), result.Error)

	var count int64
	db.Model(&models.ImageGeneration{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestImageRegenerate(t *testing.T) {
	db := setupTestDB(t)
	svc := newImageService(db)
	user := seedUser(t, db, "img_regen", 100)

	first := svc.Generate(user.ID, ImageGenerationParams{Prompt: "neon city", Style: "cyberpunk"})
	assert.True(t, first.Success)

	second := svc.Regenerate(user.ID, first.Images[0].ID)
	assert.True(t, second.Success)
	assert.Len(t, second.Images, 1)
	assert.Equal(t, "neon city", second.Images[0].Prompt)
	assert.Equal(t, "cyberpunk", second.Images[0].Style)
}

func TestImageRegenerate_NotOwned(t *testing.T) {
	db := setupTestDB(t)
	svc := newImageService(db)
	owner := seedUser(t, db, "img_owner", 100)
	other := seedUser(t, db, "img_other", 100)

	first := svc.Generate(owner.ID, ImageGenerationParams{Prompt: "private"})
	assert.True(t, first.Success)

	result := svc.Regenerate(other.ID, first.Images[0].ID)
	assert.False(t, result.Success)
	assert.Equal(t, ErrRecordNotOwned.Error(), result.Error)
}

func TestImageList(t *testing.T) {
	db := setupTestDB(t)
	svc := newImageService(db)
	user := seedUser(t, db, "img_list", 100)

	for i := 0; i < 3; i++ {
		assert.True(t, svc.Generate(user.ID, ImageGenerationParams{Prompt: "p"}).Success)
	}

	images, total, err := svc.List(user.ID, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, images, 2)
}
