package services

import (
	"testing"

	"github.com/wegnite/saasTemplate/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestHistoryRecent_MergesAllKinds(t *testing.T) {
	db := setupTestDB(t)
	credits := NewCreditsService(db)
	gen := NewMockGenerator(0)
	images := NewImageService(db, credits, gen)
	texts := NewTextService(db, credits, gen)
	audios := NewAudioService(db, credits, gen)
	svc := NewHistoryService(db)

	user := seedUser(t, db, "hist_user", 100)

	assert.True(t, images.Generate(user.ID, ImageGenerationParams{Prompt: "a"}).Success)
	assert.True(t, texts.Generate(user.ID, TextGenerationParams{Prompt: "b"}).Success)
	assert.True(t, audios.Process(user.ID, AudioProcessParams{
		ProcessType:   AudioProcessTranscription,
		InputAudioURL: "/uploads/c.mp3",
	}).Success)

	items, err := svc.Recent(user.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, items, 3)

	kinds := make(map[string]bool)
	for _, item := range items {
		kinds[item.Kind] = true
	}
	assert.True(t, kinds["image"])
	assert.True(t, kinds["text"])
	assert.True(t, kinds["audio"])

	// Newest first
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i-1].CreatedAt.Before(items[i].CreatedAt))
	}
}

func TestHistoryRecent_Limit(t *testing.T) {
	db := setupTestDB(t)
	credits := NewCreditsService(db)
	images := NewImageService(db, credits, NewMockGenerator(0))
	svc := NewHistoryService(db)

	user := seedUser(t, db, "hist_limit", 100)
	for i := 0; i < 4; i++ {
		assert.True(t, images.Generate(user.ID, ImageGenerationParams{Prompt: "p"}).Success)
	}

	items, err := svc.Recent(user.ID, 2)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestHistoryDelete_OwnRecordOnly(t *testing.T) {
	db := setupTestDB(t)
	credits := NewCreditsService(db)
	images := NewImageService(db, credits, NewMockGenerator(0))
	svc := NewHistoryService(db)

	owner := seedUser(t, db, "hist_owner", 100)
	other := seedUser(t, db, "hist_other", 100)

	result := images.Generate(owner.ID, ImageGenerationParams{Prompt: "keep"})
	assert.True(t, result.Success)
	id := result.Images[0].ID

	// Foreign delete affects zero rows and is not an error
	assert.NoError(t, svc.DeleteImage(other.ID, id))
	var count int64
	db.Model(&models.ImageGeneration{}).Where("id = ?", id).Count(&count)
	assert.Equal(t, int64(1), count)

	assert.NoError(t, svc.DeleteImage(owner.ID, id))
	db.Model(&models.ImageGeneration{}).Where("id = ?", id).Count(&count)
	assert.Equal(t, int64(0), count)

	// Deleting result records never touches the ledger
	var logCount int64
	db.Model(&models.UsageLog{}).Where("user_id = ?", owner.ID).Count(&logCount)
	assert.Equal(t, int64(1), logCount)
}

func TestHistoryDelete_AbsentRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHistoryService(db)
	user := seedUser(t, db, "hist_absent", 100)

	assert.NoError(t, svc.DeleteText(user.ID, 9999))
	assert.NoError(t, svc.DeleteAudio(user.ID, 9999))
}
