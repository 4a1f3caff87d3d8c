package services

import (
	"testing"

	"github.com/wegnite/saasTemplate/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTextGenerationCost(t *testing.T) {
	assert.Equal(t, 2.0, TextGenerationCost(1, QualityStandard))
	assert.Equal(t, 2.0, TextGenerationCost(500, QualityStandard))
	assert.Equal(t, 4.0, TextGenerationCost(501, QualityStandard))
	assert.Equal(t, 20.0, TextGenerationCost(5000, QualityStandard))
	assert.Equal(t, 3.0, TextGenerationCost(500, QualityHigh))
}

func TestTextGenerate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTextService(db, NewCreditsService(db), NewMockGenerator(0))
	user := seedUser(t, db, "txt_user", 100)

	result := svc.Generate(user.ID, TextGenerationParams{
		Prompt:      "write about servers",
		ContentType: "article",
		Tone:        "casual",
		Length:      1200,
	})
	assert.True(t, result.Success)
	assert.Equal(t, 6.0, result.CreditsUsed)
	assert.NotNil(t, result.Text)
	assert.NotEmpty(t, result.Text.GeneratedText)
	assert.Equal(t, "casual", result.Text.Tone)

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, 94.0, stored.Credits)

	var logs []models.UsageLog
	db.Where("user_id = ?", user.ID).Find(&logs)
	assert.Len(t, logs, 1)
	assert.Equal(t, models.UsageTypeTextGeneration, logs[0].Type)
	assert.Equal(t, 6.0, logs[0].CreditsUsed)
}

func TestTextGenerate_Defaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTextService(db, NewCreditsService(db), NewMockGenerator(0))
	user := seedUser(t, db, "txt_defaults", 100)

	result := svc.Generate(user.ID, TextGenerationParams{Prompt: "hello"})
	assert.True(t, result.Success)
	assert.Equal(t, "article", result.Text.ContentType)
	assert.Equal(t, "professional", result.Text.Tone)
	assert.Equal(t, DefaultTextLength, result.Text.Length)
	assert.Equal(t, 2.0, result.CreditsUsed)
}

func TestTextGenerate_EmptyPrompt(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTextService(db, NewCreditsService(db), NewMockGenerator(0))
	user := seedUser(t, db, "txt_empty", 100)

	result := svc.Generate(user.ID, TextGenerationParams{Prompt: ""})
	assert.False(t, result.Success)

	var count int64
	db.Model(&models.UsageLog{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTextGenerate_LengthCap(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTextService(db, NewCreditsService(db), NewMockGenerator(0))
	user := seedUser(t, db, "txt_long", 100)

	result := svc.Generate(user.ID, TextGenerationParams{Prompt: "x", Length: 5001})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "length")

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, 100.0, stored.Credits)
}

func TestTextGet_Ownership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTextService(db, NewCreditsService(db), NewMockGenerator(0))
	owner := seedUser(t, db, "txt_owner", 100)
	other := seedUser(t, db, "txt_other", 100)

	result := svc.Generate(owner.ID, TextGenerationParams{Prompt: "secret"})
	assert.True(t, result.Success)

	record, err := svc.Get(owner.ID, result.Text.ID)
	assert.NoError(t, err)
	assert.Equal(t, "secret", record.Prompt)

	_, err = svc.Get(other.ID, result.Text.ID)
	assert.ErrorIs(t, err, ErrRecordNotOwned)
}
