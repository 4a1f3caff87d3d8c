package services

import (
	"errors"
	"fmt"

	"github.com/wegnite/saasTemplate/internal/models"

	"gorm.io/gorm"
)

const (
	// CreditsPerTextUnit is charged per started block of TextUnitChars.
	CreditsPerTextUnit = 2.0
	TextUnitChars      = 500

	DefaultTextLength = 500
	MaxTextLength     = 5000
)

type TextGenerationParams struct {
	Prompt      string
	ContentType string
	Tone        string
	Length      int
	Quality     string
}

type TextResult struct {
	Success     bool                   `json:"success"`
	Text        *models.TextGeneration `json:"text,omitempty"`
	CreditsUsed float64                `json:"creditsUsed"`
	Error       string                 `json:"error,omitempty"`
}

type TextService struct {
	db        *gorm.DB
	credits   *CreditsService
	generator TextGenerator
}

func NewTextService(db *gorm.DB, credits *CreditsService, generator TextGenerator) *TextService {
	return &TextService{db: db, credits: credits, generator: generator}
}

// TextGenerationCost computes the deterministic price of a request: the
// base rate per started 500-character block, times the quality multiplier.
func TextGenerationCost(length int, quality string) float64 {
	units := (length + TextUnitChars - 1) / TextUnitChars
	if units < 1 {
		units = 1
	}
	cost := CreditsPerTextUnit * float64(units)
	if quality == QualityHigh {
		cost *= HighQualityMultiplier
	}
	return cost
}

func (s *TextService) Generate(userID uint, params TextGenerationParams) (result TextResult) {
	defer func() {
		if r := recover(); r != nil {
			result = TextResult{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	if params.Prompt == "" {
		return TextResult{Error: "prompt must not be empty"}
	}

	contentType := params.ContentType
	if contentType == "" {
		contentType = "article"
	}
	tone := params.Tone
	if tone == "" {
		tone = "professional"
	}
	length := params.Length
	if length <= 0 {
		length = DefaultTextLength
	}
	if length > MaxTextLength {
		return TextResult{Error: fmt.Sprintf("length must not exceed %d characters", MaxTextLength)}
	}

	totalCredits := TextGenerationCost(length, params.Quality)

	description := fmt.Sprintf("Generated %s: %s", contentType, truncate(params.Prompt, 30))
	if _, err := s.credits.Deduct(userID, totalCredits, models.UsageTypeTextGeneration, "", description); err != nil {
		return TextResult{Error: err.Error()}
	}

	generated, err := s.generator.GenerateText(params.Prompt, contentType, tone, length)
	if err != nil {
		return TextResult{Error: err.Error()}
	}

	record := models.TextGeneration{
		UserID:        userID,
		Prompt:        params.Prompt,
		ContentType:   contentType,
		Tone:          tone,
		Length:        length,
		GeneratedText: generated,
		Status:        models.GenerationStatusCompleted,
		CreditsUsed:   totalCredits,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return TextResult{Error: "failed to save generation record"}
	}

	return TextResult{
		Success:     true,
		Text:        &record,
		CreditsUsed: totalCredits,
	}
}

// List returns the user's text generations, newest first.
func (s *TextService) List(userID uint, page, pageSize int) ([]models.TextGeneration, int64, error) {
	var texts []models.TextGeneration
	var total int64

	query := s.db.Model(&models.TextGeneration{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at desc").Limit(pageSize).Offset(offset).Find(&texts).Error; err != nil {
		return nil, 0, err
	}

	return texts, total, nil
}

// Get returns one record after an ownership check.
func (s *TextService) Get(userID, id uint) (*models.TextGeneration, error) {
	var record models.TextGeneration
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrRecordNotOwned
	}
	return &record, nil
}
