package services

import (
	"errors"
	"fmt"

	"github.com/wegnite/saasTemplate/internal/models"

	"gorm.io/gorm"
)

const (
	// CreditsPerImage is the base rate for one generated image.
	CreditsPerImage = 5.0

	// HighQualityMultiplier applies when quality=high is requested.
	HighQualityMultiplier = 1.5

	// MaxImageQuantity caps a single batch request.
	MaxImageQuantity = 4

	QualityStandard = "standard"
	QualityHigh     = "high"
)

var ErrRecordNotOwned = errors.New("record does not belong to this user")

// ImageGenerationParams are the caller-supplied generation options.
type ImageGenerationParams struct {
	Prompt      string
	Style       string
	AspectRatio string
	Quantity    int
	Quality     string
}

// ImageResult is the uniform simulator outcome. Success=false carries a
// normalized error message; callers never see a panic or raw error.
type ImageResult struct {
	Success     bool                     `json:"success"`
	Images      []models.ImageGeneration `json:"images,omitempty"`
	CreditsUsed float64                  `json:"creditsUsed"`
	Error       string                   `json:"error,omitempty"`
}

type ImageService struct {
	db        *gorm.DB
	credits   *CreditsService
	generator ImageGenerator
}

func NewImageService(db *gorm.DB, credits *CreditsService, generator ImageGenerator) *ImageService {
	return &ImageService{db: db, credits: credits, generator: generator}
}

// Generate validates the request, charges the ledger once for the whole
// batch, then persists one record per produced image.
func (s *ImageService) Generate(userID uint, params ImageGenerationParams) (result ImageResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ImageResult{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	if params.Prompt == "" {
		return ImageResult{Error: "prompt must not be empty"}
	}

	style := params.Style
	if style == "" {
		style = "realistic"
	}
	aspectRatio := params.AspectRatio
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}
	quantity := params.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	if quantity > MaxImageQuantity {
		return ImageResult{Error: fmt.Sprintf("quantity must not exceed %d", MaxImageQuantity)}
	}

	creditsPerImage := CreditsPerImage
	if params.Quality == QualityHigh {
		creditsPerImage *= HighQualityMultiplier
	}
	totalCredits := creditsPerImage * float64(quantity)

	description := fmt.Sprintf("Generated %d image(s): %s", quantity, truncate(params.Prompt, 30))
	if _, err := s.credits.Deduct(userID, totalCredits, models.UsageTypeImageGeneration, "", description); err != nil {
		return ImageResult{Error: err.Error()}
	}

	urls, err := s.generator.GenerateImages(params.Prompt, style, aspectRatio, quantity)
	if err != nil {
		return ImageResult{Error: err.Error()}
	}

	records := make([]models.ImageGeneration, 0, len(urls))
	for _, url := range urls {
		record := models.ImageGeneration{
			UserID:      userID,
			Prompt:      params.Prompt,
			Style:       style,
			AspectRatio: aspectRatio,
			ImageURL:    url,
			Status:      models.GenerationStatusCompleted,
			CreditsUsed: creditsPerImage,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return ImageResult{Error: "failed to save generation record"}
		}
		records = append(records, record)
	}

	return ImageResult{
		Success:     true,
		Images:      records,
		CreditsUsed: totalCredits,
	}
}

// Regenerate re-runs the prompt of an existing record for its owner,
// producing a single new image.
func (s *ImageService) Regenerate(userID uint, imageID uint) ImageResult {
	var original models.ImageGeneration
	if err := s.db.First(&original, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ImageResult{Error: "original image record not found"}
		}
		return ImageResult{Error: "failed to load image record"}
	}

	if original.UserID != userID {
		return ImageResult{Error: ErrRecordNotOwned.Error()}
	}

	return s.Generate(userID, ImageGenerationParams{
		Prompt:      original.Prompt,
		Style:       original.Style,
		AspectRatio: original.AspectRatio,
		Quantity:    1,
	})
}

// List returns the user's generated images, newest first.
func (s *ImageService) List(userID uint, page, pageSize int) ([]models.ImageGeneration, int64, error) {
	var images []models.ImageGeneration
	var total int64

	query := s.db.Model(&models.ImageGeneration{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at desc").Limit(pageSize).Offset(offset).Find(&images).Error; err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
