package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wegnite/saasTemplate/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AudioProcessTranscription  = "transcription"
	AudioProcessNoiseReduction = "noise-reduction"
	AudioProcessVoiceSynthesis = "voice-synthesis"

	CreditsPerTranscription  = 5.0
	CreditsPerNoiseReduction = 3.0
	CreditsPerVoiceSynthesis = 8.0
)

type AudioProcessParams struct {
	ProcessType   string
	InputAudioURL string
	Language      string
	VoiceID       string
	Text          string
	Quality       string
}

type AudioResult struct {
	Success     bool                    `json:"success"`
	Audio       *models.AudioProcessing `json:"audio,omitempty"`
	CreditsUsed float64                 `json:"creditsUsed"`
	Error       string                  `json:"error,omitempty"`
}

type AudioService struct {
	db        *gorm.DB
	credits   *CreditsService
	processor AudioProcessor
}

func NewAudioService(db *gorm.DB, credits *CreditsService, processor AudioProcessor) *AudioService {
	return &AudioService{db: db, credits: credits, processor: processor}
}

// AudioProcessCost returns the base rate for a process type with the
// quality multiplier applied. Unknown types return 0.
func AudioProcessCost(processType, quality string) float64 {
	var cost float64
	switch processType {
	case AudioProcessTranscription:
		cost = CreditsPerTranscription
	case AudioProcessNoiseReduction:
		cost = CreditsPerNoiseReduction
	case AudioProcessVoiceSynthesis:
		cost = CreditsPerVoiceSynthesis
	default:
		return 0
	}
	if quality == QualityHigh {
		cost *= HighQualityMultiplier
	}
	return cost
}

func audioDescription(processType string) string {
	switch processType {
	case AudioProcessTranscription:
		return "Audio transcription"
	case AudioProcessNoiseReduction:
		return "Audio noise reduction"
	case AudioProcessVoiceSynthesis:
		return "Voice synthesis"
	}
	return "Audio processing"
}

func (s *AudioService) Process(userID uint, params AudioProcessParams) (result AudioResult) {
	defer func() {
		if r := recover(); r != nil {
			result = AudioResult{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	if params.InputAudioURL == "" {
		return AudioResult{Error: "input audio URL must not be empty"}
	}
	if params.ProcessType == AudioProcessVoiceSynthesis && params.Text == "" {
		return AudioResult{Error: "voice synthesis requires text"}
	}

	totalCredits := AudioProcessCost(params.ProcessType, params.Quality)
	if totalCredits == 0 {
		return AudioResult{Error: fmt.Sprintf("unsupported process type: %s", params.ProcessType)}
	}

	language := params.Language
	if language == "" {
		language = "zh"
	}
	quality := params.Quality
	if quality == "" {
		quality = QualityStandard
	}

	if _, err := s.credits.Deduct(userID, totalCredits, models.UsageTypeAudioProcessing, "", audioDescription(params.ProcessType)); err != nil {
		return AudioResult{Error: err.Error()}
	}

	output, err := s.processor.ProcessAudio(params.ProcessType, params.InputAudioURL, language, params.VoiceID, params.Text, quality)
	if err != nil {
		return AudioResult{Error: err.Error()}
	}

	parameters, err := json.Marshal(map[string]interface{}{
		"language":   language,
		"quality":    quality,
		"voiceId":    params.VoiceID,
		"textLength": len([]rune(params.Text)),
	})
	if err != nil {
		return AudioResult{Error: "failed to encode parameters"}
	}

	record := models.AudioProcessing{
		UserID:         userID,
		ProcessType:    params.ProcessType,
		InputAudioURL:  params.InputAudioURL,
		OutputAudioURL: output.OutputAudioURL,
		TranscriptText: output.TranscriptText,
		Parameters:     datatypes.JSON(parameters),
		Status:         models.GenerationStatusCompleted,
		CreditsUsed:    totalCredits,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return AudioResult{Error: "failed to save processing record"}
	}

	return AudioResult{
		Success:     true,
		Audio:       &record,
		CreditsUsed: totalCredits,
	}
}

// List returns the user's audio processings, newest first.
func (s *AudioService) List(userID uint, page, pageSize int) ([]models.AudioProcessing, int64, error) {
	var audios []models.AudioProcessing
	var total int64

	query := s.db.Model(&models.AudioProcessing{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at desc").Limit(pageSize).Offset(offset).Find(&audios).Error; err != nil {
		return nil, 0, err
	}

	return audios, total, nil
}

// Get returns one record after an ownership check.
func (s *AudioService) Get(userID, id uint) (*models.AudioProcessing, error) {
	var record models.AudioProcessing
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
