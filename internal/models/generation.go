package models

import (
	"time"

	"gorm.io/datatypes"
)

// Result records are read-only history: created once per simulated
// operation, never mutated afterwards.

// ImageGeneration is one produced image. A batch request of quantity N
// creates N rows sharing a single ledger deduction.
type ImageGeneration struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	UserID      uint             `gorm:"index;not null" json:"userId"`
	Prompt      string           `gorm:"type:text;not null" json:"prompt"`
	Style       string           `gorm:"type:varchar(50)" json:"style"`
	AspectRatio string           `gorm:"type:varchar(10)" json:"aspectRatio"`
	ImageURL    string           `gorm:"type:varchar(255)" json:"imageUrl"`
	Status      GenerationStatus `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	CreditsUsed float64          `gorm:"type:decimal(20,8);not null" json:"creditsUsed"`
	CreatedAt   time.Time        `gorm:"index" json:"createdAt"`
}

type TextGeneration struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	UserID        uint             `gorm:"index;not null" json:"userId"`
	Prompt        string           `gorm:"type:text;not null" json:"prompt"`
	ContentType   string           `gorm:"type:varchar(20)" json:"contentType"`
	Tone          string           `gorm:"type:varchar(20)" json:"tone"`
	Length        int              `json:"length"`
	GeneratedText string           `gorm:"type:text" json:"generatedText"`
	Status        GenerationStatus `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	CreditsUsed   float64          `gorm:"type:decimal(20,8);not null" json:"creditsUsed"`
	CreatedAt     time.Time        `gorm:"index" json:"createdAt"`
}

// AudioProcessing covers transcription, noise reduction and voice
// synthesis. Exactly one of OutputAudioURL / TranscriptText is set
// depending on the process type.
type AudioProcessing struct {
	ID             uint             `gorm:"primarykey" json:"id"`
	UserID         uint             `gorm:"index;not null" json:"userId"`
	ProcessType    string           `gorm:"type:varchar(30);not null" json:"processType"`
	InputAudioURL  string           `gorm:"type:varchar(255);not null" json:"inputAudioUrl"`
	OutputAudioURL string           `gorm:"type:varchar(255)" json:"outputAudioUrl,omitempty"`
	TranscriptText string           `gorm:"type:text" json:"transcriptText,omitempty"`
	Parameters     datatypes.JSON   `json:"parameters"`
	Status         GenerationStatus `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	CreditsUsed    float64          `gorm:"type:decimal(20,8);not null" json:"creditsUsed"`
	CreatedAt      time.Time        `gorm:"index" json:"createdAt"`
}
