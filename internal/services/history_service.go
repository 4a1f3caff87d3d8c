package services

import (
	"sort"
	"time"

	"github.com/wegnite/saasTemplate/internal/models"

	"gorm.io/gorm"
)

// HistoryItem is one entry of the unified generation feed.
type HistoryItem struct {
	Kind      string      `json:"kind"` // "image", "text" or "audio"
	CreatedAt time.Time   `json:"createdAt"`
	Record    interface{} `json:"record"`
}

// HistoryService reads the three result-record tables as one feed. Result
// rows are user-deletable history; the usage log they were paid through is
// not.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Recent merges the newest records of all three kinds, most recent first.
func (s *HistoryService) Recent(userID uint, limit int) ([]HistoryItem, error) {
	if limit <= 0 {
		limit = 5
	}

	var images []models.ImageGeneration
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Limit(limit).Find(&images).Error; err != nil {
		return nil, err
	}
	var texts []models.TextGeneration
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Limit(limit).Find(&texts).Error; err != nil {
		return nil, err
	}
	var audios []models.AudioProcessing
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Limit(limit).Find(&audios).Error; err != nil {
		return nil, err
	}

	items := make([]HistoryItem, 0, len(images)+len(texts)+len(audios))
	for i := range images {
		items = append(items, HistoryItem{Kind: "image", CreatedAt: images[i].CreatedAt, Record: images[i]})
	}
	for i := range texts {
		items = append(items, HistoryItem{Kind: "text", CreatedAt: texts[i].CreatedAt, Record: texts[i]})
	}
	for i := range audios {
		items = append(items, HistoryItem{Kind: "audio", CreatedAt: audios[i].CreatedAt, Record: audios[i]})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// DeleteImage removes one of the user's own image records. Multi-delete
// semantics: removing an absent or foreign record affects zero rows and is
// not an error.
func (s *HistoryService) DeleteImage(userID, id uint) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.ImageGeneration{}).Error
}

func (s *HistoryService) DeleteText(userID, id uint) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.TextGeneration{}).Error
}

func (s *HistoryService) DeleteAudio(userID, id uint) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.AudioProcessing{}).Error
}
