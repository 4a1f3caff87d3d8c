package models

import "time"

// UsageLog is the append-only audit trail of credit consumption. Every row
// is written in the same transaction as the balance decrement it records;
// rows are never updated and only removed by user-deletion cleanup.
type UsageLog struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Type        UsageType `gorm:"type:varchar(50);index;not null" json:"type"`
	CreditsUsed float64   `gorm:"type:decimal(20,8);not null" json:"creditsUsed"`
	FeatureID   string    `gorm:"type:varchar(64)" json:"featureId,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"index;precision:3" json:"createdAt"`
}
