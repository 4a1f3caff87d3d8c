package models

import "time"

const (
	DefaultTheme    = "dark"
	DefaultLanguage = "zh"
)

// UserSetting holds per-user preferences. A row is created with defaults on
// first access if the user has none.
type UserSetting struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Theme              string    `gorm:"type:varchar(20);not null;default:'dark'" json:"theme"`
	Language           string    `gorm:"type:varchar(10);not null;default:'zh'" json:"language"`
	EmailNotifications bool      `gorm:"not null;default:true" json:"emailNotifications"`
	DefaultImageStyle  string    `gorm:"type:varchar(50)" json:"defaultImageStyle,omitempty"`
	DefaultAspectRatio string    `gorm:"type:varchar(10)" json:"defaultAspectRatio,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
