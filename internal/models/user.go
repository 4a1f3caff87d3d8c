package models

import "time"

// User mirrors an identity-provider account. Rows are created and deleted
// exclusively by webhook sync; profile fields follow the provider's record.
type User struct {
	ID              uint   `gorm:"primarykey" json:"id"`
	ClerkID         string `gorm:"uniqueIndex;not null" json:"clerkId"`
	Email           string `gorm:"not null" json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`

	// Credits only ever decrease through CreditsService.Deduct.
	Credits float64  `gorm:"type:decimal(20,8);not null;default:100" json:"credits"`
	Plan    PlanType `gorm:"type:varchar(20);not null;default:'FREE'" json:"plan"`

	Subscription *Subscription `gorm:"constraint:OnDelete:CASCADE" json:"subscription,omitempty"`
	Settings     *UserSetting  `gorm:"constraint:OnDelete:CASCADE" json:"settings,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
