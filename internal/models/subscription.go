package models

import "time"

// Subscription is the billing state for a user. At most one per user; the
// plan field is kept in sync with User.Plan by SubscriptionService.
type Subscription struct {
	ID                   uint               `gorm:"primarykey" json:"id"`
	UserID               uint               `gorm:"uniqueIndex;not null" json:"userId"`
	Plan                 PlanType           `gorm:"type:varchar(20);not null;default:'FREE'" json:"plan"`
	Status               SubscriptionStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	StripeSubscriptionID string             `gorm:"type:varchar(100)" json:"stripeSubscriptionId,omitempty"`
	CurrentPeriodStart   time.Time          `json:"currentPeriodStart"`
	CurrentPeriodEnd     time.Time          `json:"currentPeriodEnd"`
	CancelAtPeriodEnd    bool               `gorm:"not null;default:false" json:"cancelAtPeriodEnd"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}
