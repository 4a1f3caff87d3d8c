package models

type PlanType string

const (
	PlanFree       PlanType = "FREE"
	PlanPro        PlanType = "PRO"
	PlanEnterprise PlanType = "ENTERPRISE"
)

// ValidPlan reports whether p is one of the supported plan tiers.
func ValidPlan(p PlanType) bool {
	switch p {
	case PlanFree, PlanPro, PlanEnterprise:
		return true
	}
	return false
}

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
)

// UsageType tags a UsageLog entry with the feature that consumed credits.
type UsageType string

const (
	UsageTypeImageGeneration UsageType = "image-generation"
	UsageTypeTextGeneration  UsageType = "text-generation"
	UsageTypeAudioProcessing UsageType = "audio-processing"
)

// GenerationStatus is the lifecycle state of a persisted result record.
// Mocked generation completes synchronously, so records are written in
// their terminal state.
type GenerationStatus string

const (
	GenerationStatusCompleted GenerationStatus = "completed"
	GenerationStatusFailed    GenerationStatus = "failed"
)
