package services

import (
	"context"
	"errors"
	"time"

	"github.com/wegnite/saasTemplate/internal/models"

	"gorm.io/gorm"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

// PlanCredits is the monthly credit grant per plan tier.
var PlanCredits = map[models.PlanType]float64{
	models.PlanFree:       100,
	models.PlanPro:        500,
	models.PlanEnterprise: 2000,
}

// SubscriptionData describes the desired subscription state on upsert.
type SubscriptionData struct {
	Plan                 models.PlanType
	Status               models.SubscriptionStatus
	StripeSubscriptionID string
	CurrentPeriodEnd     time.Time
	CancelAtPeriodEnd    bool
}

type SubscriptionService struct {
	db      *gorm.DB
	credits *CreditsService
	users   *UserService
	now     func() time.Time
}

func NewSubscriptionService(db *gorm.DB, credits *CreditsService, users *UserService) *SubscriptionService {
	return &SubscriptionService{db: db, credits: credits, users: users, now: time.Now}
}

// Get returns the user's subscription, if any.
func (s *SubscriptionService) Get(userID uint) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.Where("user_id = ?", userID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// Upsert creates or updates the user's subscription row.
func (s *SubscriptionService) Upsert(userID uint, data SubscriptionData) (*models.Subscription, error) {
	var existing models.Subscription
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		sub := models.Subscription{
			UserID:               userID,
			Plan:                 data.Plan,
			Status:               data.Status,
			StripeSubscriptionID: data.StripeSubscriptionID,
			CurrentPeriodStart:   s.now(),
			CurrentPeriodEnd:     data.CurrentPeriodEnd,
			CancelAtPeriodEnd:    data.CancelAtPeriodEnd,
		}
		if err := s.db.Create(&sub).Error; err != nil {
			return nil, err
		}
		return &sub, nil
	}

	updates := map[string]interface{}{
		"plan":                   data.Plan,
		"status":                 data.Status,
		"stripe_subscription_id": data.StripeSubscriptionID,
		"current_period_end":     data.CurrentPeriodEnd,
		"cancel_at_period_end":   data.CancelAtPeriodEnd,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// IsActive reports whether the user currently has service. A user without
// a subscription row is active exactly when they are on the free plan.
func (s *SubscriptionService) IsActive(userID uint) (bool, error) {
	sub, err := s.Get(userID)
	if err != nil {
		if !errors.Is(err, ErrSubscriptionNotFound) {
			return false, err
		}
		var user models.User
		if err := s.db.Select("plan").First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, ErrUserNotFound
			}
			return false, err
		}
		return user.Plan == models.PlanFree, nil
	}

	return sub.Status == models.SubscriptionStatusActive && sub.CurrentPeriodEnd.After(s.now()), nil
}

// Cancel marks the subscription to lapse at period end.
func (s *SubscriptionService) Cancel(userID uint) (*models.Subscription, error) {
	return s.setCancelFlag(userID, true)
}

// Reactivate clears a pending period-end cancellation.
func (s *SubscriptionService) Reactivate(userID uint) (*models.Subscription, error) {
	return s.setCancelFlag(userID, false)
}

func (s *SubscriptionService) setCancelFlag(userID uint, cancel bool) (*models.Subscription, error) {
	sub, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(sub).Update("cancel_at_period_end", cancel).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// ChangePlan upserts the subscription to the new plan and syncs the user's
// plan field in one transaction. The user's cache entry is dropped after
// commit so lookups never serve the old plan.
func (s *SubscriptionService) ChangePlan(ctx context.Context, userID uint, plan models.PlanType) (*models.Subscription, error) {
	if !models.ValidPlan(plan) {
		return nil, errors.New("invalid plan")
	}

	var user models.User
	var sub models.Subscription
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id", "clerk_id").First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		err := tx.Where("user_id = ?", userID).First(&sub).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			sub = models.Subscription{
				UserID:             userID,
				Plan:               plan,
				Status:             models.SubscriptionStatusActive,
				CurrentPeriodStart: s.now(),
				CurrentPeriodEnd:   s.now().AddDate(0, 0, 30),
			}
			if err := tx.Create(&sub).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&sub).Update("plan", plan).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.User{}).Where("id = ?", userID).Update("plan", plan).Error
	})
	if err != nil {
		return nil, err
	}

	s.users.invalidate(ctx, user.ClerkID)

	return &sub, nil
}

// GrantPlanCredits tops up the user's balance with their plan's monthly
// allowance. Grants are increments and never touch the usage log.
func (s *SubscriptionService) GrantPlanCredits(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.Select("id", "plan").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	amount, ok := PlanCredits[user.Plan]
	if !ok {
		amount = PlanCredits[models.PlanFree]
	}
	return s.credits.Add(userID, amount)
}
