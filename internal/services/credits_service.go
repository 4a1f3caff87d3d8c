package services

import (
	"errors"

	"github.com/wegnite/saasTemplate/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidAmount       = errors.New("credit amount must be positive")
)

// CreditsService is the ledger: the only path through which a user's
// balance decreases. Each deduction and its usage-log entry commit in one
// transaction; concurrent deductions serialize on the locked user row.
type CreditsService struct {
	db *gorm.DB
}

func NewCreditsService(db *gorm.DB) *CreditsService {
	return &CreditsService{db: db}
}

// lockForUpdate adds SELECT ... FOR UPDATE so concurrent balance reads
// serialize on the user row. sqlite has no FOR UPDATE syntax; its single
// writer lock already gives the same guarantee.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Deduct removes amount credits from the user and appends exactly one
// UsageLog row, or does neither. Fractional amounts are legal (quality
// multipliers). Callers must not retry ErrInsufficientCredits.
func (s *CreditsService) Deduct(userID uint, amount float64, usageType models.UsageType, featureID, description string) (*models.User, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if user.Credits < amount {
			return ErrInsufficientCredits
		}

		user.Credits -= amount
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("credits", user.Credits).Error; err != nil {
			return err
		}

		log := models.UsageLog{
			UserID:      user.ID,
			Type:        usageType,
			CreditsUsed: amount,
			FeatureID:   featureID,
			Description: description,
		}
		return tx.Create(&log).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Add credits a user's balance (plan grants, top-ups). Increments bypass
// the usage log, which records consumption only.
func (s *CreditsService) Add(userID uint, amount float64) (*models.User, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		user.Credits += amount
		return tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("credits", user.Credits).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}
