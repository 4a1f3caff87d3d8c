package services

import (
	"context"
	"testing"
	"time"

	"github.com/wegnite/saasTemplate/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newSubscriptionService(db *gorm.DB) *SubscriptionService {
	return NewSubscriptionService(db, NewCreditsService(db), NewUserService(db, nil))
}

func TestChangePlan_CreatesSubscriptionAndSyncsUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	user := seedUser(t, db, "sub_user", 100)

	sub, err := svc.ChangePlan(context.Background(), user.ID, models.PlanPro)
	assert.NoError(t, err)
	assert.Equal(t, models.PlanPro, sub.Plan)
	assert.Equal(t, models.SubscriptionStatusActive, sub.Status)
	assert.True(t, sub.CurrentPeriodEnd.After(time.Now()))

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, models.PlanPro, stored.Plan)
}

func TestChangePlan_UpdatesExistingRow(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	user := seedUser(t, db, "sub_upgrade", 100)

	first, err := svc.ChangePlan(context.Background(), user.ID, models.PlanPro)
	assert.NoError(t, err)

	second, err := svc.ChangePlan(context.Background(), user.ID, models.PlanEnterprise)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.Subscription{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, models.PlanEnterprise, stored.Plan)
}

func TestChangePlan_InvalidPlan(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	user := seedUser(t, db, "sub_bad", 100)

	_, err := svc.ChangePlan(context.Background(), user.ID, models.PlanType("PLATINUM"))
	assert.Error(t, err)
}

func TestChangePlan_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)

	_, err := svc.ChangePlan(context.Background(), 9999, models.PlanPro)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangePlan_InvalidatesUserCache(t *testing.T) {
	db := setupTestDB(t)
	cache := setupTestCache(t)
	users := NewUserService(db, cache)
	svc := NewSubscriptionService(db, NewCreditsService(db), users)
	ctx := context.Background()

	created, err := users.UpsertByClerkID(ctx, "sub_cached", UserProfile{Email: "plan@example.com"})
	assert.NoError(t, err)

	// Warm the cache with the FREE-plan snapshot
	warm, err := users.FindByClerkID(ctx, "sub_cached")
	assert.NoError(t, err)
	assert.Equal(t, models.PlanFree, warm.Plan)

	_, err = svc.ChangePlan(ctx, created.ID, models.PlanPro)
	assert.NoError(t, err)

	// The stale entry must be gone: the next lookup sees the new plan
	fresh, err := users.FindByClerkID(ctx, "sub_cached")
	assert.NoError(t, err)
	assert.Equal(t, models.PlanPro, fresh.Plan)
}

func TestIsActive(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)

	// No subscription row: active exactly when on the free plan
	free := seedUser(t, db, "sub_free", 100)
	active, err := svc.IsActive(free.ID)
	assert.NoError(t, err)
	assert.True(t, active)

	proNoSub := seedUser(t, db, "sub_pro_nosub", 100)
	db.Model(&models.User{}).Where("id = ?", proNoSub.ID).Update("plan", models.PlanPro)
	active, err = svc.IsActive(proNoSub.ID)
	assert.NoError(t, err)
	assert.False(t, active)

	// Active paid subscription inside its period
	paid := seedUser(t, db, "sub_paid", 100)
	_, err = svc.ChangePlan(context.Background(), paid.ID, models.PlanPro)
	assert.NoError(t, err)
	active, err = svc.IsActive(paid.ID)
	assert.NoError(t, err)
	assert.True(t, active)

	// Expired period
	expired := seedUser(t, db, "sub_expired", 100)
	_, err = svc.Upsert(expired.ID, SubscriptionData{
		Plan:             models.PlanPro,
		Status:           models.SubscriptionStatusActive,
		CurrentPeriodEnd: time.Now().Add(-time.Hour),
	})
	assert.NoError(t, err)
	active, err = svc.IsActive(expired.ID)
	assert.NoError(t, err)
	assert.False(t, active)
}

func TestCancelAndReactivate(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	user := seedUser(t, db, "sub_cancel", 100)

	_, err := svc.ChangePlan(context.Background(), user.ID, models.PlanPro)
	assert.NoError(t, err)

	_, err = svc.Cancel(user.ID)
	assert.NoError(t, err)

	var stored models.Subscription
	db.Where("user_id = ?", user.ID).First(&stored)
	assert.True(t, stored.CancelAtPeriodEnd)

	_, err = svc.Reactivate(user.ID)
	assert.NoError(t, err)

	db.Where("user_id = ?", user.ID).First(&stored)
	assert.False(t, stored.CancelAtPeriodEnd)
}

func TestCancel_NoSubscription(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	user := seedUser(t, db, "sub_none", 100)

	_, err := svc.Cancel(user.ID)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestGrantPlanCredits(t *testing.T) {
	db := setupTestDB(t)
	svc := newSubscriptionService(db)
	user := seedUser(t, db, "sub_grant", 10)

	_, err := svc.ChangePlan(context.Background(), user.ID, models.PlanPro)
	assert.NoError(t, err)

	updated, err := svc.GrantPlanCredits(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 510.0, updated.Credits)

	// Grants never write usage log rows
	var count int64
	db.Model(&models.UsageLog{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
