package services

import (
	"testing"

	"github.com/wegnite/saasTemplate/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	entities := []interface{}{
		&models.User{},
		&models.UserSetting{},
		&models.Subscription{},
		&models.UsageLog{},
		&models.ImageGeneration{},
		&models.TextGeneration{},
		&models.AudioProcessing{},
	}
	db.Migrator().DropTable(entities...)
	if err := db.AutoMigrate(entities...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, clerkID string, credits float64) models.User {
	t.Helper()

	user := models.User{
		ClerkID: clerkID,
		Email:   clerkID + "@example.com",
		Credits: credits,
		Plan:    models.PlanFree,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestDeduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCreditsService(db)
	user := seedUser(t, db, "user_deduct", 100)

	updated, err := svc.Deduct(user.ID, 15, models.UsageTypeImageGeneration, "", "three images")
	assert.NoError(t, err)
	assert.Equal(t, 85.0, updated.Credits)

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, 85.0, stored.Credits)

	// Exactly one log row, matching the deducted amount
	var logs []models.UsageLog
	db.Where("user_id = ?", user.ID).Find(&logs)
	assert.Len(t, logs, 1)
	assert.Equal(t, 15.0, logs[0].CreditsUsed)
	assert.Equal(t, models.UsageTypeImageGeneration, logs[0].Type)
	assert.Equal(t, "three images", logs[0].Description)
}

func TestDeduct_FractionalAmount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCreditsService(db)
	user := seedUser(t, db, "user_fraction", 10)

	updated, err := svc.Deduct(user.ID, 7.5, models.UsageTypeAudioProcessing, "", "high quality transcription")
	assert.NoError(t, err)
	assert.Equal(t, 2.5, updated.Credits)
}

func TestDeduct_InsufficientCredits(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCreditsService(db)
	user := seedUser(t, db, "user_poor", 4)

	updated, err := svc.Deduct(user.ID, 5, models.UsageTypeImageGeneration, "", "")
	assert.ErrorIs(t, err, ErrInsufficientCredits)
	assert.Nil(t, updated)

	// No partial state: balance unchanged, no log row
	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, 4.0, stored.Credits)

	var count int64
	db.Model(&models.UsageLog{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeduct_UserNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCreditsService(db)

	_, err := svc.Deduct(9999, 5, models.UsageTypeTextGeneration, "", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeduct_InvalidAmount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCreditsService(db)
	user := seedUser(t, db, "user_zero", 100)

	_, err := svc.Deduct(user.ID, 0, models.UsageTypeTextGeneration, "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Deduct(user.ID, -5, models.UsageTypeTextGeneration, "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDeduct_OverspendDrain(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCreditsService(db)
	user := seedUser(t, db, "user_drain", 20)

	// Six attempts of 5 against a balance of 20: exactly four succeed.
	succeeded, failed := 0, 0
	for i := 0; i < 6; i++ {
		_, err := svc.Deduct(user.ID, 5, models.UsageTypeImageGeneration, "", "")
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrInsufficientCredits)
			failed++
		}
	}
	assert.Equal(t, 4, succeeded)
	assert.Equal(t, 2, failed)

	var stored models.User
	db.First(&stored, user.ID)
	assert.Equal(t, 0.0, stored.Credits)

	var count int64
	db.Model(&models.UsageLog{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(4), count)
}

func TestLockForUpdate_GeneratedSQL(t *testing.T) {
	// DryRun sessions build SQL without touching a server, so the
	// postgres handle never has to connect.
	pg, err := gorm.Open(postgres.Open("host=localhost user=app dbname=app port=5432 sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)

	var user models.User
	stmt := lockForUpdate(pg).Find(&user, 1).Statement
	assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")

	// sqlite rejects the clause, so the helper must not emit it there
	lite := setupTestDB(t).Session(&gorm.Session{DryRun: true})
	stmt = lockForUpdate(lite).Find(&user, 1).Statement
	assert.NotContains(t, stmt.SQL.String(), "FOR UPDATE")
}

func TestAdd(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCreditsService(db)
	user := seedUser(t, db, "user_add", 10)

	updated, err := svc.Add(user.ID, 500)
	assert.NoError(t, err)
	assert.Equal(t, 510.0, updated.Credits)

	// Increments never write usage log rows
	var count int64
	db.Model(&models.UsageLog{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAdd_UserNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCreditsService(db)

	_, err := svc.Add(9999, 100)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
