package services

import (
	"fmt"
	"testing"

	"property-market-server/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.PendingInterest{},
		&models.Review{},
	)
	require.NoError(t, err)

	return db
}

var testUserSeq int

func createTestUser(t *testing.T, db *gorm.DB, mutate ...func(*models.User)) *models.User {
	t.Helper()

	testUserSeq++
	user := &models.User{
		FirstName:    "Test",
		LastName:     fmt.Sprintf("User%d", testUserSeq),
		Email:        fmt.Sprintf("user%d@example.com", testUserSeq),
		Tier:         TierBronze,
		ReferralCode: fmt.Sprintf("REF%06d", testUserSeq),
	}
	for _, fn := range mutate {
		fn(user)
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

var testPropertySeq int

func createTestProperty(t *testing.T, db *gorm.DB, kind string, price float64, listerID uint, mutate ...func(*models.Property)) *models.Property {
	t.Helper()

	testPropertySeq++
	property := &models.Property{
		Kind:        kind,
		Slug:        fmt.Sprintf("listing-%d", testPropertySeq),
		Name:        "Test Listing",
		Price:       price,
		Address:     "1 Main St",
		Bed:         2,
		Bath:        1,
		Size:        "80sqm",
		IsAvailable: true,
		ListerID:    listerID,
	}
	if kind == models.PropertyKindRent {
		property.LeaseTerm = 12
	}
	for _, fn := range mutate {
		fn(property)
	}
	require.NoError(t, db.Create(property).Error)
	return property
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) *models.User {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	return &user
}
