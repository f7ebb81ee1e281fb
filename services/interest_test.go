package services

import (
	"testing"

	"property-market-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInterest(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInterestService(db)

	lister := createTestUser(t, db)
	buyer := createTestUser(t, db)
	property := createTestProperty(t, db, models.PropertyKindBuy, 100000, lister.ID)

	t.Run("creates a pending record", func(t *testing.T) {
		pending, err := svc.CreateInterest(property.ID, lister.ID, buyer.ID, "interested")
		require.NoError(t, err)

		assert.Equal(t, models.InterestStatusPending, pending.Status)
		assert.Equal(t, property.ID, pending.PropertyID)
		assert.Equal(t, buyer.ID, pending.CounterpartyID)
		assert.Equal(t, "interested", pending.Message)
	})

	t.Run("duplicate request returns the existing record", func(t *testing.T) {
		first, err := svc.CreateInterest(property.ID, lister.ID, buyer.ID, "again")
		require.NoError(t, err)

		second, err := svc.CreateInterest(property.ID, lister.ID, buyer.ID, "and again")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "interested", second.Message, "existing record is returned unchanged")

		var count int64
		require.NoError(t, db.Model(&models.PendingInterest{}).
			Where("property_id = ?", property.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("missing property", func(t *testing.T) {
		_, err := svc.CreateInterest(99999, lister.ID, buyer.ID, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unavailable property", func(t *testing.T) {
		taken := createTestProperty(t, db, models.PropertyKindBuy, 50000, lister.ID, func(p *models.Property) {
			p.IsAvailable = false
		})

		_, err := svc.CreateInterest(taken.ID, lister.ID, buyer.ID, "")
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestListByProperty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInterestService(db)

	lister := createTestUser(t, db)
	first := createTestUser(t, db)
	second := createTestUser(t, db)
	property := createTestProperty(t, db, models.PropertyKindRent, 1500, lister.ID)
	other := createTestProperty(t, db, models.PropertyKindRent, 1800, lister.ID)

	_, err := svc.CreateInterest(property.ID, lister.ID, first.ID, "")
	require.NoError(t, err)
	_, err = svc.CreateInterest(property.ID, lister.ID, second.ID, "")
	require.NoError(t, err)
	_, err = svc.CreateInterest(other.ID, lister.ID, first.ID, "")
	require.NoError(t, err)

	pendings, err := svc.ListByProperty(property.ID)
	require.NoError(t, err)
	assert.Len(t, pendings, 2)
	for _, p := range pendings {
		assert.Equal(t, property.ID, p.PropertyID)
	}
}
