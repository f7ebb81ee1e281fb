package services

import (
	"testing"

	"property-market-server/models"

	"github.com/stretchr/testify/assert"
)

func assertPointsInvariant(t *testing.T, user models.User) {
	t.Helper()
	assert.InDelta(t, user.PointsBreakdownSum(), user.Points, 1e-9,
		"points must equal the sum of the category fields")
}

func TestAccrueTransaction(t *testing.T) {
	t.Run("sale accrual without bonus", func(t *testing.T) {
		user := models.User{Tier: TierBronze}

		updated := AccrueTransaction(user, 100000, CategorySale)

		assert.InDelta(t, 100000, updated.Sale, 1e-9)
		assert.InDelta(t, 10, updated.PropertySale, 1e-9)
		assert.InDelta(t, 10, updated.Points, 1e-9)
		assert.Equal(t, 1, updated.Transactions)
		assert.Zero(t, updated.Rental)
		assertPointsInvariant(t, updated)
	})

	t.Run("rental accrual applies the tier bonus", func(t *testing.T) {
		user := models.User{Tier: TierSilver, ExtraPoints: 0.05}

		updated := AccrueTransaction(user, 100000, CategoryRental)

		assert.InDelta(t, 100000, updated.Rental, 1e-9)
		assert.InDelta(t, 10.5, updated.PropertyRental, 1e-9)
		assert.InDelta(t, 10.5, updated.Points, 1e-9)
		assertPointsInvariant(t, updated)
	})

	t.Run("accrual reclassifies the tier", func(t *testing.T) {
		user := models.User{Tier: TierBronze, Points: 195, PropertySale: 195, ReferralsCount: 40}

		updated := AccrueTransaction(user, 100000, CategorySale)

		assert.Equal(t, TierSilver, updated.Tier)
		assert.Equal(t, 1, updated.MaxListings)
		assert.InDelta(t, 0.05, updated.ExtraPoints, 1e-9)
		assertPointsInvariant(t, updated)
	})

	t.Run("input value is not mutated", func(t *testing.T) {
		user := models.User{Tier: TierBronze}
		AccrueTransaction(user, 50000, CategorySale)
		assert.Zero(t, user.Sale)
		assert.Zero(t, user.Points)
	})

	t.Run("invariant holds over a sequence of accruals", func(t *testing.T) {
		user := models.User{Tier: TierBronze}
		user = AccrueTransaction(user, 100000, CategorySale)
		user = AccrueTransaction(user, 30000, CategoryRental)
		user = AccrueFlat(user, 5, PointsDirectReferral)
		user = AccrueFlat(user, 1, PointsPositiveReview)
		user = AccrueTransaction(user, 70000, CategorySale)

		assert.Equal(t, 3, user.Transactions)
		assertPointsInvariant(t, user)
	})
}

func TestAccrueFlat(t *testing.T) {
	t.Run("grants into the named category with no bonus", func(t *testing.T) {
		user := models.User{Tier: TierDiamond, ExtraPoints: 0.20}

		updated := AccrueFlat(user, 2, PointsSecondaryReferral)

		assert.InDelta(t, 2, updated.SecondaryReferrals, 1e-9)
		assert.InDelta(t, 2, updated.Points, 1e-9, "flat grants carry no multiplier")
		assertPointsInvariant(t, updated)
	})

	t.Run("positive review grant", func(t *testing.T) {
		user := models.User{Tier: TierBronze}

		updated := AccrueFlat(user, 1, PointsPositiveReview)

		assert.InDelta(t, 1, updated.PositiveReviews, 1e-9)
		assert.InDelta(t, 1, updated.Points, 1e-9)
		assertPointsInvariant(t, updated)
	})
}
