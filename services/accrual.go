package services

import "property-market-server/models"

// One property point per this much transacted value.
const amountPerPoint = 10000

type TransactionCategory string

const (
	CategorySale   TransactionCategory = "sale"
	CategoryRental TransactionCategory = "rental"
)

// PointCategory names the flat-grant buckets on a user record.
type PointCategory string

const (
	PointsDirectReferral    PointCategory = "direct_referrals"
	PointsSecondaryReferral PointCategory = "secondary_referrals"
	PointsTertiaryReferral  PointCategory = "tertiary_referrals"
	PointsPositiveReview    PointCategory = "positive_reviews"
)

// AccrueTransaction applies a consummated transaction to a user record and
// returns the updated copy. The amount is added to the cumulative sale or
// rental total, converted to property points (1 per 10,000) plus the
// tier-derived bonus, and the user is reclassified. The caller persists
// the result.
func AccrueTransaction(user models.User, amount float64, category TransactionCategory) models.User {
	propertyPoints := amount / amountPerPoint
	earned := propertyPoints + propertyPoints*user.ExtraPoints

	switch category {
	case CategoryRental:
		user.Rental += amount
		user.PropertyRental += earned
	default:
		user.Sale += amount
		user.PropertySale += earned
	}

	user.Transactions++
	user.Points += earned
	ApplyTier(&user)
	return user
}

// AccrueFlat grants a fixed number of points into one category, with no
// bonus multiplier. Used for referral rewards and positive reviews.
func AccrueFlat(user models.User, points float64, category PointCategory) models.User {
	switch category {
	case PointsDirectReferral:
		user.DirectReferrals += points
	case PointsSecondaryReferral:
		user.SecondaryReferrals += points
	case PointsTertiaryReferral:
		user.TertiaryReferrals += points
	case PointsPositiveReview:
		user.PositiveReviews += points
	}

	user.Points += points
	ApplyTier(&user)
	return user
}
