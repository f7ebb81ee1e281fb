package services

import (
	"math"

	"property-market-server/models"
)

const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
	TierDiamond  = "diamond"
)

// UnlimitedListings is the listing allotment of the top tier.
const UnlimitedListings = math.MaxInt32

type Tier struct {
	Name string
	// Exclusive upper bound on points for this tier.
	PointsBelow float64
	// Inclusive upper bound on referral count for this tier.
	MaxReferrals int
	MaxListings  int
	ExtraPoints  float64
}

// Ordered lowest to highest.
var tiers = []Tier{
	{Name: TierBronze, PointsBelow: 201, MaxReferrals: 10, MaxListings: 0, ExtraPoints: 0},
	{Name: TierSilver, PointsBelow: 501, MaxReferrals: 50, MaxListings: 1, ExtraPoints: 0.05},
	{Name: TierGold, PointsBelow: 1001, MaxReferrals: 100, MaxListings: 5, ExtraPoints: 0.10},
	{Name: TierPlatinum, PointsBelow: 2001, MaxReferrals: 200, MaxListings: 10, ExtraPoints: 0.15},
	{Name: TierDiamond, PointsBelow: math.Inf(1), MaxReferrals: math.MaxInt32, MaxListings: UnlimitedListings, ExtraPoints: 0.20},
}

// ClassifyTier maps points and referral count to a membership tier. Each
// metric selects the lowest tier whose bound admits it; the final tier is
// the lower-ranked of the two, so a user is gated by the weaker metric.
func ClassifyTier(points float64, referralsCount int) Tier {
	pointsIdx := len(tiers) - 1
	for i, t := range tiers {
		if points < t.PointsBelow {
			pointsIdx = i
			break
		}
	}

	referralsIdx := len(tiers) - 1
	for i, t := range tiers {
		if referralsCount <= t.MaxReferrals {
			referralsIdx = i
			break
		}
	}

	if referralsIdx < pointsIdx {
		pointsIdx = referralsIdx
	}
	return tiers[pointsIdx]
}

// ApplyTier reclassifies the user and refreshes the tier-derived allowances.
// UsedListings is deliberately left untouched.
func ApplyTier(user *models.User) {
	t := ClassifyTier(user.Points, user.ReferralsCount)
	user.Tier = t.Name
	user.MaxListings = t.MaxListings
	user.ExtraPoints = t.ExtraPoints
}
