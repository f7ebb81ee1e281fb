package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" gorm:"uniqueIndex"`

	Tier   string  `json:"tier" gorm:"type:varchar(20);default:bronze;index"`
	Points float64 `json:"points"`

	// Cumulative transacted amounts.
	Sale   float64 `json:"sale"`
	Rental float64 `json:"rental"`

	// Point categories. Points must always equal the sum of these six fields.
	PropertySale       float64 `json:"propertySale"`
	PropertyRental     float64 `json:"propertyRental"`
	DirectReferrals    float64 `json:"directReferrals"`
	SecondaryReferrals float64 `json:"secondaryReferrals"`
	TertiaryReferrals  float64 `json:"tertiaryReferrals"`
	PositiveReviews    float64 `json:"positiveReviews"`

	Transactions   int    `json:"transactions"`
	ReferralsCount int    `json:"referralsCount"`
	ReferralCode   string `json:"referralCode" gorm:"uniqueIndex"`

	// Tier-derived allowances.
	MaxListings     int     `json:"maxListings"`
	UsedListings    int     `json:"usedListings"`
	PremiumListings int     `json:"premiumListings"`
	ExtraPoints     float64 `json:"extraPoints"`

	IsVerified   *bool `json:"isVerified"`
	ReferredByID *uint `json:"referredByID" gorm:"index"`

	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:ListerID;references:ID"`
}

// PointsBreakdownSum returns the sum of the six point categories.
func (u *User) PointsBreakdownSum() float64 {
	return u.PropertySale +
		u.PropertyRental +
		u.DirectReferrals +
		u.SecondaryReferrals +
		u.TertiaryReferrals +
		u.PositiveReviews
}
