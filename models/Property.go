package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PropertyKindRent = "rent"
	PropertyKindBuy  = "buy"
)

type Property struct {
	gorm.Model
	Kind        string         `json:"kind" gorm:"type:varchar(10);not null;index"`
	Slug        string         `json:"slug" gorm:"uniqueIndex"`
	Name        string         `json:"name"`
	Price       float64        `json:"price"`
	Address     string         `json:"address"`
	Bed         int            `json:"bed"`
	Bath        int            `json:"bath"`
	Size        string         `json:"size"`
	Description string         `json:"description" gorm:"type:text"`
	Amenities   datatypes.JSON `json:"amenities"`
	Images      datatypes.JSON `json:"images"`
	Latitude    *float64       `json:"latitude"`
	Longitude   *float64       `json:"longitude"`

	IsPopular   bool `json:"isPopular" gorm:"default:false"`
	IsAvailable bool `json:"isAvailable" gorm:"default:true"`

	// Lease term in months. Rent listings only.
	LeaseTerm int `json:"leaseTerm"`

	ListerID uint `json:"listerID" gorm:"not null;index"`
	Lister   User `json:"lister,omitempty" gorm:"foreignKey:ListerID;references:ID"`

	// Set exactly once, when the lister confirms a pending interest.
	// Tenant for rent listings, buyer for buy listings.
	CounterpartyID *uint `json:"counterpartyID" gorm:"index"`
}

// TransactionValue is the amount both parties accrue on when the property
// is finalized: the sale price, or price times lease term for rentals.
func (p *Property) TransactionValue() float64 {
	if p.Kind == PropertyKindRent {
		return p.Price * float64(p.LeaseTerm)
	}
	return p.Price
}
