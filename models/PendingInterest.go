package models

import "gorm.io/gorm"

const (
	InterestStatusPending   = "Pending"
	InterestStatusCompleted = "Completed"
)

// PendingInterest records a counterparty's not-yet-confirmed interest in a
// property. At most one row exists per (property, lister, counterparty)
// triple. It is mutated only during confirmation: the winning row becomes
// Completed, competing rows for the same property and lister are deleted.
type PendingInterest struct {
	gorm.Model
	PropertyID     uint   `json:"propertyID" gorm:"not null;index"`
	ListerID       uint   `json:"listerID" gorm:"not null;index"`
	CounterpartyID uint   `json:"counterpartyID" gorm:"not null;index"`
	Message        string `json:"message" gorm:"type:text"`
	Status         string `json:"status" gorm:"type:varchar(20);default:Pending"`

	Property Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
