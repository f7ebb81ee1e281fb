// Package repo holds the repository interfaces the booking engine depends on
// and their gorm-backed implementations. All mutating operations are expected
// to run inside a TransactionScope; rows read with forUpdate are locked for
// the remainder of the enclosing transaction.
package repo

import (
	"property-market-server/models"
)

type UserRepository interface {
	GetByID(id uint, forUpdate bool) (*models.User, error)
	Save(user *models.User) error
}

type PropertyRepository interface {
	GetByID(id uint, forUpdate bool) (*models.Property, error)
	GetBySlug(slug string) (*models.Property, error)
	Save(property *models.Property) error
}

type PendingInterestRepository interface {
	GetByID(id uint, forUpdate bool) (*models.PendingInterest, error)
	FindByTriple(propertyID, listerID, counterpartyID uint) (*models.PendingInterest, error)
	ListByProperty(propertyID uint) ([]models.PendingInterest, error)
	Insert(pending *models.PendingInterest) error
	Update(pending *models.PendingInterest) error
	// DeleteWhere removes every pending interest for the given property and
	// lister except the excluded one.
	DeleteWhere(propertyID, listerID, excludeID uint) error
}
