package services

import (
	"fmt"

	"property-market-server/logging"
	"property-market-server/models"
	"property-market-server/repo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InterestService registers expressions of interest in a listed property.
type InterestService struct {
	scope     *repo.TransactionScope
	interests repo.PendingInterestRepository
}

func NewInterestService(db *gorm.DB) *InterestService {
	return &InterestService{
		scope:     repo.NewTransactionScope(db),
		interests: repo.NewPendingInterestRepository(db),
	}
}

// CreateInterest records that a counterparty wants the property. The
// property must still be available. Creation is idempotent on the
// (property, lister, counterparty) triple: a duplicate request returns the
// existing record unchanged.
func (s *InterestService) CreateInterest(propertyID, listerID, counterpartyID uint, message string) (*models.PendingInterest, error) {
	var created *models.PendingInterest

	err := s.scope.WithinTransaction(func(tx *gorm.DB) error {
		properties := repo.NewPropertyRepository(tx)
		interests := repo.NewPendingInterestRepository(tx)

		property, err := properties.GetByID(propertyID, true)
		if isRecordNotFound(err) {
			return notFound("property", propertyID)
		}
		if err != nil {
			return err
		}
		if !property.IsAvailable {
			return fmt.Errorf("%w: property %d is no longer available", ErrConflict, propertyID)
		}

		existing, err := interests.FindByTriple(propertyID, listerID, counterpartyID)
		if err == nil {
			created = existing
			return nil
		}
		if !isRecordNotFound(err) {
			return err
		}

		pending := &models.PendingInterest{
			PropertyID:     propertyID,
			ListerID:       listerID,
			CounterpartyID: counterpartyID,
			Message:        message,
			Status:         models.InterestStatusPending,
		}
		if err := interests.Insert(pending); err != nil {
			return err
		}

		logging.Logger.Info("pending interest created",
			zap.Uint("propertyID", propertyID),
			zap.Uint("counterpartyID", counterpartyID),
		)
		created = pending
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return created, nil
}

// GetByID fetches a single pending interest without locking it.
func (s *InterestService) GetByID(id uint) (*models.PendingInterest, error) {
	pending, err := s.interests.GetByID(id, false)
	if isRecordNotFound(err) {
		return nil, notFound("pending interest", id)
	}
	if err != nil {
		return nil, classify(err)
	}
	return pending, nil
}

// ListByProperty returns every interest record for a property regardless of
// status, newest last, for the lister's review.
func (s *InterestService) ListByProperty(propertyID uint) ([]models.PendingInterest, error) {
	pendings, err := s.interests.ListByProperty(propertyID)
	if err != nil {
		return nil, classify(err)
	}
	return pendings, nil
}
