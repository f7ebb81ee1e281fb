package services

import (
	"fmt"
	"time"

	"property-market-server/logging"
	"property-market-server/models"
	"property-market-server/repo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ConfirmationService finalizes exactly one pending interest per property.
// The whole confirmation runs in a single transaction; rows are locked in a
// fixed order (pending interest, property, lister, counterparty) so that
// racing confirmations cannot deadlock.
type ConfirmationService struct {
	scope *repo.TransactionScope
}

func NewConfirmationService(db *gorm.DB) *ConfirmationService {
	return &ConfirmationService{scope: repo.NewTransactionScope(db)}
}

// Confirm marks the pending interest as the winner: the property becomes
// unavailable with its counterparty set, competing interests for the same
// property and lister are deleted, and both parties accrue on the
// transacted amount. A property can only ever be finalized once; a second
// attempt fails with a conflict and changes nothing.
func (s *ConfirmationService) Confirm(pendingInterestID uint) (*models.Property, error) {
	var finalized *models.Property

	err := s.scope.WithinTransaction(func(tx *gorm.DB) error {
		interests := repo.NewPendingInterestRepository(tx)
		properties := repo.NewPropertyRepository(tx)
		users := repo.NewUserRepository(tx)

		pending, err := interests.GetByID(pendingInterestID, true)
		if isRecordNotFound(err) {
			return notFound("pending interest", pendingInterestID)
		}
		if err != nil {
			return err
		}

		property, err := properties.GetByID(pending.PropertyID, true)
		if isRecordNotFound(err) {
			return notFound("property", pending.PropertyID)
		}
		if err != nil {
			return err
		}
		if !property.IsAvailable {
			return fmt.Errorf("%w: property %d is already finalized", ErrConflict, property.ID)
		}

		counterpartyID := pending.CounterpartyID
		property.IsAvailable = false
		property.CounterpartyID = &counterpartyID
		if err := properties.Save(property); err != nil {
			return err
		}

		pending.Status = models.InterestStatusCompleted
		pending.CreatedAt = time.Now().UTC()
		if err := interests.Update(pending); err != nil {
			return err
		}

		// The lister has chosen; competing interests are moot.
		if err := interests.DeleteWhere(pending.PropertyID, pending.ListerID, pending.ID); err != nil {
			return err
		}

		amount := property.TransactionValue()
		category := CategorySale
		if property.Kind == models.PropertyKindRent {
			category = CategoryRental
		}

		lister, err := users.GetByID(pending.ListerID, true)
		if isRecordNotFound(err) {
			return notFound("user", pending.ListerID)
		}
		if err != nil {
			return err
		}
		updatedLister := AccrueTransaction(*lister, amount, category)
		if err := users.Save(&updatedLister); err != nil {
			return err
		}

		counterparty, err := users.GetByID(counterpartyID, true)
		if isRecordNotFound(err) {
			return notFound("user", counterpartyID)
		}
		if err != nil {
			return err
		}
		updatedCounterparty := AccrueTransaction(*counterparty, amount, category)
		if err := users.Save(&updatedCounterparty); err != nil {
			return err
		}

		logging.Logger.Info("property finalized",
			zap.Uint("propertyID", property.ID),
			zap.Uint("counterpartyID", counterpartyID),
			zap.Float64("amount", amount),
		)
		finalized = property
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return finalized, nil
}
