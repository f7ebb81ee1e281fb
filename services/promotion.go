package services

import (
	"fmt"

	"property-market-server/models"
	"property-market-server/repo"

	"gorm.io/gorm"
)

// PromotionService marks listings as popular, spending the lister's
// tier-derived slots or premium vouchers.
type PromotionService struct {
	scope *repo.TransactionScope
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{scope: repo.NewTransactionScope(db)}
}

// PromoteListing features the property. A free tier slot is consumed first;
// otherwise a premium voucher. With neither left the promotion is refused.
func (s *PromotionService) PromoteListing(propertyID uint) (*models.Property, error) {
	var promoted *models.Property

	err := s.scope.WithinTransaction(func(tx *gorm.DB) error {
		properties := repo.NewPropertyRepository(tx)
		users := repo.NewUserRepository(tx)

		property, err := properties.GetByID(propertyID, true)
		if isRecordNotFound(err) {
			return notFound("property", propertyID)
		}
		if err != nil {
			return err
		}

		lister, err := users.GetByID(property.ListerID, true)
		if isRecordNotFound(err) {
			return notFound("user", property.ListerID)
		}
		if err != nil {
			return err
		}

		switch {
		case lister.UsedListings < lister.MaxListings:
			lister.UsedListings++
		case lister.PremiumListings > 0:
			lister.PremiumListings--
		default:
			return fmt.Errorf("%w: no premium listing slots or vouchers left", ErrConflict)
		}

		property.IsPopular = true
		if err := properties.Save(property); err != nil {
			return err
		}
		if err := users.Save(lister); err != nil {
			return err
		}

		promoted = property
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return promoted, nil
}
