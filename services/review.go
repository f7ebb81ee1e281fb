package services

import (
	"fmt"

	"property-market-server/models"
	"property-market-server/repo"

	"gorm.io/gorm"
)

// Ratings at or above this count as positive and earn the author a point.
const positiveRatingThreshold = 4

// ReviewService records property reviews and grants the flat positive-review
// point to qualifying authors.
type ReviewService struct {
	db    *gorm.DB
	scope *repo.TransactionScope
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db, scope: repo.NewTransactionScope(db)}
}

// CreateReview stores a review for a finalized property. Only the user the
// property was finalized for may review it. A positive rating grants one
// point into the positive-reviews category in the same transaction.
func (s *ReviewService) CreateReview(propertyID, userID uint, rating int, comment string) (*models.Review, error) {
	var created *models.Review

	err := s.scope.WithinTransaction(func(tx *gorm.DB) error {
		properties := repo.NewPropertyRepository(tx)
		users := repo.NewUserRepository(tx)

		property, err := properties.GetByID(propertyID, false)
		if isRecordNotFound(err) {
			return notFound("property", propertyID)
		}
		if err != nil {
			return err
		}
		if property.CounterpartyID == nil || *property.CounterpartyID != userID {
			return fmt.Errorf("%w: only the finalized counterparty of property %d may review it", ErrConflict, propertyID)
		}

		review := &models.Review{
			UserID:     userID,
			PropertyID: propertyID,
			Rating:     rating,
			Comment:    comment,
			IsPositive: rating >= positiveRatingThreshold,
		}

		if review.IsPositive {
			user, err := users.GetByID(userID, true)
			if isRecordNotFound(err) {
				return notFound("user", userID)
			}
			if err != nil {
				return err
			}
			updated := AccrueFlat(*user, 1, PointsPositiveReview)
			if err := users.Save(&updated); err != nil {
				return err
			}
		}

		if err := tx.Create(review).Error; err != nil {
			return err
		}
		created = review
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return created, nil
}

// ListByProperty returns a property's reviews, newest first.
func (s *ReviewService) ListByProperty(propertyID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, classify(err)
	}
	return reviews, nil
}
