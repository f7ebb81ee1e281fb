package services

import (
	"fmt"

	"property-market-server/logging"
	"property-market-server/models"
	"property-market-server/repo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Referral rewards stop after this many ancestors.
const maxCascadeLevels = 5

// ReferralService verifies an account and propagates referral rewards up
// the referrer chain.
type ReferralService struct {
	scope *repo.TransactionScope
}

func NewReferralService(db *gorm.DB) *ReferralService {
	return &ReferralService{scope: repo.NewTransactionScope(db)}
}

// VerifyAndCascade marks the user verified and rewards up to five ancestors
// in the referred-by chain: 5 points to the direct referrer, 2 to the
// second level, 1 to levels three through five. Every touched ancestor also
// gains a referral and is reclassified. The verification and the whole
// cascade commit or roll back together.
func (s *ReferralService) VerifyAndCascade(userID uint) (*models.User, error) {
	var verified *models.User

	err := s.scope.WithinTransaction(func(tx *gorm.DB) error {
		users := repo.NewUserRepository(tx)

		user, err := users.GetByID(userID, true)
		if isRecordNotFound(err) {
			return notFound("user", userID)
		}
		if err != nil {
			return err
		}
		if user.IsVerified != nil && *user.IsVerified {
			return fmt.Errorf("%w: user %d is already verified", ErrConflict, userID)
		}

		isVerified := true
		user.IsVerified = &isVerified
		user.ReferralsCount++
		if err := users.Save(user); err != nil {
			return err
		}

		// Guard against referral chains that loop back on themselves.
		seen := map[uint]bool{userID: true}
		next := user.ReferredByID

		for level := 1; level <= maxCascadeLevels && next != nil; level++ {
			if seen[*next] {
				break
			}
			seen[*next] = true

			referrer, err := users.GetByID(*next, true)
			if isRecordNotFound(err) {
				break
			}
			if err != nil {
				return err
			}

			referrer.ReferralsCount++
			var updated models.User
			switch level {
			case 1:
				updated = AccrueFlat(*referrer, 5, PointsDirectReferral)
			case 2:
				updated = AccrueFlat(*referrer, 2, PointsSecondaryReferral)
			default:
				updated = AccrueFlat(*referrer, 1, PointsTertiaryReferral)
			}
			if err := users.Save(&updated); err != nil {
				return err
			}

			next = updated.ReferredByID
		}

		logging.Logger.Info("user verified, referral cascade applied",
			zap.Uint("userID", userID),
		)
		verified = user
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return verified, nil
}
