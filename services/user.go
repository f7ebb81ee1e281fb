package services

import (
	"property-market-server/models"
	"property-market-server/repo"

	"gorm.io/gorm"
)

// UserLookup exposes the read-side user fetch the routes consume.
type UserLookup struct {
	users repo.UserRepository
}

func NewUserLookup(db *gorm.DB) *UserLookup {
	return &UserLookup{users: repo.NewUserRepository(db)}
}

func (s *UserLookup) GetByID(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id, false)
	if isRecordNotFound(err) {
		return nil, notFound("user", id)
	}
	if err != nil {
		return nil, classify(err)
	}
	return user, nil
}
