package repo

import (
	"property-market-server/models"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) GetByID(id uint, lock bool) (*models.User, error) {
	q := r.db
	if lock {
		q = forUpdate(q)
	}

	var user models.User
	if err := q.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}
