package repo

import (
	"property-market-server/models"

	"gorm.io/gorm"
)

type gormPropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &gormPropertyRepository{db: db}
}

func (r *gormPropertyRepository) GetByID(id uint, lock bool) (*models.Property, error) {
	q := r.db
	if lock {
		q = forUpdate(q)
	}

	var property models.Property
	if err := q.First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *gormPropertyRepository) GetBySlug(slug string) (*models.Property, error) {
	var property models.Property
	if err := r.db.Where("slug = ?", slug).First(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *gormPropertyRepository) Save(property *models.Property) error {
	return r.db.Save(property).Error
}
