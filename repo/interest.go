package repo

import (
	"property-market-server/models"

	"gorm.io/gorm"
)

type gormPendingInterestRepository struct {
	db *gorm.DB
}

func NewPendingInterestRepository(db *gorm.DB) PendingInterestRepository {
	return &gormPendingInterestRepository{db: db}
}

func (r *gormPendingInterestRepository) GetByID(id uint, lock bool) (*models.PendingInterest, error) {
	q := r.db
	if lock {
		q = forUpdate(q)
	}

	var pending models.PendingInterest
	if err := q.First(&pending, id).Error; err != nil {
		return nil, err
	}
	return &pending, nil
}

func (r *gormPendingInterestRepository) FindByTriple(propertyID, listerID, counterpartyID uint) (*models.PendingInterest, error) {
	var pending models.PendingInterest
	err := r.db.
		Where("property_id = ? AND lister_id = ? AND counterparty_id = ?", propertyID, listerID, counterpartyID).
		First(&pending).Error
	if err != nil {
		return nil, err
	}
	return &pending, nil
}

func (r *gormPendingInterestRepository) ListByProperty(propertyID uint) ([]models.PendingInterest, error) {
	var pendings []models.PendingInterest
	err := r.db.
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&pendings).Error
	if err != nil {
		return nil, err
	}
	return pendings, nil
}

func (r *gormPendingInterestRepository) Insert(pending *models.PendingInterest) error {
	return r.db.Create(pending).Error
}

func (r *gormPendingInterestRepository) Update(pending *models.PendingInterest) error {
	return r.db.Save(pending).Error
}

func (r *gormPendingInterestRepository) DeleteWhere(propertyID, listerID, excludeID uint) error {
	return r.db.
		Where("property_id = ? AND lister_id = ? AND id != ?", propertyID, listerID, excludeID).
		Delete(&models.PendingInterest{}).Error
}
