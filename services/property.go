package services

import (
	"property-market-server/models"
	"property-market-server/repo"

	"gorm.io/gorm"
)

// PropertyLookup exposes the read-side repository operations the routes
// consume: fetch by id, fetch by slug, list available listings.
type PropertyLookup struct {
	db         *gorm.DB
	properties repo.PropertyRepository
}

func NewPropertyLookup(db *gorm.DB) *PropertyLookup {
	return &PropertyLookup{db: db, properties: repo.NewPropertyRepository(db)}
}

func (s *PropertyLookup) GetByID(id uint) (*models.Property, error) {
	property, err := s.properties.GetByID(id, false)
	if isRecordNotFound(err) {
		return nil, notFound("property", id)
	}
	if err != nil {
		return nil, classify(err)
	}
	return property, nil
}

func (s *PropertyLookup) GetBySlug(slug string) (*models.Property, error) {
	property, err := s.properties.GetBySlug(slug)
	if isRecordNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return property, nil
}

// ListAvailable returns every listing of the given kind that has not been
// finalized yet.
func (s *PropertyLookup) ListAvailable(kind string) ([]models.Property, error) {
	var properties []models.Property
	q := s.db.Where("is_available = ?", true)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if err := q.Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, classify(err)
	}
	return properties, nil
}
