package repository

import (
	"github.com/SandeshLive/Sandesh/app/models"
	"gorm.io/gorm"
)

// marqueeRepository implements the MarqueeRepository interface
type marqueeRepository struct {
	db *gorm.DB
}

// NewMarqueeRepository creates a new marquee repository instance
func NewMarqueeRepository(db *gorm.DB) MarqueeRepository {
	return &marqueeRepository{db: db}
}

func (r *marqueeRepository) Create(item *models.MarqueeContent) error {
	return r.db.Create(item).Error
}

func (r *marqueeRepository) GetByID(id uint) (*models.MarqueeContent, error) {
	var item models.MarqueeContent
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetActive retrieves active marquee entries for public readers, optionally
// filtered by type, ordered by display order then recency.
func (r *marqueeRepository) GetActive(marqueeType string) ([]models.MarqueeContent, error) {
	var items []models.MarqueeContent
	q := r.db.Where("is_active = ?", true)
	if marqueeType == models.MARQUEE_TYPE_BREAKING || marqueeType == models.MARQUEE_TYPE_ANNOUNCEMENT {
		q = q.Where("type = ?", marqueeType)
	}
	err := q.Order("display_order ASC, created_at DESC").Find(&items).Error
	return items, err
}

// GetAll retrieves every marquee entry for admin management
func (r *marqueeRepository) GetAll() ([]models.MarqueeContent, error) {
	var items []models.MarqueeContent
	err := r.db.Order("display_order ASC, created_at DESC").Find(&items).Error
	return items, err
}

func (r *marqueeRepository) Update(item *models.MarqueeContent) error {
	return r.db.Save(item).Error
}

func (r *marqueeRepository) Delete(id uint) error {
	return r.db.Delete(&models.MarqueeContent{}, id).Error
}
