package repository

import (
	"github.com/SandeshLive/Sandesh/app/models"
	"gorm.io/gorm"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a new news article in the database
func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// GetByID retrieves a news article by its ID regardless of publish state
func (r *newsRepository) GetByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetPublishedByID retrieves a published news article by its ID
func (r *newsRepository) GetPublishedByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.Where("is_published = ?", true).First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetBySlug retrieves a news article by its slug
func (r *newsRepository) GetBySlug(slug string) (*models.News, error) {
	var news models.News
	err := r.db.Where("slug = ?", slug).First(&news).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetPublishedBySlug retrieves a published news article by its slug
func (r *newsRepository) GetPublishedBySlug(slug string) (*models.News, error) {
	var news models.News
	err := r.db.Where("slug = ? AND is_published = ?", slug, true).First(&news).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) filtered(filter NewsFilter) *gorm.DB {
	q := r.db.Model(&models.News{})
	if filter.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	return q
}

// List retrieves news articles matching the filter, newest first
func (r *newsRepository) List(filter NewsFilter, offset, limit int) ([]models.News, error) {
	var news []models.News
	err := r.filtered(filter).Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&news).Error
	return news, err
}

// Count returns the number of news articles matching the filter
func (r *newsRepository) Count(filter NewsFilter) (int64, error) {
	var count int64
	err := r.filtered(filter).Count(&count).Error
	return count, err
}

// Update updates an existing news article in the database
func (r *newsRepository) Update(news *models.News) error {
	return r.db.Save(news).Error
}

// Delete removes a news article by its ID
func (r *newsRepository) Delete(id uint) error {
	return r.db.Delete(&models.News{}, id).Error
}

// SlugExists checks if a slug already exists
func (r *newsRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.News{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *newsRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.News{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
