package repository

import (
	"github.com/SandeshLive/Sandesh/app/models"
	"gorm.io/gorm"
)

// NewsFilter narrows news listings. Empty fields are ignored. PublishedOnly
// is the public-reader view; admin callers leave it false to see drafts.
type NewsFilter struct {
	Category      string
	Search        string
	PublishedOnly bool
}

// NewsRepository defines the interface for news-related database operations
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id uint) (*models.News, error)
	GetPublishedByID(id uint) (*models.News, error)
	GetBySlug(slug string) (*models.News, error)
	GetPublishedBySlug(slug string) (*models.News, error)
	List(filter NewsFilter, offset, limit int) ([]models.News, error)
	Count(filter NewsFilter) (int64, error)
	Update(news *models.News) error
	Delete(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	NameExists(name string) (bool, error)
}

// MarqueeRepository defines the interface for marquee banner operations
type MarqueeRepository interface {
	Create(item *models.MarqueeContent) error
	GetByID(id uint) (*models.MarqueeContent, error)
	GetActive(marqueeType string) ([]models.MarqueeContent, error)
	GetAll() ([]models.MarqueeContent, error)
	Update(item *models.MarqueeContent) error
	Delete(id uint) error
}

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByID(id uint) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	Update(admin *models.Admin) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	News     NewsRepository
	Category CategoryRepository
	Marquee  MarqueeRepository
	Admin    AdminRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		News:     NewNewsRepository(db),
		Category: NewCategoryRepository(db),
		Marquee:  NewMarqueeRepository(db),
		Admin:    NewAdminRepository(db),
	}
}
