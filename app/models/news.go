package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// News represents a single article. The Description field carries rich-text
// HTML produced by the admin editor; inline base64 images are externalized
// before the record is saved, so at rest every <img> src points into /uploads.
type News struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UUID             string    `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	Title            string    `gorm:"type:varchar(200);not null" json:"title" validate:"required,min=1,max=200"`
	ShortDescription string    `gorm:"type:varchar(500)" json:"shortDescription" validate:"max=500"`
	Description      string    `gorm:"type:longtext;not null" json:"description" validate:"required,max=1000000"`
	Category         string    `gorm:"type:varchar(50);index:idx_news_listing,priority:1" json:"category" validate:"required,max=50"`
	Slug             *string   `gorm:"type:varchar(200);uniqueIndex" json:"slug,omitempty"`
	ImageURL         string    `gorm:"type:varchar(255)" json:"imageUrl"`
	SocialImageURL   string    `gorm:"type:varchar(255)" json:"socialImageUrl"`
	VideoURL         string    `gorm:"type:varchar(500)" json:"videoUrl"`
	VideoFileURL     string    `gorm:"type:varchar(255)" json:"videoFileUrl"`
	IsPublished      bool      `gorm:"default:false;index:idx_news_listing,priority:2" json:"isPublished"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index:idx_news_listing,priority:3,sort:desc" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}

func (n *News) Validate() error {
	v := validator.New()

	return v.Struct(n)
}

// SlugValue returns the slug or an empty string when none is set.
func (n *News) SlugValue() string {
	if n.Slug == nil {
		return ""
	}
	return *n.Slug
}

// SetSlug stores a non-empty slug and clears the column otherwise. The column
// is nullable so articles without a slug do not collide on the unique index.
func (n *News) SetSlug(s string) {
	if s == "" {
		n.Slug = nil
		return
	}
	n.Slug = &s
}

// BeforeSave keeps the sparse-uniqueness contract intact even when callers
// assign Slug directly.
func (n *News) BeforeSave(_ *gorm.DB) error {
	if n.Slug != nil && *n.Slug == "" {
		n.Slug = nil
	}
	return nil
}
