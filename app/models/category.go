package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Category is a news section. Articles reference it by name; the reference is
// checked when an article is written, never enforced as a foreign key, so
// deleting a category leaves its articles untouched.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(50) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;uniqueIndex;not null" json:"name" validate:"required,min=1,max=50"`
	Description string    `gorm:"type:varchar(200)" json:"description" validate:"max=200"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// DefaultCategories is the fixed set seeded at startup when absent.
var DefaultCategories = []Category{
	{Name: "ग्राम समाचार", Description: "गांव और ग्रामीण क्षेत्रों से जुड़ी खबरें"},
	{Name: "राजनीति", Description: "राजनीतिक घटनाओं और समाचार"},
	{Name: "शिक्षा", Description: "शिक्षा से जुड़ी खबरें और घटनाएं"},
	{Name: "मौसम", Description: "मौसम और जलवायु से जुड़ी जानकारी"},
	{Name: "स्वास्थ्य", Description: "स्वास्थ्य और चिकित्सा से जुड़ी खबरें"},
	{Name: "कृषि", Description: "कृषि और किसानों से जुड़ी जानकारी"},
	{Name: "मनोरंजन", Description: "मनोरंजन और सांस्कृतिक समाचार"},
	{Name: "अन्य", Description: "अन्य महत्वपूर्ण समाचार"},
}
