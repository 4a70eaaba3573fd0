package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	MARQUEE_TYPE_BREAKING     = "breaking"
	MARQUEE_TYPE_ANNOUNCEMENT = "announcement"
)

// MarqueeContent is a scrolling banner entry (breaking news or announcement)
// shown on the public site. Only active entries are served to readers,
// ordered by Order ascending with recency as tiebreak.
type MarqueeContent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:varchar(300);not null" json:"content" validate:"required,min=1,max=300"`
	Type      string    `gorm:"type:varchar(20);default:'announcement';index" json:"type" validate:"oneof=breaking announcement"`
	IsActive  bool      `gorm:"default:true;index" json:"isActive"`
	Order     int       `gorm:"column:display_order;default:0" json:"order" validate:"min=0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (MarqueeContent) TableName() string {
	return "marquee_contents"
}

func (m *MarqueeContent) Validate() error {
	v := validator.New()

	return v.Struct(m)
}
