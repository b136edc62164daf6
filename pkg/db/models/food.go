package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Food represents a catalog entry.
type Food struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name            string          `gorm:"column:name;not null"`
	Description     string          `gorm:"column:description;not null"`
	Price           decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	ImageURL        string          `gorm:"column:image_url;not null"`
	Category        string          `gorm:"column:category;not null"`
	Rating          float64         `gorm:"column:rating;not null;default:0"`
	PrepTimeMinutes *int            `gorm:"column:prep_time_minutes"`
	IsVeg           bool            `gorm:"column:is_veg;not null;default:false"`
	IsSpicy         bool            `gorm:"column:is_spicy;not null;default:false"`
	IsPopular       bool            `gorm:"column:is_popular;not null;default:false"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the id app-side so the model works on both sqlite and
// postgres. The id is immutable once assigned.
func (f *Food) BeforeCreate(_ *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
