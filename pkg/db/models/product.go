package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bowboxshop/bowbox-backend/pkg/enums"
)

// Product represents a catalog listing.
type Product struct {
	ID           uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string                 `gorm:"column:name;not null"`
	Description  *string                `gorm:"column:description"`
	Price        decimal.Decimal        `gorm:"column:price;type:numeric(10,2);not null"`
	Category     enums.ProductCategory  `gorm:"column:category;type:category;not null"`
	Occasion     *enums.ProductOccasion `gorm:"column:occasion;type:occasion"`
	ImageURL     string                 `gorm:"column:image_url;not null"`
	IsNewArrival bool                   `gorm:"column:is_new_arrival;not null;default:false"`
	IsSpecial    bool                   `gorm:"column:is_special;not null;default:false"`
	IsBestSeller bool                   `gorm:"column:is_best_seller;not null;default:false"`
	CreatedAt    time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
