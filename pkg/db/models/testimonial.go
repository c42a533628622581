package models

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial stores a customer photo shown on the storefront.
type Testimonial struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName string    `gorm:"column:customer_name;not null;default:'Happy Customer'"`
	ImageURL     string    `gorm:"column:image_url;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
