package testimonial

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
)

// Repository wires together testimonial persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the testimonial and returns the persisted model.
func (r *Repository) Create(ctx context.Context, testimonial *models.Testimonial) (*models.Testimonial, error) {
	if testimonial.ID == uuid.Nil {
		testimonial.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

// List returns all testimonials, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}
