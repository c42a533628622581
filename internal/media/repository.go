package media

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
)

// Repository records object-storage writes in the media table.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the media record and returns the persisted model.
func (r *Repository) Create(ctx context.Context, record *models.Media) (*models.Media, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}
