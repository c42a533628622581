package product

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
	"github.com/bowboxshop/bowbox-backend/pkg/enums"
)

// Repository wires together product persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts the product and returns the persisted model.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// FindByID loads a single product.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns the catalog filtered by the provided conjunction, newest first.
func (r *Repository) List(ctx context.Context, filters ProductListFilters) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Occasion != nil {
		query = query.Where("occasion = ?", *filters.Occasion)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByFlag returns products where the named boolean column is set, newest first.
func (r *Repository) ListByFlag(ctx context.Context, column string, limit int) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where(column+" = ?", true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListRelated returns up to limit products sharing the category, excluding the product itself.
func (r *Repository) ListRelated(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("category = ? AND id <> ?", category, excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CountByCategory returns how many products exist per category. Categories
// with no products are absent from the map.
func (r *Repository) CountByCategory(ctx context.Context) (map[enums.ProductCategory]int64, error) {
	var rows []struct {
		Category enums.ProductCategory
		Count    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[enums.ProductCategory]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

// Delete removes the product. Missing rows surface as gorm.ErrRecordNotFound.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
