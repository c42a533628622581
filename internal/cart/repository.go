package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
)

// Repository wires together cart persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert adds the product to the user's cart, or bumps the quantity by one
// when a row already exists. The increment happens inside the upsert so
// concurrent adds never lose a count.
func (r *Repository) Upsert(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	item := &models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("quantity + 1"),
			}),
		}).
		Create(item).Error
	if err != nil {
		return nil, err
	}
	return r.FindByUserAndProduct(ctx, userID, productID)
}

// FindByUserAndProduct loads a single cart row with its product resolved.
func (r *Repository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		First(&item, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByUser returns the user's cart rows with products resolved, oldest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity sets the quantity on the user's cart row. Missing rows
// surface as gorm.ErrRecordNotFound.
func (r *Repository) UpdateQuantity(ctx context.Context, itemID, userID uuid.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the user's cart row. Missing rows surface as
// gorm.ErrRecordNotFound so callers can report them.
func (r *Repository) Delete(ctx context.Context, itemID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.CartItem{}, "id = ? AND user_id = ?", itemID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
