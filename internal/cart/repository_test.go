package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
	"github.com/bowboxshop/bowbox-backend/pkg/enums"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL,
  category TEXT NOT NULL,
  occasion TEXT,
  image_url TEXT NOT NULL,
  is_new_arrival INTEGER NOT NULL DEFAULT 0,
  is_special INTEGER NOT NULL DEFAULT 0,
  is_best_seller INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	cartItems := `
CREATE TABLE IF NOT EXISTS cart_items (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1),
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (user_id, product_id)
);`
	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec(cartItems).Error)
	require.NoError(t, db.Exec("DELETE FROM cart_items").Error)
	require.NoError(t, db.Exec("DELETE FROM products").Error)
	return db
}

func seedCartProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    decimal.New(199, 0),
		Category: enums.CategoryCandle,
		ImageURL: "https://img/" + name,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestRepositoryUpsertIncrements(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	candle := seedCartProduct(t, db, "Rose Candle")

	first, err := repo.Upsert(ctx, userID, candle.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)
	require.NotNil(t, first.Product)
	assert.Equal(t, "Rose Candle", first.Product.Name)

	second, err := repo.Upsert(ctx, userID, candle.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, first.ID, second.ID)

	items, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRepositoryUpsertIsolatesUsers(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	candle := seedCartProduct(t, db, "Rose Candle")
	alice := uuid.New()
	bob := uuid.New()

	_, err := repo.Upsert(ctx, alice, candle.ID)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, bob, candle.ID)
	require.NoError(t, err)

	aliceItems, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceItems, 1)
	assert.Equal(t, 1, aliceItems[0].Quantity)
}

func TestRepositoryUpdateQuantity(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	candle := seedCartProduct(t, db, "Rose Candle")
	item, err := repo.Upsert(ctx, userID, candle.ID)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateQuantity(ctx, item.ID, userID, 5))

	updated, err := repo.FindByUserAndProduct(ctx, userID, candle.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	err = repo.UpdateQuantity(ctx, uuid.New(), userID, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Another user's id never matches someone else's row.
	err = repo.UpdateQuantity(ctx, item.ID, uuid.New(), 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDeleteSurfacesMissingRows(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	candle := seedCartProduct(t, db, "Rose Candle")
	item, err := repo.Upsert(ctx, userID, candle.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, item.ID, userID))

	err = repo.Delete(ctx, item.ID, userID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
