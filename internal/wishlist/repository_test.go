package wishlist

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

func setupWishlistTestDB(t *testing.T) *gorm.DB {
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
	wishlistItems := `
CREATE TABLE IF NOT EXISTS wishlist_items (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  created_at DATETIME,
  UNIQUE (user_id, product_id)
);`
	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec(wishlistItems).Error)
	require.NoError(t, db.Exec("DELETE FROM wishlist_items").Error)
	require.NoError(t, db.Exec("DELETE FROM products").Error)
	return db
}

func seedWishlistProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
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

func TestRepositoryAddReportsDuplicates(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	candle := seedWishlistProduct(t, db, "Rose Candle")

	added, err := repo.Add(ctx, userID, candle.ID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Add(ctx, userID, candle.ID)
	require.NoError(t, err)
	assert.False(t, added)

	items, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Rose Candle", items[0].Product.Name)
}

func TestRepositoryListProductIDs(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	candle := seedWishlistProduct(t, db, "Rose Candle")
	pendant := seedWishlistProduct(t, db, "Silver Pendant")

	_, err := repo.Add(ctx, userID, candle.ID)
	require.NoError(t, err)
	_, err = repo.Add(ctx, userID, pendant.ID)
	require.NoError(t, err)

	ids, err := repo.ListProductIDs(ctx, userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{candle.ID, pendant.ID}, ids)

	ids, err = repo.ListProductIDs(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRepositoryDeleteScopedToUser(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	candle := seedWishlistProduct(t, db, "Rose Candle")

	_, err := repo.Add(ctx, alice, candle.ID)
	require.NoError(t, err)

	err = repo.Delete(ctx, bob, candle.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Delete(ctx, alice, candle.ID))

	items, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, items)
}
