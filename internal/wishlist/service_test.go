package wishlist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
	"github.com/bowboxshop/bowbox-backend/pkg/enums"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
)

type stubWishlistRepo struct {
	saved map[uuid.UUID]map[uuid.UUID]*models.Product
}

func newStubWishlistRepo() *stubWishlistRepo {
	return &stubWishlistRepo{saved: map[uuid.UUID]map[uuid.UUID]*models.Product{}}
}

func (s *stubWishlistRepo) Add(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	if s.saved[userID] == nil {
		s.saved[userID] = map[uuid.UUID]*models.Product{}
	}
	if _, ok := s.saved[userID][productID]; ok {
		return false, nil
	}
	s.saved[userID][productID] = nil
	return true, nil
}

func (s *stubWishlistRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	for productID, p := range s.saved[userID] {
		items = append(items, models.WishlistItem{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: productID,
			Product:   p,
		})
	}
	return items, nil
}

func (s *stubWishlistRepo) ListProductIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for productID := range s.saved[userID] {
		ids = append(ids, productID)
	}
	return ids, nil
}

func (s *stubWishlistRepo) Delete(_ context.Context, userID, productID uuid.UUID) error {
	if _, ok := s.saved[userID][productID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.saved[userID], productID)
	return nil
}

type stubFinder struct {
	products map[uuid.UUID]*models.Product
}

func (s *stubFinder) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	found, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return found, nil
}

func wishlistTestProduct(name string) *models.Product {
	return &models.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    decimal.New(199, 0),
		Category: enums.CategoryCandle,
		ImageURL: "https://img/" + name,
	}
}

func newWishlistTestService(t *testing.T, repo *stubWishlistRepo, finder *stubFinder) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{Repo: repo, Products: finder})
	require.NoError(t, err)
	return svc
}

func TestServiceAddTreatsDuplicateAsBenign(t *testing.T) {
	repo := newStubWishlistRepo()
	candle := wishlistTestProduct("Rose Candle")
	finder := &stubFinder{products: map[uuid.UUID]*models.Product{candle.ID: candle}}
	svc := newWishlistTestService(t, repo, finder)
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.Add(ctx, userID, candle.ID)
	require.NoError(t, err)
	assert.True(t, first.Added)
	assert.False(t, first.AlreadySaved)

	second, err := svc.Add(ctx, userID, candle.ID)
	require.NoError(t, err)
	assert.False(t, second.Added)
	assert.True(t, second.AlreadySaved)
}

func TestServiceAddRejectsUnknownProduct(t *testing.T) {
	svc := newWishlistTestService(t, newStubWishlistRepo(), &stubFinder{products: map[uuid.UUID]*models.Product{}})

	_, err := svc.Add(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)

	var typed *pkgerrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceListSkipsDanglingRows(t *testing.T) {
	repo := newStubWishlistRepo()
	candle := wishlistTestProduct("Rose Candle")
	userID := uuid.New()
	repo.saved[userID] = map[uuid.UUID]*models.Product{
		candle.ID:  candle,
		uuid.New(): nil,
	}
	svc := newWishlistTestService(t, repo, &stubFinder{products: map[uuid.UUID]*models.Product{}})

	products, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Rose Candle", products[0].Name)
}

func TestServiceRemove(t *testing.T) {
	repo := newStubWishlistRepo()
	candle := wishlistTestProduct("Rose Candle")
	finder := &stubFinder{products: map[uuid.UUID]*models.Product{candle.ID: candle}}
	svc := newWishlistTestService(t, repo, finder)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Add(ctx, userID, candle.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, userID, candle.ID))

	err = svc.Remove(ctx, userID, candle.ID)
	var typed *pkgerrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
