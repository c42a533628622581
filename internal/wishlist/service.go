package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	product "github.com/bowboxshop/bowbox-backend/internal/products"
	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
)

// AddResultDTO reports the outcome of a save. A duplicate is benign:
// added=false with already_saved=true, never an error.
type AddResultDTO struct {
	Added        bool `json:"added"`
	AlreadySaved bool `json:"already_saved"`
}

// Service defines the behavior needed by the wishlist controller.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]product.ProductDTO, error)
	ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Add(ctx context.Context, userID, productID uuid.UUID) (*AddResultDTO, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
}

type repository interface {
	Add(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
	ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}

type productFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo     repository
	products productFinder
}

// ServiceParams bundles the dependencies required to build a wishlist service.
type ServiceParams struct {
	Repo     repository
	Products productFinder
}

// NewService constructs a wishlist service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("wishlist repository is required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product finder is required")
	}
	return &service{repo: params.Repo, products: params.Products}, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]product.ProductDTO, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list wishlist")
	}

	products := make([]product.ProductDTO, 0, len(items))
	for i := range items {
		if items[i].Product == nil {
			continue
		}
		products = append(products, product.NewProductDTO(items[i].Product))
	}
	return products, nil
}

func (s *service) ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.repo.ListProductIDs(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list wishlist ids")
	}
	return ids, nil
}

func (s *service) Add(ctx context.Context, userID, productID uuid.UUID) (*AddResultDTO, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load product")
	}

	added, err := s.repo.Add(ctx, userID, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to save wishlist item")
	}
	return &AddResultDTO{Added: added, AlreadySaved: !added}, nil
}

func (s *service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "wishlist item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to remove wishlist item")
	}
	return nil
}
