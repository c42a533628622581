package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bowboxshop/bowbox-backend/internal/checkout"
	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
)

// Service defines the behavior needed by the cart controller.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	Add(ctx context.Context, userID, productID uuid.UUID) (*CartItemDTO, error)
	SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	Checkout(ctx context.Context, userID uuid.UUID) (*checkout.OrderSummary, error)
}

type repository interface {
	Upsert(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID, userID uuid.UUID, quantity int) error
	Delete(ctx context.Context, itemID, userID uuid.UUID) error
}

type productFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type orderBuilder interface {
	OrderSummary(lines []checkout.OrderLine) checkout.OrderSummary
}

type service struct {
	repo     repository
	products productFinder
	orders   orderBuilder
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	Repo     repository
	Products productFinder
	Orders   orderBuilder
}

// NewService constructs a cart service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product finder is required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("order builder is required")
	}
	return &service{repo: params.Repo, products: params.Products, orders: params.Orders}, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list cart items")
	}
	dto := NewCartDTO(items)
	return &dto, nil
}

func (s *service) Add(ctx context.Context, userID, productID uuid.UUID) (*CartItemDTO, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load product")
	}

	item, err := s.repo.Upsert(ctx, userID, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to add cart item")
	}

	dto := NewCartItemDTO(item)
	return &dto, nil
}

func (s *service) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation,
			"quantity must be at least 1; remove the item instead")
	}

	if err := s.repo.UpdateQuantity(ctx, itemID, userID, quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update cart item")
	}
	return nil
}

func (s *service) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := s.repo.Delete(ctx, itemID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to remove cart item")
	}
	return nil
}

// Checkout renders the WhatsApp order message from the current cart. It
// writes nothing: the sale is concluded over chat.
func (s *service) Checkout(ctx context.Context, userID uuid.UUID) (*checkout.OrderSummary, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list cart items")
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	lines := make([]checkout.OrderLine, 0, len(items))
	for i := range items {
		if items[i].Product == nil {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart item missing product")
		}
		lines = append(lines, checkout.OrderLine{
			Name:     items[i].Product.Name,
			Quantity: items[i].Quantity,
			Price:    items[i].Product.Price,
			ImageURL: items[i].Product.ImageURL,
		})
	}

	summary := s.orders.OrderSummary(lines)
	return &summary, nil
}
