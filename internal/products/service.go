package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	testimonial "github.com/bowboxshop/bowbox-backend/internal/testimonials"
	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
	"github.com/bowboxshop/bowbox-backend/pkg/enums"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
)

// Boolean columns backing the home-page sections.
const (
	flagNewArrival = "is_new_arrival"
	flagSpecial    = "is_special"
	flagBestSeller = "is_best_seller"
)

// HomeDTO groups the storefront landing sections.
type HomeDTO struct {
	NewArrivals  []ProductDTO                 `json:"new_arrivals"`
	Specials     []ProductDTO                 `json:"specials"`
	BestSellers  []ProductDTO                 `json:"best_sellers"`
	Testimonials []testimonial.TestimonialDTO `json:"testimonials"`
}

// CategoryStatDTO is one dashboard stat card.
type CategoryStatDTO struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// StatsDTO is the admin dashboard summary. Every category appears, zero
// or not, in display order.
type StatsDTO struct {
	TotalProducts int64             `json:"total_products"`
	Categories    []CategoryStatDTO `json:"categories"`
}

// Service defines the behavior needed by the product controllers.
type Service interface {
	List(ctx context.Context, category, occasion string) ([]ProductDTO, error)
	Home(ctx context.Context) (*HomeDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDetailDTO, error)
	BuyLink(ctx context.Context, id uuid.UUID) (*BuyLinkDTO, error)
	ListAdmin(ctx context.Context) ([]ProductDTO, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*StatsDTO, error)
}

type repository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, filters ProductListFilters) ([]models.Product, error)
	ListByFlag(ctx context.Context, column string, limit int) ([]models.Product, error)
	ListRelated(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCategory(ctx context.Context) (map[enums.ProductCategory]int64, error)
}

type testimonialLister interface {
	List(ctx context.Context) ([]testimonial.TestimonialDTO, error)
}

type buyLinkBuilder interface {
	BuyNowLink(product *models.Product) string
}

type service struct {
	repo         repository
	testimonials testimonialLister
	links        buyLinkBuilder
}

// ServiceParams bundles the dependencies required to build a product service.
type ServiceParams struct {
	Repo         repository
	Testimonials testimonialLister
	Links        buyLinkBuilder
}

// NewService constructs a product service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	if params.Testimonials == nil {
		return nil, fmt.Errorf("testimonial lister is required")
	}
	if params.Links == nil {
		return nil, fmt.Errorf("buy link builder is required")
	}
	return &service{
		repo:         params.Repo,
		testimonials: params.Testimonials,
		links:        params.Links,
	}, nil
}

func (s *service) List(ctx context.Context, category, occasion string) ([]ProductDTO, error) {
	filters, err := parseListFilters(category, occasion)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list products")
	}
	return NewProductDTOs(products), nil
}

func (s *service) Home(ctx context.Context) (*HomeDTO, error) {
	newArrivals, err := s.repo.ListByFlag(ctx, flagNewArrival, 0)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list new arrivals")
	}
	specials, err := s.repo.ListByFlag(ctx, flagSpecial, 0)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list specials")
	}
	bestSellers, err := s.repo.ListByFlag(ctx, flagBestSeller, 0)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list best sellers")
	}
	testimonials, err := s.testimonials.List(ctx)
	if err != nil {
		return nil, err
	}

	return &HomeDTO{
		NewArrivals:  NewProductDTOs(newArrivals),
		Specials:     NewProductDTOs(specials),
		BestSellers:  NewProductDTOs(bestSellers),
		Testimonials: testimonials,
	}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductDetailDTO, error) {
	found, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	related, err := s.repo.ListRelated(ctx, string(found.Category), found.ID, RelatedLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list related products")
	}

	return &ProductDetailDTO{
		Product: NewProductDTO(found),
		Related: NewProductDTOs(related),
	}, nil
}

func (s *service) BuyLink(ctx context.Context, id uuid.UUID) (*BuyLinkDTO, error) {
	found, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return &BuyLinkDTO{URL: s.links.BuyNowLink(found)}, nil
}

func (s *service) ListAdmin(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.List(ctx, ProductListFilters{})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list products")
	}
	return NewProductDTOs(products), nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image is required")
	}

	category := enums.ProductCategory(input.Category)
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown category %q", input.Category))
	}

	var occasion *enums.ProductOccasion
	if input.Occasion != nil && strings.TrimSpace(*input.Occasion) != "" {
		parsed := enums.ProductOccasion(*input.Occasion)
		if !parsed.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown occasion %q", *input.Occasion))
		}
		occasion = &parsed
	}

	created, err := s.repo.Create(ctx, &models.Product{
		Name:         name,
		Description:  input.Description,
		Price:        input.Price,
		Category:     category,
		Occasion:     occasion,
		ImageURL:     strings.TrimSpace(input.ImageURL),
		IsNewArrival: input.IsNewArrival,
		IsSpecial:    input.IsSpecial,
		IsBestSeller: input.IsBestSeller,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create product")
	}

	dto := NewProductDTO(created)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to delete product")
	}
	return nil
}

func (s *service) Stats(ctx context.Context) (*StatsDTO, error) {
	counts, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to count products")
	}

	stats := &StatsDTO{Categories: make([]CategoryStatDTO, 0, len(enums.ProductCategories))}
	for _, category := range enums.ProductCategories {
		count := counts[category]
		stats.TotalProducts += count
		stats.Categories = append(stats.Categories, CategoryStatDTO{
			Category: string(category),
			Count:    count,
		})
	}
	return stats, nil
}

func (s *service) findProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load product")
	}
	return found, nil
}

func parseListFilters(category, occasion string) (ProductListFilters, error) {
	var filters ProductListFilters

	if category != "" {
		parsed := enums.ProductCategory(category)
		if !parsed.IsValid() {
			return filters, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown category %q", category))
		}
		filters.Category = &parsed
	}
	if occasion != "" {
		parsed := enums.ProductOccasion(occasion)
		if !parsed.IsValid() {
			return filters, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown occasion %q", occasion))
		}
		filters.Occasion = &parsed
	}
	return filters, nil
}
