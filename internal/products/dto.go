package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
)

// ProductDTO represents the catalog payload returned to clients.
type ProductDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Price        string    `json:"price"`
	Category     string    `json:"category"`
	Occasion     *string   `json:"occasion,omitempty"`
	ImageURL     string    `json:"image_url"`
	IsNewArrival bool      `json:"is_new_arrival"`
	IsSpecial    bool      `json:"is_special"`
	IsBestSeller bool      `json:"is_best_seller"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductDetailDTO bundles a product with its same-category companions.
type ProductDetailDTO struct {
	Product ProductDTO   `json:"product"`
	Related []ProductDTO `json:"related"`
}

// BuyLinkDTO carries the WhatsApp deep link for a single product.
type BuyLinkDTO struct {
	URL string `json:"url"`
}

// CreateProductInput captures the admin console payload for a new listing.
type CreateProductInput struct {
	Name         string
	Description  *string
	Price        decimal.Decimal
	Category     string
	Occasion     *string
	ImageURL     string
	IsNewArrival bool
	IsSpecial    bool
	IsBestSeller bool
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(product *models.Product) ProductDTO {
	dto := ProductDTO{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price.StringFixed(2),
		Category:     string(product.Category),
		ImageURL:     product.ImageURL,
		IsNewArrival: product.IsNewArrival,
		IsSpecial:    product.IsSpecial,
		IsBestSeller: product.IsBestSeller,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
	if product.Occasion != nil {
		occasion := string(*product.Occasion)
		dto.Occasion = &occasion
	}
	return dto
}

// NewProductDTOs maps a slice of models into transport DTOs.
func NewProductDTOs(products []models.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, NewProductDTO(&products[i]))
	}
	return dtos
}
