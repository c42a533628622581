package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	product "github.com/bowboxshop/bowbox-backend/internal/products"
	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
)

// CartItemDTO is one cart row joined with its product.
type CartItemDTO struct {
	ID        uuid.UUID          `json:"id"`
	Quantity  int                `json:"quantity"`
	Subtotal  string             `json:"subtotal"`
	Product   product.ProductDTO `json:"product"`
	CreatedAt time.Time          `json:"created_at"`
}

// CartDTO is the full cart view: rows plus totals recomputed from them.
type CartDTO struct {
	Items       []CartItemDTO `json:"items"`
	TotalItems  int           `json:"total_items"`
	TotalAmount string        `json:"total_amount"`
}

// NewCartItemDTO builds a DTO from the persisted row. The product must be
// preloaded.
func NewCartItemDTO(item *models.CartItem) CartItemDTO {
	dto := CartItemDTO{
		ID:        item.ID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}
	if item.Product != nil {
		dto.Product = product.NewProductDTO(item.Product)
		dto.Subtotal = item.Product.Price.
			Mul(decimal.NewFromInt(int64(item.Quantity))).
			StringFixed(2)
	}
	return dto
}

// NewCartDTO maps the rows and derives totals. Totals are never stored.
func NewCartDTO(items []models.CartItem) CartDTO {
	dto := CartDTO{Items: make([]CartItemDTO, 0, len(items))}

	total := decimal.Zero
	for i := range items {
		dto.Items = append(dto.Items, NewCartItemDTO(&items[i]))
		dto.TotalItems += items[i].Quantity
		if items[i].Product != nil {
			total = total.Add(items[i].Product.Price.Mul(decimal.NewFromInt(int64(items[i].Quantity))))
		}
	}
	dto.TotalAmount = total.StringFixed(2)
	return dto
}
