// Package checkout builds WhatsApp deep links for the storefront's
// chat-based purchase flow. Nothing here persists anything: a buy action
// is a pre-filled message handed to wa.me and concluded over chat.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bowboxshop/bowbox-backend/pkg/config"
	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
)

// OrderLine is one cart row flattened for message rendering.
type OrderLine struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
	ImageURL string
}

// OrderSummary carries the rendered checkout payload returned to clients.
type OrderSummary struct {
	Message     string          `json:"message"`
	WhatsAppURL string          `json:"whatsapp_url"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalItems  int             `json:"total_items"`
}

// Builder renders purchase messages and wraps them in wa.me links.
type Builder struct {
	phone string
}

// NewBuilder returns a Builder targeting the configured WhatsApp number.
func NewBuilder(cfg config.CheckoutConfig) *Builder {
	return &Builder{phone: cfg.WhatsAppPhone}
}

// Link URL-escapes message into a wa.me deep link.
func (b *Builder) Link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.phone, url.QueryEscape(message))
}

// BuyNowLink builds the single-product purchase link used by the catalog
// and product detail views.
func (b *Builder) BuyNowLink(product *models.Product) string {
	message := fmt.Sprintf(
		"Hey Bowbox! I'm interested in: %s\nPrice: ₹%s\nLink: %s",
		product.Name,
		product.Price.StringFixed(2),
		product.ImageURL,
	)
	return b.Link(message)
}

// OrderSummary renders the full-cart order message: one block per line
// item plus the recomputed totals. Totals are derived here every time,
// never read from storage.
func (b *Builder) OrderSummary(lines []OrderLine) OrderSummary {
	var sb strings.Builder
	sb.WriteString("Hey Bowbox! I'd like to place an order:\n")

	total := decimal.Zero
	totalItems := 0
	for i, line := range lines {
		subtotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)
		totalItems += line.Quantity

		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, line.Name)
		fmt.Fprintf(&sb, "Qty: %d\n", line.Quantity)
		fmt.Fprintf(&sb, "Price: ₹%s\n", line.Price.StringFixed(2))
		fmt.Fprintf(&sb, "Subtotal: ₹%s\n", subtotal.StringFixed(2))
		if line.ImageURL != "" {
			fmt.Fprintf(&sb, "Link: %s\n", line.ImageURL)
		}
	}

	fmt.Fprintf(&sb, "\nTotal (%d items): ₹%s", totalItems, total.StringFixed(2))

	message := sb.String()
	return OrderSummary{
		Message:     message,
		WhatsAppURL: b.Link(message),
		TotalAmount: total,
		TotalItems:  totalItems,
	}
}
