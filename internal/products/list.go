package product

import (
	"github.com/bowboxshop/bowbox-backend/pkg/enums"
)

// ProductListFilters describe the supported filter knobs for the browse endpoint.
// Filters combine as a conjunction.
type ProductListFilters struct {
	Category *enums.ProductCategory `json:"category,omitempty"`
	Occasion *enums.ProductOccasion `json:"occasion,omitempty"`
}

// RelatedLimit caps how many same-category products the detail view carries.
const RelatedLimit = 4
