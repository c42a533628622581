package testimonial

import (
	"time"

	"github.com/google/uuid"

	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
)

// TestimonialDTO is the customer-photo card payload.
type TestimonialDTO struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateTestimonialInput captures the admin console payload. ImageURL is
// already resolved by the caller (uploaded object or normalized link).
type CreateTestimonialInput struct {
	CustomerName string
	ImageURL     string
}

// NewTestimonialDTO builds a DTO from the persisted model.
func NewTestimonialDTO(testimonial *models.Testimonial) TestimonialDTO {
	return TestimonialDTO{
		ID:           testimonial.ID,
		CustomerName: testimonial.CustomerName,
		ImageURL:     testimonial.ImageURL,
		CreatedAt:    testimonial.CreatedAt,
	}
}

// NewTestimonialDTOs maps a slice of models into transport DTOs.
func NewTestimonialDTOs(testimonials []models.Testimonial) []TestimonialDTO {
	dtos := make([]TestimonialDTO, 0, len(testimonials))
	for i := range testimonials {
		dtos = append(dtos, NewTestimonialDTO(&testimonials[i]))
	}
	return dtos
}
