package testimonial

import (
	"context"
	"fmt"
	"strings"

	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
)

// DefaultCustomerName is used when the admin console submits a photo
// without attribution.
const DefaultCustomerName = "Happy Customer"

// Service defines the behavior needed by the testimonial controllers.
type Service interface {
	List(ctx context.Context) ([]TestimonialDTO, error)
	Create(ctx context.Context, input CreateTestimonialInput) (*TestimonialDTO, error)
}

type repository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) (*models.Testimonial, error)
	List(ctx context.Context) ([]models.Testimonial, error)
}

type service struct {
	repo repository
}

// NewService constructs a testimonial service backed by the repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("testimonial repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]TestimonialDTO, error) {
	testimonials, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list testimonials")
	}
	return NewTestimonialDTOs(testimonials), nil
}

func (s *service) Create(ctx context.Context, input CreateTestimonialInput) (*TestimonialDTO, error) {
	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}

	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		name = DefaultCustomerName
	}

	created, err := s.repo.Create(ctx, &models.Testimonial{
		CustomerName: name,
		ImageURL:     imageURL,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create testimonial")
	}

	dto := NewTestimonialDTO(created)
	return &dto, nil
}
