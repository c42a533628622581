package controllers

import (
	"net/http"

	"github.com/bowboxshop/bowbox-backend/api/responses"
	testimonialsvc "github.com/bowboxshop/bowbox-backend/internal/testimonials"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
	"github.com/bowboxshop/bowbox-backend/pkg/logger"
)

// TestimonialsList serves the published customer testimonials, newest first.
func TestimonialsList(svc testimonialsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "testimonial service unavailable"))
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}
