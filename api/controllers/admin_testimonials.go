package controllers

import (
	"net/http"

	"github.com/bowboxshop/bowbox-backend/api/responses"
	"github.com/bowboxshop/bowbox-backend/api/validators"
	mediasvc "github.com/bowboxshop/bowbox-backend/internal/media"
	testimonialsvc "github.com/bowboxshop/bowbox-backend/internal/testimonials"
	"github.com/bowboxshop/bowbox-backend/pkg/enums"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
	"github.com/bowboxshop/bowbox-backend/pkg/logger"
)

// AdminTestimonialCreate accepts a multipart form with an optional customer
// name and the same two-mode image input the product form uses.
func AdminTestimonialCreate(svc testimonialsvc.Service, media mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || media == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "testimonial service unavailable"))
			return
		}

		userID, err := currentUserID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		imageURL, err := resolveImageInput(r, media, enums.MediaKindTestimonialImage, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if imageURL == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "either an image file or image_link is required"))
			return
		}

		input := testimonialsvc.CreateTestimonialInput{
			CustomerName: validators.SanitizeString(r.FormValue("customer_name"), 120),
			ImageURL:     imageURL,
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}
