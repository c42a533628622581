package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bowboxshop/bowbox-backend/api/responses"
	"github.com/bowboxshop/bowbox-backend/api/validators"
	mediasvc "github.com/bowboxshop/bowbox-backend/internal/media"
	productsvc "github.com/bowboxshop/bowbox-backend/internal/products"
	"github.com/bowboxshop/bowbox-backend/pkg/enums"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
	"github.com/bowboxshop/bowbox-backend/pkg/logger"
)

const multipartMemoryLimit = 32 << 20

// AdminProductsList serves the full catalog for the admin console, newest first.
func AdminProductsList(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		items, err := svc.ListAdmin(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// AdminProductCreate accepts a multipart form carrying the product fields and
// either an uploaded image file or a pasted image_link.
func AdminProductCreate(svc productsvc.Service, media mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || media == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
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

		input := productsvc.CreateProductInput{
			Name:     validators.SanitizeString(r.FormValue("name"), 200),
			Category: strings.TrimSpace(r.FormValue("category")),
		}

		priceRaw := strings.TrimSpace(r.FormValue("price"))
		price, err := decimal.NewFromString(priceRaw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price must be a decimal number"))
			return
		}
		input.Price = price

		if desc := validators.SanitizeString(r.FormValue("description"), 4000); desc != "" {
			input.Description = &desc
		}
		if occ := strings.TrimSpace(r.FormValue("occasion")); occ != "" {
			input.Occasion = &occ
		}

		input.IsNewArrival, err = parseFormBool(r.FormValue("is_new_arrival"))
		if err == nil {
			input.IsSpecial, err = parseFormBool(r.FormValue("is_special"))
		}
		if err == nil {
			input.IsBestSeller, err = parseFormBool(r.FormValue("is_best_seller"))
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		imageURL, err := resolveImageInput(r, media, enums.MediaKindProductImage, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if imageURL == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "either an image file or image_link is required"))
			return
		}
		input.ImageURL = imageURL

		product, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminProductDelete removes a product from the catalog.
func AdminProductDelete(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// resolveImageInput implements the two-mode image form: an uploaded file wins,
// otherwise a pasted link is normalized through the drive-link converter.
// An empty string means neither mode was supplied.
func resolveImageInput(r *http.Request, media mediasvc.Service, kind enums.MediaKind, uploadedBy uuid.UUID) (string, error) {
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		stored, uploadErr := media.Upload(r.Context(), mediasvc.UploadInput{
			Kind:        kind,
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			SizeBytes:   header.Size,
			Body:        file,
			UploadedBy:  &uploadedBy,
		})
		if uploadErr != nil {
			return "", uploadErr
		}
		return stored.URL, nil
	}
	if err != http.ErrMissingFile {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "reading image file")
	}

	link := strings.TrimSpace(r.FormValue("image_link"))
	if link == "" {
		return "", nil
	}
	return mediasvc.NormalizeImageLink(link), nil
}

func parseFormBool(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "flag fields must be true or false")
	}
	return value, nil
}
