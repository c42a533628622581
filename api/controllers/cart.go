package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/bowboxshop/bowbox-backend/api/responses"
	"github.com/bowboxshop/bowbox-backend/api/validators"
	cartsvc "github.com/bowboxshop/bowbox-backend/internal/cart"
	"github.com/bowboxshop/bowbox-backend/internal/notifications"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
	"github.com/bowboxshop/bowbox-backend/pkg/logger"
)

type cartAddRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// notifyUser pushes a toast onto the shopper's feed. Failures are logged and
// swallowed so a flaky feed never breaks the mutation that triggered it.
func notifyUser(ctx context.Context, toasts notifications.Service, logg *logger.Logger, userID uuid.UUID, level notifications.Level, message string) {
	if toasts == nil {
		return
	}
	if err := toasts.Enqueue(ctx, userID, level, message); err != nil && logg != nil {
		logg.Warn(logg.WithField(ctx, "error", err.Error()), "enqueueing notification failed")
	}
}

// CartList returns the cart rows joined with product data plus derived totals.
func CartList(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		userID, err := currentUserID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.List(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartAddItem adds a product to the cart, incrementing the quantity when the
// product is already there.
func CartAddItem(svc cartsvc.Service, toasts notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		userID, err := currentUserID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body cartAddRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Add(r.Context(), userID, body.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		notifyUser(r.Context(), toasts, logg, userID, notifications.LevelSuccess, "Added to cart")
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// CartUpdateItem sets the quantity of a cart row. Quantities below one are
// rejected; removal is the only way down from one.
func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		userID, err := currentUserID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID, err := validators.ParseUUIDParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body cartUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetQuantity(r.Context(), userID, itemID, body.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}

// CartRemoveItem deletes a cart row.
func CartRemoveItem(svc cartsvc.Service, toasts notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		userID, err := currentUserID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID, err := validators.ParseUUIDParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Remove(r.Context(), userID, itemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		notifyUser(r.Context(), toasts, logg, userID, notifications.LevelInfo, "Removed from cart")
		responses.WriteSuccess(w, map[string]string{"status": "removed"})
	}
}

// CartCheckout renders the WhatsApp order message for the current cart. The
// cart itself is left untouched.
func CartCheckout(svc cartsvc.Service, toasts notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		userID, err := currentUserID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Checkout(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		notifyUser(r.Context(), toasts, logg, userID, notifications.LevelSuccess, "Order ready to send on WhatsApp")
		responses.WriteSuccess(w, summary)
	}
}
