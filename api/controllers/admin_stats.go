package controllers

import (
	"net/http"

	"github.com/bowboxshop/bowbox-backend/api/responses"
	productsvc "github.com/bowboxshop/bowbox-backend/internal/products"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
	"github.com/bowboxshop/bowbox-backend/pkg/logger"
)

// AdminStats serves the dashboard stat cards: product counts per category.
func AdminStats(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
