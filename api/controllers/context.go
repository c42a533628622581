package controllers

import (
	"context"

	"github.com/google/uuid"

	"github.com/bowboxshop/bowbox-backend/api/middleware"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
)

// currentUserID resolves the authenticated shopper from the request context.
func currentUserID(ctx context.Context) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(ctx)
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	uid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user context")
	}
	return uid, nil
}
