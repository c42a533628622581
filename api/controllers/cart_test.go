package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bowboxshop/bowbox-backend/api/middleware"
	cartsvc "github.com/bowboxshop/bowbox-backend/internal/cart"
	"github.com/bowboxshop/bowbox-backend/internal/checkout"
	"github.com/bowboxshop/bowbox-backend/internal/notifications"
	"github.com/bowboxshop/bowbox-backend/pkg/logger"
)

type testCartService struct {
	listFn        func(ctx context.Context, userID uuid.UUID) (*cartsvc.CartDTO, error)
	addFn         func(ctx context.Context, userID, productID uuid.UUID) (*cartsvc.CartItemDTO, error)
	setQuantityFn func(ctx context.Context, userID, itemID uuid.UUID, quantity int) error
	removeFn      func(ctx context.Context, userID, itemID uuid.UUID) error
	checkoutFn    func(ctx context.Context, userID uuid.UUID) (*checkout.OrderSummary, error)
}

func (s *testCartService) List(ctx context.Context, userID uuid.UUID) (*cartsvc.CartDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID)
	}
	return &cartsvc.CartDTO{}, nil
}

func (s *testCartService) Add(ctx context.Context, userID, productID uuid.UUID) (*cartsvc.CartItemDTO, error) {
	if s.addFn != nil {
		return s.addFn(ctx, userID, productID)
	}
	return &cartsvc.CartItemDTO{}, nil
}

func (s *testCartService) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	if s.setQuantityFn != nil {
		return s.setQuantityFn(ctx, userID, itemID, quantity)
	}
	return nil
}

func (s *testCartService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	if s.removeFn != nil {
		return s.removeFn(ctx, userID, itemID)
	}
	return nil
}

func (s *testCartService) Checkout(ctx context.Context, userID uuid.UUID) (*checkout.OrderSummary, error) {
	if s.checkoutFn != nil {
		return s.checkoutFn(ctx, userID)
	}
	return &checkout.OrderSummary{}, nil
}

type testToastService struct {
	enqueued []string
}

func (s *testToastService) Enqueue(ctx context.Context, userID uuid.UUID, level notifications.Level, message string) error {
	s.enqueued = append(s.enqueued, message)
	return nil
}

func (s *testToastService) List(context.Context, uuid.UUID) ([]notifications.Notification, error) {
	return nil, nil
}

func (s *testToastService) Dismiss(context.Context, uuid.UUID) error { return nil }

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func authedRequest(method, target string, body io.Reader, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
}

func withURLParam(req *http.Request, name, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestCartAddItemSuccess(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	svc := &testCartService{
		addFn: func(ctx context.Context, uid, pid uuid.UUID) (*cartsvc.CartItemDTO, error) {
			if uid != userID {
				t.Fatalf("unexpected user %s", uid)
			}
			if pid != productID {
				t.Fatalf("unexpected product %s", pid)
			}
			return &cartsvc.CartItemDTO{ID: uuid.New(), Quantity: 1}, nil
		},
	}
	toasts := &testToastService{}

	body := strings.NewReader(`{"product_id":"` + productID.String() + `"}`)
	req := authedRequest(http.MethodPost, "/api/v1/cart/items", body, userID)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	CartAddItem(svc, toasts, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if len(toasts.enqueued) != 1 {
		t.Fatalf("expected one toast, got %d", len(toasts.enqueued))
	}
}

func TestCartAddItemRequiresUserContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	CartAddItem(&testCartService{}, nil, testLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCartUpdateItemRejectsBadID(t *testing.T) {
	req := authedRequest(http.MethodPatch, "/api/v1/cart/items/nope", strings.NewReader(`{"quantity":2}`), uuid.New())
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "itemId", "nope")
	resp := httptest.NewRecorder()
	CartUpdateItem(&testCartService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartUpdateItemPassesQuantity(t *testing.T) {
	itemID := uuid.New()
	var got int
	svc := &testCartService{
		setQuantityFn: func(ctx context.Context, userID, id uuid.UUID, quantity int) error {
			got = quantity
			return nil
		},
	}

	req := authedRequest(http.MethodPatch, "/api/v1/cart/items/"+itemID.String(), strings.NewReader(`{"quantity":3}`), uuid.New())
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "itemId", itemID.String())
	resp := httptest.NewRecorder()
	CartUpdateItem(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if got != 3 {
		t.Fatalf("expected quantity 3, got %d", got)
	}
}

func TestCartCheckoutReturnsSummary(t *testing.T) {
	svc := &testCartService{
		checkoutFn: func(ctx context.Context, userID uuid.UUID) (*checkout.OrderSummary, error) {
			return &checkout.OrderSummary{Message: "order", TotalItems: 2}, nil
		},
	}

	req := authedRequest(http.MethodPost, "/api/v1/cart/checkout", nil, uuid.New())
	resp := httptest.NewRecorder()
	CartCheckout(svc, nil, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var envelope struct {
		Data checkout.OrderSummary `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.TotalItems != 2 {
		t.Fatalf("expected total_items 2, got %d", envelope.Data.TotalItems)
	}
}
