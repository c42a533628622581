package routes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bowboxshop/bowbox-backend/api/controllers"
	"github.com/bowboxshop/bowbox-backend/internal/auth"
	cartsvc "github.com/bowboxshop/bowbox-backend/internal/cart"
	"github.com/bowboxshop/bowbox-backend/internal/checkout"
	mediasvc "github.com/bowboxshop/bowbox-backend/internal/media"
	"github.com/bowboxshop/bowbox-backend/internal/notifications"
	productsvc "github.com/bowboxshop/bowbox-backend/internal/products"
	testimonialsvc "github.com/bowboxshop/bowbox-backend/internal/testimonials"
	"github.com/bowboxshop/bowbox-backend/internal/users"
	wishlistsvc "github.com/bowboxshop/bowbox-backend/internal/wishlist"
	pkgAuth "github.com/bowboxshop/bowbox-backend/pkg/auth"
	"github.com/bowboxshop/bowbox-backend/pkg/config"
	"github.com/bowboxshop/bowbox-backend/pkg/enums"
	"github.com/bowboxshop/bowbox-backend/pkg/logger"
	"github.com/bowboxshop/bowbox-backend/pkg/redis"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(context.Context, string) (bool, error) { return true, nil }

type stubAuthService struct{}

func (stubAuthService) Login(context.Context, auth.LoginRequest) (*auth.LoginResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) AdminLogin(context.Context, auth.LoginRequest) (*auth.AdminLoginResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Refresh(context.Context, auth.RefreshRequest) (*auth.RefreshResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Logout(context.Context, string) error { return nil }

type stubRegisterService struct{}

func (stubRegisterService) Register(context.Context, auth.RegisterRequest) error { return nil }

type stubAdminRegisterService struct{}

func (stubAdminRegisterService) Register(context.Context, auth.AdminRegisterRequest) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

type stubProductService struct{}

func (stubProductService) List(context.Context, string, string) ([]productsvc.ProductDTO, error) {
	return []productsvc.ProductDTO{}, nil
}

func (stubProductService) Home(context.Context) (*productsvc.HomeDTO, error) {
	return &productsvc.HomeDTO{}, nil
}

func (stubProductService) Get(context.Context, uuid.UUID) (*productsvc.ProductDetailDTO, error) {
	return &productsvc.ProductDetailDTO{}, nil
}

func (stubProductService) BuyLink(context.Context, uuid.UUID) (*productsvc.BuyLinkDTO, error) {
	return &productsvc.BuyLinkDTO{}, nil
}

func (stubProductService) ListAdmin(context.Context) ([]productsvc.ProductDTO, error) {
	return []productsvc.ProductDTO{}, nil
}

func (stubProductService) Create(context.Context, productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{}, nil
}

func (stubProductService) Delete(context.Context, uuid.UUID) error { return nil }

func (stubProductService) Stats(context.Context) (*productsvc.StatsDTO, error) {
	return &productsvc.StatsDTO{}, nil
}

type stubTestimonialService struct{}

func (stubTestimonialService) List(context.Context) ([]testimonialsvc.TestimonialDTO, error) {
	return []testimonialsvc.TestimonialDTO{}, nil
}

func (stubTestimonialService) Create(context.Context, testimonialsvc.CreateTestimonialInput) (*testimonialsvc.TestimonialDTO, error) {
	return &testimonialsvc.TestimonialDTO{}, nil
}

type stubCartService struct{}

func (stubCartService) List(context.Context, uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}

func (stubCartService) Add(context.Context, uuid.UUID, uuid.UUID) (*cartsvc.CartItemDTO, error) {
	return &cartsvc.CartItemDTO{}, nil
}

func (stubCartService) SetQuantity(context.Context, uuid.UUID, uuid.UUID, int) error { return nil }

func (stubCartService) Remove(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (stubCartService) Checkout(context.Context, uuid.UUID) (*checkout.OrderSummary, error) {
	return &checkout.OrderSummary{}, nil
}

type stubWishlistService struct{}

func (stubWishlistService) List(context.Context, uuid.UUID) ([]productsvc.ProductDTO, error) {
	return []productsvc.ProductDTO{}, nil
}

func (stubWishlistService) ListIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return []uuid.UUID{}, nil
}

func (stubWishlistService) Add(context.Context, uuid.UUID, uuid.UUID) (*wishlistsvc.AddResultDTO, error) {
	return &wishlistsvc.AddResultDTO{Added: true}, nil
}

func (stubWishlistService) Remove(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubNotificationService struct{}

func (stubNotificationService) Enqueue(context.Context, uuid.UUID, notifications.Level, string) error {
	return nil
}

func (stubNotificationService) List(context.Context, uuid.UUID) ([]notifications.Notification, error) {
	return []notifications.Notification{}, nil
}

func (stubNotificationService) Dismiss(context.Context, uuid.UUID) error { return nil }

type stubMediaService struct{}

func (stubMediaService) Upload(context.Context, mediasvc.UploadInput) (*mediasvc.MediaDTO, error) {
	return &mediasvc.MediaDTO{URL: "https://storage.googleapis.com/test/object"}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("error"), Output: io.Discard})
	return NewRouter(RouterParams{
		Config: cfg,
		Logger: logg,
		ReadinessDeps: map[string]controllers.Pinger{
			"postgres": stubPinger{},
			"redis":    stubPinger{},
			"gcs":      stubPinger{},
		},
		Redis:                (*redis.Client)(nil),
		Sessions:             stubSessionChecker{},
		AuthService:          stubAuthService{},
		RegisterService:      stubRegisterService{},
		AdminRegisterService: stubAdminRegisterService{},
		ProductService:       stubProductService{},
		TestimonialService:   stubTestimonialService{},
		CartService:          stubCartService{},
		WishlistService:      stubWishlistService{},
		NotificationService:  stubNotificationService{},
		MediaService:         stubMediaService{},
	})
}

func buildToken(t *testing.T, cfg *config.Config, role *enums.SystemRole) string {
	t.Helper()

	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:     uuid.New(),
		SystemRole: role,
		JTI:        uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthAndPublicCatalogAreOpen(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, path := range []string{"/health/live", "/health/ready", "/api/v1/products", "/api/v1/products/home", "/api/v1/testimonials"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
	}
}

func TestSessionGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, path := range []string{"/api/v1/cart", "/api/v1/wishlist", "/api/v1/notifications"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s without token got %d", path, resp.Code)
		}
	}
}

func TestSessionGroupSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, nil))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for cart got %d", resp.Code)
	}
}

func TestAdminGroupRequiresAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	shopper := httptest.NewRequest(http.MethodGet, "/api/admin/v1/stats", nil)
	shopper.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, nil))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, shopper)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for shopper got %d", resp.Code)
	}

	role := enums.SystemRoleAdmin
	admin := httptest.NewRequest(http.MethodGet, "/api/admin/v1/stats", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, &role))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestAdminRegisterHiddenInProd(t *testing.T) {
	cfg := testConfig()
	cfg.App.Env = "prod"
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/register", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code == http.StatusCreated {
		t.Fatalf("admin register should not be routed in prod, got %d", resp.Code)
	}
}

func TestMetricsEndpointWiredWhenHandlerPresent(t *testing.T) {
	cfg := testConfig()
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("error"), Output: io.Discard})
	router := NewRouter(RouterParams{
		Config:   cfg,
		Logger:   logg,
		Redis:    (*redis.Client)(nil),
		Sessions: stubSessionChecker{},
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		AuthService:          stubAuthService{},
		RegisterService:      stubRegisterService{},
		AdminRegisterService: stubAdminRegisterService{},
		ProductService:       stubProductService{},
		TestimonialService:   stubTestimonialService{},
		CartService:          stubCartService{},
		WishlistService:      stubWishlistService{},
		NotificationService:  stubNotificationService{},
		MediaService:         stubMediaService{},
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for metrics got %d", resp.Code)
	}
}
