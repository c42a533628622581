package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bowboxshop/bowbox-backend/api/controllers"
	"github.com/bowboxshop/bowbox-backend/api/middleware"
	"github.com/bowboxshop/bowbox-backend/internal/auth"
	cartsvc "github.com/bowboxshop/bowbox-backend/internal/cart"
	mediasvc "github.com/bowboxshop/bowbox-backend/internal/media"
	"github.com/bowboxshop/bowbox-backend/internal/notifications"
	productsvc "github.com/bowboxshop/bowbox-backend/internal/products"
	testimonialsvc "github.com/bowboxshop/bowbox-backend/internal/testimonials"
	wishlistsvc "github.com/bowboxshop/bowbox-backend/internal/wishlist"
	"github.com/bowboxshop/bowbox-backend/pkg/auth/session"
	"github.com/bowboxshop/bowbox-backend/pkg/config"
	"github.com/bowboxshop/bowbox-backend/pkg/logger"
	"github.com/bowboxshop/bowbox-backend/pkg/metrics"
	"github.com/bowboxshop/bowbox-backend/pkg/redis"
)

// RouterParams names everything the HTTP surface is wired with.
type RouterParams struct {
	Config *config.Config
	Logger *logger.Logger

	// Readiness dependencies, keyed by the name reported on failure.
	ReadinessDeps map[string]controllers.Pinger

	Redis          *redis.Client
	Sessions       session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics
	MetricsHandler http.Handler

	AuthService          auth.Service
	RegisterService      auth.RegisterService
	AdminRegisterService auth.AdminRegisterService
	ProductService       productsvc.Service
	TestimonialService   testimonialsvc.Service
	CartService          cartsvc.Service
	WishlistService      wishlistsvc.Service
	NotificationService  notifications.Service
	MediaService         mediasvc.Service
}

// NewRouter assembles the full route tree with its middleware chain.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(p.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.ReadinessDeps))
	})

	if p.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", p.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(p.ProductService, logg))
			r.Get("/home", controllers.ProductsHome(p.ProductService, logg))
			r.Get("/{productId}", controllers.ProductsGet(p.ProductService, logg))
			r.Get("/{productId}/buy-link", controllers.ProductsBuyLink(p.ProductService, logg))
		})

		r.Get("/testimonials", controllers.TestimonialsList(p.TestimonialService, logg))

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
				Post("/login", controllers.AuthLogin(p.AuthService, logg))
			r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).
				Post("/register", controllers.AuthRegister(p.RegisterService, p.AuthService, logg))
			r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
			r.Post("/logout", controllers.AuthLogout(p.AuthService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartList(p.CartService, logg))
				r.Post("/items", controllers.CartAddItem(p.CartService, p.NotificationService, logg))
				r.Patch("/items/{itemId}", controllers.CartUpdateItem(p.CartService, logg))
				r.Delete("/items/{itemId}", controllers.CartRemoveItem(p.CartService, p.NotificationService, logg))
				r.Post("/checkout", controllers.CartCheckout(p.CartService, p.NotificationService, logg))
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", controllers.WishlistList(p.WishlistService, logg))
				r.Get("/ids", controllers.WishlistIDs(p.WishlistService, logg))
				r.Post("/items", controllers.WishlistAdd(p.WishlistService, p.NotificationService, logg))
				r.Delete("/items/{productId}", controllers.WishlistRemove(p.WishlistService, logg))
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", controllers.NotificationsList(p.NotificationService, logg))
				r.Post("/dismiss", controllers.NotificationsDismiss(p.NotificationService, logg))
			})
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if !cfg.App.IsProd() {
				r.Post("/register", controllers.AdminAuthRegister(p.AdminRegisterService, logg))
			}
			r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
				Post("/login", controllers.AdminAuthLogin(p.AuthService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))
			r.Use(middleware.RequireAdmin(logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.AdminProductsList(p.ProductService, logg))
				r.Post("/", controllers.AdminProductCreate(p.ProductService, p.MediaService, logg))
				r.Delete("/{productId}", controllers.AdminProductDelete(p.ProductService, logg))
			})

			r.Post("/testimonials", controllers.AdminTestimonialCreate(p.TestimonialService, p.MediaService, logg))
			r.Get("/stats", controllers.AdminStats(p.ProductService, logg))
		})
	})

	return r
}
