package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bowboxshop/bowbox-backend/api/controllers"
	"github.com/bowboxshop/bowbox-backend/api/routes"
	"github.com/bowboxshop/bowbox-backend/internal/auth"
	cartsvc "github.com/bowboxshop/bowbox-backend/internal/cart"
	"github.com/bowboxshop/bowbox-backend/internal/checkout"
	mediasvc "github.com/bowboxshop/bowbox-backend/internal/media"
	"github.com/bowboxshop/bowbox-backend/internal/notifications"
	productsvc "github.com/bowboxshop/bowbox-backend/internal/products"
	testimonialsvc "github.com/bowboxshop/bowbox-backend/internal/testimonials"
	"github.com/bowboxshop/bowbox-backend/internal/users"
	"github.com/bowboxshop/bowbox-backend/internal/wishlist"
	"github.com/bowboxshop/bowbox-backend/pkg/auth/session"
	"github.com/bowboxshop/bowbox-backend/pkg/config"
	"github.com/bowboxshop/bowbox-backend/pkg/db"
	"github.com/bowboxshop/bowbox-backend/pkg/logger"
	"github.com/bowboxshop/bowbox-backend/pkg/metrics"
	"github.com/bowboxshop/bowbox-backend/pkg/migrate"
	"github.com/bowboxshop/bowbox-backend/pkg/redis"
	"github.com/bowboxshop/bowbox-backend/pkg/storage/gcs"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap gcs", err)
		os.Exit(1)
	}
	defer func() {
		if err := gcsClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing gcs", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	gormDB := dbClient.DB()
	userRepo := users.NewRepository(gormDB)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	adminRegisterService, err := auth.NewAdminRegisterService(auth.AdminRegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create admin register service", err)
		os.Exit(1)
	}

	links := checkout.NewBuilder(cfg.Checkout)
	productRepo := productsvc.NewRepository(gormDB)
	testimonialRepo := testimonialsvc.NewRepository(gormDB)

	testimonialService, err := testimonialsvc.NewService(testimonialRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create testimonial service", err)
		os.Exit(1)
	}

	productService, err := productsvc.NewService(productsvc.ServiceParams{
		Repo:         productRepo,
		Testimonials: testimonialService,
		Links:        links,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	cartService, err := cartsvc.NewService(cartsvc.ServiceParams{
		Repo:     cartsvc.NewRepository(gormDB),
		Products: productRepo,
		Orders:   links,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{
		Repo:     wishlist.NewRepository(gormDB),
		Products: productRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	notificationService, err := notifications.NewService(redisClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create notification service", err)
		os.Exit(1)
	}

	mediaService, err := mediasvc.NewService(mediasvc.ServiceParams{
		Storage: gcsClient,
		Repo:    mediasvc.NewRepository(gormDB),
		GCS:     cfg.GCS,
		Media:   cfg.Media,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create media service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	router := routes.NewRouter(routes.RouterParams{
		Config: cfg,
		Logger: logg,
		ReadinessDeps: map[string]controllers.Pinger{
			"postgres": dbClient,
			"redis":    redisClient,
			"gcs":      gcsClient,
		},
		Redis:          redisClient,
		Sessions:       sessionManager,
		HTTPMetrics:    httpMetrics,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),

		AuthService:          authService,
		RegisterService:      registerService,
		AdminRegisterService: adminRegisterService,
		ProductService:       productService,
		TestimonialService:   testimonialService,
		CartService:          cartService,
		WishlistService:      wishlistService,
		NotificationService:  notificationService,
		MediaService:         mediaService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutting down api server")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
