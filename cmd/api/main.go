package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"taruvae/internal/adapter/api"
	"taruvae/internal/adapter/api/handler"
	apimiddleware "taruvae/internal/adapter/api/middleware"
	"taruvae/internal/adapter/api/router"
	"taruvae/internal/adapter/repository"
	"taruvae/internal/domain/service"
	"taruvae/internal/infrastructure/ratelimit"
	"taruvae/internal/infrastructure/storage"
	"taruvae/internal/infrastructure/websocket"
	"taruvae/internal/store"
	"taruvae/internal/usecase"
	"taruvae/pkg/config"
	"taruvae/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	client := setupStoreClient(ctx, cfg)

	mirror, err := store.NewMirror(cfg.MirrorDir)
	if err != nil {
		log.Fatalf("Failed to prepare mirror directory: %v", err)
	}
	notifier := store.NewNotifier()

	productRepo := repository.NewFirebaseProductRepository(client, mirror, notifier, cfg.WatchInterval)
	categoryRepo := repository.NewFirebaseCategoryRepository(client, mirror, notifier, cfg.WatchInterval)
	orderRepo := repository.NewFirebaseOrderRepository(client, mirror, notifier, cfg.WatchInterval)
	blogRepo := repository.NewFirebaseBlogRepository(client, mirror, notifier, cfg.WatchInterval)
	reviewRepo := repository.NewFirebaseReviewRepository(client, mirror, notifier, cfg.WatchInterval)
	addressRepo := repository.NewFirebaseAddressRepository(client, mirror, notifier, cfg.WatchInterval)
	userRepo := repository.NewFirebaseUserRepository(client, mirror, notifier, cfg.WatchInterval)

	upiService := service.NewUPIService(cfg.UPIPayeeVPA, cfg.UPIPayeeName)

	productUseCase := usecase.NewProductUseCase(productRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, cfg.ShippingFee, cfg.FreeShippingMin)
	blogUseCase := usecase.NewBlogUseCase(blogRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo)
	addressUseCase := usecase.NewAddressUseCase(addressRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)

	handler.Setup(productUseCase, categoryUseCase, orderUseCase, blogUseCase, reviewUseCase, addressUseCase, userUseCase, upiService)

	imageStorage, err := storage.NewImageStorage(ctx, cfg.StorageBucket, serviceAccountPath())
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}
	defer imageStorage.Close()
	uploadHandler := handler.NewUploadHandler(imageStorage)

	wsManager := websocket.NewManager(notifier, map[string]websocket.SnapshotFunc{
		"products":   func(ctx context.Context) interface{} { return productRepo.LoadAll(ctx) },
		"categories": func(ctx context.Context) interface{} { return categoryRepo.LoadAll(ctx) },
		"orders":     func(ctx context.Context) interface{} { return orderRepo.LoadAll(ctx) },
		"blogs":      func(ctx context.Context) interface{} { return blogRepo.LoadAll(ctx) },
		"reviews":    func(ctx context.Context) interface{} { return reviewRepo.LoadAll(ctx) },
	})
	wsManager.Start(ctx)
	wsHandler := handler.NewWebSocketHandler(wsManager)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	adminMiddleware := apimiddleware.NewAdminMiddleware(cfg.AdminToken)
	rateLimit := apimiddleware.NewRateLimitMiddleware(ratelimit.NewRateLimiter())

	router.Setup(e, adminMiddleware, rateLimit)
	router.SetupWebSocketRouter(e, wsHandler)
	router.SetupUploadRouter(e, uploadHandler, adminMiddleware, rateLimit)

	logger.Info("Starting server on port %s (remote store configured: %v)", cfg.ServerPort, client.Available())
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

// setupStoreClient decides once, at startup, whether the remote store is
// usable. Anything missing or broken yields the Unconfigured client and the
// service runs on the local mirror alone.
func setupStoreClient(ctx context.Context, cfg *config.Config) *store.Client {
	if cfg.FirebaseProject == "" || cfg.DatabaseURL == "" {
		logger.Warn("Firebase project or database URL missing; running on the local mirror only")
		return store.Unconfigured()
	}

	var opt option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		path := serviceAccountPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			logger.Warn("Service account file %s not found; running on the local mirror only", path)
			return store.Unconfigured()
		}
		opt = option.WithCredentialsFile(path)
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:   cfg.FirebaseProject,
		DatabaseURL: cfg.DatabaseURL,
	}, opt)
	if err != nil {
		logger.Error("Failed to initialize Firebase, running on the local mirror only: %v", err)
		return store.Unconfigured()
	}

	rtdb, err := app.Database(ctx)
	if err != nil {
		logger.Error("Failed to open realtime database, running on the local mirror only: %v", err)
		return store.Unconfigured()
	}

	return store.Configured(rtdb)
}

func serviceAccountPath() string {
	if path := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); path != "" {
		return path
	}
	return "./service-account.json"
}
