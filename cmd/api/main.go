package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"globemart-backend/config"
	"globemart-backend/internal/delivery/http/middleware"
	v1 "globemart-backend/internal/delivery/http/v1"
	"globemart-backend/internal/domain"
	infracache "globemart-backend/internal/infrastructure/cache"
	"globemart-backend/internal/repository/memory"
	"globemart-backend/internal/repository/postgres"
	"globemart-backend/internal/usecase"
	"globemart-backend/pkg/logger"
	"globemart-backend/pkg/storage"
	"globemart-backend/pkg/utils"

	"github.com/NYTimes/gziphandler"
)

const storeTimeout = 5 * time.Second

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Product/User stores, selected by configuration rather than by parallel
	// server implementations.
	var (
		productStore domain.ProductStore
		userStore    domain.UserStore
	)
	switch cfg.StoreDriver {
	case "memory":
		ps := memory.NewProductStore(cfg.SearchMatchCountry)
		for _, p := range memory.SeedCatalog() {
			ps.Add(p)
		}
		productStore = ps
		userStore = memory.NewUserStore()
		log.Info().Msg("Using in-memory stores with seed catalog")
	default:
		pool, err := postgres.NewPgxPool(context.Background(), cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		productStore = postgres.NewProductStore(pool, cfg.SearchMatchCountry)
		userStore = postgres.NewUserStore(pool)
		log.Info().Msg("Successfully connected to PostgreSQL via pgx")
	}

	// Default expiration 30m, cleanup every 60m
	memCache := infracache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	mux := http.NewServeMux()

	// Search Module
	searchUC := usecase.NewSearchUsecase(productStore, memCache, cfg.SuggestionCacheTTL, cfg.AssetBaseURL, storeTimeout)
	searchHandler := v1.NewSearchHandler(searchUC)

	// Catalog Module
	catalogUC := usecase.NewCatalogUsecase(productStore, memCache, cfg.ProductCacheTTL, cfg.AssetBaseURL, storeTimeout)
	catalogHandler := v1.NewCatalogHandler(catalogUC)

	// Auth Module
	authUC := usecase.NewAuthUsecase(userStore, cfg.TokenExpiry)
	authHandler := v1.NewAuthHandler(authUC)

	// Search
	mux.HandleFunc("GET /api/search", searchHandler.Search)
	mux.HandleFunc("GET /api/search/suggestions", searchHandler.Suggestions)

	// Catalog
	mux.HandleFunc("GET /api/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", catalogHandler.GetProduct)

	// Auth
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/auth/me", authHandler.Me)

	// Image uploads need a configured asset bucket.
	if cfg.R2BucketName != "" {
		r2Storage, err := storage.NewR2Storage(
			context.Background(),
			cfg.R2AccountID,
			cfg.R2AccessKeyID,
			cfg.R2AccessKeySecret,
			cfg.R2BucketName,
			cfg.R2PublicURL,
			cfg.R2UploadTimeout,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize R2 storage")
		}
		uploadHandler := v1.NewUploadHandler(r2Storage, cfg.MaxUploadSizeMB)
		mux.Handle("POST /api/upload", middleware.AuthMiddleware(http.HandlerFunc(uploadHandler.UploadFile)))
	} else {
		log.Warn().Msg("R2_BUCKET_NAME not set, image uploads disabled")
	}

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}
	mux.HandleFunc("GET /api/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // root health check for load balancers

	// 50 req/s, burst 100, cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		50,
		100,
		time.Minute,
		3*time.Minute,
	)

	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
