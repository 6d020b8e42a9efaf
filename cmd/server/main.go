package main // Entry point package

import (
	"context" // context with timeout for schema bootstrap
	"log"     // Logging library
	"time"    // bootstrap timeout duration

	"github.com/joho/godotenv"    // loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-room-booking/internal/config"     // Internal config loader
	"github.com/iliyamo/hotel-room-booking/internal/database"   // MySQL pool and schema bootstrap
	"github.com/iliyamo/hotel-room-booking/internal/handler"    // HTTP handlers
	"github.com/iliyamo/hotel-room-booking/internal/middleware" // cache and rate limit middleware
	"github.com/iliyamo/hotel-room-booking/internal/queue"      // background broker consumer
	"github.com/iliyamo/hotel-room-booking/internal/repository" // data access layer
	"github.com/iliyamo/hotel-room-booking/internal/router"     // Internal router setup
	"github.com/iliyamo/hotel-room-booking/internal/storage"    // slip file store
)

func main() {
	// Load .env when present; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	// Open the MySQL pool and bootstrap the schema with seed data.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	bootCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.InitSchema(bootCtx, db, cfg.BcryptCost); err != nil {
		cancel()
		log.Fatalf("init schema: %v", err)
	}
	cancel()

	// Slip images land on the local filesystem under the configured dir.
	slips, err := storage.NewSlipStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("init slip store: %v", err)
	}

	// Redis is optional: when unreachable the client is nil and the cache
	// and rate limit middleware become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Repositories
	customerRepo := repository.NewCustomerRepo(db)
	adminRepo := repository.NewAdminRepo(db)
	roomTypeRepo := repository.NewRoomTypeRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, customerRepo, adminRepo)
	catalogHandler := handler.NewCatalogHandler(roomTypeRepo)
	bookingHandler := handler.NewBookingHandler(bookingRepo, roomRepo, roomTypeRepo)
	paymentHandler := handler.NewPaymentHandler(bookingRepo, paymentRepo, slips)
	adminHandler := handler.NewAdminHandler(cfg, customerRepo, adminRepo, bookingRepo, paymentRepo, roomRepo)

	e := echo.New()   // Create Echo instance
	e.Use(rateMW)     // Rate limit every route (no-op without Redis)

	router.RegisterRoutes(e)                                             // health check
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)                   // register/login/logout/me
	router.RegisterCatalog(e, catalogHandler, cacheMW)                   // public catalog (cached)
	router.RegisterCustomer(e, bookingHandler, paymentHandler, cfg.JWTSecret) // bookings and payments
	router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)                 // admin console

	// Consume booking/payment events in the background; the consumer
	// reconnects on its own and never takes the server down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
