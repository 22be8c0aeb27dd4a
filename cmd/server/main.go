package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // godotenv loads a local .env file when present
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/restaurant-floor-management/internal/config"     // Internal config loader
	"github.com/iliyamo/restaurant-floor-management/internal/handler"    // HTTP handlers
	"github.com/iliyamo/restaurant-floor-management/internal/middleware" // Response cache middleware
	"github.com/iliyamo/restaurant-floor-management/internal/queue"      // Activity event consumer
	"github.com/iliyamo/restaurant-floor-management/internal/router"     // Route registration
	"github.com/iliyamo/restaurant-floor-management/internal/store"      // In-memory data store
)

func main() {
	_ = godotenv.Load()  // Load .env if present; absence is fine
	cfg := config.Load() // Load environment config

	rdb := config.NewRedisClient() // Redis client; nil disables persistence and caching
	if rdb == nil {
		log.Println("redis unavailable, running memory-only")
	}

	st := store.New(rdb)                // Load collections from snapshots or demo data
	h := handler.NewFloorHandler(st)    // Handlers share the single store instance
	cacheCfg := config.LoadCacheConfig() // Response cache settings

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e, h, middleware.NewResponseCache(cacheCfg, rdb))

	// Consume reservation activity events in the background; the
	// consumer keeps its own reconnect loop.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
