// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/retail-insights/internal/config"
	"github.com/your-org/retail-insights/internal/dataset"
	"github.com/your-org/retail-insights/internal/domain/cart"
	"github.com/your-org/retail-insights/internal/infrastructure/database/redis"
	"github.com/your-org/retail-insights/internal/interfaces/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	logger := newLogger(cfg)

	// Connect to Redis when enabled; carts fall back to process memory
	// without it
	var redisClient *redis.Client
	cartStore := cart.Store(cart.NewMemoryStore())
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		if err := redisClient.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}

		cartStore = cart.NewRedisStore(redisClient.GetClient())
	}

	// Load the dataset in the background; /status reports progress and
	// the preview phase makes data available early
	store := dataset.NewStore()
	loader := dataset.NewLoader(store, cfg, logger)
	go func() {
		if err := loader.Load(context.Background()); err != nil {
			logger.WithError(err).Error("Dataset load failed")
		}
	}()

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, store, cartStore, rawRedis(redisClient))

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}

// rawRedis unwraps the connection wrapper, tolerating a nil client when
// Redis is disabled.
func rawRedis(c *redis.Client) *goredis.Client {
	if c == nil {
		return nil
	}
	return c.GetClient()
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
