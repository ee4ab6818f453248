package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"energy-predictor/config"
	httpLayer "energy-predictor/http"
	"energy-predictor/repository"
	"energy-predictor/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cache := newCache(cfg)
	if closer, ok := cache.(io.Closer); ok {
		defer closer.Close()
	}

	predictionService := service.NewPredictionService(cache)
	comparisonService := service.NewPolicyComparisonService(predictionService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpLayer.NewRouter(predictionService, comparisonService, rateLimiter),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Energy predictor listening on http://localhost%s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// newCache prefers Redis when configured and reachable, and falls back to
// an in-process cache otherwise.
func newCache(cfg *config.Config) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(cfg.CacheMaxEntries, cfg.CacheTTL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ReadTimeout)
	defer cancel()

	cache, err := repository.NewRedisCache(ctx, cfg.RedisAddr, cfg.CacheTTL)
	if err != nil {
		log.Printf("Warning: redis unavailable, using in-memory cache: %v", err)
		return repository.NewMemoryCache(cfg.CacheMaxEntries, cfg.CacheTTL)
	}
	log.Printf("Caching predictions in redis at %s", cfg.RedisAddr)
	return cache
}
