package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/palmetto/sandstorm/internal/api/rest"
	"github.com/palmetto/sandstorm/internal/api/websocket"
	"github.com/palmetto/sandstorm/internal/cache"
	"github.com/palmetto/sandstorm/internal/conference"
	"github.com/palmetto/sandstorm/internal/config"
	"github.com/palmetto/sandstorm/internal/espn"
	"github.com/palmetto/sandstorm/internal/scheduler"
	"github.com/palmetto/sandstorm/internal/service"
)

const (
	serviceName    = "sandstorm"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - Gamecocks Schedule Service", serviceName, serviceVersion)

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Redis is an optimization, not a dependency: without it every request
	// goes straight to ESPN.
	var redisCache *cache.RedisCache
	maxRetries := 3
	retryDelay := 2 * time.Second

	log.Println("Connecting to Redis...")
	for i := 0; i < maxRetries; i++ {
		redisCache, err = cache.NewRedisCache(cfg.RedisURL)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
			time.Sleep(retryDelay)
		} else {
			log.Printf("Redis unavailable after %d attempts: %v (continuing without cache)", maxRetries, err)
			redisCache = nil
		}
	}
	if redisCache != nil {
		defer redisCache.Close()
		log.Println("✓ Connected to Redis")
	}

	client := espn.New(cfg.ESPN.BaseURL, cfg.ESPN.StandingsBase)
	classifier := conference.NewClassifier(conference.SEC())
	subject := cfg.Subject.ModelSubject()

	teamService := service.NewTeamService(client, redisCache, classifier, subject, cfg.ESPN, cfg.Refresh.CacheTTL)
	scoreboardService := service.NewScoreboardService(client, redisCache, classifier, subject, cfg.Refresh.CacheTTL)
	standingsService := service.NewStandingsService(client, redisCache, cfg.Refresh.StandingsInterval)

	// WebSocket server
	wsServer := websocket.NewServer()
	go func() {
		if err := wsServer.Start(cfg.WSPort); err != nil {
			log.Printf("WebSocket server error: %v", err)
		}
	}()
	log.Printf("✓ WebSocket server listening on :%s", cfg.WSPort)

	// Refresh scheduler
	sched, err := scheduler.New(teamService, standingsService, wsServer.Broadcast, cfg.Refresh)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	log.Println("✓ Scheduler started")

	// REST API server
	restServer := rest.NewServer(cfg.RESTPort, teamService, scoreboardService, standingsService)
	go func() {
		log.Printf("Starting REST API server on port %s", cfg.RESTPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", cfg.RESTPort)
	log.Printf("  WebSocket: ws://0.0.0.0:%s", cfg.WSPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	if err := sched.Stop(); err != nil {
		log.Printf("Scheduler shutdown error: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("WebSocket server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}
