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
	"time"

	"github.com/joho/godotenv"

	"github.com/stephyg0/christmas/internal/config"
	httpHandler "github.com/stephyg0/christmas/internal/delivery/http"
	"github.com/stephyg0/christmas/internal/delivery/ws"
	"github.com/stephyg0/christmas/internal/middleware"
	"github.com/stephyg0/christmas/internal/usecase"
)

func main() {
	// Load .env file (ignore error if not exists, e.g. in production)
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Configuring Logging
	switch cfg.LogLevel {
	case "silent", "off":
		log.SetOutput(io.Discard)
	case "debug":
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	// Initialize dependencies
	registry := usecase.NewSessionRegistry()
	hub := ws.NewHub(registry)
	hub.SetHeartbeatInterval(cfg.HeartbeatInterval)
	hub.SetMaxMessageSize(cfg.MaxMessageSize)

	hubCtx, stopHub := context.WithCancel(context.Background())
	hubDone := make(chan struct{})
	go func() {
		hub.Run(hubCtx)
		close(hubDone)
	}()

	apiLimiter := middleware.NewIPRateLimiter(cfg.RateLimitAPI, int(cfg.RateLimitAPI)*2)
	wsLimiter := middleware.NewIPRateLimiter(cfg.RateLimitWS, int(cfg.RateLimitWS)*2)
	defer apiLimiter.Stop()
	defer wsLimiter.Stop()

	handler := httpHandler.NewHandler(hub, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(apiLimiter, wsLimiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Frostfall Haven server listening on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Hijacked websocket connections are not tracked by Shutdown; the hub closes them
	stopHub()
	<-hubDone

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
