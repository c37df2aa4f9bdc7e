package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"food-marketplace/api-gateway/internal/gateway"
	"food-marketplace/auth"
	"food-marketplace/config"

	"github.com/rs/cors"
)

func main() {
	config.Load()

	secret := config.GetEnv("JWT_SECRET", "")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	cfg := gateway.Config{
		MarketSvcURL:  config.GetEnv("MARKET_SVC_URL", "http://localhost:8081"),
		RateSvcURL:    config.GetEnv("RATE_SVC_URL", "http://localhost:8082"),
		RevenueSvcURL: config.GetEnv("REVENUE_SVC_URL", "http://localhost:8083"),
		JWTSecret:     secret,
	}
	sessions := auth.NewRedisSessionStore(rdb, config.GetDurationEnv("SESSION_TTL_HOURS", 24*7, time.Hour))

	gw := gateway.NewGateway(cfg, &http.Client{Timeout: 30 * time.Second}, sessions)

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{config.GetEnv("FRONTEND_ORIGIN", "http://localhost:3000")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	srv := &http.Server{
		Addr:              ":" + config.GetEnv("PORT", "8080"),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("API Gateway starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("API Gateway shutdown: %v", err)
	}
	log.Println("API Gateway stopped")
}
