package main

import (
	"context"
	"log"
	"time"

	"food-marketplace/config"
	httpapi "food-marketplace/rate-svc/internal/api/http"
	"food-marketplace/rate-svc/internal/service"
	"food-marketplace/rate-svc/internal/storage"
)

func main() {
	config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	cancel()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.TopicReviews)
	defer writer.Close()

	reviews := service.NewReviewService(
		repo,
		storage.NewRedisCache(rdb, config.GetDurationEnv("REVIEW_MARKER_TTL_HOURS", 24*7, time.Hour)),
		storage.NewKafkaPublisher(writer),
	)

	router := httpapi.NewRouter(httpapi.NewHandler(reviews))
	httpapi.StartServer(":"+config.GetEnv("PORT", "8082"), router)
}
