package main

import (
	"context"
	"log"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"food-marketplace/agg-svc/internal/service"
	"food-marketplace/agg-svc/internal/storage"
	"food-marketplace/config"
)

func main() {
	config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reviews := config.NewKafkaReader(config.TopicReviews, config.GetEnv("KAFKA_REVIEWS_GROUP", "agg-svc-reviews"))
	defer reviews.Close()
	orders := config.NewKafkaReader(config.TopicOrderEvents, config.GetEnv("KAFKA_ORDERS_GROUP", "agg-svc-revenue"))
	defer orders.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(storage.NewStore(db, rdb))
	consumer.RetryDelay = config.GetDurationEnv("CONSUMER_RETRY_SECONDS", 1, time.Second)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.Run(ctx, "reviews", reviews, consumer.HandleReview)
	}()
	go func() {
		defer wg.Done()
		consumer.Run(ctx, "order-events", orders, consumer.HandleOrderEvent)
	}()
	wg.Wait()

	log.Println("Aggregation Service stopped")
}
