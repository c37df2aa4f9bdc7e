package main

import (
	"time"

	"food-marketplace/config"
	httpapi "food-marketplace/revenue-svc/internal/api/http"
	"food-marketplace/revenue-svc/internal/service"
	"food-marketplace/revenue-svc/internal/storage"
)

func main() {
	config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	revenue := service.NewRevenueService(
		storage.NewPostgresRepository(db),
		storage.NewRedisCache(rdb, config.GetDurationEnv("REVENUE_CACHE_TTL_MINUTES", 10, time.Minute)),
	)

	router := httpapi.NewRouter(httpapi.NewHandler(revenue))
	httpapi.StartServer(":"+config.GetEnv("PORT", "8083"), router)
}
