package main

import (
	"context"
	"log"
	"time"

	"food-marketplace/config"
	httpapi "food-marketplace/market-svc/internal/api/http"
	"food-marketplace/market-svc/internal/service"
	"food-marketplace/market-svc/internal/storage"
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

	writer := config.NewKafkaWriter(config.TopicOrderEvents)
	defer writer.Close()

	publisher := storage.NewKafkaPublisher(writer)
	notifications := service.NewNotificationService(repo, storage.NewRedisPusher(rdb))

	gateway := service.NewVNPayGateway(service.VNPayConfig{
		TmnCode:     config.GetEnv("VNPAY_TMN_CODE", ""),
		HashSecret:  config.GetEnv("VNPAY_HASH_SECRET", ""),
		PayURL:      config.GetEnv("VNPAY_PAY_URL", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"),
		ReturnURL:   config.GetEnv("VNPAY_RETURN_URL", "http://localhost:8080/api/payments/vnpay-return"),
		ExpireAfter: config.GetDurationEnv("VNPAY_EXPIRE_MINUTES", 15, time.Minute),
	})
	qr := service.DefaultQRGenerator{Size: config.GetIntEnv("QR_SIZE", 256)}

	uploadDir := config.GetEnv("UPLOAD_DIR", "./uploads")

	handler := httpapi.NewHandler(
		service.NewCatalogService(repo, notifications),
		service.NewDiscoveryService(repo),
		service.NewCartService(repo, repo),
		service.NewWishlistService(repo, repo),
		service.NewOrderService(repo, repo, repo, notifications, publisher),
		service.NewPaymentService(repo, gateway, qr, notifications, publisher),
		notifications,
		storage.NewLocalImageStore(uploadDir, "/uploads"),
		config.GetEnv("FRONTEND_URL", ""),
	)

	router := httpapi.NewRouter(handler, uploadDir)
	httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), router)
}
