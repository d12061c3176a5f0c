package main

import (
	"log"
	"os"
	"time"

	"minima-order/config"
	httpapi "minima-order/order-svc/internal/api/http"
	"minima-order/order-svc/internal/cart"
	"minima-order/order-svc/internal/menu"
	"minima-order/order-svc/internal/receipt"
	"minima-order/order-svc/internal/service"
	"minima-order/order-svc/internal/session"
	"minima-order/order-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	repo, err := storage.NewPostgresRepository(db)
	if err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}

	catalog := menu.Default()
	cache := storage.NewRedisCache(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(writer)
	renderer := receipt.NewGenerator(
		config.GetEnv("STORE_NAME", "Minima Order"),
		os.Getenv("RECEIPT_FONT"),
	)

	orders := service.NewOrderService(catalog, repo, cache, publisher, renderer, service.DefaultQRGenerator{})
	sessions := session.NewManager(catalog, cart.ParseBehavior(os.Getenv("MIN_QUANTITY_BEHAVIOR")))

	handler := httpapi.NewHandler(orders, sessions, catalog)
	httpapi.StartServer(":8081", httpapi.NewRouter(handler))
}
