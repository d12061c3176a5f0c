package main

import (
	"context"

	"minima-order/config"

	httpapi "minima-order/agg-svc/internal/api/http"
	"minima-order/agg-svc/internal/service"
	"minima-order/agg-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewStore(db, rdb)

	reader := config.NewKafkaReader("orders", "agg-svc")
	defer reader.Close()

	consumer := service.NewConsumer(reader, store)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(store)
	httpapi.StartServer(":8083", httpapi.NewRouter(handler))
}
