package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"minima-order/agg-svc/internal/domain"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == "order_submitted" {
			c.ProcessOrder(event)
		}
	}
}

func (c *Consumer) ProcessOrder(event domain.OrderEvent) {
	if event.Type != "order_submitted" {
		return
	}
	log.Printf("Processing order: OrderID=%s, Table=%d, Total=%d",
		event.OrderID, event.TableNumber, event.Total)

	if err := c.Store.RecordOrder(event); err != nil {
		log.Printf("Error recording order: %v", err)
		return
	}

	log.Printf("Successfully processed order %s", event.OrderID)
}
