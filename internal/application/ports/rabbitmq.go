package ports

import (
	"context"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ is the event publisher when a broker is configured.
type RabbitMQ interface {
	EventPublisher
	Connect(ctx context.Context, dsn string) error
	Init() error
	PublisherWorker(ctx context.Context)
	GetConn() *amqp091.Connection
}

// EventConsumer reads user events back from the broker.
type EventConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
