package rmqconsumer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"user-registry-api/config"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

var actions = map[string]string{
	http.MethodPost:   "UserCreated",
	http.MethodPut:    "UserUpdated",
	http.MethodPatch:  "UserPatched",
	http.MethodDelete: "UserDeleted",
}

// event is the part of the published user event the consumer reads.
type event struct {
	ID     string `json:"event_id"`
	Action string `json:"event_action"`
	UserID string `json:"user_id"`
}

type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

// New builds a consumer. A non-nil conn is shared with the publisher; Connect
// then only opens a channel on it.
func New(cfg config.MQ, logger *zap.Logger, conn *amqp091.Connection) *Consumer {
	return &Consumer{
		cfg:  cfg,
		log:  logger,
		conn: conn,
	}
}

func (c *Consumer) Connect(dsn string) error {
	var err error
	if c.conn == nil {
		conn, err := amqp091.Dial(dsn)
		if err != nil {
			return fmt.Errorf("amqp dial: %w", err)
		}
		c.conn = conn
	}
	c.chConsume, err = c.conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	if err := c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err := c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for rk := range actions {
		if err := c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err := c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	var err error
	c.chDelivery, err = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				c.log.Warn("delivery channel closed")
				return
			}
			if err := c.delivery(msg); err != nil {
				// alert
				c.log.Error("mq read message error", zap.Error(err))
			}
		case <-ctx.Done():
			_ = c.chConsume.Close()
			return
		}
	}
}

// delivery logs one user event. Messages are auto-acked.
func (c *Consumer) delivery(msg amqp091.Delivery) error {
	var e event
	if err := json.Unmarshal(msg.Body, &e); err != nil {
		return fmt.Errorf("decode event %q: %w", msg.MessageId, err)
	}

	c.log.Info("user event",
		zap.String("action", actions[msg.RoutingKey]),
		zap.String("event_id", e.ID),
		zap.String("user_id", e.UserID),
		zap.ByteString("body", msg.Body),
	)

	return nil
}
