package mq

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"user-registry-api/config"
	"user-registry-api/internal/infrastructure/metrics"
)

// "Rely on metrics, not guesses."
const (
	bufferSize   = 128
	flushTimeout = 3 * time.Second
)

// publisher is the part of *amqp091.Channel the worker sends with.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// RabbitMQ buffers user events and publishes them from a single worker.
// Once the worker stops, Publish drops and counts every event.
type RabbitMQ struct {
	cfg      config.MQ
	log      *zap.Logger
	mCounter *prometheus.CounterVec
	conn     *amqp091.Connection
	ch       *amqp091.Channel
	pub      publisher
	returns  chan amqp091.Return
	in       chan Event

	// Publish holds mu for reading while it enqueues; the worker takes it
	// for writing after closing stopping, so nothing is enqueued behind the flush.
	mu       sync.RWMutex
	stopping chan struct{}
	stopOnce sync.Once
}

func New(cfg config.MQ, logger *zap.Logger, mCounter *prometheus.CounterVec) *RabbitMQ {
	return &RabbitMQ{
		cfg:      cfg,
		log:      logger,
		mCounter: mCounter,
		in:       make(chan Event, bufferSize),
		stopping: make(chan struct{}),
	}
}

func (r *RabbitMQ) Connect(ctx context.Context, dsn string) error {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	amqpCfg := amqp091.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Properties: amqp091.Table{
			"connection_name": "userregistry",
		},
		Dial: func(network, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, addr)
		},
	}

	conn, err := amqp091.DialConfig(dsn, amqpCfg)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}
	r.conn, r.ch, r.pub = conn, ch, ch
	// events are published as mandatory; unroutable ones come back here
	r.returns = ch.NotifyReturn(make(chan amqp091.Return, bufferSize))

	r.log.Info("rabbitmq connected successfully")

	return nil
}

// Init declares the exchange and the events queue and binds every action to it.
func (r *RabbitMQ) Init() error {
	if err := r.ch.ExchangeDeclare(
		r.cfg.Exchange,
		r.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = r.ch.Close()
		return err
	}
	q, err := r.ch.QueueDeclare(
		r.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	for _, rk := range RoutingKeys {
		if err = r.ch.QueueBind(q.Name, rk, r.cfg.Exchange, false, nil); err != nil {
			return err
		}
	}

	return nil
}

// Publish hands e to the publisher worker. It blocks while the buffer is full
// and gives up when ctx ends.
func (r *RabbitMQ) Publish(ctx context.Context, e Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	select {
	case <-r.stopping:
		r.drop(e, errPublisherStopped)
		return
	default:
	}

	select {
	case r.in <- e:
	case <-r.stopping:
		r.drop(e, errPublisherStopped)
	case <-ctx.Done():
		r.drop(e, ctx.Err())
	}
}

var errPublisherStopped = errors.New("publisher worker stopped")

func (r *RabbitMQ) drop(e Event, reason error) {
	r.inc(metrics.EventDropped)
	r.log.Warn("user event dropped",
		zap.String("event_id", e.Id.String()),
		zap.String("event_action", e.Method),
		zap.Error(reason),
	)
}

// PublisherWorker sends buffered events until ctx ends, then flushes what is
// left in the buffer before closing the channel.
func (r *RabbitMQ) PublisherWorker(ctx context.Context) {
	r.log.Info("starting publisher worker")

	defer func() {
		r.log.Info("publisher worker gracefully stopped")
	}()

	for {
		select {
		case e := <-r.in:
			r.send(ctx, e)
		case ret, ok := <-r.returns:
			r.returned(ret, ok)
		case <-ctx.Done():
			r.stop()
			r.flush()
			if r.ch != nil {
				_ = r.ch.Close()
			}
			return
		}
	}
}

// stop turns later Publish calls into drops and waits for the ones in flight.
func (r *RabbitMQ) stop() {
	r.stopOnce.Do(func() { close(r.stopping) })
	r.mu.Lock()
	defer r.mu.Unlock()
}

func (r *RabbitMQ) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	for {
		select {
		case e := <-r.in:
			r.send(ctx, e)
		case ret, ok := <-r.returns:
			r.returned(ret, ok)
		default:
			return
		}
	}
}

// returned records an event the broker could not route.
func (r *RabbitMQ) returned(ret amqp091.Return, ok bool) {
	if !ok {
		r.returns = nil
		return
	}
	r.inc(metrics.EventFailed)
	r.log.Error("mq event returned",
		zap.String("event_id", ret.MessageId),
		zap.String("event_action", ret.RoutingKey),
		zap.Uint16("reply_code", ret.ReplyCode),
		zap.String("reply_text", ret.ReplyText),
	)
}

func (r *RabbitMQ) send(ctx context.Context, e Event) {
	if err := r.publish(ctx, e); err != nil {
		// alert
		r.inc(metrics.EventFailed)
		r.log.Error("mq publish error",
			zap.String("event_id", e.Id.String()),
			zap.String("event_action", e.Method),
			zap.Error(err),
		)
		return
	}
	r.inc(metrics.EventPublished)
}

func (r *RabbitMQ) publish(ctx context.Context, e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}

	pub := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    e.Id.String(),
		Timestamp:    e.TS,
		Type:         e.Method,
		Body:         b,
	}

	return r.pub.PublishWithContext(
		ctx,
		r.cfg.Exchange,
		e.Method,
		true,
		false,
		pub,
	)
}

func (r *RabbitMQ) inc(result string) {
	if r.mCounter != nil {
		r.mCounter.WithLabelValues(result).Inc()
	}
}

func (r *RabbitMQ) GetConn() *amqp091.Connection { return r.conn }
