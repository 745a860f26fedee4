package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"feed_demo/internal/config"
	"feed_demo/internal/domain"
	"feed_demo/internal/model"
	"feed_demo/internal/queue"
	"feed_demo/internal/service/feed"
)

const handleTimeout = 5 * time.Second

type noopConsumer struct{}

func (n *noopConsumer) Start(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// CommandApplier is the part of the feed service the consumer drives.
type CommandApplier interface {
	Apply(ctx context.Context, cmd model.Command) error
}

// Consumer applies queued commands to the feed.
type Consumer struct {
	url         string
	svc         CommandApplier
	logger      *zap.Logger
	exchange    string
	queue       string
	routingKey  string
	consumerTag string
}

func NewConsumer(cfg *config.Config, svc *feed.Service, logger *zap.Logger) queue.Consumer {
	if cfg.RabbitMQURL == "" {
		return &noopConsumer{}
	}
	return &Consumer{
		url:         cfg.RabbitMQURL,
		svc:         svc,
		logger:      logger,
		exchange:    cfg.RabbitExchange,
		queue:       cfg.RabbitQueue,
		routingKey:  cfg.RabbitRoutingKey,
		consumerTag: cfg.RabbitConsumerTag,
	}
}

func (r *Consumer) Start(ctx context.Context) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "rabbitmq.consume_loop")
	span.SetAttributes(
		attribute.String("messaging.system", "rabbitmq"),
		attribute.String("messaging.destination", r.exchange),
		attribute.String("messaging.destination_kind", "exchange"),
		attribute.String("messaging.rabbitmq.routing_key", r.routingKey),
	)
	defer span.End()

	fail := func(status string, err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, status)
		return err
	}

	conn, err := amqp.Dial(r.url)
	if err != nil {
		return fail("dial failed", fmt.Errorf("rabbitmq dial: %w", err))
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fail("channel failed", fmt.Errorf("rabbitmq channel: %w", err))
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		return fail("qos failed", fmt.Errorf("rabbitmq qos: %w", err))
	}
	if err := declareExchange(ch, r.exchange); err != nil {
		return fail("exchange declare failed", err)
	}

	queueInfo, err := ch.QueueDeclare(
		r.queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fail("queue declare failed", fmt.Errorf("rabbitmq queue declare: %w", err))
	}

	if err := ch.QueueBind(
		queueInfo.Name,
		r.routingKey,
		r.exchange,
		false,
		nil,
	); err != nil {
		return fail("queue bind failed", fmt.Errorf("rabbitmq queue bind: %w", err))
	}

	deliveries, err := ch.Consume(
		queueInfo.Name,
		r.consumerTag,
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fail("consume failed", fmt.Errorf("rabbitmq consume: %w", err))
	}

	r.logger.Info("RabbitMQ consumer started",
		zap.String("exchange", r.exchange),
		zap.String("queue", queueInfo.Name),
		zap.String("routing_key", r.routingKey),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-deliveries:
			if !ok {
				span.SetStatus(codes.Error, "deliveries closed")
				return errors.New("rabbitmq deliveries closed")
			}
			if err := r.handleMessage(ctx, msg); err != nil {
				span.RecordError(err)
				return err
			}
		}
	}
}

// handleMessage acks everything that can never succeed and requeues the
// rest. Only acknowledgement failures are returned.
func (r *Consumer) handleMessage(ctx context.Context, msg amqp.Delivery) error {
	ctx = otel.GetTextMapPropagator().Extract(ctx, amqpHeaderCarrier(msg.Headers))
	ctx, span := otel.Tracer(tracerName).Start(ctx, "rabbitmq.handle_message", trace.WithSpanKind(trace.SpanKindConsumer))
	span.SetAttributes(
		attribute.String("messaging.system", "rabbitmq"),
		attribute.String("messaging.destination", r.exchange),
		attribute.String("messaging.destination_kind", "exchange"),
		attribute.String("messaging.rabbitmq.routing_key", msg.RoutingKey),
	)
	defer span.End()

	var cmd model.Command
	if err := json.Unmarshal(msg.Body, &cmd); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid json")
		r.logger.Error("rabbitmq invalid json", zap.Error(err))
		return msg.Ack(false)
	}
	span.SetAttributes(attribute.String("feed.command", cmd.Type))

	if err := domain.ValidateCommand(cmd); err != nil {
		span.SetStatus(codes.Error, "invalid command")
		r.logger.Warn("rabbitmq invalid command",
			zap.String("type", cmd.Type),
			zap.String("post_id", cmd.PostID),
			zap.Error(err),
		)
		return msg.Ack(false)
	}

	applyCtx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()
	if err := r.svc.Apply(applyCtx, cmd); err != nil {
		span.RecordError(err)
		if isRejection(err) {
			span.SetStatus(codes.Error, "command rejected")
			r.logger.Warn("rabbitmq command rejected",
				zap.String("type", cmd.Type),
				zap.String("post_id", cmd.PostID),
				zap.Error(err),
			)
			return msg.Ack(false)
		}
		span.SetStatus(codes.Error, "apply command failed")
		r.logger.Error("rabbitmq apply command failed", zap.String("type", cmd.Type), zap.Error(err))
		if nackErr := msg.Nack(false, true); nackErr != nil {
			r.logger.Error("rabbitmq nack failed", zap.Error(nackErr))
		}
		return nil
	}

	return msg.Ack(false)
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrPostNotFound) ||
		errors.Is(err, domain.ErrReactionDisabled) ||
		errors.Is(err, domain.ErrUnknownReaction) ||
		errors.Is(err, domain.ErrInvalidPost) ||
		errors.Is(err, domain.ErrInvalidCommand) ||
		errors.Is(err, domain.ErrInvalidCommandType)
}
