package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/product-catalog/pkg/logger"
)

// PublisherConfig configures the producer behind a Publisher
type PublisherConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// Publisher writes catalog events to one Kafka topic
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a synchronous producer to cfg.Brokers. Every send
// waits for all in-sync replicas.
func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	sc := sarama.NewConfig()
	if cfg.ClientID != "" {
		sc.ClientID = cfg.ClientID
	}
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = 3
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	p := NewPublisherWithProducer(producer, cfg.Topic)
	logger.Logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", p.topic).
		Msg("Kafka publisher initialized")
	return p, nil
}

// NewPublisherWithProducer creates a publisher on top of an existing producer.
// An empty topic means TopicCatalogEvents.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	if topic == "" {
		topic = TopicCatalogEvents
	}
	return &Publisher{producer: producer, topic: topic}
}

// Publish sends event inside a producer span. The span context travels in the
// message headers so consumers can continue the trace.
func (p *Publisher) Publish(ctx context.Context, event CatalogEvent) error {
	ctx, span := otel.Tracer("kafka-publisher").Start(ctx, "kafka.publish."+event.EventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", p.topic),
			attribute.String("event.type", event.EventType),
			attribute.Int64("product.id", int64(event.ProductID)),
		),
	)
	defer span.End()

	msg, err := p.newMessage(ctx, event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode failed")
		return err
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		return fmt.Errorf("failed to send %s to Kafka: %w", event.EventType, err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	logger.Debug(ctx).
		Str("event_type", event.EventType).
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Catalog event published")
	return nil
}

// newMessage stamps the event id and time when missing and encodes the event
// with its type, id and trace context as headers.
func (p *Publisher) newMessage(ctx context.Context, event CatalogEvent) (*sarama.ProducerMessage, error) {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s event: %w", event.EventType, err)
	}

	carrier := propagation.MapCarrier{
		"event_type": event.EventType,
		"event_id":   event.EventID,
	}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := make([]sarama.RecordHeader, 0, len(carrier))
	for _, key := range carrier.Keys() {
		headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(carrier.Get(key))})
	}

	return &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(messageKey(event)),
		Value:   sarama.ByteEncoder(payload),
		Headers: headers,
	}, nil
}

// messageKey keeps every event of one product on the same partition. Image
// deletes whose product is unknown are keyed by image.
func messageKey(event CatalogEvent) string {
	if event.ProductID != 0 {
		return fmt.Sprintf("product_%d", event.ProductID)
	}
	return fmt.Sprintf("image_%d", event.ImageID)
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

// NoopPublisher drops every event. It is used when no brokers are configured.
type NoopPublisher struct{}

// Publish does nothing
func (NoopPublisher) Publish(context.Context, CatalogEvent) error { return nil }

// Close does nothing
func (NoopPublisher) Close() error { return nil }
