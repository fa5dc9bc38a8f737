package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/syedmaroof/portfolio-api/internal/config"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const (
	TopicContentEvents = "content.events"
	TopicContactEvents = "contact.events"
)

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	ContactEventsWriter *kafka.Writer
	logger              logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'content.events'
	contentWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContentEvents,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}

	// writer 'contact.events'
	contactWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContactEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		ContentEventsWriter: contentWriter,
		ContactEventsWriter: contactWriter,
		logger:              log,
	}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload ContentEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal content event: %w", err)
	}
	// keyed by resource so events of one row stay ordered on a partition
	return c.ContentEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.Section + ":" + payload.ResourceID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishContactEvent(ctx context.Context, payload ContactEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact event: %w", err)
	}
	return c.ContactEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.MessageID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
	if c.ContactEventsWriter != nil {
		c.ContactEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producers")
}
