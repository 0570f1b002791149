package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes events as JSON messages keyed by aggregate id
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher for topic on brokers
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish marshals and writes events in one batch
func (p *KafkaPublisher) Publish(ctx context.Context, events ...Event) error {
	if len(events) == 0 {
		return nil
	}
	messages := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", e.Type, err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(e.Key),
			Value: value,
			Time:  e.OccurredAt,
		})
	}
	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("failed to write events: %w", err)
	}
	return nil
}

// Close flushes and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
