package repository

import (
	"context"

	"FinTab/internal/domain/models"
	domain "FinTab/internal/domain/repository"
	pkgkafka "FinTab/pkg/kafka"
)

// KafkaPublisher implements Publisher for Kafka.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates a Kafka publisher for run results and load
// reports.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) domain.Publisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

// PublishResult emits one evaluation result, keyed by its run ID so that
// replays of the same run land in one partition.
func (p *KafkaPublisher) PublishResult(ctx context.Context, res *models.QueryResult) error {
	return p.producer.Publish(ctx, p.topic, []byte(res.RunID), res)
}

// PublishLoadEvents emits one message per loaded table, keyed by table
// name.
func (p *KafkaPublisher) PublishLoadEvents(ctx context.Context, events []models.LoadEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, len(events))
	for i, ev := range events {
		msgs[i] = pkgkafka.Message{
			Key:   []byte(ev.Table),
			Value: ev,
		}
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
