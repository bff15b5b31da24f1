package sink

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ngstokes-code/pmr-market-simulator/event"
)

// Kafka publishes each event to a topic, keyed by symbol so per-symbol
// ordering survives partitioning. Single writer only.
type Kafka struct {
	w *kafka.Writer
}

func NewKafka(brokers []string, topic string) *Kafka {
	return &Kafka{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (k *Kafka) Write(e event.Event) error {
	return k.w.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(e.Symbol),
		Value: e.Encode(),
	})
}

func (k *Kafka) Flush() error { return nil }

func (k *Kafka) Close() error { return k.w.Close() }
