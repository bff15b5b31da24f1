// Package broadcaster re-publishes a recorded event store to Kafka.
// It is an offline job: point it at a KV store written by a previous
// run and it drains every symbol partition to a topic.
package broadcaster

import (
	"context"
	"fmt"
	"log"

	"github.com/IBM/sarama"

	"github.com/ngstokes-code/pmr-market-simulator/sink"
)

type Broadcaster struct {
	producer sarama.SyncProducer
	topic    string
}

func New(brokers []string, topic string) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &Broadcaster{producer: producer, topic: topic}, nil
}

// Run publishes every event in the store, keyed by symbol, and returns
// the number published. Publishing stops at the first send error or
// context cancellation; the store is read-only throughout.
func (b *Broadcaster) Run(ctx context.Context, store *sink.StoreReader) (uint64, error) {
	symbols, err := store.Symbols()
	if err != nil {
		return 0, fmt.Errorf("list symbols: %w", err)
	}

	var published uint64
	for _, sym := range symbols {
		events, err := store.ReadFirst(sym, 0)
		if err != nil {
			return published, fmt.Errorf("read %s: %w", sym, err)
		}
		for i := range events {
			if err := ctx.Err(); err != nil {
				return published, err
			}
			msg := &sarama.ProducerMessage{
				Topic: b.topic,
				Key:   sarama.StringEncoder(sym),
				Value: sarama.ByteEncoder(events[i].Encode()),
			}
			if _, _, err := b.producer.SendMessage(msg); err != nil {
				return published, fmt.Errorf("publish %s: %w", sym, err)
			}
			published++
		}
		log.Printf("[broadcaster] %s: %d events", sym, len(events))
	}
	return published, nil
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
