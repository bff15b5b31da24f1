// Package sink provides the event sinks the simulator writes into: a
// discarding null sink, a length-prefixed binary append log, a pebble
// key-value store partitioned by symbol, a Kafka producer, and a pump
// that decouples a producer thread from a slow sink with an SPSC ring.
package sink

import (
	"errors"
	"strings"

	"github.com/ngstokes-code/pmr-market-simulator/event"
)

// Sink consumes the simulator's event stream. Write and Flush are the
// only operations the core relies on; Close releases resources. Thread
// safety is the sink's own business: the binary log serializes
// internally, the KV store and Kafka sinks do not and must be fed by a
// single writer.
type Sink interface {
	Write(e event.Event) error
	Flush() error
	Close() error
}

// ErrClosed is returned by writes against a closed sink.
var ErrClosed = errors.New("sink: closed")

// Null discards everything.
type Null struct{}

func (Null) Write(event.Event) error { return nil }
func (Null) Flush() error            { return nil }
func (Null) Close() error            { return nil }

// Tee fans every event out to all sinks. Write returns the first error
// but still reaches the remaining sinks.
type Tee []Sink

func (t Tee) Write(e event.Event) error {
	var first error
	for _, s := range t {
		if err := s.Write(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t Tee) Flush() error {
	var first error
	for _, s := range t {
		if err := s.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t Tee) Close() error {
	var first error
	for _, s := range t {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open selects a sink by path: empty means null, a path ending in ".kv"
// opens the pebble store, anything else an append-only binary log.
func Open(path string) (Sink, error) {
	switch {
	case path == "":
		return Null{}, nil
	case strings.HasSuffix(path, ".kv"):
		return OpenStore(path)
	default:
		return OpenBinaryLog(path)
	}
}
