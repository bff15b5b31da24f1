// Package stream publishes the event stream to a collector over gRPC.
// Events are batched and sent on a client-streaming RPC; the collector
// acks the total on stream close.
package stream

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ngstokes-code/pmr-market-simulator/api/convert"
	"github.com/ngstokes-code/pmr-market-simulator/api/pb"
	"github.com/ngstokes-code/pmr-market-simulator/event"
)

// batchSize is the number of events per EventBatch message.
const batchSize = 512

// Publisher is an event sink backed by a MarketStream.Publish call.
// Single writer only.
type Publisher struct {
	conn   *grpc.ClientConn
	stream grpc.ClientStreamingClient[pb.EventBatch, pb.Ack]
	batch  []*pb.Event
	acked  uint64
}

// Dial connects to a collector and opens the publish stream.
func Dial(target string) (*Publisher, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}
	stream, err := pb.NewMarketStreamClient(conn).Publish(context.Background())
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open publish stream: %w", err)
	}
	return &Publisher{
		conn:   conn,
		stream: stream,
		batch:  make([]*pb.Event, 0, batchSize),
	}, nil
}

func (p *Publisher) Write(e event.Event) error {
	p.batch = append(p.batch, convert.ToProto(e))
	if len(p.batch) >= batchSize {
		return p.Flush()
	}
	return nil
}

// Flush sends the partial batch, if any.
func (p *Publisher) Flush() error {
	if len(p.batch) == 0 {
		return nil
	}
	msg := &pb.EventBatch{Events: p.batch}
	p.batch = make([]*pb.Event, 0, batchSize)
	if err := p.stream.Send(msg); err != nil {
		return fmt.Errorf("publish batch: %w", err)
	}
	return nil
}

// Close flushes the tail batch, half-closes the stream, and waits for
// the collector's ack.
func (p *Publisher) Close() error {
	flushErr := p.Flush()
	ack, err := p.stream.CloseAndRecv()
	if err == nil {
		p.acked = ack.GetCount()
		log.Printf("[stream] collector acked %d events", p.acked)
	}
	if cerr := p.conn.Close(); err == nil {
		err = cerr
	}
	if flushErr != nil {
		return flushErr
	}
	return err
}

// Acked reports the collector's count from the final ack. Valid after
// Close.
func (p *Publisher) Acked() uint64 { return p.acked }
