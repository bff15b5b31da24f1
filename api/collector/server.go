// Package collector implements the server side of the MarketStream
// service: it receives event batches from publishers, counts them, and
// can append them to a local sink.
package collector

import (
	"errors"
	"io"
	"log"
	"sync/atomic"

	"google.golang.org/grpc"

	"github.com/ngstokes-code/pmr-market-simulator/api/convert"
	"github.com/ngstokes-code/pmr-market-simulator/api/pb"
	"github.com/ngstokes-code/pmr-market-simulator/sink"
)

// Server handles any number of concurrent publishers. The optional out
// sink must serialize internally (the binary log does); writes from all
// streams funnel through it.
type Server struct {
	pb.UnimplementedMarketStreamServer

	out   sink.Sink
	total atomic.Uint64
}

func New(out sink.Sink) *Server {
	return &Server{out: out}
}

// Total reports events received across all streams so far.
func (s *Server) Total() uint64 { return s.total.Load() }

func (s *Server) Publish(stream grpc.ClientStreamingServer[pb.EventBatch, pb.Ack]) error {
	var count uint64
	for {
		batch, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			log.Printf("[collector] stream closed, %d events", count)
			return stream.SendAndClose(&pb.Ack{Count: count})
		}
		if err != nil {
			log.Printf("[collector] stream error after %d events: %v", count, err)
			return err
		}
		for _, pe := range batch.GetEvents() {
			count++
			s.total.Add(1)
			if s.out != nil {
				if werr := s.out.Write(convert.FromProto(pe)); werr != nil {
					log.Printf("[collector] sink write: %v", werr)
				}
			}
		}
	}
}
