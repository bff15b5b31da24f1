// Command collector receives published event streams over gRPC, counts
// them, and can append them to a local binary log.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/ngstokes-code/pmr-market-simulator/api/collector"
	"github.com/ngstokes-code/pmr-market-simulator/api/pb"
	"github.com/ngstokes-code/pmr-market-simulator/sink"
)

func main() {
	var (
		listen  = flag.String("listen", ":50051", "listen address")
		outPath = flag.String("out", "", "append received events to this log (empty = count only)")
	)
	flag.Parse()

	var out sink.Sink
	if *outPath != "" {
		var err error
		out, err = sink.OpenBinaryLog(*outPath)
		if err != nil {
			log.Fatalf("[collector] open %s: %v", *outPath, err)
		}
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		log.Fatalf("[collector] listen %s: %v", *listen, err)
	}

	srv := collector.New(out)
	grpcSrv := grpc.NewServer()
	pb.RegisterMarketStreamServer(grpcSrv, srv)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		grpcSrv.GracefulStop()
	}()

	fmt.Printf("collector listening on %s\n", *listen)
	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("[collector] serve: %v", err)
	}

	if out != nil {
		if err := out.Close(); err != nil {
			log.Printf("[collector] close log: %v", err)
		}
	}
	fmt.Printf("collector received %d events\n", srv.Total())
}
