// Command marketsim runs the synthetic market simulator, dumps a
// recorded event store, or re-publishes one to Kafka.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ngstokes-code/pmr-market-simulator/jobs/broadcaster"
	"github.com/ngstokes-code/pmr-market-simulator/sim"
	"github.com/ngstokes-code/pmr-market-simulator/sink"
	"github.com/ngstokes-code/pmr-market-simulator/sink/stream"
)

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	var (
		events      = flag.Uint64("events", 100000, "total events to generate")
		symbolsCSV  = flag.String("symbols", "", "comma-separated symbol list (default AAPL,MSFT,GOOG)")
		seed        = flag.Uint64("seed", 42, "RNG seed")
		arenaBytes  = flag.Int("arena-bytes", 1<<20, "per-thread arena size in bytes")
		sigma       = flag.Float64("sigma", 0.001, "price sigma as a fraction of the mid")
		driftAmpl   = flag.Float64("drift-ampl", 0, "volatility drift amplitude (0 = off)")
		driftPeriod = flag.Uint64("drift-period", 10000, "volatility drift period in events")
		logPath     = flag.String("log", "", "event log path (.kv selects the KV store)")
		noLog       = flag.Bool("no-log", false, "discard events regardless of -log")
		printArena  = flag.Bool("print-arena", false, "report per-thread arena upstream usage")
		threads     = flag.Int("threads", 1, "worker threads (clamped to symbols and CPUs)")
		realtimeTS  = flag.Bool("realtime-ts", false, "wall-clock timestamps instead of deterministic ones")
		grpcTarget  = flag.String("grpc", "", "collector address to stream events to")
		kafkaCSV    = flag.String("kafka", "", "Kafka brokers to publish live events to (uses -topic)")
		readPath    = flag.String("read", "", "dump mode: open this KV store instead of simulating")
		dumpN       = flag.Int("dump", 10, "events to print per symbol in dump mode")
		brokersCSV  = flag.String("broadcast", "", "with -read: re-publish the store to these Kafka brokers")
		topic       = flag.String("topic", "market-events", "Kafka topic for -kafka and -broadcast")
	)
	flag.Parse()

	if *readPath != "" {
		if err := runRead(*readPath, *dumpN, splitCSV(*brokersCSV), *topic); err != nil {
			log.Printf("[marketsim] %v", err)
			os.Exit(1)
		}
		return
	}

	cfg := sim.Config{
		TotalEvents: *events,
		Seed:        *seed,
		Symbols:     splitCSV(*symbolsCSV),
		ArenaBytes:  *arenaBytes,
		Sigma:       *sigma,
		DriftAmpl:   *driftAmpl,
		DriftPeriod: *driftPeriod,
		NumThreads:  *threads,
		RealtimeTS:  *realtimeTS,
	}

	out, err := buildSink(cfg, *logPath, *noLog, *grpcTarget, splitCSV(*kafkaCSV), *topic)
	if err != nil {
		log.Printf("[marketsim] %v", err)
		os.Exit(1)
	}

	rep := sim.New(cfg, out).Run()
	if err := out.Close(); err != nil {
		log.Printf("[marketsim] close sink: %v", err)
	}
	printReport(rep, *printArena)
}

// buildSink assembles the event sink: the log (file, KV store, or null)
// plus optional streaming and Kafka publishers. Sinks that do not
// serialize internally cannot take writes from several workers; rather
// than fail the run, those are dropped with a warning.
func buildSink(cfg sim.Config, logPath string, noLog bool, grpcTarget string, kafkaBrokers []string, topic string) (sink.Sink, error) {
	if noLog {
		logPath = ""
	}
	multiThreaded := cfg.NumThreads > 1

	var sinks sink.Tee

	logSink, err := sink.Open(logPath)
	if err != nil {
		return nil, err
	}
	if _, isStore := logSink.(*sink.Store); isStore {
		if multiThreaded {
			log.Printf("[marketsim] the KV store is single-writer; disabling the log for %d threads", cfg.NumThreads)
			logSink.Close()
		} else {
			// Hand the store its own drain thread so the worker never
			// blocks on a batch commit.
			sinks = append(sinks, sink.NewPump(logSink, 1<<12))
		}
	} else if _, isNull := logSink.(sink.Null); !isNull {
		sinks = append(sinks, logSink)
	}

	if grpcTarget != "" {
		if multiThreaded {
			log.Printf("[marketsim] the stream publisher is single-writer; disabling it for %d threads", cfg.NumThreads)
		} else {
			pub, err := stream.Dial(grpcTarget)
			if err != nil {
				sinks.Close()
				return nil, err
			}
			sinks = append(sinks, sink.NewPump(pub, 1<<12))
		}
	}

	if len(kafkaBrokers) > 0 {
		if multiThreaded {
			log.Printf("[marketsim] the Kafka sink is single-writer; disabling it for %d threads", cfg.NumThreads)
		} else {
			sinks = append(sinks, sink.NewPump(sink.NewKafka(kafkaBrokers, topic), 1<<12))
		}
	}

	if len(sinks) == 0 {
		return sink.Null{}, nil
	}
	return sinks, nil
}

func printReport(rep sim.Report, printArena bool) {
	if len(rep.Threads) > 1 {
		fmt.Println("\nPer-Thread Summary")
		fmt.Println("-------------------------------")
		for t, tr := range rep.Threads {
			fmt.Printf("[Thread %d] Symbols=%d Adds=%d Cancels=%d Trades=%d Time=%.2f ms\n",
				t, tr.Symbols, tr.Adds, tr.Cancels, tr.Trades,
				float64(tr.Elapsed.Microseconds())/1000.0)
		}
	}
	fmt.Println("-------------------------------")
	fmt.Printf("Threads:       %d\n", len(rep.Threads))
	fmt.Printf("Total events:  %d\n", rep.TotalEvents)
	fmt.Printf("Adds:          %d\n", rep.Adds)
	fmt.Printf("Cancels:       %d\n", rep.Cancels)
	fmt.Printf("Trades:        %d\n", rep.Trades)
	fmt.Printf("Elapsed:       %.2f ms\n", float64(rep.Elapsed.Microseconds())/1000.0)
	fmt.Printf("Throughput:    %d ev/s\n", uint64(rep.EventsPerSec))
	if printArena {
		fmt.Println("Arena usage (upstream bytes requested):")
		for t, tr := range rep.Threads {
			fmt.Printf("  thread %d: %d bytes\n", t, tr.ArenaBytes)
		}
	}
	fmt.Println("-------------------------------")
}

// runRead opens a recorded store and either dumps it or re-publishes it
// to Kafka.
func runRead(path string, dumpN int, brokers []string, topic string) error {
	store, err := sink.OpenStoreReader(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(brokers) > 0 {
		bc, err := broadcaster.New(brokers, topic)
		if err != nil {
			return err
		}
		defer bc.Close()
		n, err := bc.Run(context.Background(), store)
		if err != nil {
			return err
		}
		fmt.Printf("published %d events to %s\n", n, topic)
		return nil
	}

	symbols, err := store.Symbols()
	if err != nil {
		return err
	}
	fmt.Printf("%d symbols\n", len(symbols))
	for _, sym := range symbols {
		events, err := store.ReadFirst(sym, dumpN)
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n", sym)
		for i := range events {
			fmt.Printf("  %s\n", events[i].String())
		}
	}
	return nil
}
