// Package sim drives the synthetic market: each worker owns a disjoint
// set of symbols with their order books, draws randomness from its own
// generators, and pushes the resulting event stream into a sink. Books
// are never shared across workers, so the hot path takes no locks.
package sim

import (
	"log"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/ngstokes-code/pmr-market-simulator/arena"
	"github.com/ngstokes-code/pmr-market-simulator/event"
	"github.com/ngstokes-code/pmr-market-simulator/orderbook"
	"github.com/ngstokes-code/pmr-market-simulator/rng"
	"github.com/ngstokes-code/pmr-market-simulator/sink"
)

const (
	initialMid     = 100.0
	tickSize       = 0.01
	minQty         = 1
	maxQty         = 100
	addProbability = 0.5
)

// ThreadReport is one worker's tally.
type ThreadReport struct {
	Symbols    int
	Adds       uint64
	Cancels    uint64
	Trades     uint64
	Elapsed    time.Duration
	ArenaBytes uint64 // bytes requested from the arena's upstream
}

// Report aggregates a finished run.
type Report struct {
	Threads      []ThreadReport
	TotalEvents  uint64
	Adds         uint64
	Cancels      uint64
	Trades       uint64
	Elapsed      time.Duration
	EventsPerSec float64
}

// Simulator owns the configuration and the output sink. The sink's
// thread-safety contract is the caller's concern: pair unsynchronized
// sinks with single-threaded runs only.
type Simulator struct {
	cfg Config
	out sink.Sink
}

func New(cfg Config, out sink.Sink) *Simulator {
	if out == nil {
		out = sink.Null{}
	}
	return &Simulator{cfg: cfg, out: out}
}

// worker is the per-thread state: assigned symbols, their books, mids
// and live resting ids, plus private generators.
type worker struct {
	id      uint32
	symbols []string
	counter *arena.Counting
	mem     *arena.Arena
	books   []*orderbook.Book
	mid     []float64
	live    [][]uint64
	rng     *rng.Xoroshiro128
	normal  rng.Normal

	adds    uint64
	cancels uint64
	trades  uint64
	elapsed time.Duration
}

func (s *Simulator) threadCount(nSymbols int) int {
	n := s.cfg.NumThreads
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > nSymbols {
		n = nSymbols
	}
	if hw := runtime.NumCPU(); n > hw {
		n = hw
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Run executes the configured number of events and returns the tallies.
// The sink is flushed, not closed.
func (s *Simulator) Run() Report {
	symbols := s.cfg.Symbols
	if len(symbols) == 0 {
		symbols = DefaultSymbols()
	}
	nThreads := s.threadCount(len(symbols))
	perThread := (len(symbols) + nThreads - 1) / nThreads

	workers := make([]*worker, nThreads)
	idx := 0
	for t := 0; t < nThreads; t++ {
		end := idx + perThread
		if end > len(symbols) {
			end = len(symbols)
		}
		w := &worker{
			id:      uint32(t),
			symbols: symbols[idx:end],
			counter: arena.NewCounting(nil),
			rng:     rng.New(s.cfg.Seed + uint64(t)),
		}
		idx = end
		w.mem = arena.New(make([]byte, s.cfg.ArenaBytes), w.counter)
		w.books = make([]*orderbook.Book, len(w.symbols))
		w.mid = make([]float64, len(w.symbols))
		w.live = make([][]uint64, len(w.symbols))
		for i, sym := range w.symbols {
			w.books[i] = orderbook.New(sym, w.mem, tickSize)
			w.mid[i] = initialMid
		}
		workers[t] = w
	}

	t0 := time.Now()
	var wg sync.WaitGroup
	base := s.cfg.TotalEvents / uint64(nThreads)
	rem := s.cfg.TotalEvents % uint64(nThreads)

	for t := 0; t < nThreads; t++ {
		iters := base
		if t == nThreads-1 {
			iters += rem
		}
		wg.Add(1)
		go func(w *worker, iters uint64) {
			defer wg.Done()
			if len(w.symbols) == 0 {
				return
			}
			if err := pinToCore(int(w.id)); err != nil {
				log.Printf("[affinity] pin thread %d to core %d: %v", w.id, w.id, err)
			}
			start := time.Now()
			s.runWorker(w, iters)
			w.elapsed = time.Since(start)
		}(workers[t], iters)
	}
	wg.Wait()

	if err := s.out.Flush(); err != nil {
		log.Printf("[sim] sink flush: %v", err)
	}

	rep := Report{
		Threads:     make([]ThreadReport, nThreads),
		TotalEvents: s.cfg.TotalEvents,
		Elapsed:     time.Since(t0),
	}
	for t, w := range workers {
		rep.Threads[t] = ThreadReport{
			Symbols:    len(w.symbols),
			Adds:       w.adds,
			Cancels:    w.cancels,
			Trades:     w.trades,
			Elapsed:    w.elapsed,
			ArenaBytes: w.counter.BytesAllocated(),
		}
		rep.Adds += w.adds
		rep.Cancels += w.cancels
		rep.Trades += w.trades
	}
	if secs := rep.Elapsed.Seconds(); secs > 0 {
		rep.EventsPerSec = float64(rep.TotalEvents) / secs
	}
	return rep
}

func (s *Simulator) makeTS(i uint64, threadID uint32) uint64 {
	if s.cfg.RealtimeTS {
		return uint64(time.Now().UnixNano())
	}
	// Deterministic and unique across threads.
	return uint64(threadID)<<48 | i
}

// sigmaAt applies the sinusoidal volatility drift to the base sigma.
func (s *Simulator) sigmaAt(i uint64) float64 {
	sigma := s.cfg.Sigma
	if s.cfg.DriftAmpl > 0 && s.cfg.DriftPeriod > 0 {
		phase := float64(i%s.cfg.DriftPeriod) / float64(s.cfg.DriftPeriod)
		sigma *= 1.0 + s.cfg.DriftAmpl*math.Sin(2.0*math.Pi*phase)
	}
	return sigma
}

func (s *Simulator) emit(e event.Event) {
	if err := s.out.Write(e); err != nil {
		log.Printf("[sim] sink write: %v", err)
	}
}

func (s *Simulator) runWorker(w *worker, iters uint64) {
	localID := uint64(1)

	for i := uint64(0); i < iters; i++ {
		si := w.rng.Index(len(w.symbols))
		book := w.books[si]
		live := &w.live[si]

		doAdd := w.rng.Bool(addProbability)
		if doAdd || len(*live) == 0 {
			side := event.Buy
			if w.rng.Bool(0.5) {
				side = event.Sell
			}
			mid := w.mid[si]
			price := w.normal.Sample(w.rng, mid, mid*s.sigmaAt(i))
			qty := int32(w.rng.IntRange(minQty, maxQty))

			id := uint64(w.id)<<56 | localID
			localID++
			ts := s.makeTS(i, w.id)

			o := orderbook.Order{ID: id, Price: price, Qty: qty, Side: side, TsNs: ts}
			matched, tradePx := book.AddOrder(o)

			e := event.Event{TsNs: ts, Symbol: w.symbols[si], Price: o.Price, Qty: o.Qty, Side: o.Side}
			if matched > 0 {
				e.Type = event.Trade
				e.Price = tradePx
				e.Qty = matched
				w.trades++
			} else {
				e.Type = event.OrderAdd
				w.adds++
			}
			s.emit(e)

			if matched < qty {
				*live = append(*live, id)
			}
		} else {
			li := w.rng.Index(len(*live))
			victim := (*live)[li]
			(*live)[li] = (*live)[len(*live)-1]
			*live = (*live)[:len(*live)-1]

			if book.CancelOrder(victim) {
				s.emit(event.Event{
					TsNs:   s.makeTS(i, w.id),
					Type:   event.OrderCancel,
					Symbol: w.symbols[si],
					Side:   event.Buy, // placeholder on cancels
				})
				w.cancels++
			}
		}

		// Track the mid between the quotes; keep the last one when a
		// side (or the book) is empty.
		bb, hasBid := book.BestBid()
		ba, hasAsk := book.BestAsk()
		switch {
		case hasBid && hasAsk:
			w.mid[si] = (bb + ba) * 0.5
		case hasBid:
			w.mid[si] = bb
		case hasAsk:
			w.mid[si] = ba
		}
	}
}
