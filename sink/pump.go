package sink

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ngstokes-code/pmr-market-simulator/event"
	"github.com/ngstokes-code/pmr-market-simulator/spsc"
)

// Pump places an SPSC ring between one producer and a slow sink. The
// producer calls Write; a dedicated goroutine drains the ring into the
// wrapped sink. Flush and Close call the wrapped sink from the caller's
// goroutine, once the drain side has caught up or stopped. Exactly one
// goroutine may write to a Pump.
type Pump struct {
	ring *spsc.Ring[event.Event]
	dst  Sink

	pushed   uint64 // producer-side count, producer goroutine only
	popped   atomic.Uint64
	firstErr atomic.Pointer[error]

	stop chan struct{}
	done sync.WaitGroup
}

func NewPump(dst Sink, capacity int) *Pump {
	p := &Pump{
		ring: spsc.New[event.Event](capacity),
		dst:  dst,
		stop: make(chan struct{}),
	}
	p.done.Add(1)
	go p.drain()
	return p
}

func (p *Pump) drain() {
	defer p.done.Done()
	for {
		if e, ok := p.ring.TryPop(); ok {
			p.consume(e)
			continue
		}
		select {
		case <-p.stop:
			for {
				e, ok := p.ring.TryPop()
				if !ok {
					return
				}
				p.consume(e)
			}
		default:
			runtime.Gosched()
		}
	}
}

func (p *Pump) consume(e event.Event) {
	if err := p.dst.Write(e); err != nil {
		p.firstErr.CompareAndSwap(nil, &err)
	}
	p.popped.Add(1)
}

// Write enqueues the event, spinning briefly if the ring is full. The
// returned error is the first error the drain side has hit, if any.
func (p *Pump) Write(e event.Event) error {
	for !p.ring.TryPush(e) {
		runtime.Gosched()
	}
	p.pushed++
	if ep := p.firstErr.Load(); ep != nil {
		return *ep
	}
	return nil
}

// Flush waits for the drain side to catch up, then flushes the sink.
func (p *Pump) Flush() error {
	for p.popped.Load() != p.pushed {
		runtime.Gosched()
	}
	if err := p.dst.Flush(); err != nil {
		return err
	}
	if ep := p.firstErr.Load(); ep != nil {
		return *ep
	}
	return nil
}

// Close drains outstanding events, stops the goroutine, and closes the
// wrapped sink.
func (p *Pump) Close() error {
	close(p.stop)
	p.done.Wait()
	err := p.dst.Close()
	if ep := p.firstErr.Load(); ep != nil && err == nil {
		err = *ep
	}
	return err
}
