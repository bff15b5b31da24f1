package sink

import (
	"path/filepath"
	"testing"

	"github.com/ngstokes-code/pmr-market-simulator/event"
)

func sampleEvents(n int) []event.Event {
	out := make([]event.Event, n)
	syms := []string{"AAPL", "MSFT", "GOOG"}
	for i := range out {
		out[i] = event.Event{
			TsNs:   uint64(i),
			Type:   event.Type(i%3 + 1),
			Symbol: syms[i%len(syms)],
			Price:  100 + float64(i)/7,
			Qty:    int32(i%50 + 1),
			Side:   event.Side(i % 2),
		}
	}
	return out
}

func TestOpenSelectsSink(t *testing.T) {
	s, err := Open("")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(Null); !ok {
		t.Fatalf("Open(\"\") = %T", s)
	}

	dir := t.TempDir()
	s, err = Open(filepath.Join(dir, "events.bin"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*BinaryLog); !ok {
		t.Fatalf("binary path = %T", s)
	}
	s.Close()

	s, err = Open(filepath.Join(dir, "events.kv"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*Store); !ok {
		t.Fatalf("kv path = %T", s)
	}
	s.Close()
}

func TestBinaryLogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.bin")
	l, err := OpenBinaryLog(path)
	if err != nil {
		t.Fatal(err)
	}
	want := sampleEvents(1000)
	for _, e := range want {
		if err := l.Write(e); err != nil {
			t.Fatal(err)
		}
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadBinaryLog(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("read %d records, wrote %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d: %+v != %+v", i, got[i], want[i])
		}
	}
}

func TestBinaryLogClosedWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.bin")
	l, err := OpenBinaryLog(path)
	if err != nil {
		t.Fatal(err)
	}
	l.Close()
	if err := l.Write(event.Event{Symbol: "X", Type: event.OrderAdd, Side: event.Buy}); err != ErrClosed {
		t.Fatalf("write after close: %v", err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.kv")
	s, err := OpenStore(path)
	if err != nil {
		t.Fatal(err)
	}
	// Enough records to force at least one mid-stream batch commit.
	want := sampleEvents(25000)
	for _, e := range want {
		if err := s.Write(e); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := OpenStoreReader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	syms, err := r.Symbols()
	if err != nil {
		t.Fatal(err)
	}
	if len(syms) != 3 || syms[0] != "AAPL" || syms[1] != "GOOG" || syms[2] != "MSFT" {
		t.Fatalf("symbols = %v", syms)
	}

	got, err := r.ReadFirst("MSFT", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("read %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].TsNs <= got[i-1].TsNs {
			t.Fatalf("events not time-ordered: %d then %d", got[i-1].TsNs, got[i].TsNs)
		}
	}
	for _, e := range got {
		if e.Symbol != "MSFT" {
			t.Fatalf("foreign symbol %q in MSFT partition", e.Symbol)
		}
	}

	all, err := r.ReadFirst("AAPL", 0)
	if err != nil {
		t.Fatal(err)
	}
	wantAAPL := 0
	for _, e := range want {
		if e.Symbol == "AAPL" {
			wantAAPL++
		}
	}
	if len(all) != wantAAPL {
		t.Fatalf("AAPL partition has %d events, want %d", len(all), wantAAPL)
	}
}

func TestStoreSymbolCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.kv")
	s, err := OpenStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	e := event.Event{Type: event.OrderAdd, Side: event.Buy, Qty: 1, Price: 1}
	for i := 0; i < storeMaxSymbols; i++ {
		e.Symbol = string(rune('A'+i/26)) + string(rune('A'+i%26))
		e.TsNs = uint64(i)
		if err := s.Write(e); err != nil {
			t.Fatalf("symbol %d: %v", i, err)
		}
	}
	e.Symbol = "OVERFLOW"
	if err := s.Write(e); err == nil {
		t.Fatal("65th symbol accepted")
	}
}

type collectSink struct {
	events []event.Event
	flushs int
}

func (c *collectSink) Write(e event.Event) error { c.events = append(c.events, e); return nil }
func (c *collectSink) Flush() error              { c.flushs++; return nil }
func (c *collectSink) Close() error              { return nil }

func TestPumpDeliversInOrder(t *testing.T) {
	dst := &collectSink{}
	p := NewPump(dst, 256)

	want := sampleEvents(10000)
	for _, e := range want {
		if err := p.Write(e); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.Flush(); err != nil {
		t.Fatal(err)
	}
	if dst.flushs != 1 {
		t.Fatalf("flush count %d", dst.flushs)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	if len(dst.events) != len(want) {
		t.Fatalf("delivered %d of %d", len(dst.events), len(want))
	}
	for i := range want {
		if dst.events[i] != want[i] {
			t.Fatalf("position %d out of order", i)
		}
	}
}
