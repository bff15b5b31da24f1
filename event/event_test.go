package event

import (
	"errors"
	"testing"

	"github.com/ngstokes-code/pmr-market-simulator/rng"
)

func TestRoundTripLiteral(t *testing.T) {
	e := Event{TsNs: 12345, Type: Trade, Symbol: "MSFT", Price: 250.25, Qty: 7, Side: Buy}

	b := e.Encode()
	if len(b) != 28 {
		t.Fatalf("encoded length %d, want 28", len(b))
	}
	if b[0] != 4 || b[1] != 0 {
		t.Fatalf("symbol length prefix %v", b[:2])
	}
	if b[len(b)-1] != 'B' {
		t.Fatalf("side byte %#x", b[len(b)-1])
	}

	got, consumed, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if consumed != 28 {
		t.Fatalf("consumed %d", consumed)
	}
	if got != e {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, e)
	}
}

func TestRoundTripRandom(t *testing.T) {
	r := rng.New(17)
	symbols := []string{"", "A", "AAPL", "VERYLONGSYMBOLNAME"}
	for i := 0; i < 1000; i++ {
		e := Event{
			TsNs:   r.Uint64(),
			Type:   Type(r.IntRange(1, 3)),
			Symbol: symbols[r.Index(len(symbols))],
			Price:  r.Float64() * 1000,
			Qty:    int32(r.IntRange(-100, 100)),
			Side:   Side(r.IntRange(0, 1)),
		}
		b := e.Encode()
		if len(b) != e.EncodedLen() {
			t.Fatalf("EncodedLen %d, encoded %d", e.EncodedLen(), len(b))
		}
		got, n, err := Decode(b)
		if err != nil || n != len(b) || got != e {
			t.Fatalf("round trip: %+v -> %+v (n=%d err=%v)", e, got, n, err)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	e := Event{TsNs: 1, Type: OrderAdd, Symbol: "GOOG", Price: 99.5, Qty: 3, Side: Sell}
	b := e.Encode()
	for n := 0; n < len(b); n++ {
		if _, _, err := Decode(b[:n]); !errors.Is(err, ErrTruncated) {
			t.Fatalf("Decode of %d/%d bytes: err = %v", n, len(b), err)
		}
	}
}

func TestDecodeBadSide(t *testing.T) {
	e := Event{TsNs: 1, Type: OrderAdd, Symbol: "X", Price: 1, Qty: 1, Side: Buy}
	b := e.Encode()
	b[len(b)-1] = 'Q'
	if _, _, err := Decode(b); !errors.Is(err, ErrBadSide) {
		t.Fatalf("err = %v", err)
	}
}

func TestDecodeFromStream(t *testing.T) {
	// Back-to-back records parse with correct consumed offsets.
	a := Event{TsNs: 1, Type: OrderAdd, Symbol: "AAPL", Price: 100, Qty: 1, Side: Buy}
	b := Event{TsNs: 2, Type: OrderCancel, Symbol: "MSFT", Price: 0, Qty: 0, Side: Buy}
	buf := a.AppendTo(nil)
	buf = b.AppendTo(buf)

	first, n, err := Decode(buf)
	if err != nil || first != a {
		t.Fatalf("first: %+v, %v", first, err)
	}
	second, n2, err := Decode(buf[n:])
	if err != nil || second != b {
		t.Fatalf("second: %+v, %v", second, err)
	}
	if n+n2 != len(buf) {
		t.Fatalf("consumed %d+%d of %d", n, n2, len(buf))
	}
}

func TestStringFormat(t *testing.T) {
	e := Event{TsNs: 42, Type: Trade, Symbol: "AAPL", Price: 101.5, Qty: 9, Side: Sell}
	want := "[TRD] AAPL 101.50 x 9 (S) t=42"
	if got := e.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
