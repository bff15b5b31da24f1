package orderbook

import "github.com/ngstokes-code/pmr-market-simulator/event"

// Order is a limit order as submitted to the book. Orders are plain
// values with no pointers, so their queues can live in arena memory.
type Order struct {
	ID    uint64
	Price float64
	Qty   int32
	Side  event.Side
	TsNs  uint64
}

// orderRef locates a resting order without scanning: which side, which
// tick. The id -> orderRef index is what makes cancels O(level depth).
type orderRef struct {
	side event.Side
	tick int32
}
