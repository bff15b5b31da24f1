// Package orderbook implements a per-symbol price-time-priority limit
// order book over tick-quantized prices. Each book is owned by exactly
// one goroutine; there is no internal locking.
package orderbook

import (
	"fmt"
	"math"

	"github.com/ngstokes-code/pmr-market-simulator/arena"
	"github.com/ngstokes-code/pmr-market-simulator/event"
	"github.com/ngstokes-code/pmr-market-simulator/flathash"
)

const (
	// Map capacities. The flat maps are fatal past 80% load, so at most
	// 1639 distinct ticks per side and 13108 live resting orders fit.
	levelCap = 2048  // distinct ticks per side
	indexCap = 16384 // live resting orders
)

// Book is a two-sided limit order book for one symbol.
//
// Levels and their queues live in the book's arena; emptied levels are
// recycled through a free list. Best bid/ask ticks are cached and only
// recomputed (by scanning the active-tick list) when the best level
// empties.
type Book struct {
	symbol   string
	mem      *arena.Arena
	tickSize float64
	invTick  float64

	bidLevels *flathash.Map[int32, *Level]
	askLevels *flathash.Map[int32, *Level]
	index     *flathash.Map[uint64, orderRef]

	bidTicks []int32
	askTicks []int32
	free     []*Level

	bestBidTick int32
	bestAskTick int32
	hasBestBid  bool
	hasBestAsk  bool
}

// New builds an empty book. tickSize must be positive.
func New(symbol string, mem *arena.Arena, tickSize float64) *Book {
	if tickSize <= 0 {
		panic(fmt.Sprintf("orderbook: non-positive tick size %v for %s", tickSize, symbol))
	}
	return &Book{
		symbol:    symbol,
		mem:       mem,
		tickSize:  tickSize,
		invTick:   1.0 / tickSize,
		bidLevels: flathash.New[int32, *Level](levelCap),
		askLevels: flathash.New[int32, *Level](levelCap),
		index:     flathash.New[uint64, orderRef](indexCap),
		bidTicks:  make([]int32, 0, 512),
		askTicks:  make([]int32, 0, 512),
		free:      make([]*Level, 0, 256),
	}
}

func (b *Book) Symbol() string { return b.symbol }

// IndexSize reports the number of live resting orders. Diagnostic.
func (b *Book) IndexSize() int { return b.index.Len() }

// priceToTick quantizes with round-half-away-from-zero; prices in this
// simulator are always positive.
func (b *Book) priceToTick(px float64) int32 {
	return int32(math.Round(px * b.invTick))
}

func (b *Book) tickToPrice(t int32) float64 { return float64(t) * b.tickSize }

// BestBid returns the highest bid price, if any bids rest.
func (b *Book) BestBid() (float64, bool) {
	if !b.hasBestBid {
		return 0, false
	}
	return b.tickToPrice(b.bestBidTick), true
}

// BestAsk returns the lowest ask price, if any asks rest.
func (b *Book) BestAsk() (float64, bool) {
	if !b.hasBestAsk {
		return 0, false
	}
	return b.tickToPrice(b.bestAskTick), true
}

func (b *Book) levels(side event.Side) *flathash.Map[int32, *Level] {
	if side == event.Buy {
		return b.bidLevels
	}
	return b.askLevels
}

func (b *Book) getLevel(side event.Side, tick int32) *Level {
	lvl, _ := b.levels(side).Get(tick)
	return lvl
}

func (b *Book) addActiveTick(side event.Side, tick int32) {
	if side == event.Buy {
		b.bidTicks = append(b.bidTicks, tick)
		if !b.hasBestBid || tick > b.bestBidTick {
			b.bestBidTick = tick
			b.hasBestBid = true
		}
	} else {
		b.askTicks = append(b.askTicks, tick)
		if !b.hasBestAsk || tick < b.bestAskTick {
			b.bestAskTick = tick
			b.hasBestAsk = true
		}
	}
}

func (b *Book) removeActiveTick(side event.Side, tick int32) {
	v := &b.bidTicks
	if side == event.Sell {
		v = &b.askTicks
	}
	s := *v
	for i := range s {
		if s[i] == tick {
			s[i] = s[len(s)-1]
			*v = s[:len(s)-1]
			return
		}
	}
}

// recomputeBest scans the active-tick list for the side's new extremum.
// Linear in the number of distinct active ticks, which stays small here.
func (b *Book) recomputeBest(side event.Side) {
	if side == event.Buy {
		if len(b.bidTicks) == 0 {
			b.hasBestBid = false
			return
		}
		best := b.bidTicks[0]
		for _, t := range b.bidTicks[1:] {
			if t > best {
				best = t
			}
		}
		b.bestBidTick = best
		b.hasBestBid = true
	} else {
		if len(b.askTicks) == 0 {
			b.hasBestAsk = false
			return
		}
		best := b.askTicks[0]
		for _, t := range b.askTicks[1:] {
			if t < best {
				best = t
			}
		}
		b.bestAskTick = best
		b.hasBestAsk = true
	}
}

func (b *Book) getOrCreateLevel(side event.Side, tick int32) *Level {
	if lvl := b.getLevel(side, tick); lvl != nil {
		return lvl
	}
	var lvl *Level
	if n := len(b.free); n > 0 {
		lvl = b.free[n-1]
		b.free = b.free[:n-1]
		lvl.reset(tick)
	} else {
		lvl = arena.NewOf[Level](b.mem)
		lvl.tick = tick
	}
	if !b.levels(side).Insert(tick, lvl) {
		panic(fmt.Sprintf("orderbook: level %d already mapped on %s", tick, b.symbol))
	}
	b.addActiveTick(side, tick)
	return lvl
}

func (b *Book) removeLevelIfEmpty(side event.Side, tick int32, lvl *Level) {
	if !lvl.q.empty() {
		return
	}
	b.levels(side).Erase(tick)
	b.removeActiveTick(side, tick)
	if side == event.Buy {
		if b.hasBestBid && b.bestBidTick == tick {
			b.recomputeBest(event.Buy)
		}
	} else {
		if b.hasBestAsk && b.bestAskTick == tick {
			b.recomputeBest(event.Sell)
		}
	}
	b.free = append(b.free, lvl)
}

// AddOrder matches o against the opposite side, rests any remainder, and
// returns the total matched quantity plus the price of the final fill.
// The trade price is meaningful only when matched > 0. Prices are taken
// as-is; quantization handles whatever the Gaussian draw produces.
//
// Preconditions (violations panic): o.Qty > 0, o.ID not already resting.
func (b *Book) AddOrder(o Order) (matched int32, tradePrice float64) {
	if o.Qty <= 0 {
		panic(fmt.Sprintf("orderbook: non-positive qty %d for order %d", o.Qty, o.ID))
	}

	remaining := o.Qty
	tick := b.priceToTick(o.Price)
	snapped := b.tickToPrice(tick)

	opp := event.Sell
	if o.Side == event.Sell {
		opp = event.Buy
	}

	for remaining > 0 {
		var bestTick int32
		if o.Side == event.Buy {
			if !b.hasBestAsk || b.bestAskTick > tick {
				break
			}
			bestTick = b.bestAskTick
		} else {
			if !b.hasBestBid || b.bestBidTick < tick {
				break
			}
			bestTick = b.bestBidTick
		}

		lvl := b.getLevel(opp, bestTick)
		if lvl == nil {
			// Cached best points at a vanished level; heal and retry.
			b.recomputeBest(opp)
			continue
		}

		for remaining > 0 && !lvl.q.empty() {
			top := lvl.q.front()
			traded := remaining
			if top.Qty < traded {
				traded = top.Qty
			}
			remaining -= traded
			top.Qty -= traded
			tradePrice = top.Price
			if top.Qty == 0 {
				b.index.Erase(top.ID)
				lvl.q.popFront()
			}
		}
		b.removeLevelIfEmpty(opp, bestTick, lvl)
	}

	if remaining > 0 {
		lvl := b.getOrCreateLevel(o.Side, tick)
		rest := o
		rest.Qty = remaining
		rest.Price = snapped
		lvl.q.pushBack(b.mem, rest)
		if !b.index.Insert(rest.ID, orderRef{side: o.Side, tick: tick}) {
			panic(fmt.Sprintf("orderbook: duplicate order id %d on %s", rest.ID, b.symbol))
		}
	}

	return o.Qty - remaining, tradePrice
}

// CancelOrder removes a resting order by id. Returns false if the id is
// unknown. A stale index entry (level gone, or id missing from the
// level's queue) is scrubbed and reported as false rather than escalated.
func (b *Book) CancelOrder(id uint64) bool {
	ref, ok := b.index.Get(id)
	if !ok {
		return false
	}
	lvl := b.getLevel(ref.side, ref.tick)
	if lvl == nil {
		b.index.Erase(id)
		return false
	}
	for i := 0; i < lvl.q.len(); i++ {
		if lvl.q.at(i).ID == id {
			lvl.q.removeAt(i)
			b.index.Erase(id)
			b.removeLevelIfEmpty(ref.side, ref.tick, lvl)
			return true
		}
	}
	b.index.Erase(id)
	return false
}
