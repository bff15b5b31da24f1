package orderbook

import "github.com/ngstokes-code/pmr-market-simulator/arena"

// Level is one price point on one side of the book: a tick and a FIFO
// queue of resting orders. Levels are allocated from the book's arena and
// recycled through a free list; an emptied level keeps its queue storage
// so reuse allocates nothing.
type Level struct {
	tick int32
	q    fifo
}

func (l *Level) reset(tick int32) {
	l.tick = tick
	l.q.clear()
}

// fifo is a queue over an arena-backed array. head and tail are logical
// bounds into buf; popFront just advances head. When the tail hits the
// end, live entries slide back to the front if that recovers enough
// space, otherwise a doubled array is bumped from the arena (the old one
// is abandoned, which is the arena discipline).
type fifo struct {
	buf  []Order
	head int
	tail int
}

func (f *fifo) len() int { return f.tail - f.head }

func (f *fifo) empty() bool { return f.head == f.tail }

func (f *fifo) front() *Order { return &f.buf[f.head] }

// at indexes live entries: 0 is the oldest.
func (f *fifo) at(i int) *Order { return &f.buf[f.head+i] }

func (f *fifo) pushBack(mem *arena.Arena, o Order) {
	if f.tail == len(f.buf) {
		live := f.tail - f.head
		if f.head > 0 && live <= len(f.buf)/2 {
			copy(f.buf[:live], f.buf[f.head:f.tail])
		} else {
			size := 2 * len(f.buf)
			if size < 8 {
				size = 8
			}
			nb := arena.Make[Order](mem, size)
			copy(nb, f.buf[f.head:f.tail])
			f.buf = nb
		}
		f.head, f.tail = 0, live
	}
	f.buf[f.tail] = o
	f.tail++
}

func (f *fifo) popFront() { f.head++ }

// removeAt removes the i-th live entry, preserving order of the rest.
func (f *fifo) removeAt(i int) {
	copy(f.buf[f.head+i:f.tail-1], f.buf[f.head+i+1:f.tail])
	f.tail--
}

func (f *fifo) clear() { f.head, f.tail = 0, 0 }
