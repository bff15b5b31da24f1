package sink

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/cockroachdb/pebble"

	"github.com/ngstokes-code/pmr-market-simulator/event"
)

const (
	// storeBatchLimit is the write count per committed batch.
	storeBatchLimit = 10000
	// storeMaxSymbols caps the number of per-symbol partitions.
	storeMaxSymbols = 64
)

// storeKey is "symbol 0x00 ts". The timestamp is big-endian so that
// iterating a symbol's partition yields time order.
func storeKey(symbol string, ts uint64) []byte {
	k := make([]byte, 0, len(symbol)+9)
	k = append(k, symbol...)
	k = append(k, 0)
	var tsb [8]byte
	binary.BigEndian.PutUint64(tsb[:], ts)
	return append(k, tsb[:]...)
}

// Store persists events into a pebble database, one logical sub-database
// per symbol (expressed as a key prefix). Writes accumulate in a batch
// committed every storeBatchLimit records. Not safe for concurrent use.
type Store struct {
	db      *pebble.DB
	batch   *pebble.Batch
	pending int
	symbols map[string]struct{}
	closed  bool
}

func OpenStore(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{
		db:      db,
		batch:   db.NewBatch(),
		symbols: make(map[string]struct{}, storeMaxSymbols),
	}, nil
}

func (s *Store) Write(e event.Event) error {
	if s.closed {
		return ErrClosed
	}
	if _, ok := s.symbols[e.Symbol]; !ok {
		if len(s.symbols) == storeMaxSymbols {
			return fmt.Errorf("store: symbol cap %d exceeded by %q", storeMaxSymbols, e.Symbol)
		}
		s.symbols[e.Symbol] = struct{}{}
	}
	if err := s.batch.Set(storeKey(e.Symbol, e.TsNs), e.Encode(), nil); err != nil {
		return fmt.Errorf("store: set: %w", err)
	}
	s.pending++
	if s.pending >= storeBatchLimit {
		return s.commit()
	}
	return nil
}

// commit applies the current batch. On failure the batch is dropped and
// a fresh one begun so the store keeps accepting writes.
func (s *Store) commit() error {
	if s.pending == 0 {
		return nil
	}
	err := s.db.Apply(s.batch, pebble.NoSync)
	s.batch.Close()
	s.batch = s.db.NewBatch()
	s.pending = 0
	if err != nil {
		log.Printf("[store] batch commit failed, dropped: %v", err)
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

func (s *Store) Flush() error {
	if s.closed {
		return ErrClosed
	}
	return s.commit()
}

func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.commit()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}
