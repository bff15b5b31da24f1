package sink

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cockroachdb/pebble"

	"github.com/ngstokes-code/pmr-market-simulator/event"
)

// StoreReader opens a Store's database read-only for dump tooling.
type StoreReader struct {
	db *pebble.DB
}

func OpenStoreReader(path string) (*StoreReader, error) {
	db, err := pebble.Open(path, &pebble.Options{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &StoreReader{db: db}, nil
}

func (r *StoreReader) Close() error { return r.db.Close() }

// Symbols lists the distinct symbol partitions, sorted.
func (r *StoreReader) Symbols() ([]string, error) {
	iter, err := r.db.NewIter(nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	seen := make(map[string]struct{})
	for iter.First(); iter.Valid(); iter.Next() {
		key := iter.Key()
		if i := bytes.IndexByte(key, 0); i >= 0 {
			seen[string(key[:i])] = struct{}{}
		}
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

// ReadFirst returns up to n events from the front of a symbol's
// partition, in timestamp order. n <= 0 means all.
func (r *StoreReader) ReadFirst(symbol string, n int) ([]event.Event, error) {
	lower := append([]byte(symbol), 0)
	upper := append([]byte(symbol), 1)
	iter, err := r.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []event.Event
	for iter.First(); iter.Valid(); iter.Next() {
		e, _, err := event.Decode(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("store: record under %q: %w", iter.Key(), err)
		}
		out = append(out, e)
		if n > 0 && len(out) == n {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return out, nil
}
