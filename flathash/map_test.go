package flathash

import (
	"testing"

	"github.com/ngstokes-code/pmr-market-simulator/rng"
)

func TestInsertGetErase(t *testing.T) {
	m := New[uint64, int](64)

	if !m.Insert(10, 100) {
		t.Fatal("insert 10 failed")
	}
	if m.Insert(10, 200) {
		t.Fatal("duplicate insert succeeded")
	}
	if v, ok := m.Get(10); !ok || v != 100 {
		t.Fatalf("Get(10) = %v, %v; duplicate insert must not mutate", v, ok)
	}
	if !m.Erase(10) {
		t.Fatal("erase 10 failed")
	}
	if m.Erase(10) {
		t.Fatal("second erase succeeded")
	}
	if _, ok := m.Get(10); ok {
		t.Fatal("Get after erase hit")
	}
	if m.Len() != 0 || m.Tombs() != 1 {
		t.Fatalf("size=%d tombs=%d", m.Len(), m.Tombs())
	}
}

func TestCapacityRounding(t *testing.T) {
	for _, tc := range []struct{ in, want int }{
		{0, 8}, {1, 8}, {8, 8}, {9, 16}, {2048, 2048}, {2049, 4096},
	} {
		m := New[int32, int](tc.in)
		if m.Cap() != tc.want {
			t.Errorf("New(%d).Cap() = %d, want %d", tc.in, m.Cap(), tc.want)
		}
	}
}

func TestTombstoneSlotReuse(t *testing.T) {
	m := New[uint64, int](8)
	m.Insert(1, 1)
	m.Insert(2, 2)
	m.Erase(1)
	tombs := m.Tombs()
	m.Insert(1, 3)
	if m.Tombs() >= tombs && tombs > 0 {
		t.Fatalf("tombstone not reclaimed on reinsert: before=%d after=%d", tombs, m.Tombs())
	}
	if v, _ := m.Get(1); v != 3 {
		t.Fatalf("Get(1) = %d", v)
	}
}

// Churn against a reference map: no live key lost, no phantom key reported.
func TestChurnAgainstReference(t *testing.T) {
	m := New[uint64, uint64](1024)
	ref := make(map[uint64]uint64)
	r := rng.New(99)

	for i := 0; i < 200000; i++ {
		key := uint64(r.IntRange(1, 600)) // well below capacity
		if r.Bool(0.5) {
			val := r.Uint64()
			got := m.Insert(key, val)
			_, had := ref[key]
			if got == had {
				t.Fatalf("op %d: Insert(%d) = %v, reference had=%v", i, key, got, had)
			}
			if got {
				ref[key] = val
			}
		} else {
			got := m.Erase(key)
			_, had := ref[key]
			if got != had {
				t.Fatalf("op %d: Erase(%d) = %v, reference had=%v", i, key, got, had)
			}
			delete(ref, key)
		}
		if m.Len() != len(ref) {
			t.Fatalf("op %d: size %d, reference %d", i, m.Len(), len(ref))
		}
	}
	for k, v := range ref {
		got, ok := m.Get(k)
		if !ok || got != v {
			t.Fatalf("final: Get(%d) = %v, %v; want %v", k, got, ok, v)
		}
	}
}

// Compaction fires on counts alone, so two identical histories stay
// identical through it.
func TestCompactionDeterminism(t *testing.T) {
	run := func() *Map[int32, int] {
		m := New[int32, int](64)
		for round := 0; round < 50; round++ {
			for k := int32(0); k < 30; k++ {
				m.Insert(k, int(k)+round)
			}
			for k := int32(0); k < 30; k++ {
				m.Erase(k)
			}
		}
		for k := int32(100); k < 120; k++ {
			m.Insert(k, int(k))
		}
		return m
	}
	a, b := run(), run()
	if a.Len() != b.Len() || a.Tombs() != b.Tombs() {
		t.Fatalf("histories diverged: (%d,%d) vs (%d,%d)", a.Len(), a.Tombs(), b.Len(), b.Tombs())
	}
	a.Range(func(k int32, v int) bool {
		bv, ok := b.Get(k)
		if !ok || bv != v {
			t.Fatalf("key %d: %d vs %v,%v", k, v, bv, ok)
		}
		return true
	})
}

func TestCapacityOverrunPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("no panic on overrun")
		}
		if _, ok := r.(*CapacityError); !ok {
			t.Fatalf("panic payload %T", r)
		}
	}()
	m := New[uint64, int](8)
	for k := uint64(0); k < 100; k++ {
		m.Insert(k, 0)
	}
}

func Test32BitKeysProbeIndependently(t *testing.T) {
	// Consecutive ticks must not collapse onto one probe chain.
	m := New[int32, int](4096)
	base := hash(int32(1000)) & (m.Cap() - 1)
	sequential := 0
	for k := int32(1001); k < 1032; k++ {
		if hash(k)&(m.Cap()-1) == base+int(k-1000) {
			sequential++
		}
	}
	if sequential > 4 {
		t.Fatalf("hash looks like identity: %d sequential placements", sequential)
	}
}
