package arena

import (
	"testing"
	"unsafe"
)

func TestBumpWithinBuffer(t *testing.T) {
	count := NewCounting(nil)
	a := New(make([]byte, 1024), count)

	b1 := a.Alloc(100, 8)
	b2 := a.Alloc(100, 8)
	if len(b1) != 100 || len(b2) != 100 {
		t.Fatalf("lengths %d, %d", len(b1), len(b2))
	}
	if &b1[0] == &b2[0] {
		t.Fatal("allocations alias")
	}
	if count.BytesAllocated() != 0 {
		t.Fatalf("upstream touched for in-buffer allocations: %d bytes", count.BytesAllocated())
	}
}

func TestAlignment(t *testing.T) {
	a := New(make([]byte, 256), nil)
	_ = a.Alloc(1, 1)
	b := a.Alloc(8, 8)
	if p := addrOf(b); p%8 != 0 {
		t.Fatalf("8-byte alloc at %#x not aligned", p)
	}
	c := a.Alloc(64, 64)
	if p := addrOf(c); p%64 != 0 {
		t.Fatalf("64-byte alloc at %#x not aligned", p)
	}
}

func TestUpstreamFallback(t *testing.T) {
	count := NewCounting(nil)
	a := New(make([]byte, 64), count)

	_ = a.Alloc(48, 8)
	big := a.Alloc(1000, 8) // exceeds buffer, must come from upstream
	if len(big) != 1000 {
		t.Fatalf("fallback alloc len %d", len(big))
	}
	if count.BytesAllocated() == 0 {
		t.Fatal("upstream bytes not counted")
	}
	// Memory from the new slab must keep serving subsequent allocations.
	again := a.Alloc(100, 8)
	if len(again) != 100 {
		t.Fatalf("post-fallback alloc len %d", len(again))
	}
}

func TestMakeTyped(t *testing.T) {
	a := New(make([]byte, 1<<12), nil)

	type pair struct{ a, b uint64 }
	s := Make[pair](a, 16)
	if len(s) != 16 {
		t.Fatalf("len %d", len(s))
	}
	for i := range s {
		if s[i] != (pair{}) {
			t.Fatalf("slot %d not zeroed: %+v", i, s[i])
		}
		s[i] = pair{uint64(i), uint64(i * 2)}
	}
	// A second Make must not overlap the first.
	s2 := Make[pair](a, 16)
	for i := range s {
		if s[i] != (pair{uint64(i), uint64(i * 2)}) {
			t.Fatalf("slot %d clobbered: %+v", i, s[i])
		}
	}
	_ = s2
}

func TestZeroSizedRequests(t *testing.T) {
	a := New(make([]byte, 64), nil)
	if b := a.Alloc(0, 8); b != nil {
		t.Fatalf("Alloc(0) = %v", b)
	}
	if s := Make[int](a, 0); s != nil {
		t.Fatalf("Make(0) = %v", s)
	}
}

func addrOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}
