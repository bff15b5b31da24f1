package spsc

import "testing"

func TestCapacityValidation(t *testing.T) {
	for _, bad := range []int{0, 1, 3, 6, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", bad)
				}
			}()
			New[int](bad)
		}()
	}
	if r := New[int](2); r.Cap() != 2 {
		t.Fatalf("Cap() = %d", r.Cap())
	}
}

func TestFullAndDrainInOrder(t *testing.T) {
	r := New[int](4)

	for i := 1; i <= 4; i++ {
		if !r.TryPush(i) {
			t.Fatalf("push %d failed", i)
		}
	}
	if r.TryPush(5) {
		t.Fatal("push into full ring succeeded")
	}
	if !r.Full() {
		t.Fatal("Full() = false on full ring")
	}

	v, ok := r.TryPop()
	if !ok || v != 1 {
		t.Fatalf("pop = %d, %v", v, ok)
	}
	if !r.TryPush(5) {
		t.Fatal("push after pop failed")
	}
	for want := 2; want <= 5; want++ {
		v, ok := r.TryPop()
		if !ok || v != want {
			t.Fatalf("pop = %d, %v; want %d", v, ok, want)
		}
	}
	if _, ok := r.TryPop(); ok {
		t.Fatal("pop from empty ring succeeded")
	}
	if !r.Empty() {
		t.Fatal("Empty() = false on empty ring")
	}
}

func TestThreadedHandoff(t *testing.T) {
	const n = 200000
	r := New[int](1024)

	done := make(chan []int)
	go func() {
		out := make([]int, 0, n)
		for len(out) < n {
			if v, ok := r.TryPop(); ok {
				out = append(out, v)
			}
		}
		done <- out
	}()

	for i := 0; i < n; {
		if r.TryPush(i) {
			i++
		}
	}

	out := <-done
	for i, v := range out {
		if v != i {
			t.Fatalf("position %d: got %d", i, v)
		}
	}
}

func TestWrapAroundManyTimes(t *testing.T) {
	r := New[uint64](8)
	next := uint64(0)
	for round := 0; round < 10000; round++ {
		for i := 0; i < 5; i++ {
			if !r.TryPush(next) {
				t.Fatalf("push failed at %d", next)
			}
			next++
		}
		for i := 0; i < 5; i++ {
			v, ok := r.TryPop()
			if !ok || v != next-5+uint64(i) {
				t.Fatalf("round %d: pop = %d, %v", round, v, ok)
			}
		}
	}
}
