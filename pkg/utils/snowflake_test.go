package utils

import (
	"sync"
	"testing"
)

func TestGenIdUnique(t *testing.T) {
	const total = 10000
	seen := make(map[int64]struct{}, total)
	for i := 0; i < total; i++ {
		id := GenId()
		if id <= 0 {
			t.Fatalf("GenId returned non-positive id: %d", id)
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id generated: %d", id)
		}
		seen[id] = struct{}{}
	}
}

func TestGenIdConcurrent(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 1000

	var mu sync.Mutex
	seen := make(map[int64]struct{}, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int64, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				ids = append(ids, GenId())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				if _, ok := seen[id]; ok {
					t.Errorf("duplicate id generated concurrently: %d", id)
				}
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()
}

func TestTransfer(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int64
	}{
		{"int64", int64(42), 42},
		{"float64", float64(1001), 1001}, // JWT载荷中的数值默认是float64
		{"string", "123", 123},
		{"unsupported", struct{}{}, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Transfer(c.in); got != c.want {
				t.Errorf("Transfer(%v) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}
