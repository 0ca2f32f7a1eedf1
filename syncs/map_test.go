package syncs

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestMap(t *testing.T) {
	var running, peak atomic.Int32
	items := []int{5, 4, 3, 2, 1, 0, 1, 2}
	results := Map(items, 3, func(n int) int {
		cur := running.Add(1)
		defer running.Add(-1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(time.Millisecond * time.Duration(n))
		return n * 10
	})
	for i, n := range items {
		if results[i] != n*10 {
			t.Fatalf("got %v", results)
		}
	}
	if peak.Load() > 3 {
		t.Fatalf("got %d", peak.Load())
	}

	if results := Map(nil, 0, func(int) int { return 1 }); len(results) != 0 {
		t.Fatalf("got %v", results)
	}
}
