package syncs

import "sync"

// Map calls fn on every item, at most limit calls at a time, and returns the
// results in item order.
func Map[T, R any](items []T, limit int, fn func(T) R) []R {
	results := make([]R, len(items))
	slots := make(chan struct{}, max(limit, 1))
	var wg sync.WaitGroup
	for i, item := range items {
		slots <- struct{}{}
		wg.Go(func() {
			defer func() {
				<-slots
			}()
			results[i] = fn(item)
		})
	}
	wg.Wait()
	return results
}
