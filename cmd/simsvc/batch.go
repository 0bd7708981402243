package main

import (
	"sync"

	"strandsim/internal/arena"
	"strandsim/internal/combat"
)

type batchStats struct {
	SumT      float64
	Ultimates map[string]int
	Survived  map[combat.Name]int
}

// runBatch spreads n runs over the workers. Run i is seeded base+i, so the
// totals only depend on base and n.
func runBatch(n, workers int, base int64, run func(seed int64) arena.SimResult) batchStats {
	st := batchStats{Ultimates: map[string]int{}, Survived: map[combat.Name]int{}}
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res := run(base + int64(i))

				mu.Lock()
				st.SumT += res.Duration
				for k, v := range res.Ultimates {
					st.Ultimates[k] += v
				}
				for _, name := range res.Survivors {
					st.Survived[name]++
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return st
}
