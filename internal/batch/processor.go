package batch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"skyrim-pbrgen/internal/export"
)

// Config holds the shared resources for a batch run.
type Config struct {
	Planner *export.Planner
	Workers int
}

// Run pushes every job through the planner on a worker pool. Results
// line up with jobs by index. A canceled context stops feeding the
// pool; jobs that never reached a worker report the context error.
func Run(ctx context.Context, cfg Config, jobs []export.Job) []export.Result {
	total := len(jobs)
	results := make([]export.Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f textures/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = cfg.Planner.Run(ctx, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
send:
	for i := range jobs {
		select {
		case jobChan <- i:
		case <-ctx.Done():
			break send
		}
	}
	close(jobChan)

	wg.Wait()
	close(done)

	// Jobs that never started still need a terminal state.
	for i := range results {
		if results[i].State == export.StateIdle {
			results[i] = export.Result{
				Source: jobs[i].Source,
				State:  export.StateFailed,
				Err:    ctx.Err(),
			}
		}
	}

	return results
}
