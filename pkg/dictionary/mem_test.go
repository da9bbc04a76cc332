//go:build test

package dictionary

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bastiangx/wordhunt/pkg/match"
)

const letters = "acdegilnorst"

// syntheticWords lists every two and three letter string over letters.
func syntheticWords() []string {
	var words []string
	for _, a := range letters {
		for _, b := range letters {
			words = append(words, string([]rune{a, b}))
		}
	}
	for _, a := range letters {
		for _, b := range letters {
			for _, c := range letters {
				words = append(words, string([]rune{a, b, c}))
			}
		}
	}
	return words
}

var clueSets = [][]string{
	{"c.t", "d.g"},
	{"s.n", "l.e", "t.o"},
	{".at", "do.", "g.t"},
	{"a.", ".o", "n.", "ti."},
}

var wordleClues = []struct{ template, somewhere, eliminated string }{
	{".a.", "t", "gr"},
	{"...", "ae", ""},
	{"s..", "oo", "dl"},
}

// query runs one mixed round of lookups.
func query(d *Dictionary, n int) int {
	solver := match.NewKeywordSolver(d.Words(), d)
	clues, _ := match.ParseClues(clueSets[n%len(clueSets)])
	sols, _ := solver.SolveAll(clues)

	w := wordleClues[n%len(wordleClues)]
	p, _ := match.Synthesize(match.ParseTemplate(w.template), w.somewhere, w.eliminated)
	found := match.Search(d.Words(), p, true)

	used := match.Using(d.Words(), match.NewCharset("cat"), 2, "a")
	return len(sols) + len(found) + len(used)
}

func TestMemoryLeakBasic(t *testing.T) {
	for _, iterCount := range []int{100, 500, 1000} {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			runBasicMemoryTest(t, iterCount)
		})
	}
}

func TestMemoryLeakConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 400},
		{workers: 4, iterationsPerWorker: 100},
		{workers: 8, iterationsPerWorker: 50},
	}
	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			runConcurrentMemoryTest(t, config.workers, config.iterationsPerWorker)
		})
	}
}

func heapDelta(baseline, final runtime.MemStats) int64 {
	return int64(final.Alloc) - int64(baseline.Alloc)
}

func runBasicMemoryTest(t *testing.T, iterations int) {
	d := New(syntheticWords())
	want := query(d, 0)

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	for i := 0; i < iterations; i++ {
		if got := query(d, i); i%(len(clueSets)*len(wordleClues)) == 0 && got != want {
			t.Fatalf("iteration %d: got %d results, want %d", i, got, want)
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	memDelta := heapDelta(baseline, final)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	memPerOp := float64(memDelta) / float64(iterations)

	t.Logf("iterations=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		iterations, memDelta, memPerOp, goroutineDelta)

	if memPerOp > 1000 {
		t.Errorf("excessive retained memory per operation: %.2f bytes", memPerOp)
	}
	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

func runConcurrentMemoryTest(t *testing.T, workers, iterationsPerWorker int) {
	memFile, err := os.Create("concurrent_memory.prof")
	if err != nil {
		t.Fatalf("profile file creation failed: %v", err)
	}
	defer func() {
		memFile.Close()
		os.Remove("concurrent_memory.prof")
	}()

	// The prefix index is built lazily by whichever worker gets there first.
	d := New(syntheticWords())

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	var (
		wg       sync.WaitGroup
		totalOps atomic.Int64
	)
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for iter := 0; iter < iterationsPerWorker; iter++ {
				query(d, worker+iter)
				totalOps.Add(1)
			}
		}(worker)
	}
	wg.Wait()

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	memDelta := heapDelta(baseline, final)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	memPerOp := float64(memDelta) / float64(totalOps.Load())

	t.Logf("workers=%d iter_per_worker=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		workers, iterationsPerWorker, totalOps.Load(), memDelta, memPerOp, goroutineDelta)

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		t.Errorf("heap profile write failed: %v", err)
	}
	// the first query builds the prefix index, which stays alive with d
	if memPerOp > 2000 {
		t.Errorf("excessive retained memory per operation: %.2f bytes", memPerOp)
	}
	if goroutineDelta > 3 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}
