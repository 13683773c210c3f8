package physics

import (
	"math"
	"runtime"
	"sync"
)

// parallelThreshold is the body count below which the serial pass is
// always cheaper than spawning workers.
const parallelThreshold = 64

// ParallelAccelerations computes the same accelerations as Accelerations
// using up to workers goroutines. Rows are dealt to workers in strides
// and each worker accumulates into a private buffer; the buffers are
// merged in worker index order, so the result is deterministic for a
// fixed body ordering and worker count (though the floating-point
// accumulation order differs from the serial pass, so comparisons
// against it need a tolerance). workers <= 0 means GOMAXPROCS.
func ParallelAccelerations(bodies []*Body, workers int) {
	n := len(bodies)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || n < parallelThreshold {
		Accelerations(bodies)
		return
	}
	if workers > n {
		workers = n
	}

	partials := make([][]Vec2, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			acc := make([]Vec2, n)
			for i := w; i < n; i += workers {
				bi := bodies[i]
				for j := i + 1; j < n; j++ {
					bj := bodies[j]
					d := bj.Pos.Sub(bi.Pos)
					r2 := d.NormSq()
					r := math.Sqrt(r2) + Softening
					fv := d.Scale(G * bi.Mass * bj.Mass / r2 / r)
					acc[i] = acc[i].Add(fv.Scale(1 / bi.Mass))
					acc[j] = acc[j].Sub(fv.Scale(1 / bj.Mass))
				}
			}
			partials[w] = acc
		}(w)
	}
	wg.Wait()

	for i, b := range bodies {
		b.Acc = Vec2{}
		for w := 0; w < workers; w++ {
			b.Acc = b.Acc.Add(partials[w][i])
		}
	}
}
