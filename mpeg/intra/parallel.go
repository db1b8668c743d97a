package intra

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// EncodeSlices codes independent slices, each from reset predictors.
// Slices are claimed by up to SliceParallelism workers; macroblocks inside
// a slice stay sequential because they share one DC chain per plane.
// The error of the lowest failing slice is returned.
func (enc *Encoder) EncodeSlices(slices [][]Samples) ([][]*Macroblock, error) {
	out := make([][]*Macroblock, len(slices))

	numWorkers := enc.parallelism
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(slices) {
		numWorkers = len(slices)
	}

	if numWorkers <= 1 {
		for i := range slices {
			mbs, err := enc.EncodeSlice(slices[i])
			if err != nil {
				return nil, fmt.Errorf("slice %d: %w", i, err)
			}
			out[i] = mbs
		}
		return out, nil
	}

	errs := make([]error, len(slices))
	var nextSlice atomic.Int32
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(nextSlice.Add(1)) - 1
				if i >= len(slices) {
					return
				}
				out[i], errs[i] = enc.EncodeSlice(slices[i])
			}
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("slice %d: %w", i, err)
		}
	}

	return out, nil
}
