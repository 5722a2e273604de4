package rfc_test

import (
	"fmt"

	"github.com/katalvlaran/rainflow/rfc"
)

// A minimal end-to-end run: four classes, unit width, hysteresis below the
// series' unit step, one closed cycle, and a two-point residue.
func Example() {
	ctx, err := rfc.New(4, 1, 0, 0.5)
	if err != nil {
		panic(err)
	}
	defer ctx.Close()

	if err := ctx.Feed([]float64{1, 3, 2, 4}); err != nil {
		panic(err)
	}
	if err := ctx.Finalize(rfc.ResFullCycles); err != nil {
		panic(err)
	}

	fmt.Println(ctx.Matrix()[3][2])
	fmt.Println(ctx.Residue())
	// Output:
	// 1
	// []
}

// Splitting the same series across multiple Feed calls produces the same
// matrix and residue as feeding it in one call.
func Example_chunkingInvariance() {
	series := []float64{1, 3, 2, 4}

	whole, _ := rfc.New(4, 1, 0, 0.5)
	_ = whole.Feed(series)
	_ = whole.Finalize(rfc.ResNone)

	chunked, _ := rfc.New(4, 1, 0, 0.5)
	_ = chunked.Feed(series[:2])
	_ = chunked.Feed(series[2:])
	_ = chunked.Finalize(rfc.ResNone)

	fmt.Println(whole.Matrix()[3][2] == chunked.Matrix()[3][2])
	// Output:
	// true
}
