package slidez

import (
	"iter"
)

// Runs returns a lazy sequence that groups consecutive equal elements of
// seq into maximal runs, in source order. Each run is an independent
// non-empty slice; an empty source yields no runs. Unlike Windows, run
// lengths follow the data rather than a fixed size.
//
// Example:
//
//	for run := range slidez.Runs(slices.Values([]int{1, 1, 2, 3, 3, 3})) {
//		fmt.Println(run)
//	}
//	// Output:
//	// [1 1]
//	// [2]
//	// [3 3 3]
func Runs[T comparable](seq iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var run []T

		for v := range seq {
			if len(run) > 0 && run[len(run)-1] != v {
				if !yield(run) {
					return
				}
				run = nil
			}
			run = append(run, v)
		}

		if len(run) > 0 {
			yield(run)
		}
	}
}
