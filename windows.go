package slidez

import (
	"iter"
)

// Windows returns a lazy sequence of every contiguous overlapping window
// of exactly 'size' elements from seq, in source order. The first window
// holds elements 1..size, the second 2..size+1, and so on: window k
// contains source elements k..k+size-1 for as long as the source yields
// enough elements.
//
// Each emitted window is an independent copy; callers may retain or
// mutate it freely without affecting other windows. One source element is
// consumed per emitted window after the initial fill, so Windows works
// over infinite sources and stops pulling as soon as the consumer breaks
// out of the loop.
//
// A source shorter than 'size' produces zero windows; that is a valid
// empty result, not an error.
//
// When to use:
//   - Pairwise or n-wise comparison of adjacent elements
//   - Moving averages and rolling statistics over slices or streams
//   - N-gram extraction from token sequences
//   - Detecting local patterns that span adjacent elements
//
// Example:
//
//	windows, err := slidez.Windows(slices.Values([]string{"foo", "bar", "baz"}), 2)
//	if err != nil {
//		return err
//	}
//	for w := range windows {
//		fmt.Println(w)
//	}
//	// Output:
//	// [foo bar]
//	// [bar baz]
//
// Parameters:
//   - seq: source sequence; consumed lazily, never materialized
//   - size: number of elements per window (must be >= 1)
//
// Returns the window sequence, or ErrInvalidWindowSize when size < 1.
// Validation happens here, before the source is touched.
func Windows[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	return func(yield func([]T) bool) {
		buf := make([]T, 0, size)

		for v := range seq {
			buf = append(buf, v)
			if len(buf) < size {
				continue
			}

			// Emit a copy so later shifts never reach into windows the
			// consumer already holds.
			win := make([]T, size)
			copy(win, buf)
			if !yield(win) {
				return
			}

			copy(buf, buf[1:])
			buf = buf[:size-1]
		}
	}, nil
}

// TryWindows is Windows for fallible sources. It windows the error-free
// prefix of seq exactly like Windows; if the source yields an error, the
// error is passed through once (with a nil window) and iteration stops.
// Elements buffered before the error do not form a final short window.
//
// Example:
//
//	windows, err := slidez.TryWindows(readLines(r), 2)
//	if err != nil {
//		return err
//	}
//	for w, err := range windows {
//		if err != nil {
//			return err // the source's failure, unchanged
//		}
//		process(w)
//	}
//
// Returns the window sequence, or ErrInvalidWindowSize when size < 1.
func TryWindows[T any](seq iter.Seq2[T, error], size int) (iter.Seq2[[]T, error], error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	return func(yield func([]T, error) bool) {
		buf := make([]T, 0, size)

		for v, err := range seq {
			if err != nil {
				yield(nil, err)
				return
			}

			buf = append(buf, v)
			if len(buf) < size {
				continue
			}

			win := make([]T, size)
			copy(win, buf)
			if !yield(win, nil) {
				return
			}

			copy(buf, buf[1:])
			buf = buf[:size-1]
		}
	}, nil
}
