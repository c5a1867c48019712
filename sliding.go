package slidez

import (
	"context"
)

// Sliding emits every contiguous overlapping window of a fixed number of
// items from a channel. Unlike a chunker, consecutive windows share all
// but one item: each new input item produces a new window once the first
// window has filled.
type Sliding[T any] struct {
	name string
	size int
}

// NewSliding creates a processor that emits overlapping count-based
// windows. The first window is emitted after 'size' items have arrived;
// every subsequent item shifts the window by one and emits again. If the
// input closes before 'size' items arrive, nothing is emitted — there is
// no partial trailing window.
//
// When to use:
//   - Rolling computations over live channel data
//   - Comparing each item against its immediate predecessors
//   - Feeding fixed-width model inputs from an event stream
//
// Example:
//
//	sliding, err := slidez.NewSliding[float64](10)
//	if err != nil {
//		return err
//	}
//
//	windows := sliding.Process(ctx, prices)
//	for w := range windows {
//		// w always holds the 10 most recent prices, oldest first
//		emitMovingAverage(avg(w))
//	}
//
// Parameters:
//   - size: Number of items per window (must be >= 1)
//
// Returns a new Sliding processor, or ErrInvalidWindowSize when size < 1.
func NewSliding[T any](size int) (*Sliding[T], error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	return &Sliding[T]{
		size: size,
		name: "sliding",
	}, nil
}

func (s *Sliding[T]) Process(ctx context.Context, in <-chan T) <-chan []T {
	out := make(chan []T)

	go func() {
		defer close(out)

		buf := make([]T, 0, s.size)

		for item := range in {
			buf = append(buf, item)
			if len(buf) < s.size {
				continue
			}

			win := make([]T, s.size)
			copy(win, buf)

			select {
			case out <- win:
			case <-ctx.Done():
				return
			}

			copy(buf, buf[1:])
			buf = buf[:s.size-1]
		}
	}()

	return out
}

func (s *Sliding[T]) Name() string {
	return s.name
}
