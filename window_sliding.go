package slidez

import (
	"context"
	"time"
)

// SlidingWindow groups items into overlapping time-based windows. Where
// Sliding bounds windows by item count, SlidingWindow bounds them by
// duration: each window covers a fixed time span, and new windows open
// at every slide interval.
type SlidingWindow[T any] struct {
	name  string
	clock Clock
	size  time.Duration
	slide time.Duration
}

// NewSlidingWindow creates a processor that groups items into
// overlapping time windows of the given duration. By default the slide
// interval equals the size (tumbling behavior); use WithSlide for
// overlapping windows. The clock drives window boundaries — pass
// RealClock in production and a fake clock in tests.
//
// When to use:
//   - Computing rolling averages or moving statistics over time
//   - Real-time dashboards with continuous updates
//   - Detecting patterns that might span window boundaries
//
// Example:
//
//	// 5-minute windows sliding every minute
//	window := slidez.NewSlidingWindow[Metric](5*time.Minute, slidez.RealClock).
//		WithSlide(time.Minute)
//
//	windows := window.Process(ctx, metrics)
//	for w := range windows {
//		avg := calculateAverage(w.Items)
//		fmt.Printf("Rolling avg [%s-%s]: %.2f\n",
//			w.Start.Format("15:04"),
//			w.End.Format("15:04"),
//			avg)
//	}
//
// Parameters:
//   - size: Duration of each window (must be > 0)
//   - clock: Clock interface for time operations
//
// Returns a new SlidingWindow processor.
func NewSlidingWindow[T any](size time.Duration, clock Clock) *SlidingWindow[T] {
	return &SlidingWindow[T]{
		size:  size,
		slide: size,
		clock: clock,
		name:  "sliding-window",
	}
}

// WithSlide sets the interval at which new windows open. A slide smaller
// than the window size makes consecutive windows overlap; equal to the
// size, windows tumble. Returns the processor for chaining.
func (w *SlidingWindow[T]) WithSlide(slide time.Duration) *SlidingWindow[T] {
	w.slide = slide
	return w
}

func (w *SlidingWindow[T]) Process(ctx context.Context, in <-chan T) <-chan Window[T] {
	out := make(chan Window[T])

	go func() {
		defer close(out)

		ticker := w.clock.NewTicker(w.slide)
		defer ticker.Stop()

		windows := make(map[time.Time]*Window[T])

		for {
			select {
			case <-ctx.Done():
				return

			case item, ok := <-in:
				if !ok {
					for _, window := range windows {
						out <- *window
					}
					return
				}

				now := w.clock.Now()
				windowStart := now.Truncate(w.slide)

				for start := windowStart; start.After(now.Add(-w.size)); start = start.Add(-w.slide) {
					if _, exists := windows[start]; !exists {
						windows[start] = &Window[T]{
							Items: []T{},
							Start: start,
							End:   start.Add(w.size),
						}
					}
					windows[start].Items = append(windows[start].Items, item)
				}

			case <-ticker.C():
				now := w.clock.Now()
				for start, window := range windows {
					if window.End.Before(now) {
						out <- *window
						delete(windows, start)
					}
				}
			}
		}
	}()

	return out
}

func (w *SlidingWindow[T]) Name() string {
	return w.name
}
