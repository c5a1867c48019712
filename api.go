// Package slidez provides lazy sliding-window transformations over
// sequences: every contiguous overlapping run of n elements from an
// ordered source, in source order, without materializing the source.
//
// The core surface is built on Go iterators (iter.Seq), so windowed
// sequences compose with range-over-func loops, slices.Collect, and any
// iter-based combinator:
//
//	windows, err := slidez.Windows(slices.Values(data), 3)
//	if err != nil {
//		return err
//	}
//	for w := range windows {
//		fmt.Println(w) // [d0 d1 d2], [d1 d2 d3], ...
//	}
//
// Callers that prefer explicit stepping use the Windower pull adapter:
//
//	w, err := slidez.New(source, 3)
//	if err != nil {
//		return err
//	}
//	defer w.Stop()
//	for win, ok := w.Next(); ok; win, ok = w.Next() {
//		process(win)
//	}
//
// The package also provides:
//   - Count-based overlapping windows over channels (Sliding)
//   - Duration-based overlapping windows over channels (SlidingWindow)
//   - Consecutive equal-element grouping (Runs)
//
// Every emitted window is an independent copy. Mutating a window a
// consumer has received never changes any other window or the adapter's
// internal state.
package slidez

import (
	"context"
)

// Processor is the interface for the channel-based processors in this
// package. It transforms an input channel of type In to an output channel
// of type Out. Processors should:
//   - Close the output channel when the input channel is closed
//   - Respect context cancellation
//   - Be safe for concurrent use
type Processor[In, Out any] interface {
	// Process transforms the input channel to an output channel.
	// It should close the output channel when processing is complete.
	Process(ctx context.Context, in <-chan In) <-chan Out

	// Name returns a descriptive name for the processor, useful for debugging.
	Name() string
}
