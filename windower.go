package slidez

import (
	"iter"
)

// windowerState tracks the adapter's position in its lifecycle.
type windowerState int

const (
	// unprimed: the buffer has not yet been filled to size.
	unprimed windowerState = iota
	// active: the buffer holds exactly size elements from a prior step.
	active
	// exhausted: the source ended; terminal, the source is never re-pulled.
	exhausted
)

// Windower is the explicit pull form of Windows: a stateful adapter that
// produces one window per Next call instead of driving a range loop.
// It owns exclusive access to its source for its lifetime — no other
// consumer may pull from the wrapped sequence while the Windower is live.
//
// A Windower is not safe for concurrent use; callers that share one
// across goroutines must serialize Next themselves. There is no reset:
// to restart, construct a new Windower over a fresh source.
type Windower[T any] struct {
	pull  func() (T, bool)
	stop  func()
	buf   []T
	size  int
	state windowerState
}

// New creates a Windower of the given window size over seq.
//
// When to use:
//   - Interleaving window consumption with other control flow
//   - Pulling a bounded number of windows from an unbounded source
//   - Driving iteration from code that cannot use a range loop
//
// Example:
//
//	w, err := slidez.New(sensorReadings, 5)
//	if err != nil {
//		return err
//	}
//	defer w.Stop()
//
//	for win, ok := w.Next(); ok; win, ok = w.Next() {
//		if alarming(win) {
//			break // Stop releases the source
//		}
//	}
//
// Parameters:
//   - seq: source sequence; held exclusively until Stop or exhaustion
//   - size: number of elements per window (must be >= 1)
//
// Returns a new Windower, or ErrInvalidWindowSize when size < 1. The
// source is not pulled until the first Next call.
func New[T any](seq iter.Seq[T], size int) (*Windower[T], error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	pull, stop := iter.Pull(seq)
	return &Windower[T]{
		pull: pull,
		stop: stop,
		buf:  make([]T, 0, size),
		size: size,
	}, nil
}

// Next produces the next window, or ok=false once the source can no
// longer supply a complete window. The first call pulls size elements to
// prime the buffer; every later call pulls exactly one element and
// evicts the oldest. Exhaustion is terminal: after Next returns false it
// returns false forever and never touches the source again.
//
// The returned slice is an independent copy owned by the caller.
func (w *Windower[T]) Next() ([]T, bool) {
	switch w.state {
	case exhausted:
		return nil, false

	case unprimed:
		for len(w.buf) < w.size {
			v, ok := w.pull()
			if !ok {
				w.exhaust()
				return nil, false
			}
			w.buf = append(w.buf, v)
		}
		w.state = active

	case active:
		v, ok := w.pull()
		if !ok {
			w.exhaust()
			return nil, false
		}
		copy(w.buf, w.buf[1:])
		w.buf[w.size-1] = v
	}

	win := make([]T, w.size)
	copy(win, w.buf)
	return win, true
}

// All returns the remaining windows as an iter.Seq, so a partially
// stepped Windower can hand off to a range loop or any iter combinator.
// The source is released when the loop finishes or breaks.
func (w *Windower[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		defer w.Stop()
		for win, ok := w.Next(); ok; win, ok = w.Next() {
			if !yield(win) {
				return
			}
		}
	}
}

// Size returns the fixed window size set at construction.
func (w *Windower[T]) Size() int {
	return w.size
}

// Stop releases the underlying source. Calling Next afterward returns
// false. Stop is idempotent and safe to defer alongside normal
// exhaustion.
func (w *Windower[T]) Stop() {
	if w.state != exhausted {
		w.exhaust()
	}
}

func (w *Windower[T]) exhaust() {
	w.state = exhausted
	w.buf = nil
	w.stop()
}
