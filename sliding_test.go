package slidez

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestSliding(t *testing.T) {
	ctx := context.Background()
	in := make(chan int)

	sliding, err := NewSliding[int](3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sliding.Process(ctx, in)

	go func() {
		for i := 0; i < 10; i++ {
			in <- i
		}
		close(in)
	}()

	windows := [][]int{}
	for w := range out {
		windows = append(windows, w)
	}

	if len(windows) != 8 {
		t.Errorf("expected 8 windows, got %d", len(windows))
	}

	if !slices.Equal(windows[0], []int{0, 1, 2}) {
		t.Errorf("expected first window [0 1 2], got %v", windows[0])
	}
	if !slices.Equal(windows[7], []int{7, 8, 9}) {
		t.Errorf("expected last window [7 8 9], got %v", windows[7])
	}

	for i := 1; i < len(windows); i++ {
		if windows[i][0] != windows[i-1][1] {
			t.Errorf("window %d does not overlap its predecessor: %v after %v", i, windows[i], windows[i-1])
		}
	}
}

func TestSlidingShortInput(t *testing.T) {
	ctx := context.Background()
	in := make(chan int)

	sliding, err := NewSliding[int](5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sliding.Process(ctx, in)

	go func() {
		in <- 1
		in <- 2
		close(in)
	}()

	windows := [][]int{}
	for w := range out {
		windows = append(windows, w)
	}

	if len(windows) != 0 {
		t.Errorf("expected no windows from short input, got %v", windows)
	}
}

func TestSlidingSizeOne(t *testing.T) {
	ctx := context.Background()
	in := make(chan string)

	sliding, err := NewSliding[string](1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sliding.Process(ctx, in)

	go func() {
		in <- "a"
		in <- "b"
		close(in)
	}()

	windows := [][]string{}
	for w := range out {
		windows = append(windows, w)
	}

	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	if !slices.Equal(windows[0], []string{"a"}) || !slices.Equal(windows[1], []string{"b"}) {
		t.Errorf("unexpected windows: %v", windows)
	}
}

func TestSlidingInvalidSize(t *testing.T) {
	sliding, err := NewSliding[int](0)
	if !errors.Is(err, ErrInvalidWindowSize) {
		t.Errorf("expected ErrInvalidWindowSize, got %v", err)
	}
	if sliding != nil {
		t.Error("expected nil processor on error")
	}
}

func TestSlidingName(t *testing.T) {
	sliding, err := NewSliding[int](2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sliding.Name() != "sliding" {
		t.Errorf("expected name 'sliding', got %q", sliding.Name())
	}
}
