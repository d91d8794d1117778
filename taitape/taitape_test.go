package taitape

import (
	"bytes"
	"errors"
	"testing"
)

func newTape(t *testing.T, config Config) *Tape {
	t.Helper()
	tape, err := New(config)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		tape.Release()
	})
	return tape
}

func TestNew(t *testing.T) {
	tape := newTape(t, Config{})
	if tape.Total() != DefaultInitialCells {
		t.Fatalf("got %v", tape.Total())
	}
	if tape.Limit() != DefaultMaxCells {
		t.Fatalf("got %v", tape.Limit())
	}
	if tape.Position() != DefaultInitialCells/2 {
		t.Fatalf("got %v", tape.Position())
	}
	if tape.Chunks() != 1 {
		t.Fatalf("got %v", tape.Chunks())
	}
	if tape.Read() != 0 {
		t.Fatal()
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		config Config
		ok     bool
	}{
		{"defaults", Config{}, true},
		{"exact", Config{InitialCells: 8, MaxCells: 8, GrowCells: 1}, true},
		{"initial over max", Config{InitialCells: 16, MaxCells: 8}, false},
		{"negative initial", Config{InitialCells: -1}, false},
		{"negative grow", Config{GrowCells: -1}, false},
		{"negative max", Config{MaxCells: -1}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.config)
			if tc.ok && err != nil {
				t.Fatalf("got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("should error")
			}
		})
	}
}

func TestReadWrite(t *testing.T) {
	tape := newTape(t, Config{InitialCells: 4})
	tape.Write(42)
	if tape.Read() != 42 {
		t.Fatal()
	}
	if *tape.Current() != 42 {
		t.Fatal()
	}

	*tape.Current() = 255
	*tape.Current()++
	if tape.Read() != 0 {
		t.Fatalf("got %v", tape.Read())
	}
	*tape.Current()--
	if tape.Read() != 255 {
		t.Fatalf("got %v", tape.Read())
	}
}

func TestStepRoundTrip(t *testing.T) {
	tape := newTape(t, Config{InitialCells: 8, MaxCells: 1000, GrowCells: 8})
	for i := range 8 {
		if err := tape.Step(Right, 1); err != nil {
			t.Fatal(err)
		}
		tape.Write(byte(i + 1))
	}
	if err := tape.Step(Left, 8); err != nil {
		t.Fatal(err)
	}

	start := tape.Current()
	*start = 99
	before := tape.Cells()

	for _, n := range []int{1, 7, 30, 100} {
		if err := tape.Step(Right, n); err != nil {
			t.Fatal(err)
		}
		if err := tape.Step(Left, n); err != nil {
			t.Fatal(err)
		}
		if tape.Current() != start {
			t.Fatalf("n=%d: cursor moved", n)
		}
		if tape.Read() != 99 {
			t.Fatalf("got %v", tape.Read())
		}
		if got := tape.Cells(); !bytes.Equal(got[:len(before)], before) {
			t.Fatalf("n=%d: got %v", n, got)
		}
	}
}

func TestGrowRight(t *testing.T) {
	tape := newTape(t, Config{InitialCells: 4, MaxCells: 100, GrowCells: 4})
	// cursor at 2 of [0,4)
	if err := tape.Step(Right, 1); err != nil {
		t.Fatal(err)
	}
	if tape.Chunks() != 1 {
		t.Fatalf("got %v", tape.Chunks())
	}
	if err := tape.Step(Right, 1); err != nil {
		t.Fatal(err)
	}
	if tape.Chunks() != 2 {
		t.Fatalf("got %v", tape.Chunks())
	}
	if tape.Total() != 8 {
		t.Fatalf("got %v", tape.Total())
	}
	if tape.Position() != 4 {
		t.Fatalf("got %v", tape.Position())
	}
}

func TestGrowLeft(t *testing.T) {
	tape := newTape(t, Config{InitialCells: 4, MaxCells: 100, GrowCells: 4})
	tape.Write(7)
	if err := tape.Step(Left, 2); err != nil {
		t.Fatal(err)
	}
	if tape.Position() != 0 || tape.Chunks() != 1 {
		t.Fatalf("got %v %v", tape.Position(), tape.Chunks())
	}
	if err := tape.Step(Left, 1); err != nil {
		t.Fatal(err)
	}
	if tape.Chunks() != 2 {
		t.Fatalf("got %v", tape.Chunks())
	}
	// the new chunk is spliced in front, the cursor is on its last cell
	if tape.Position() != 3 {
		t.Fatalf("got %v", tape.Position())
	}
	cells := tape.Cells()
	if len(cells) != 8 || cells[6] != 7 {
		t.Fatalf("got %v", cells)
	}
	if err := tape.Step(Right, 3); err != nil {
		t.Fatal(err)
	}
	if tape.Read() != 7 {
		t.Fatal()
	}
}

func TestGrowthBoundary(t *testing.T) {
	tape := newTape(t, Config{InitialCells: 4, MaxCells: 10, GrowCells: 4})

	// 2 -> 9 touches every cell up to the limit: 4 + 4 + 2
	if err := tape.Step(Right, 7); err != nil {
		t.Fatal(err)
	}
	if tape.Total() != 10 {
		t.Fatalf("got %v", tape.Total())
	}
	if tape.Position() != 9 {
		t.Fatalf("got %v", tape.Position())
	}
	tape.Write(1)

	err := tape.Step(Right, 1)
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("got %v", err)
	}
	if tape.Position() != 9 || tape.Read() != 1 {
		t.Fatalf("cursor moved: %v", tape.Position())
	}
	if tape.Total() != 10 {
		t.Fatalf("got %v", tape.Total())
	}

	// the left edge is at the limit too
	err = tape.Step(Left, 10)
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("got %v", err)
	}
	if tape.Position() != 0 {
		t.Fatalf("got %v", tape.Position())
	}
}

func TestPartialStep(t *testing.T) {
	tape := newTape(t, Config{InitialCells: 4, MaxCells: 10, GrowCells: 4})
	err := tape.Step(Right, 100)
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("got %v", err)
	}
	// stopped at the last reachable cell, not rolled back
	if tape.Position() != 9 {
		t.Fatalf("got %v", tape.Position())
	}
}

func TestPointerStability(t *testing.T) {
	tape := newTape(t, Config{InitialCells: 2, MaxCells: 1 << 16, GrowCells: 2})
	p := tape.Current()
	*p = 5
	if err := tape.Step(Right, 1000); err != nil {
		t.Fatal(err)
	}
	if err := tape.Step(Left, 2000); err != nil {
		t.Fatal(err)
	}
	if *p != 5 {
		t.Fatalf("got %v", *p)
	}
	if err := tape.Step(Right, 1000); err != nil {
		t.Fatal(err)
	}
	if tape.Current() != p {
		t.Fatal("pointer changed")
	}
}

func TestRelease(t *testing.T) {
	tape, err := New(Config{InitialCells: 4, MaxCells: 100, GrowCells: 4})
	if err != nil {
		t.Fatal(err)
	}
	if err := tape.Step(Right, 10); err != nil {
		t.Fatal(err)
	}
	if err := tape.Step(Left, 20); err != nil {
		t.Fatal(err)
	}
	chunks := tape.Chunks()
	if n := tape.Release(); n != chunks {
		t.Fatalf("got %v, want %v", n, chunks)
	}
	if n := tape.Release(); n != 0 {
		t.Fatalf("got %v", n)
	}
	if tape.Total() != 0 {
		t.Fatal()
	}

	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	tape.Read()
}

func TestIndependentTapes(t *testing.T) {
	a := newTape(t, Config{InitialCells: 2, MaxCells: 4, GrowCells: 2})
	b := newTape(t, Config{InitialCells: 2, MaxCells: 4, GrowCells: 2})
	if err := a.Step(Right, 2); err != nil {
		t.Fatal(err)
	}
	a.Write(1)
	if b.Total() != 2 || b.Read() != 0 {
		t.Fatal()
	}
}

func TestDirectionString(t *testing.T) {
	if Left.String() != "left" || Right.String() != "right" {
		t.Fatal()
	}
	if Direction(0).String() != "unknown" {
		t.Fatal()
	}
	tape := newTape(t, Config{})
	if err := tape.Step(Direction(0), 1); err == nil {
		t.Fatal("should error")
	}
}

func BenchmarkStep(b *testing.B) {
	tape, err := New(Config{MaxCells: 1 << 20})
	if err != nil {
		b.Fatal(err)
	}
	defer tape.Release()
	b.ResetTimer()
	for range b.N {
		if err := tape.Step(Right, 1000); err != nil {
			b.Fatal(err)
		}
		if err := tape.Step(Left, 1000); err != nil {
			b.Fatal(err)
		}
	}
}
