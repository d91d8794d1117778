package taitape

import (
	"errors"
	"fmt"
)

var ErrLimitExceeded = errors.New("tape limit exceeded")

// ChunkID is a handle into the chunk arena of one Tape.
type ChunkID int

// noChunk marks an unallocated edge. Handle 0 is never allocated.
const noChunk ChunkID = 0

type chunk struct {
	cells []byte
	prev  ChunkID
	next  ChunkID
}

type Tape struct {
	config Config
	chunks []*chunk
	first  ChunkID
	last   ChunkID
	cur    ChunkID
	offset int
	total  int
}

func New(config Config) (*Tape, error) {
	config = config.withDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	t := &Tape{
		config: config,
		chunks: make([]*chunk, 1, 8),
	}
	id := t.alloc(config.InitialCells)
	t.first = id
	t.last = id
	t.cur = id
	t.offset = config.InitialCells / 2
	return t, nil
}

func (t *Tape) alloc(size int) ChunkID {
	id := ChunkID(len(t.chunks))
	t.chunks = append(t.chunks, &chunk{
		cells: make([]byte, size),
	})
	t.total += size
	return id
}

// Current returns the address of the cell under the cursor.
// Cell storage is never moved, so the pointer stays valid until Release.
func (t *Tape) Current() *byte {
	return &t.chunks[t.cur].cells[t.offset]
}

func (t *Tape) Read() byte {
	return t.chunks[t.cur].cells[t.offset]
}

func (t *Tape) Write(b byte) {
	t.chunks[t.cur].cells[t.offset] = b
}

// Step moves the cursor count cells in dir, growing the tape as needed.
// On failure the cursor stays where the last successful unit step left it.
func (t *Tape) Step(dir Direction, count int) error {
	for range count {
		if err := t.step(dir); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tape) step(dir Direction) error {
	c := t.chunks[t.cur]
	switch dir {

	case Right:
		if t.offset+1 < len(c.cells) {
			t.offset++
			return nil
		}
		if c.next == noChunk {
			if err := t.grow(Right); err != nil {
				return err
			}
		}
		t.cur = c.next
		t.offset = 0

	case Left:
		if t.offset > 0 {
			t.offset--
			return nil
		}
		if c.prev == noChunk {
			if err := t.grow(Left); err != nil {
				return err
			}
		}
		t.cur = c.prev
		t.offset = len(t.chunks[t.cur].cells) - 1

	default:
		return fmt.Errorf("bad direction: %d", dir)
	}
	return nil
}

func (t *Tape) grow(dir Direction) error {
	remaining := t.config.MaxCells - t.total
	if remaining <= 0 {
		return fmt.Errorf("grow %s at %d of %d cells: %w", dir, t.total, t.config.MaxCells, ErrLimitExceeded)
	}
	id := t.alloc(min(t.config.GrowCells, remaining))
	c := t.chunks[id]
	switch dir {
	case Right:
		c.prev = t.last
		t.chunks[t.last].next = id
		t.last = id
	case Left:
		c.next = t.first
		t.chunks[t.first].prev = id
		t.first = id
	}
	return nil
}

// Release drops every chunk exactly once, walking from the leftmost chunk.
// It returns the number of chunks released.
func (t *Tape) Release() int {
	n := 0
	for id := t.first; id != noChunk; {
		c := t.chunks[id]
		next := c.next
		c.cells = nil
		t.chunks[id] = nil
		n++
		id = next
	}
	t.chunks = nil
	t.first = noChunk
	t.last = noChunk
	t.cur = noChunk
	t.offset = 0
	t.total = 0
	return n
}

func (t *Tape) Total() int {
	return t.total
}

func (t *Tape) Limit() int {
	return t.config.MaxCells
}

func (t *Tape) Chunks() int {
	n := 0
	for id := t.first; id != noChunk; id = t.chunks[id].next {
		n++
	}
	return n
}

// Position is the cursor offset counted from the leftmost allocated cell.
func (t *Tape) Position() int {
	pos := 0
	for id := t.first; id != t.cur; id = t.chunks[id].next {
		pos += len(t.chunks[id].cells)
	}
	return pos + t.offset
}

// Cells returns a copy of all allocated cells, left to right.
func (t *Tape) Cells() []byte {
	ret := make([]byte, 0, t.total)
	for id := t.first; id != noChunk; id = t.chunks[id].next {
		ret = append(ret, t.chunks[id].cells...)
	}
	return ret
}
