// Package trail keeps bounded position histories for rendering. The
// physics never reads a trail; it exists so a renderer can draw where a
// body has been without the simulation growing without bound.
package trail

import "github.com/san-kum/gravlab/internal/physics"

// Buffer is a fixed-capacity ring of position samples. Recording past
// capacity overwrites the oldest sample in place; nothing reallocates
// per insert. Capacity must be non-negative; a zero-capacity buffer
// records nothing.
type Buffer struct {
	buf  []physics.Vec2
	head int
	size int
}

func New(capacity int) *Buffer {
	return &Buffer{buf: make([]physics.Vec2, capacity)}
}

func (b *Buffer) Cap() int { return len(b.buf) }
func (b *Buffer) Len() int { return b.size }

// Record appends one sample, dropping the oldest when full.
func (b *Buffer) Record(p physics.Vec2) {
	if len(b.buf) == 0 {
		return
	}
	b.buf[b.head] = p
	b.head = (b.head + 1) % len(b.buf)
	if b.size < len(b.buf) {
		b.size++
	}
}

// Samples returns the retained samples oldest first, as a copy.
func (b *Buffer) Samples() []physics.Vec2 {
	out := make([]physics.Vec2, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.buf[(b.head-b.size+i+len(b.buf))%len(b.buf)]
	}
	return out
}

// Resize changes the capacity. Shrinking keeps the most recent samples;
// the oldest are dropped first.
func (b *Buffer) Resize(capacity int) {
	kept := b.Samples()
	if len(kept) > capacity {
		kept = kept[len(kept)-capacity:]
	}
	b.buf = make([]physics.Vec2, capacity)
	b.head, b.size = 0, 0
	for _, p := range kept {
		b.Record(p)
	}
}
