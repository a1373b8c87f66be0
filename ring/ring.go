// SPDX-License-Identifier: EPL-2.0

package ring

import (
	"math/rand/v2"

	"github.com/ik5/pluck/utils"
)

// SeedAmplitude bounds the initial fill: values are drawn from [-SeedAmplitude, SeedAmplitude).
const SeedAmplitude = 0.5

// Buffer is a circular sequence of exactly Len() values.
// head indexes the oldest element; the newest sits just before it.
type Buffer[F utils.Float] struct {
	data []F
	head int
}

// New returns a buffer of length elements filled from rng.
func New[F utils.Float](length int, rng *rand.Rand) (*Buffer[F], error) {
	if length < 2 {
		return nil, ErrInvalidLength
	}

	data := make([]F, length)
	for i := range data {
		data[i] = F(rng.Float64() - SeedAmplitude)
	}

	return &Buffer[F]{data: data}, nil
}

// FromValues builds a buffer holding a copy of values, head first.
func FromValues[F utils.Float](values []F) (*Buffer[F], error) {
	if len(values) < 2 {
		return nil, ErrInvalidLength
	}

	data := make([]F, len(values))
	copy(data, values)

	return &Buffer[F]{data: data}, nil
}

func (b *Buffer[F]) Len() int { return len(b.data) }

// FirstTwo returns the two oldest values without changing the buffer.
func (b *Buffer[F]) FirstTwo() (F, F, error) {
	n := len(b.data)
	if n < 2 {
		return 0, 0, ErrUnderflow
	}

	second := b.head + 1
	if second == n {
		second = 0
	}

	return b.data[b.head], b.data[second], nil
}

// Step drops the head and appends v at the tail. The slot freed by the head
// is exactly where the new tail goes, so this is a single write.
func (b *Buffer[F]) Step(v F) {
	b.data[b.head] = v
	b.head++
	if b.head == len(b.data) {
		b.head = 0
	}
}

// Snapshot copies the contents into dst (grown if needed) from head to tail.
func (b *Buffer[F]) Snapshot(dst []F) []F {
	if cap(dst) < len(b.data) {
		dst = make([]F, len(b.data))
	}
	dst = dst[:len(b.data)]

	n := copy(dst, b.data[b.head:])
	copy(dst[n:], b.data[:b.head])

	return dst
}
