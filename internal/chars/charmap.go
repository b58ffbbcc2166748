package chars

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a range is empty or leaves the codepoint space.
var ErrInvalidRange = errors.New("invalid character range")

const denseSize = 0x100

type interval[T any] struct {
	from, to rune
	ref      T
}

// Map associates codepoint ranges with references.
// Latin-1 lives in a dense array; everything above is an ordered interval list
// searched newest first, so later assignments shadow earlier ones.
type Map[T any] struct {
	dense  [denseSize]T
	others []interval[T]
}

// NewMap returns an empty map.
func NewMap[T any]() *Map[T] {
	return &Map[T]{}
}

// Set assigns ref to every codepoint in [from, to].
func (m *Map[T]) Set(from, to rune, ref T) error {
	if from < 0 || to > MaxRune || from > to {
		return fmt.Errorf("%w: %#x..%#x", ErrInvalidRange, from, to)
	}
	for r := from; r < denseSize && r <= to; r++ {
		m.dense[r] = ref
	}
	if to >= denseSize {
		m.others = append(m.others, interval[T]{from: max(from, denseSize), to: to, ref: ref})
	}
	return nil
}

// Lookup returns the reference for r, or the zero value when nothing covers it.
func (m *Map[T]) Lookup(r rune) T {
	if r >= 0 && r < denseSize {
		return m.dense[r]
	}
	for i := len(m.others) - 1; i >= 0; i-- {
		iv := m.others[i]
		if r >= iv.from && r <= iv.to {
			return iv.ref
		}
	}
	var zero T
	return zero
}

// Clear drops every assignment.
func (m *Map[T]) Clear() {
	var zero T
	for i := range m.dense {
		m.dense[i] = zero
	}
	m.others = nil
}
