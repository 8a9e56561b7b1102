// Package source holds the character-indexed buffer a scan runs over.
package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Buffer is an immutable view of one source text, indexed by character
// rather than by byte so that lookahead positions stay stable across
// multi-byte characters. It is built once and never mutated.
type Buffer struct {
	runes []rune
	size  uint32
}

// NewBuffer decodes text into a rune-indexed buffer.
func NewBuffer(text string) *Buffer {
	runes := []rune(text)
	size, err := safecast.Conv[uint32](len(runes))
	if err != nil {
		panic(fmt.Errorf("source buffer length overflow: %w", err))
	}
	return &Buffer{runes: runes, size: size}
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() uint32 {
	return b.size
}

// At returns the character at position i. The caller keeps i < Len().
func (b *Buffer) At(i uint32) rune {
	return b.runes[i]
}

// Slice returns the exact source substring for the half-open range
// [start, end) in character positions.
func (b *Buffer) Slice(start, end uint32) string {
	return string(b.runes[start:end])
}
