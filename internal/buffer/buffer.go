// Package buffer owns the LogBuffer sequence primitive.
//
// Ownership boundary:
// - growable int64 sequence
// - explicit deep copy (Clone) and ownership transfer (Take)
package buffer

import (
	"errors"
	"slices"
)

var ErrIndexOutOfRange = errors.New("buffer: index out of range")

// LogBuffer is a growable int64 sequence. The zero value is ready to use.
//
// Copying the struct aliases the backing storage; use Clone for an
// independent copy and Take to move contents out.
type LogBuffer struct {
	data []int64
}

// New returns a buffer with preallocated capacity.
func New(capacity int) *LogBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &LogBuffer{data: make([]int64, 0, capacity)}
}

// Append adds values to the end of the buffer.
func (b *LogBuffer) Append(vs ...int64) {
	b.data = append(b.data, vs...)
}

// Len returns the number of stored values.
func (b *LogBuffer) Len() int {
	return len(b.data)
}

// At returns the value at index i.
func (b *LogBuffer) At(i int) (int64, error) {
	if i < 0 || i >= len(b.data) {
		return 0, ErrIndexOutOfRange
	}
	return b.data[i], nil
}

// Values returns a snapshot of the contents. The result never aliases
// internal storage.
func (b *LogBuffer) Values() []int64 {
	out := make([]int64, len(b.data))
	copy(out, b.data)
	return out
}

// Clone returns an independent buffer with equal contents.
func (b *LogBuffer) Clone() *LogBuffer {
	return &LogBuffer{data: slices.Clone(b.data)}
}

// Take transfers ownership of the backing contents to the caller and
// leaves the buffer empty and usable. An empty buffer yields an empty
// non-nil slice.
func (b *LogBuffer) Take() []int64 {
	out := b.data
	if out == nil {
		out = []int64{}
	}
	b.data = nil
	return out
}

// Reset drops all contents, keeping allocated capacity.
func (b *LogBuffer) Reset() {
	b.data = b.data[:0]
}
