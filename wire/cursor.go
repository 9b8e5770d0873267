// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// Cursor is a forward-only read position over a contiguous byte
// buffer. It is supplied by the caller per decode operation and
// shared by every nested decode call within it; bytes are consumed
// sequentially and never revisited. A Cursor does not copy the
// underlying buffer — slices returned by Take alias it.
type Cursor struct {
	data     []byte
	position int
}

// NewCursor returns a cursor reading from the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.position
}

// Position returns the number of bytes consumed so far. Useful in
// error reports and tests that assert exact consumption.
func (c *Cursor) Position() int {
	return c.position
}

// Take consumes and returns the next n bytes. The returned slice
// aliases the cursor's buffer and must not be modified. Fails with
// ErrUnexpectedEnd if fewer than n bytes remain.
func (c *Cursor) Take(n int) ([]byte, error) {
	if remaining := c.Remaining(); remaining < n {
		return nil, truncated("raw bytes", n, remaining)
	}
	view := c.data[c.position : c.position+n]
	c.position += n
	return view, nil
}

// takeByte consumes one byte. Callers have already checked Remaining
// and produced their own typed truncation error.
func (c *Cursor) takeByte() byte {
	value := c.data[c.position]
	c.position++
	return value
}

// take consumes n bytes without bounds checking; callers have already
// checked Remaining.
func (c *Cursor) take(n int) []byte {
	view := c.data[c.position : c.position+n]
	c.position += n
	return view
}

// Buffer is the append-only write side of the codec. Writes never
// fail; composite Encode implementations return errors only for
// values that cannot be represented (a string longer than the 16-bit
// length prefix allows, a sequence with more elements than a 32-bit
// count holds).
type Buffer struct {
	data []byte
}

// NewBuffer returns a buffer with the given initial capacity.
// Callers that know the final size (via Encodable.WriteSize) pass it
// here so encoding performs a single allocation.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity)}
}

// Bytes returns the written bytes. The slice aliases the buffer's
// storage and is invalidated by further writes.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// PutBytes appends raw bytes with no prefix. Length-prefixed shapes
// (string, varint blob) write their prefix separately first.
func (b *Buffer) PutBytes(raw []byte) {
	b.data = append(b.data, raw...)
}

func (b *Buffer) putByte(value byte) {
	b.data = append(b.data, value)
}
