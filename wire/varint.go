// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "fmt"

// maxVarintLength is the most bytes a zig-zag varint can occupy: a
// 64-bit value in 7-bit groups needs at most 10 bytes. An eleventh
// continuation byte can only come from a corrupt stream.
const maxVarintLength = 10

// DecodeVarint reads a signed 64-bit integer in zig-zag varint form:
// the zig-zag mapping interleaves negative and positive values so
// small magnitudes of either sign encode compactly, and each byte
// carries seven value bits (least-significant group first) plus a
// continuation bit. Varints carry no version-dependent behavior, so
// unlike the fixed-width codecs this takes no Version.
func DecodeVarint(src *Cursor) (int64, error) {
	var unsigned uint64
	var shift uint
	for count := 0; ; count++ {
		if src.Remaining() < 1 {
			return 0, truncated("varint continuation", 1, 0)
		}
		if count == maxVarintLength {
			return 0, fmt.Errorf("%w: varint exceeds %d bytes", ErrInvalidData, maxVarintLength)
		}
		group := src.takeByte()
		unsigned |= uint64(group&0x7f) << shift
		if group&0x80 == 0 {
			break
		}
		shift += 7
	}
	return int64(unsigned>>1) ^ -int64(unsigned&1), nil
}

// EncodeVarint writes a signed 64-bit integer in zig-zag varint form.
func EncodeVarint(dst *Buffer, value int64) error {
	unsigned := uint64(value<<1) ^ uint64(value>>63)
	for unsigned >= 0x80 {
		dst.putByte(byte(unsigned) | 0x80)
		unsigned >>= 7
	}
	dst.putByte(byte(unsigned))
	return nil
}

// SizeOfVarint reports how many bytes EncodeVarint writes for value.
func SizeOfVarint(value int64) int {
	unsigned := uint64(value<<1) ^ uint64(value>>63)
	size := 1
	for unsigned >= 0x80 {
		size++
		unsigned >>= 7
	}
	return size
}

// DecodeVarintBytes reads a varint length prefix, then that many raw
// bytes. A length below one decodes to an empty blob. The returned
// slice is a copy and does not alias the cursor's buffer.
func DecodeVarintBytes(src *Cursor) ([]byte, error) {
	length, err := DecodeVarint(src)
	if err != nil {
		return nil, fmt.Errorf("blob length: %w", err)
	}
	if length < 1 {
		return nil, nil
	}
	if remaining := src.Remaining(); int64(remaining) < length {
		return nil, shortRead("varint blob", int(length), remaining)
	}
	value := make([]byte, length)
	copy(value, src.take(int(length)))
	return value, nil
}

// EncodeVarintBytes writes a varint length prefix followed by the raw
// bytes.
func EncodeVarintBytes(dst *Buffer, value []byte) error {
	if err := EncodeVarint(dst, int64(len(value))); err != nil {
		return err
	}
	dst.PutBytes(value)
	return nil
}

// SizeOfVarintBytes reports the serialized size of a varint blob.
func SizeOfVarintBytes(value []byte) int {
	return SizeOfVarint(int64(len(value))) + len(value)
}

// DecodeNullableVarintBytes reads a varint blob whose length prefix
// distinguishes absence from emptiness: a negative length decodes to
// nil, a zero length to an empty non-nil blob.
func DecodeNullableVarintBytes(src *Cursor) ([]byte, error) {
	length, err := DecodeVarint(src)
	if err != nil {
		return nil, fmt.Errorf("blob length: %w", err)
	}
	if length < 0 {
		return nil, nil
	}
	if length == 0 {
		return []byte{}, nil
	}
	if remaining := src.Remaining(); int64(remaining) < length {
		return nil, shortRead("varint blob", int(length), remaining)
	}
	value := make([]byte, length)
	copy(value, src.take(int(length)))
	return value, nil
}

// EncodeNullableVarintBytes writes a nil blob as length -1 and any
// other blob as its length followed by the raw bytes.
func EncodeNullableVarintBytes(dst *Buffer, value []byte) error {
	if value == nil {
		return EncodeVarint(dst, -1)
	}
	return EncodeVarintBytes(dst, value)
}

// SizeOfNullableVarintBytes reports the serialized size of a nullable
// varint blob.
func SizeOfNullableVarintBytes(value []byte) int {
	if value == nil {
		return SizeOfVarint(-1)
	}
	return SizeOfVarintBytes(value)
}
