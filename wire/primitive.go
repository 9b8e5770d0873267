// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"fmt"
)

// Fixed widths of the primitive wire shapes, in bytes. These are
// protocol constants; the big-endian byte order of the multi-byte
// shapes is load-bearing for wire compatibility.
const (
	BoolSize   = 1
	Int8Size   = 1
	Uint8Size  = 1
	Int16Size  = 2
	Uint16Size = 2
	Int32Size  = 4
	Uint32Size = 4
	Int64Size  = 8
	Uint64Size = 8
)

// All primitive codecs accept a Version and ignore it: a primitive is
// encoded identically at every protocol version. Version gating is the
// composite layer's responsibility. Keeping the parameter gives every
// primitive the DecodeFunc/EncodeFunc/SizeFunc shape the container
// codecs expect.

// DecodeBool reads one byte and requires it to be exactly 0 or 1.
// Any other value is ErrInvalidData — there is no implicit truthiness.
func DecodeBool(src *Cursor, _ Version) (bool, error) {
	if remaining := src.Remaining(); remaining < BoolSize {
		return false, truncated("bool", BoolSize, remaining)
	}
	switch value := src.takeByte(); value {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: byte 0x%02x is not a valid bool", ErrInvalidData, value)
	}
}

// EncodeBool writes a single 0 or 1 byte.
func EncodeBool(dst *Buffer, value bool, _ Version) error {
	if value {
		dst.putByte(1)
	} else {
		dst.putByte(0)
	}
	return nil
}

// SizeOfBool reports the serialized size of a bool.
func SizeOfBool(bool, Version) int { return BoolSize }

// DecodeInt8 reads a two's-complement signed byte.
func DecodeInt8(src *Cursor, _ Version) (int8, error) {
	if remaining := src.Remaining(); remaining < Int8Size {
		return 0, truncated("int8", Int8Size, remaining)
	}
	return int8(src.takeByte()), nil
}

// EncodeInt8 writes a two's-complement signed byte.
func EncodeInt8(dst *Buffer, value int8, _ Version) error {
	dst.putByte(byte(value))
	return nil
}

// SizeOfInt8 reports the serialized size of an int8.
func SizeOfInt8(int8, Version) int { return Int8Size }

// DecodeUint8 reads a raw byte.
func DecodeUint8(src *Cursor, _ Version) (uint8, error) {
	if remaining := src.Remaining(); remaining < Uint8Size {
		return 0, truncated("uint8", Uint8Size, remaining)
	}
	return src.takeByte(), nil
}

// EncodeUint8 writes a raw byte.
func EncodeUint8(dst *Buffer, value uint8, _ Version) error {
	dst.putByte(value)
	return nil
}

// SizeOfUint8 reports the serialized size of a uint8.
func SizeOfUint8(uint8, Version) int { return Uint8Size }

// DecodeInt16 reads a big-endian signed 16-bit integer.
func DecodeInt16(src *Cursor, _ Version) (int16, error) {
	if remaining := src.Remaining(); remaining < Int16Size {
		return 0, truncated("int16", Int16Size, remaining)
	}
	return int16(binary.BigEndian.Uint16(src.take(Int16Size))), nil
}

// EncodeInt16 writes a big-endian signed 16-bit integer.
func EncodeInt16(dst *Buffer, value int16, _ Version) error {
	dst.data = binary.BigEndian.AppendUint16(dst.data, uint16(value))
	return nil
}

// SizeOfInt16 reports the serialized size of an int16.
func SizeOfInt16(int16, Version) int { return Int16Size }

// DecodeUint16 reads a big-endian unsigned 16-bit integer.
func DecodeUint16(src *Cursor, _ Version) (uint16, error) {
	if remaining := src.Remaining(); remaining < Uint16Size {
		return 0, truncated("uint16", Uint16Size, remaining)
	}
	return binary.BigEndian.Uint16(src.take(Uint16Size)), nil
}

// EncodeUint16 writes a big-endian unsigned 16-bit integer.
func EncodeUint16(dst *Buffer, value uint16, _ Version) error {
	dst.data = binary.BigEndian.AppendUint16(dst.data, value)
	return nil
}

// SizeOfUint16 reports the serialized size of a uint16.
func SizeOfUint16(uint16, Version) int { return Uint16Size }

// DecodeInt32 reads a big-endian signed 32-bit integer.
func DecodeInt32(src *Cursor, _ Version) (int32, error) {
	if remaining := src.Remaining(); remaining < Int32Size {
		return 0, truncated("int32", Int32Size, remaining)
	}
	return int32(binary.BigEndian.Uint32(src.take(Int32Size))), nil
}

// EncodeInt32 writes a big-endian signed 32-bit integer.
func EncodeInt32(dst *Buffer, value int32, _ Version) error {
	dst.data = binary.BigEndian.AppendUint32(dst.data, uint32(value))
	return nil
}

// SizeOfInt32 reports the serialized size of an int32.
func SizeOfInt32(int32, Version) int { return Int32Size }

// DecodeUint32 reads a big-endian unsigned 32-bit integer.
func DecodeUint32(src *Cursor, _ Version) (uint32, error) {
	if remaining := src.Remaining(); remaining < Uint32Size {
		return 0, truncated("uint32", Uint32Size, remaining)
	}
	return binary.BigEndian.Uint32(src.take(Uint32Size)), nil
}

// EncodeUint32 writes a big-endian unsigned 32-bit integer.
func EncodeUint32(dst *Buffer, value uint32, _ Version) error {
	dst.data = binary.BigEndian.AppendUint32(dst.data, value)
	return nil
}

// SizeOfUint32 reports the serialized size of a uint32.
func SizeOfUint32(uint32, Version) int { return Uint32Size }

// DecodeInt64 reads a big-endian signed 64-bit integer.
func DecodeInt64(src *Cursor, _ Version) (int64, error) {
	if remaining := src.Remaining(); remaining < Int64Size {
		return 0, truncated("int64", Int64Size, remaining)
	}
	return int64(binary.BigEndian.Uint64(src.take(Int64Size))), nil
}

// EncodeInt64 writes a big-endian signed 64-bit integer.
func EncodeInt64(dst *Buffer, value int64, _ Version) error {
	dst.data = binary.BigEndian.AppendUint64(dst.data, uint64(value))
	return nil
}

// SizeOfInt64 reports the serialized size of an int64.
func SizeOfInt64(int64, Version) int { return Int64Size }

// DecodeUint64 reads a big-endian unsigned 64-bit integer.
func DecodeUint64(src *Cursor, _ Version) (uint64, error) {
	if remaining := src.Remaining(); remaining < Uint64Size {
		return 0, truncated("uint64", Uint64Size, remaining)
	}
	return binary.BigEndian.Uint64(src.take(Uint64Size)), nil
}

// EncodeUint64 writes a big-endian unsigned 64-bit integer.
func EncodeUint64(dst *Buffer, value uint64, _ Version) error {
	dst.data = binary.BigEndian.AppendUint64(dst.data, value)
	return nil
}

// SizeOfUint64 reports the serialized size of a uint64.
func SizeOfUint64(uint64, Version) int { return Uint64Size }
