// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// Decodable is implemented by every composite wire type. Decode
// populates the receiver from the cursor at the given protocol
// version, starting from the zero value and mutating fields in place
// as bytes are consumed. On error the value is discarded by the
// caller; no partial result is ever observable.
type Decodable interface {
	Decode(src *Cursor, version Version) error
}

// Encodable is implemented by every composite wire type. WriteSize
// reports the exact number of bytes Encode will write for the same
// version — the two must always agree, and composites preserve this
// by delegating both calls to their children.
type Encodable interface {
	WriteSize(version Version) int
	Encode(dst *Buffer, version Version) error
}

// DecodeFunc decodes one value of T from the cursor. The primitive
// codecs (DecodeBool, DecodeInt32, DecodeString, ...) all have this
// shape, which is what lets the container codecs work generically
// over primitive and composite elements alike.
type DecodeFunc[T any] func(src *Cursor, version Version) (T, error)

// EncodeFunc writes one value of T to the buffer.
type EncodeFunc[T any] func(dst *Buffer, value T, version Version) error

// SizeFunc reports the serialized size of one value of T.
type SizeFunc[T any] func(value T, version Version) int

// DecodeValue decodes a fresh T through its Decodable implementation:
// zero value first, then Decode. The pointer type parameter is
// inferred from T.
func DecodeValue[T any, P interface {
	*T
	Decodable
}](src *Cursor, version Version) (T, error) {
	var value T
	if err := P(&value).Decode(src, version); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// Marshal encodes value at the given version into a freshly
// allocated byte slice sized by WriteSize.
func Marshal(value Encodable, version Version) ([]byte, error) {
	buffer := NewBuffer(value.WriteSize(version))
	if err := value.Encode(buffer, version); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Unmarshal decodes a fresh T from data at the given version. It does
// not require the cursor to be fully consumed; callers that need
// exact-consumption checks use a Cursor directly.
func Unmarshal[T any, P interface {
	*T
	Decodable
}](data []byte, version Version) (T, error) {
	return DecodeValue[T, P](NewCursor(data), version)
}
