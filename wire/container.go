// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// DecodeSlice reads a big-endian signed 32-bit count, then that many
// elements in order. A count below one decodes to an empty sequence —
// including negative counts, which the protocol has always treated as
// "no elements" rather than an error. This is a legacy convention
// kept for wire compatibility; do not tighten it. Any element error
// aborts the whole sequence decode.
func DecodeSlice[T any](src *Cursor, version Version, element DecodeFunc[T]) ([]T, error) {
	count, err := DecodeInt32(src, version)
	if err != nil {
		return nil, fmt.Errorf("sequence count: %w", err)
	}
	trace("decoding sequence", "count", count)
	if count < 1 {
		return nil, nil
	}
	values := make([]T, 0, min(int(count), maxCountPreallocation))
	for i := int32(0); i < count; i++ {
		value, err := element(src, version)
		if err != nil {
			return nil, fmt.Errorf("sequence element %d: %w", i, err)
		}
		values = append(values, value)
	}
	return values, nil
}

// maxCountPreallocation caps the capacity hint taken from a wire
// count. A hostile count claiming billions of elements still fails
// with truncation once the cursor runs dry, but it must not allocate
// proportionally to the claim first.
const maxCountPreallocation = 1 << 16

// EncodeSlice writes the 32-bit count, then each element in order.
func EncodeSlice[T any](dst *Buffer, values []T, version Version, element EncodeFunc[T]) error {
	if len(values) > math.MaxInt32 {
		return fmt.Errorf("sequence of %d elements exceeds 32-bit count prefix", len(values))
	}
	if err := EncodeInt32(dst, int32(len(values)), version); err != nil {
		return err
	}
	for i, value := range values {
		if err := element(dst, value, version); err != nil {
			return fmt.Errorf("sequence element %d: %w", i, err)
		}
	}
	return nil
}

// SizeOfSlice reports the serialized size of a sequence: the 4-byte
// count prefix plus every element's size.
func SizeOfSlice[T any](values []T, version Version, element SizeFunc[T]) int {
	size := Int32Size
	for _, value := range values {
		size += element(value, version)
	}
	return size
}

// DecodeValueSlice decodes a sequence whose element type implements
// Decodable. Equivalent to DecodeSlice with a DecodeValue element.
func DecodeValueSlice[T any, P interface {
	*T
	Decodable
}](src *Cursor, version Version) ([]T, error) {
	return DecodeSlice(src, version, DecodeValue[T, P])
}

// EncodeValueSlice encodes a sequence whose element type implements
// Encodable.
func EncodeValueSlice[T Encodable](dst *Buffer, values []T, version Version) error {
	return EncodeSlice(dst, values, version, func(dst *Buffer, value T, version Version) error {
		return value.Encode(dst, version)
	})
}

// SizeOfValueSlice reports the serialized size of a sequence whose
// element type implements Encodable.
func SizeOfValueSlice[T Encodable](values []T, version Version) int {
	return SizeOfSlice(values, version, func(value T, version Version) int {
		return value.WriteSize(version)
	})
}

// DecodeOption reads a boolean presence flag, then the payload when
// the flag is true. Absent decodes to nil; present decodes to a
// pointer at the decoded value.
func DecodeOption[T any](src *Cursor, version Version, element DecodeFunc[T]) (*T, error) {
	present, err := DecodeBool(src, version)
	if err != nil {
		return nil, fmt.Errorf("optional presence flag: %w", err)
	}
	if !present {
		return nil, nil
	}
	value, err := element(src, version)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// EncodeOption writes the presence flag, then the payload only when
// value is non-nil.
func EncodeOption[T any](dst *Buffer, value *T, version Version, element EncodeFunc[T]) error {
	if err := EncodeBool(dst, value != nil, version); err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	return element(dst, *value, version)
}

// SizeOfOption reports the serialized size of an optional: the flag
// byte plus the payload size when present.
func SizeOfOption[T any](value *T, version Version, element SizeFunc[T]) int {
	if value == nil {
		return BoolSize
	}
	return BoolSize + element(*value, version)
}

// DecodeMap reads a big-endian unsigned 16-bit pair count, then that
// many key/value pairs. Pairs land in a Go map, so a later duplicate
// key overwrites an earlier one — last write wins, by contract rather
// than by accident. The result is never nil.
func DecodeMap[K cmp.Ordered, V any](src *Cursor, version Version, key DecodeFunc[K], value DecodeFunc[V]) (map[K]V, error) {
	count, err := DecodeUint16(src, version)
	if err != nil {
		return nil, fmt.Errorf("map count: %w", err)
	}
	trace("decoding map", "count", count)
	result := make(map[K]V, min(int(count), maxCountPreallocation))
	for i := 0; i < int(count); i++ {
		pairKey, err := key(src, version)
		if err != nil {
			return nil, fmt.Errorf("map key %d: %w", i, err)
		}
		pairValue, err := value(src, version)
		if err != nil {
			return nil, fmt.Errorf("map value %d: %w", i, err)
		}
		result[pairKey] = pairValue
	}
	return result, nil
}

// EncodeMap writes the 16-bit pair count, then every pair in key
// order. Only key order round-trips: the wire representation is
// canonical regardless of how the map was built.
func EncodeMap[K cmp.Ordered, V any](dst *Buffer, pairs map[K]V, version Version, key EncodeFunc[K], value EncodeFunc[V]) error {
	if len(pairs) > math.MaxUint16 {
		return fmt.Errorf("map of %d pairs exceeds 16-bit count prefix", len(pairs))
	}
	if err := EncodeUint16(dst, uint16(len(pairs)), version); err != nil {
		return err
	}
	sortedKeys := make([]K, 0, len(pairs))
	for pairKey := range pairs {
		sortedKeys = append(sortedKeys, pairKey)
	}
	slices.Sort(sortedKeys)
	for _, pairKey := range sortedKeys {
		if err := key(dst, pairKey, version); err != nil {
			return fmt.Errorf("map key %v: %w", pairKey, err)
		}
		if err := value(dst, pairs[pairKey], version); err != nil {
			return fmt.Errorf("map value for key %v: %w", pairKey, err)
		}
	}
	return nil
}

// SizeOfMap reports the serialized size of a map: the 2-byte count
// prefix plus every pair's size.
func SizeOfMap[K cmp.Ordered, V any](pairs map[K]V, version Version, key SizeFunc[K], value SizeFunc[V]) int {
	size := Uint16Size
	for pairKey, pairValue := range pairs {
		size += key(pairKey, version) + value(pairValue, version)
	}
	return size
}

// Phantom is a zero-width type-level marker. It never appears on the
// wire: decoding consumes nothing and always succeeds, encoding
// writes nothing. Embed it where a schema slot must exist but carries
// no data.
type Phantom struct{}

// Decode is a no-op; a Phantom consumes zero bytes.
func (*Phantom) Decode(*Cursor, Version) error { return nil }

// WriteSize is always zero.
func (Phantom) WriteSize(Version) int { return 0 }

// Encode is a no-op; a Phantom writes zero bytes.
func (Phantom) Encode(*Buffer, Version) error { return nil }
