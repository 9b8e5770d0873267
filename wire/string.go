// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// DecodeString reads a big-endian signed 16-bit length prefix, then
// that many UTF-8 bytes. A length of zero or below decodes to the
// empty string with no further bytes consumed — this doubles as the
// "absent" encoding used by callers that do not wrap strings in an
// explicit optional. Payload bytes that are not valid UTF-8 are
// ErrInvalidData.
func DecodeString(src *Cursor, version Version) (string, error) {
	length, err := DecodeInt16(src, version)
	if err != nil {
		return "", fmt.Errorf("string length: %w", err)
	}
	if length <= 0 {
		return "", nil
	}
	if remaining := src.Remaining(); remaining < int(length) {
		return "", shortRead("string", int(length), remaining)
	}
	raw := src.take(int(length))
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: string payload is not valid UTF-8", ErrInvalidData)
	}
	return string(raw), nil
}

// EncodeString writes the 16-bit length prefix followed by the raw
// UTF-8 bytes. Strings longer than the prefix can express cannot be
// represented on the wire.
func EncodeString(dst *Buffer, value string, version Version) error {
	if len(value) > math.MaxInt16 {
		return fmt.Errorf("string of %d bytes exceeds 16-bit length prefix", len(value))
	}
	if err := EncodeInt16(dst, int16(len(value)), version); err != nil {
		return err
	}
	dst.data = append(dst.data, value...)
	return nil
}

// SizeOfString reports the serialized size of a string: the 2-byte
// length prefix plus the payload.
func SizeOfString(value string, _ Version) int {
	return Int16Size + len(value)
}
