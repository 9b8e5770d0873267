// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeSlice(t *testing.T) {
	t.Parallel()

	// One string element: count 1, then "test".
	input := []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x04, 0x74, 0x65, 0x73, 0x74}
	values, err := DecodeSlice(NewCursor(input), 0, DecodeString)
	if err != nil {
		t.Fatalf("DecodeSlice: %v", err)
	}
	if len(values) != 1 || values[0] != "test" {
		t.Fatalf("got %q, want [test]", values)
	}
}

func TestDecodeSliceNegativeCount(t *testing.T) {
	t.Parallel()
	// A count below one — including any negative 32-bit value — is
	// "no elements", not an error. Long-standing wire convention:
	// peers emit -1 for absent arrays, and tightening this would
	// reject traffic that has always been accepted.
	tests := []struct {
		name  string
		input []byte
	}{
		{"zero", []byte{0x00, 0x00, 0x00, 0x00}},
		{"minus one", []byte{0xff, 0xff, 0xff, 0xff}},
		{"very negative", []byte{0x80, 0x00, 0x00, 0x00}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			cursor := NewCursor(append(test.input, 0xaa, 0xbb))
			values, err := DecodeSlice(cursor, 0, DecodeUint8)
			if err != nil {
				t.Fatalf("DecodeSlice: %v", err)
			}
			if len(values) != 0 {
				t.Fatalf("got %d elements, want 0", len(values))
			}
			// Only the count prefix is consumed.
			if cursor.Remaining() != 2 {
				t.Fatalf("remaining: got %d, want 2", cursor.Remaining())
			}
		})
	}
}

func TestDecodeSliceElementErrorAborts(t *testing.T) {
	t.Parallel()
	// Count 2 but the second string is truncated; the whole sequence
	// decode fails with the child's error category.
	input := []byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x02, 0x77, 0x6f, 0x00, 0x05, 0x78}
	_, err := DecodeSlice(NewCursor(input), 0, DecodeString)
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("got %v, want ErrUnexpectedEnd", err)
	}
}

func TestSliceRoundTrip(t *testing.T) {
	t.Parallel()
	values := []string{"alpha", "", "gamma"}
	buffer := NewBuffer(SizeOfSlice(values, 0, SizeOfString))
	if err := EncodeSlice(buffer, values, 0, EncodeString); err != nil {
		t.Fatalf("EncodeSlice: %v", err)
	}
	if buffer.Len() != SizeOfSlice(values, 0, SizeOfString) {
		t.Fatalf("size mismatch: wrote %d, reported %d", buffer.Len(), SizeOfSlice(values, 0, SizeOfString))
	}
	got, err := DecodeSlice(NewCursor(buffer.Bytes()), 0, DecodeString)
	if err != nil {
		t.Fatalf("DecodeSlice: %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("got %d elements, want %d", len(got), len(values))
	}
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("element %d: got %q, want %q", i, got[i], values[i])
		}
	}
}

func TestDecodeOption(t *testing.T) {
	t.Parallel()

	// Presence byte 0x00: absent, nothing further consumed.
	cursor := NewCursor([]byte{0x00, 0x12, 0x34})
	value, err := DecodeOption(cursor, 0, DecodeUint16)
	if err != nil {
		t.Fatalf("DecodeOption absent: %v", err)
	}
	if value != nil {
		t.Fatalf("got %d, want nil", *value)
	}
	if cursor.Remaining() != 2 {
		t.Fatalf("remaining: got %d, want 2", cursor.Remaining())
	}

	// Presence byte 0x01 followed by a uint16 payload.
	value, err = DecodeOption(NewCursor([]byte{0x01, 0x00, 0x10}), 0, DecodeUint16)
	if err != nil {
		t.Fatalf("DecodeOption present: %v", err)
	}
	if value == nil || *value != 16 {
		t.Fatalf("got %v, want 16", value)
	}

	// An invalid presence byte is invalid data, not absent.
	if _, err := DecodeOption(NewCursor([]byte{0x02, 0x00, 0x10}), 0, DecodeUint16); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("invalid flag: got %v, want ErrInvalidData", err)
	}

	// A missing flag byte is truncation.
	if _, err := DecodeOption(NewCursor(nil), 0, DecodeUint16); !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("missing flag: got %v, want ErrUnexpectedEnd", err)
	}
}

func TestOptionRoundTrip(t *testing.T) {
	t.Parallel()
	present := uint32(272)
	for _, value := range []*uint32{nil, &present} {
		buffer := NewBuffer(SizeOfOption(value, 0, SizeOfUint32))
		if err := EncodeOption(buffer, value, 0, EncodeUint32); err != nil {
			t.Fatalf("EncodeOption: %v", err)
		}
		if buffer.Len() != SizeOfOption(value, 0, SizeOfUint32) {
			t.Fatalf("size mismatch: wrote %d, reported %d", buffer.Len(), SizeOfOption(value, 0, SizeOfUint32))
		}
		got, err := DecodeOption(NewCursor(buffer.Bytes()), 0, DecodeUint32)
		if err != nil {
			t.Fatalf("DecodeOption: %v", err)
		}
		if (got == nil) != (value == nil) {
			t.Fatalf("presence mismatch: got %v, want %v", got, value)
		}
		if got != nil && *got != *value {
			t.Fatalf("got %d, want %d", *got, *value)
		}
	}
}

func TestDecodeMapLastWriteWins(t *testing.T) {
	t.Parallel()
	// Two pairs sharing the key "a": the second value (7) wins.
	input := []byte{
		0x00, 0x02, // pair count
		0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x03, // "a" -> 3
		0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x07, // "a" -> 7
	}
	pairs, err := DecodeMap(NewCursor(input), 0, DecodeString, DecodeUint32)
	if err != nil {
		t.Fatalf("DecodeMap: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs["a"] != 7 {
		t.Fatalf(`pairs["a"]: got %d, want 7`, pairs["a"])
	}
}

func TestEncodeMapCanonicalKeyOrder(t *testing.T) {
	t.Parallel()
	pairs := map[string]uint8{"zebra": 3, "alpha": 1, "mango": 2}
	buffer := NewBuffer(SizeOfMap(pairs, 0, SizeOfString, SizeOfUint8))
	if err := EncodeMap(buffer, pairs, 0, EncodeString, EncodeUint8); err != nil {
		t.Fatalf("EncodeMap: %v", err)
	}
	want := []byte{
		0x00, 0x03,
		0x00, 0x05, 'a', 'l', 'p', 'h', 'a', 0x01,
		0x00, 0x05, 'm', 'a', 'n', 'g', 'o', 0x02,
		0x00, 0x05, 'z', 'e', 'b', 'r', 'a', 0x03,
	}
	if !bytes.Equal(buffer.Bytes(), want) {
		t.Fatalf("encoded bytes:\n got % x\nwant % x", buffer.Bytes(), want)
	}
	if buffer.Len() != SizeOfMap(pairs, 0, SizeOfString, SizeOfUint8) {
		t.Fatalf("size mismatch: wrote %d, reported %d", buffer.Len(), SizeOfMap(pairs, 0, SizeOfString, SizeOfUint8))
	}

	got, err := DecodeMap(NewCursor(buffer.Bytes()), 0, DecodeString, DecodeUint8)
	if err != nil {
		t.Fatalf("DecodeMap: %v", err)
	}
	if len(got) != 3 || got["alpha"] != 1 || got["mango"] != 2 || got["zebra"] != 3 {
		t.Fatalf("round trip: got %v", got)
	}
}

func TestDecodeMapTruncatedPair(t *testing.T) {
	t.Parallel()
	// Count 1 but the value is missing entirely.
	input := []byte{0x00, 0x01, 0x00, 0x01, 'k'}
	_, err := DecodeMap(NewCursor(input), 0, DecodeString, DecodeUint32)
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("got %v, want ErrUnexpectedEnd", err)
	}
}

func TestPhantom(t *testing.T) {
	t.Parallel()
	var marker Phantom
	cursor := NewCursor([]byte{0x01, 0x02})
	if err := marker.Decode(cursor, 0); err != nil {
		t.Fatalf("Phantom.Decode: %v", err)
	}
	if cursor.Remaining() != 2 {
		t.Fatalf("Phantom consumed %d bytes", 2-cursor.Remaining())
	}
	buffer := NewBuffer(0)
	if err := marker.Encode(buffer, 0); err != nil {
		t.Fatalf("Phantom.Encode: %v", err)
	}
	if buffer.Len() != 0 || marker.WriteSize(0) != 0 {
		t.Fatalf("Phantom wrote %d bytes, size %d; want zero width", buffer.Len(), marker.WriteSize(0))
	}
}

// testRecord is a two-field composite whose second field joined the
// protocol at version 2. It exercises the mutate-through-default
// decode contract and version gating from the container side.
type testRecord struct {
	Value  int8
	Extra  int8
	Labels map[string]string
}

var testRecordExtraRange = Since(2)

func (r *testRecord) Decode(src *Cursor, version Version) error {
	var err error
	if r.Value, err = DecodeInt8(src, version); err != nil {
		return err
	}
	if testRecordExtraRange.Contains(version) {
		if r.Extra, err = DecodeInt8(src, version); err != nil {
			return err
		}
		if r.Labels, err = DecodeMap(src, version, DecodeString, DecodeString); err != nil {
			return err
		}
	}
	return nil
}

func (r testRecord) WriteSize(version Version) int {
	size := SizeOfInt8(r.Value, version)
	if testRecordExtraRange.Contains(version) {
		size += SizeOfInt8(r.Extra, version)
		size += SizeOfMap(r.Labels, version, SizeOfString, SizeOfString)
	}
	return size
}

func (r testRecord) Encode(dst *Buffer, version Version) error {
	if err := EncodeInt8(dst, r.Value, version); err != nil {
		return err
	}
	if testRecordExtraRange.Contains(version) {
		if err := EncodeInt8(dst, r.Extra, version); err != nil {
			return err
		}
		if err := EncodeMap(dst, r.Labels, version, EncodeString, EncodeString); err != nil {
			return err
		}
	}
	return nil
}

func TestVersionGatedComposite(t *testing.T) {
	t.Parallel()

	// Below the gate only the first field is on the wire; the gated
	// fields stay at their defaults and consume zero bytes.
	record, err := Unmarshal[testRecord]([]byte{0x06}, 0)
	if err != nil {
		t.Fatalf("Unmarshal at version 0: %v", err)
	}
	if record.Value != 6 || record.Extra != 0 || record.Labels != nil {
		t.Fatalf("version 0: got %+v, want Value=6 and defaults", record)
	}

	// At version 2 the gated byte and map are read.
	record, err = Unmarshal[testRecord]([]byte{0x06, 0x09, 0x00, 0x00}, 2)
	if err != nil {
		t.Fatalf("Unmarshal at version 2: %v", err)
	}
	if record.Value != 6 || record.Extra != 9 {
		t.Fatalf("version 2: got %+v, want Value=6 Extra=9", record)
	}
}

func TestVersionGatedCompositeRoundTrip(t *testing.T) {
	t.Parallel()
	record := testRecord{Value: 6, Extra: 9, Labels: map[string]string{"tier": "hot"}}
	for _, version := range []Version{0, 1, 2, 5} {
		data, err := Marshal(record, version)
		if err != nil {
			t.Fatalf("Marshal at version %d: %v", version, err)
		}
		if len(data) != record.WriteSize(version) {
			t.Fatalf("version %d: wrote %d bytes, WriteSize says %d", version, len(data), record.WriteSize(version))
		}
		got, err := Unmarshal[testRecord](data, version)
		if err != nil {
			t.Fatalf("Unmarshal at version %d: %v", version, err)
		}
		if got.Value != record.Value {
			t.Fatalf("version %d: Value: got %d, want %d", version, got.Value, record.Value)
		}
		gated := testRecordExtraRange.Contains(version)
		if gated && (got.Extra != record.Extra || got.Labels["tier"] != "hot") {
			t.Fatalf("version %d: gated fields lost: %+v", version, got)
		}
		if !gated && got.Extra != 0 {
			t.Fatalf("version %d: gated field leaked onto the wire: %+v", version, got)
		}
	}
}

func TestDecodeValueSlice(t *testing.T) {
	t.Parallel()
	records := []testRecord{{Value: 1}, {Value: 2}, {Value: 3}}
	buffer := NewBuffer(SizeOfValueSlice(records, 0))
	if err := EncodeValueSlice(buffer, records, 0); err != nil {
		t.Fatalf("EncodeValueSlice: %v", err)
	}
	if buffer.Len() != SizeOfValueSlice(records, 0) {
		t.Fatalf("size mismatch: wrote %d, reported %d", buffer.Len(), SizeOfValueSlice(records, 0))
	}
	got, err := DecodeValueSlice[testRecord](NewCursor(buffer.Bytes()), 0)
	if err != nil {
		t.Fatalf("DecodeValueSlice: %v", err)
	}
	if len(got) != 3 || got[0].Value != 1 || got[2].Value != 3 {
		t.Fatalf("round trip: got %+v", got)
	}
}

func TestVersionRange(t *testing.T) {
	t.Parallel()
	since := Since(4)
	if since.Contains(3) || !since.Contains(4) || !since.Contains(100) {
		t.Errorf("Since(4) gates wrong versions")
	}
	window := Between(2, 5)
	if window.Contains(1) || !window.Contains(2) || !window.Contains(5) || window.Contains(6) {
		t.Errorf("Between(2, 5) gates wrong versions")
	}
}
