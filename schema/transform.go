// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/seqwire/seqwire/wire"
)

// TransformSpec describes a user-supplied stream transform: a wasm
// module applied to records in flight.
type TransformSpec struct {
	// InputKind names the record shape the transform consumes.
	InputKind string

	// Wasm is the module binary, varint-length prefixed on the wire.
	// nil means "reference an already-uploaded module by parameters"
	// and encodes as the null blob; an empty non-nil slice encodes as
	// a present, zero-length blob.
	Wasm []byte

	// Parameters are free-form transform configuration pairs. The
	// wire order is canonical (sorted by key) regardless of how the
	// map was built.
	Parameters map[string]string

	// SourceLanguage joined the protocol in version 8 for diagnostics
	// display.
	SourceLanguage string
}

var transformLanguageRange = wire.Since(8)

// Kind implements ObjectSpec.
func (s *TransformSpec) Kind() ObjectKind { return KindTransform }

// Decode implements wire.Decodable.
func (s *TransformSpec) Decode(src *wire.Cursor, version wire.Version) error {
	var err error
	if s.InputKind, err = wire.DecodeString(src, version); err != nil {
		return err
	}
	if s.Wasm, err = wire.DecodeNullableVarintBytes(src); err != nil {
		return err
	}
	if s.Parameters, err = wire.DecodeMap(src, version, wire.DecodeString, wire.DecodeString); err != nil {
		return err
	}
	if transformLanguageRange.Contains(version) {
		if s.SourceLanguage, err = wire.DecodeString(src, version); err != nil {
			return err
		}
	}
	return nil
}

// WriteSize implements wire.Encodable.
func (s *TransformSpec) WriteSize(version wire.Version) int {
	size := wire.SizeOfString(s.InputKind, version) +
		wire.SizeOfNullableVarintBytes(s.Wasm) +
		wire.SizeOfMap(s.Parameters, version, wire.SizeOfString, wire.SizeOfString)
	if transformLanguageRange.Contains(version) {
		size += wire.SizeOfString(s.SourceLanguage, version)
	}
	return size
}

// Encode implements wire.Encodable.
func (s *TransformSpec) Encode(dst *wire.Buffer, version wire.Version) error {
	if err := wire.EncodeString(dst, s.InputKind, version); err != nil {
		return err
	}
	if err := wire.EncodeNullableVarintBytes(dst, s.Wasm); err != nil {
		return err
	}
	if err := wire.EncodeMap(dst, s.Parameters, version, wire.EncodeString, wire.EncodeString); err != nil {
		return err
	}
	if transformLanguageRange.Contains(version) {
		return wire.EncodeString(dst, s.SourceLanguage, version)
	}
	return nil
}
