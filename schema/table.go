// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/seqwire/seqwire/wire"
)

// TableSpec describes a materialized view over one or more streams.
type TableSpec struct {
	// InputStream is the stream the table is derived from.
	InputStream string

	// Format is the row serialization format name ("json", "avro").
	Format string

	// Columns are the projected column definitions, in output order.
	Columns []ColumnSpec
}

// ColumnSpec is one projected column of a table.
type ColumnSpec struct {
	Name     string
	DataType string

	// Nullable joined the protocol in version 3.
	Nullable bool
}

var columnNullableRange = wire.Since(3)

// Kind implements ObjectSpec.
func (s *TableSpec) Kind() ObjectKind { return KindTable }

// Decode implements wire.Decodable.
func (s *TableSpec) Decode(src *wire.Cursor, version wire.Version) error {
	var err error
	if s.InputStream, err = wire.DecodeString(src, version); err != nil {
		return err
	}
	if s.Format, err = wire.DecodeString(src, version); err != nil {
		return err
	}
	if s.Columns, err = wire.DecodeValueSlice[ColumnSpec](src, version); err != nil {
		return err
	}
	return nil
}

// WriteSize implements wire.Encodable.
func (s *TableSpec) WriteSize(version wire.Version) int {
	return wire.SizeOfString(s.InputStream, version) +
		wire.SizeOfString(s.Format, version) +
		wire.SizeOfValueSlice(s.Columns, version)
}

// Encode implements wire.Encodable.
func (s *TableSpec) Encode(dst *wire.Buffer, version wire.Version) error {
	if err := wire.EncodeString(dst, s.InputStream, version); err != nil {
		return err
	}
	if err := wire.EncodeString(dst, s.Format, version); err != nil {
		return err
	}
	return wire.EncodeValueSlice(dst, s.Columns, version)
}

// Decode implements wire.Decodable.
func (c *ColumnSpec) Decode(src *wire.Cursor, version wire.Version) error {
	var err error
	if c.Name, err = wire.DecodeString(src, version); err != nil {
		return err
	}
	if c.DataType, err = wire.DecodeString(src, version); err != nil {
		return err
	}
	if columnNullableRange.Contains(version) {
		if c.Nullable, err = wire.DecodeBool(src, version); err != nil {
			return err
		}
	}
	return nil
}

// WriteSize implements wire.Encodable.
func (c ColumnSpec) WriteSize(version wire.Version) int {
	size := wire.SizeOfString(c.Name, version) + wire.SizeOfString(c.DataType, version)
	if columnNullableRange.Contains(version) {
		size += wire.BoolSize
	}
	return size
}

// Encode implements wire.Encodable.
func (c ColumnSpec) Encode(dst *wire.Buffer, version wire.Version) error {
	if err := wire.EncodeString(dst, c.Name, version); err != nil {
		return err
	}
	if err := wire.EncodeString(dst, c.DataType, version); err != nil {
		return err
	}
	if columnNullableRange.Contains(version) {
		return wire.EncodeBool(dst, c.Nullable, version)
	}
	return nil
}
