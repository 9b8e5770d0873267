// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/seqwire/seqwire/wire"
)

// Field gates for StreamSpec. RetentionSeconds shipped in protocol
// version 4, CleanupPolicy in version 6; below those versions the
// fields are absent from the wire entirely and decode to their
// defaults.
var (
	streamRetentionRange = wire.Since(4)
	streamCleanupRange   = wire.Since(6)
)

// StreamSpec describes a partitioned event stream. It is the default
// variant of ObjectRequest.
type StreamSpec struct {
	// Partitions is the partition count. Zero lets the control plane
	// choose.
	Partitions int32

	// ReplicationFactor is the number of replicas per partition.
	ReplicationFactor int16

	// IgnoreRackAssignment disables rack-aware replica placement.
	IgnoreRackAssignment bool

	// RetentionSeconds bounds how long records are kept. Absent means
	// the cluster default applies.
	RetentionSeconds *uint32

	// CleanupPolicy is "delete" or "compact". Empty means the cluster
	// default.
	CleanupPolicy string
}

// Kind implements ObjectSpec.
func (s *StreamSpec) Kind() ObjectKind { return KindStream }

// Decode implements wire.Decodable.
func (s *StreamSpec) Decode(src *wire.Cursor, version wire.Version) error {
	var err error
	if s.Partitions, err = wire.DecodeInt32(src, version); err != nil {
		return err
	}
	if s.ReplicationFactor, err = wire.DecodeInt16(src, version); err != nil {
		return err
	}
	if s.IgnoreRackAssignment, err = wire.DecodeBool(src, version); err != nil {
		return err
	}
	if streamRetentionRange.Contains(version) {
		if s.RetentionSeconds, err = wire.DecodeOption(src, version, wire.DecodeUint32); err != nil {
			return err
		}
	}
	if streamCleanupRange.Contains(version) {
		if s.CleanupPolicy, err = wire.DecodeString(src, version); err != nil {
			return err
		}
	}
	return nil
}

// WriteSize implements wire.Encodable.
func (s *StreamSpec) WriteSize(version wire.Version) int {
	size := wire.Int32Size + wire.Int16Size + wire.BoolSize
	if streamRetentionRange.Contains(version) {
		size += wire.SizeOfOption(s.RetentionSeconds, version, wire.SizeOfUint32)
	}
	if streamCleanupRange.Contains(version) {
		size += wire.SizeOfString(s.CleanupPolicy, version)
	}
	return size
}

// Encode implements wire.Encodable.
func (s *StreamSpec) Encode(dst *wire.Buffer, version wire.Version) error {
	if err := wire.EncodeInt32(dst, s.Partitions, version); err != nil {
		return err
	}
	if err := wire.EncodeInt16(dst, s.ReplicationFactor, version); err != nil {
		return err
	}
	if err := wire.EncodeBool(dst, s.IgnoreRackAssignment, version); err != nil {
		return err
	}
	if streamRetentionRange.Contains(version) {
		if err := wire.EncodeOption(dst, s.RetentionSeconds, version, wire.EncodeUint32); err != nil {
			return err
		}
	}
	if streamCleanupRange.Contains(version) {
		if err := wire.EncodeString(dst, s.CleanupPolicy, version); err != nil {
			return err
		}
	}
	return nil
}
