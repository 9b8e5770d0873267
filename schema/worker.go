// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/seqwire/seqwire/wire"
)

// WorkerGroupSpec describes a managed group of stream workers.
type WorkerGroupSpec struct {
	// Replicas is the desired worker count.
	Replicas uint16

	// MinID is the lowest worker id assigned to this group.
	MinID int32

	// StorageSize is a human-readable volume size ("10Gi"). Joined
	// the protocol in version 5; absent below that.
	StorageSize *string

	// Rack pins the group to a failure domain. Empty means
	// unconstrained.
	Rack string
}

var workerStorageRange = wire.Since(5)

// Kind implements ObjectSpec.
func (s *WorkerGroupSpec) Kind() ObjectKind { return KindWorkerGroup }

// Decode implements wire.Decodable.
func (s *WorkerGroupSpec) Decode(src *wire.Cursor, version wire.Version) error {
	var err error
	if s.Replicas, err = wire.DecodeUint16(src, version); err != nil {
		return err
	}
	if s.MinID, err = wire.DecodeInt32(src, version); err != nil {
		return err
	}
	if workerStorageRange.Contains(version) {
		if s.StorageSize, err = wire.DecodeOption(src, version, wire.DecodeString); err != nil {
			return err
		}
	}
	if s.Rack, err = wire.DecodeString(src, version); err != nil {
		return err
	}
	return nil
}

// WriteSize implements wire.Encodable.
func (s *WorkerGroupSpec) WriteSize(version wire.Version) int {
	size := wire.Uint16Size + wire.Int32Size + wire.SizeOfString(s.Rack, version)
	if workerStorageRange.Contains(version) {
		size += wire.SizeOfOption(s.StorageSize, version, wire.SizeOfString)
	}
	return size
}

// Encode implements wire.Encodable.
func (s *WorkerGroupSpec) Encode(dst *wire.Buffer, version wire.Version) error {
	if err := wire.EncodeUint16(dst, s.Replicas, version); err != nil {
		return err
	}
	if err := wire.EncodeInt32(dst, s.MinID, version); err != nil {
		return err
	}
	if workerStorageRange.Contains(version) {
		if err := wire.EncodeOption(dst, s.StorageSize, version, wire.EncodeString); err != nil {
			return err
		}
	}
	return wire.EncodeString(dst, s.Rack, version)
}
