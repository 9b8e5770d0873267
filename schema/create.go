// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/seqwire/seqwire/wire"
)

// createTimeoutRange gates CommonCreate.TimeoutMillis, which shipped
// in protocol version 7.
var createTimeoutRange = wire.Since(7)

// CommonCreate carries the parameters every create request has,
// regardless of which object is being created.
type CommonCreate struct {
	// Name is the object's unique name within its kind.
	Name string

	// DryRun validates the request without applying it.
	DryRun bool

	// TimeoutMillis bounds how long the control plane waits for the
	// object to provision before answering. Absent means the server
	// default.
	TimeoutMillis *uint32
}

// Decode implements wire.Decodable.
func (c *CommonCreate) Decode(src *wire.Cursor, version wire.Version) error {
	var err error
	if c.Name, err = wire.DecodeString(src, version); err != nil {
		return err
	}
	if c.DryRun, err = wire.DecodeBool(src, version); err != nil {
		return err
	}
	if createTimeoutRange.Contains(version) {
		if c.TimeoutMillis, err = wire.DecodeOption(src, version, wire.DecodeUint32); err != nil {
			return err
		}
	}
	return nil
}

// WriteSize implements wire.Encodable.
func (c CommonCreate) WriteSize(version wire.Version) int {
	size := wire.SizeOfString(c.Name, version) + wire.BoolSize
	if createTimeoutRange.Contains(version) {
		size += wire.SizeOfOption(c.TimeoutMillis, version, wire.SizeOfUint32)
	}
	return size
}

// Encode implements wire.Encodable.
func (c CommonCreate) Encode(dst *wire.Buffer, version wire.Version) error {
	if err := wire.EncodeString(dst, c.Name, version); err != nil {
		return err
	}
	if err := wire.EncodeBool(dst, c.DryRun, version); err != nil {
		return err
	}
	if createTimeoutRange.Contains(version) {
		return wire.EncodeOption(dst, c.TimeoutMillis, version, wire.EncodeUint32)
	}
	return nil
}

// CreateRequest asks the control plane to create one admin object.
type CreateRequest struct {
	Common CommonCreate
	Object ObjectRequest
}

// Decode implements wire.Decodable.
func (r *CreateRequest) Decode(src *wire.Cursor, version wire.Version) error {
	if err := r.Common.Decode(src, version); err != nil {
		return err
	}
	return r.Object.Decode(src, version)
}

// WriteSize implements wire.Encodable.
func (r CreateRequest) WriteSize(version wire.Version) int {
	return r.Common.WriteSize(version) + r.Object.WriteSize(version)
}

// Encode implements wire.Encodable.
func (r CreateRequest) Encode(dst *wire.Buffer, version wire.Version) error {
	if err := r.Common.Encode(dst, version); err != nil {
		return err
	}
	return r.Object.Encode(dst, version)
}

// Status is the control plane's answer to an admin request.
type Status struct {
	// Name echoes the object name the request named.
	Name string

	// Code is zero on success; non-zero values are protocol error
	// codes shared across peers.
	Code int16

	// Message carries human-readable detail for non-zero codes.
	Message *string
}

// Decode implements wire.Decodable.
func (s *Status) Decode(src *wire.Cursor, version wire.Version) error {
	var err error
	if s.Name, err = wire.DecodeString(src, version); err != nil {
		return err
	}
	if s.Code, err = wire.DecodeInt16(src, version); err != nil {
		return err
	}
	if s.Message, err = wire.DecodeOption(src, version, wire.DecodeString); err != nil {
		return err
	}
	return nil
}

// WriteSize implements wire.Encodable.
func (s Status) WriteSize(version wire.Version) int {
	return wire.SizeOfString(s.Name, version) +
		wire.Int16Size +
		wire.SizeOfOption(s.Message, version, wire.SizeOfString)
}

// Encode implements wire.Encodable.
func (s Status) Encode(dst *wire.Buffer, version wire.Version) error {
	if err := wire.EncodeString(dst, s.Name, version); err != nil {
		return err
	}
	if err := wire.EncodeInt16(dst, s.Code, version); err != nil {
		return err
	}
	return wire.EncodeOption(dst, s.Message, version, wire.EncodeString)
}
