// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/seqwire/seqwire/wire"
)

// AdminVersion is the highest admin protocol version this package
// speaks. Peers negotiate down to the lower of their versions; every
// codec in this package must produce correct bytes for any version
// from zero through this value.
const AdminVersion wire.Version = 9

// ObjectKind is the one-byte discriminant that selects which concrete
// spec follows an ObjectRequest header on the wire. Values are
// protocol constants and must never be reassigned; retired kinds keep
// their value forever.
type ObjectKind uint8

const (
	KindStream      ObjectKind = 0
	KindTable       ObjectKind = 1
	KindTransform   ObjectKind = 2
	KindWorkerGroup ObjectKind = 3
)

// String returns the kind's lowercase wire-schema name.
func (k ObjectKind) String() string {
	switch k {
	case KindStream:
		return "stream"
	case KindTable:
		return "table"
	case KindTransform:
		return "transform"
	case KindWorkerGroup:
		return "workergroup"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ObjectSpec is implemented by every concrete admin object payload.
type ObjectSpec interface {
	wire.Decodable
	wire.Encodable

	// Kind returns the discriminant this spec encodes under. Each
	// implementation returns its constant from the table above.
	Kind() ObjectKind
}

// specFactories is the canonical kind table: one constructor per
// declared kind. Decode dispatch reads it, and the package tests
// enumerate it to verify that every factory's spec reports the kind
// it is registered under — the mechanism that keeps the tag table,
// encode dispatch, and decode dispatch in lock-step.
var specFactories = map[ObjectKind]func() ObjectSpec{
	KindStream:      func() ObjectSpec { return new(StreamSpec) },
	KindTable:       func() ObjectSpec { return new(TableSpec) },
	KindTransform:   func() ObjectSpec { return new(TransformSpec) },
	KindWorkerGroup: func() ObjectSpec { return new(WorkerGroupSpec) },
}

// ObjectRequest is the tagged-union envelope for admin object
// payloads: one kind byte, then the selected spec's own encoding.
//
// The zero ObjectRequest encodes as the default variant, an empty
// StreamSpec, so the type satisfies the decode protocol's
// default-initialization contract.
type ObjectRequest struct {
	Spec ObjectSpec
}

// active returns the spec to encode: the held one, or the default
// variant for a zero request.
func (r ObjectRequest) active() ObjectSpec {
	if r.Spec == nil {
		return new(StreamSpec)
	}
	return r.Spec
}

// Kind returns the discriminant of the active variant.
func (r ObjectRequest) Kind() ObjectKind {
	return r.active().Kind()
}

// Decode reads the kind byte, dispatches to the matching spec codec,
// and stores the decoded spec. An unrecognized kind is
// wire.ErrInvalidData — never a silent fallback.
func (r *ObjectRequest) Decode(src *wire.Cursor, version wire.Version) error {
	kind, err := wire.DecodeUint8(src, version)
	if err != nil {
		return fmt.Errorf("object kind: %w", err)
	}
	factory, known := specFactories[ObjectKind(kind)]
	if !known {
		return fmt.Errorf("%w: unknown object kind %d", wire.ErrInvalidData, kind)
	}
	spec := factory()
	if err := spec.Decode(src, version); err != nil {
		return fmt.Errorf("%s spec: %w", ObjectKind(kind), err)
	}
	r.Spec = spec
	return nil
}

// WriteSize is the kind byte plus the active spec's size.
func (r ObjectRequest) WriteSize(version wire.Version) int {
	return wire.Uint8Size + r.active().WriteSize(version)
}

// Encode writes the kind byte, then delegates to the active spec.
func (r ObjectRequest) Encode(dst *wire.Buffer, version wire.Version) error {
	spec := r.active()
	if err := wire.EncodeUint8(dst, uint8(spec.Kind()), version); err != nil {
		return err
	}
	return spec.Encode(dst, version)
}
