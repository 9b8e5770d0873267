// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the admin-object wire schema: the concrete
// message types a control plane exchanges to create and inspect
// streams, tables, transforms, and worker groups.
//
// Every type here implements the wire.Decodable and wire.Encodable
// contracts by hand, field by field, with version gates on fields
// that joined the protocol after its first release. ObjectRequest is
// the polymorphic envelope: a one-byte kind discriminant selects
// which concrete spec's codec runs next. The discriminant values are
// wire contract — adding a kind is additive, repurposing one is a
// protocol break.
package schema
