// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire implements seqwire's length-prefixed, version-aware
// binary encoding. Every value on the wire is built from a small set
// of canonical shapes: fixed-width big-endian primitives, 16-bit
// length-prefixed UTF-8 strings, zig-zag varints, count-prefixed
// sequences and maps, presence-flagged optionals, and discriminant-
// tagged unions.
//
// Two contracts drive the package:
//
//   - Decodable: a type that populates itself from a Cursor and a
//     negotiated protocol Version. Decoding starts from the zero
//     value and mutates fields in place; on error the whole decode
//     fails and no partial result is exposed.
//   - Encodable: a type that reports its exact serialized size for a
//     Version and writes its canonical bytes to a Buffer. WriteSize
//     and Encode must agree byte-for-byte; every composite preserves
//     this by delegating both to its children.
//
// The Version is threaded explicitly through every decode, encode,
// and size call. Primitive codecs accept and ignore it; composite
// types use it to include or skip individual fields, which is how
// the protocol evolves additively: a field gated at minimum version
// N appears on the wire only when both peers negotiated version N or
// above.
//
// One decode or encode operation is a plain sequential computation
// over one Cursor or Buffer. Cursors are exclusively owned by the
// in-flight call chain and must not be shared across concurrent
// operations.
package wire
