// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "math"

// Version is the negotiated protocol version for one decode or encode
// operation. It is passed by value through every recursive call so
// that operations stay composable and testable in isolation.
type Version int16

// VersionRange declares the protocol versions in which a field is
// present on the wire. Both bounds are inclusive.
type VersionRange struct {
	Min Version
	Max Version
}

// Since returns a range covering min and every later version. This is
// the common gate for additively introduced fields.
func Since(min Version) VersionRange {
	return VersionRange{Min: min, Max: math.MaxInt16}
}

// Between returns a range covering min through max inclusive. Used
// for fields that were later superseded and dropped from the wire.
func Between(min, max Version) VersionRange {
	return VersionRange{Min: min, Max: max}
}

// Contains reports whether a field gated by this range is present on
// the wire at the given version.
func (r VersionRange) Contains(version Version) bool {
	return version >= r.Min && version <= r.Max
}
