// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEnd is the category for truncated input: a fixed-width
// read, a length-prefixed read, or a count-driven loop needed more
// bytes than remain in the cursor. Match with errors.Is.
var ErrUnexpectedEnd = errors.New("unexpected end of input")

// ErrInvalidData is the category for out-of-domain values: a boolean
// byte outside {0, 1}, an unrecognized union discriminant, malformed
// UTF-8 text. Match with errors.Is.
var ErrInvalidData = errors.New("invalid data")

// truncated builds an ErrUnexpectedEnd error naming what was being
// read and how many bytes it needed. The message detail is the only
// diagnostic a caller gets for framing bugs, so it always carries
// both the need and the actual remaining count.
func truncated(what string, need, remaining int) error {
	return fmt.Errorf("%w: needed %d bytes for %s, have %d", ErrUnexpectedEnd, need, what, remaining)
}

// shortRead builds an ErrUnexpectedEnd error for a length-prefixed
// read that yielded fewer payload bytes than its prefix promised.
func shortRead(what string, want, got int) error {
	return fmt.Errorf("%w: %s declared %d bytes, only %d available", ErrUnexpectedEnd, what, want, got)
}
