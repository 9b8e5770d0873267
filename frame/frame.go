// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package frame carries wire-encoded messages over a byte stream.
// Each frame is a 4-byte big-endian payload length followed by the
// payload; the payload's own structure (request header, message
// body) is the wire package's concern. This is the only framing the
// protocol defines — everything inside a frame is length-prefixed by
// the container rules already.
package frame

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/seqwire/seqwire/wire"
)

// lengthPrefixSize is the fixed size of the frame length prefix.
const lengthPrefixSize = 4

// MaxFrameSize is the largest payload a peer may send. 16 MB is
// generous for admin traffic; anything larger indicates a corrupt or
// hostile stream, not a legitimate message.
const MaxFrameSize = 16 * 1024 * 1024

// WriteFrame writes one length-prefixed frame to w.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxFrameSize {
		return fmt.Errorf("frame payload %d bytes exceeds maximum %d", len(payload), MaxFrameSize)
	}
	var prefix [lengthPrefixSize]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(payload)))
	if _, err := w.Write(prefix[:]); err != nil {
		return fmt.Errorf("write frame length: %w", err)
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return fmt.Errorf("write frame payload: %w", err)
		}
	}
	return nil
}

// ReadFrame reads one length-prefixed frame from r. A clean EOF at a
// frame boundary returns io.EOF unchanged so callers can loop with a
// plain errors.Is check.
func ReadFrame(r io.Reader) ([]byte, error) {
	var prefix [lengthPrefixSize]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read frame length: %w", err)
	}
	length := binary.BigEndian.Uint32(prefix[:])
	if length > MaxFrameSize {
		return nil, fmt.Errorf("frame payload %d bytes exceeds maximum %d", length, MaxFrameSize)
	}
	payload := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, fmt.Errorf("read frame payload: %w", err)
		}
	}
	return payload, nil
}

// clientIDRange gates RequestHeader.ClientID, which joined the
// protocol in version 1.
var clientIDRange = wire.Since(1)

// RequestHeader opens every request frame: which API is being called,
// at which negotiated version, and a correlation id the response
// echoes back. The header itself is decoded at the header's own
// ApiVersion — the ApiKey and ApiVersion fields are present at every
// version so a peer can always read them first.
type RequestHeader struct {
	ApiKey        uint16
	ApiVersion    wire.Version
	CorrelationID int32

	// ClientID labels the caller in server logs.
	ClientID string
}

// Decode implements wire.Decodable.
func (h *RequestHeader) Decode(src *wire.Cursor, version wire.Version) error {
	var err error
	if h.ApiKey, err = wire.DecodeUint16(src, version); err != nil {
		return fmt.Errorf("api key: %w", err)
	}
	rawVersion, err := wire.DecodeInt16(src, version)
	if err != nil {
		return fmt.Errorf("api version: %w", err)
	}
	h.ApiVersion = wire.Version(rawVersion)
	if h.CorrelationID, err = wire.DecodeInt32(src, version); err != nil {
		return fmt.Errorf("correlation id: %w", err)
	}
	if clientIDRange.Contains(version) {
		if h.ClientID, err = wire.DecodeString(src, version); err != nil {
			return fmt.Errorf("client id: %w", err)
		}
	}
	return nil
}

// WriteSize implements wire.Encodable.
func (h RequestHeader) WriteSize(version wire.Version) int {
	size := wire.Uint16Size + wire.Int16Size + wire.Int32Size
	if clientIDRange.Contains(version) {
		size += wire.SizeOfString(h.ClientID, version)
	}
	return size
}

// Encode implements wire.Encodable.
func (h RequestHeader) Encode(dst *wire.Buffer, version wire.Version) error {
	if err := wire.EncodeUint16(dst, h.ApiKey, version); err != nil {
		return err
	}
	if err := wire.EncodeInt16(dst, int16(h.ApiVersion), version); err != nil {
		return err
	}
	if err := wire.EncodeInt32(dst, h.CorrelationID, version); err != nil {
		return err
	}
	if clientIDRange.Contains(version) {
		return wire.EncodeString(dst, h.ClientID, version)
	}
	return nil
}
