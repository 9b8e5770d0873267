// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

// Wiredump inspects a capture of seqwire protocol frames. It reads
// size-prefixed frames from a file (or stdin), and prints one line
// per frame: index, payload length, and a BLAKE3 content digest for
// diffing captures. With --header it also decodes the request header
// that opens each frame; with --hex it appends a full hex dump of
// the payload.
//
// Captures compressed with gzip (.gz), zstd (.zst), or lz4 (.lz4)
// are decompressed transparently based on the file extension.
//
// Exit codes:
//
//	0  all frames read
//	1  malformed capture (error printed to stderr)
//	2  bad arguments
package main
