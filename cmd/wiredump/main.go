// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/pflag"
	"github.com/zeebo/blake3"

	"github.com/seqwire/seqwire/frame"
	"github.com/seqwire/seqwire/lib/version"
	"github.com/seqwire/seqwire/wire"
)

func main() {
	os.Exit(run())
}

func run() int {
	flagSet := pflag.NewFlagSet("wiredump", pflag.ContinueOnError)
	showVersion := flagSet.Bool("version", false, "print version and exit")
	showHeader := flagSet.Bool("header", false, "decode the request header opening each frame")
	headerVersion := flagSet.Int16("header-version", 1, "protocol version to decode headers at")
	showHex := flagSet.Bool("hex", false, "hex dump each frame payload")
	maxFrames := flagSet.Int("max-frames", 0, "stop after this many frames (0 = all)")
	verbose := flagSet.Bool("verbose", false, "enable debug logging, including codec tracing")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: wiredump [flags] <capture-file|->\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if *showVersion {
		fmt.Printf("wiredump %s\n", version.Info())
		return 0
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return 2
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	if *verbose {
		wire.SetTraceLogger(logger)
	}

	input, closeInput, err := openCapture(flagSet.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	defer closeInput()

	options := dumpOptions{
		header:        *showHeader,
		headerVersion: wire.Version(*headerVersion),
		hex:           *showHex,
		maxFrames:     *maxFrames,
	}
	if err := dump(os.Stdout, input, options, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// openCapture opens the capture source, decompressing by file
// extension. "-" reads stdin (uncompressed).
func openCapture(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	closeFile := func() { file.Close() }

	switch {
	case strings.HasSuffix(path, ".gz"):
		reader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, nil, fmt.Errorf("opening gzip capture: %w", err)
		}
		return reader, func() { reader.Close(); file.Close() }, nil

	case strings.HasSuffix(path, ".zst"):
		reader, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, nil, fmt.Errorf("opening zstd capture: %w", err)
		}
		return reader, func() { reader.Close(); file.Close() }, nil

	case strings.HasSuffix(path, ".lz4"):
		return lz4.NewReader(file), closeFile, nil

	default:
		return file, closeFile, nil
	}
}

type dumpOptions struct {
	header        bool
	headerVersion wire.Version
	hex           bool
	maxFrames     int
}

// dump reads frames until EOF (or maxFrames) and prints one summary
// line per frame.
func dump(out io.Writer, in io.Reader, options dumpOptions, logger *slog.Logger) error {
	for index := 0; ; index++ {
		if options.maxFrames > 0 && index == options.maxFrames {
			logger.Debug("frame limit reached", "frames", index)
			return nil
		}
		payload, err := frame.ReadFrame(in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("end of capture", "frames", index)
				return nil
			}
			return fmt.Errorf("frame %d: %w", index, err)
		}

		digest := blake3.Sum256(payload)
		fmt.Fprintf(out, "frame %d: %d bytes  blake3 %s\n",
			index, len(payload), hex.EncodeToString(digest[:6]))

		if options.header {
			if err := printHeader(out, payload, options.headerVersion); err != nil {
				// A frame without a decodable header is worth flagging
				// but does not stop the dump.
				fmt.Fprintf(out, "  header: %v\n", err)
			}
		}
		if options.hex {
			fmt.Fprint(out, indent(hex.Dump(payload)))
		}
	}
}

func printHeader(out io.Writer, payload []byte, headerVersion wire.Version) error {
	header, err := wire.Unmarshal[frame.RequestHeader](payload, headerVersion)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  header: api=%d version=%d correlation=%d client=%q\n",
		header.ApiKey, header.ApiVersion, header.CorrelationID, header.ClientID)
	return nil
}

func indent(block string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
