// Command compress Huffman-codes one file into a container.
//
//	compress [-o data.huff] [-v] [-stats] FILE
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/chronos-tachyon/huff"
	"github.com/chronos-tachyon/huff/internal/fileio"
	"github.com/chronos-tachyon/huff/internal/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type codeStats struct {
	Symbol int    `json:"symbol"`
	Weight int64  `json:"weight"`
	Code   string `json:"code"`
}

type summary struct {
	Input           string      `json:"input"`
	Output          string      `json:"output"`
	InputBytes      int64       `json:"input_bytes"`
	ContainerBytes  int64       `json:"container_bytes"`
	HeaderBytes     int64       `json:"header_bytes"`
	DistinctSymbols int         `json:"distinct_symbols"`
	PayloadBits     int64       `json:"payload_bits"`
	BitsPerSymbol   float64     `json:"bits_per_symbol"`
	Codes           []codeStats `json:"codes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "data.huff", "write the container to `file`")
	verbose := fs.Bool("v", false, "print the code table")
	stats := fs.Bool("stats", false, "print a JSON summary on standard output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: compress [-o data.huff] [-v] [-stats] FILE")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	input := fs.Arg(0)
	logg := logger.New(stderr, "compress", *verbose)

	data, err := fileio.ReadAll(input)
	if err != nil {
		logg.Errorf("%v", err)
		return 1
	}

	h, err := huff.NewHeader(data)
	if err != nil {
		logg.Errorf("%s: %v", input, err)
		return 1
	}
	var e huff.Encoder
	if err := e.Init(h); err != nil {
		logg.Errorf("%s: %v", input, err)
		return 1
	}

	var buf bytes.Buffer
	headerBytes, err := h.WriteTo(&buf)
	if err == nil {
		_, err = e.WritePayload(&buf, data)
	}
	if err != nil {
		logg.Errorf("%s: %v", input, err)
		return 1
	}

	if *verbose {
		var dump strings.Builder
		_, _ = e.Dump(&dump)
		for _, line := range strings.Split(strings.TrimSuffix(dump.String(), "\n"), "\n") {
			logg.Debugf("%s", line)
		}
	}

	if err := fileio.WriteAll(*output, buf.Bytes()); err != nil {
		logg.Errorf("%v", err)
		return 1
	}
	logg.Infof("%s: %d bytes -> %s: %d bytes", input, len(data), *output, buf.Len())

	if *stats {
		s := summary{
			Input:           input,
			Output:          *output,
			InputBytes:      int64(len(data)),
			ContainerBytes:  int64(buf.Len()),
			HeaderBytes:     headerBytes,
			DistinctSymbols: len(h.Entries),
			PayloadBits:     e.PayloadBits(),
			Codes:           make([]codeStats, 0, len(h.Entries)),
		}
		if len(data) > 0 {
			s.BitsPerSymbol = float64(s.PayloadBits) / float64(len(data))
		}
		for _, entry := range h.Entries {
			hc := e.Encode(entry.Symbol)
			s.Codes = append(s.Codes, codeStats{
				Symbol: int(entry.Symbol),
				Weight: entry.Weight,
				Code:   fmt.Sprintf("%0*b", int(hc.Size), hc.Bits),
			})
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			logg.Errorf("%v", err)
			return 1
		}
	}
	return 0
}
