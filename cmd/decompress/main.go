// Command decompress restores the original bytes from a container written by
// compress.
//
//	decompress [-o data.uhuff] [-v] FILE
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chronos-tachyon/huff"
	"github.com/chronos-tachyon/huff/internal/fileio"
	"github.com/chronos-tachyon/huff/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("decompress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "data.uhuff", "write the restored data to `file`")
	verbose := fs.Bool("v", false, "print the Huffman tree")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: decompress [-o data.uhuff] [-v] FILE")
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
	logg := logger.New(stderr, "decompress", *verbose)

	container, err := fileio.ReadAll(input)
	if err != nil {
		logg.Errorf("%v", err)
		return 1
	}

	r := bytes.NewReader(container)
	h, err := huff.ReadHeader(r)
	if err != nil {
		logg.Errorf("%s: %v", input, err)
		return 1
	}
	var d huff.Decoder
	if err := d.Init(h); err != nil {
		logg.Errorf("%s: %v", input, err)
		return 1
	}

	if *verbose && d.Root() != nil {
		var dump strings.Builder
		_, _ = d.Root().Dump(&dump)
		for _, line := range strings.Split(strings.TrimSuffix(dump.String(), "\n"), "\n") {
			logg.Debugf("%s", line)
		}
	}

	data, err := d.ReadPayload(r)
	if err != nil {
		logg.Errorf("%s: %v", input, err)
		return 1
	}

	if err := fileio.WriteAll(*output, data); err != nil {
		logg.Errorf("%v", err)
		return 1
	}
	logg.Infof("%s: %d bytes -> %s: %d bytes", input, len(container), *output, len(data))
	return 0
}
