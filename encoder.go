package huff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encoder maps Symbols to the codes of one Huffman tree.
type Encoder struct {
	header Header
	root   *Node
	table  codeTable
}

// Init initializes this Encoder from a frequency header.  The header's
// entries must be in ascending Symbol order and consistent with its Total;
// see Header.Validate.
//
// An empty header yields an Encoder with no codes, which can only encode
// empty input.
func (e *Encoder) Init(h Header) error {
	if err := h.Validate(); err != nil {
		return err
	}

	*e = Encoder{header: h}
	if len(h.Entries) == 0 {
		return nil
	}

	root, err := NewTree(h.Entries)
	if err != nil {
		return err
	}
	e.root = root
	e.table = deriveCodes(root)
	return nil
}

// Encode returns the Code for a Symbol.  The Code has size 0 if the Symbol
// did not occur in the header.
func (e *Encoder) Encode(symbol Symbol) Code {
	return e.table.codes[symbol]
}

// Header returns the header this Encoder was initialized with.
func (e *Encoder) Header() Header {
	return e.header
}

// Root returns the root of the Huffman tree, or nil for an empty header.
func (e *Encoder) Root() *Node {
	return e.root
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder) MinSize() byte {
	return e.table.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder) MaxSize() byte {
	return e.table.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, 0 for Symbols that do not occur.
func (e *Encoder) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := range out {
		out[symbol] = e.table.codes[symbol].Size
	}
	return out
}

// PayloadBits returns the number of meaningful bits in the payload, before
// padding to a whole word.
func (e *Encoder) PayloadBits() int64 {
	return payloadBits(e.header, &e.table)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.table.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.table.maxSize)
	for _, entry := range e.header.Entries {
		hc := e.table.codes[entry.Symbol]
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", entry.Symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// WritePayload writes the bit-packed payload for data to w and returns the
// number of bytes written.  data must be the input the Encoder's header was
// counted from.
func (e *Encoder) WritePayload(w io.Writer, data []byte) (int64, error) {
	if int64(len(data)) != e.header.Total {
		return 0, errors.Errorf("input has %d symbols, header declares %d", len(data), e.header.Total)
	}
	bw := NewBitWriter(w)
	for i, b := range data {
		hc := e.table.codes[b]
		if hc.Size == 0 {
			return bw.Words() * wordBytes, errors.Errorf("symbol %d at offset %d is not in the header", b, i)
		}
		bw.WriteCode(hc)
	}
	err := bw.Flush()
	assert.Assertf(err != nil || bw.Words() == payloadWords(e.PayloadBits()), "wrote %d words for %d bits", bw.Words(), e.PayloadBits())
	return bw.Words() * wordBytes, err
}

// Compress returns the container for data.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := CompressTo(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressTo writes the container for data to w and returns the number of
// bytes written.
func CompressTo(w io.Writer, data []byte) (int64, error) {
	h, err := NewHeader(data)
	if err != nil {
		return 0, err
	}

	var e Encoder
	if err := e.Init(h); err != nil {
		return 0, err
	}

	n, err := h.WriteTo(w)
	if err != nil {
		return n, err
	}
	m, err := e.WritePayload(w, data)
	return n + m, err
}
