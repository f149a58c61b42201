package huff

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// maxPrealloc caps the output buffer reserved ahead of decoding.
const maxPrealloc = 1 << 20

// Decoder turns a bitstream back into Symbols by walking a Huffman tree.
type Decoder struct {
	header Header
	root   *Node
}

// Init initializes this Decoder from a frequency header.  The tree it builds
// is identical to the one an Encoder builds from the same header.
func (d *Decoder) Init(h Header) error {
	if err := h.Validate(); err != nil {
		return err
	}

	*d = Decoder{header: h}
	if len(h.Entries) == 0 {
		return nil
	}

	root, err := NewTree(h.Entries)
	if err != nil {
		return err
	}
	d.root = root
	return nil
}

// Header returns the header this Decoder was initialized with.
func (d *Decoder) Header() Header {
	return d.header
}

// Root returns the root of the Huffman tree, or nil for an empty header.
func (d *Decoder) Root() *Node {
	return d.root
}

// Decode reads bits from br until they name one Symbol.
//
// A tree consisting of a single leaf uses the one-bit code "0"; any other bit
// in that position is rejected as ErrMalformedContainer.
func (d *Decoder) Decode(br *BitReader) (Symbol, error) {
	if d.root == nil {
		return 0, malformedf("no symbols in frequency table")
	}

	n := d.root
	if n.IsLeaf() {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit != 0 {
			return 0, malformedf("invalid code for single-symbol table")
		}
		return n.Symbol, nil
	}

	for !n.IsLeaf() {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Symbol, nil
}

// ReadPayload decodes exactly Header().Total symbols from r.
//
// The payload must end with the word that holds the last symbol's final bit.
// A payload that runs out early, ends inside a word, or carries extra words is
// rejected as ErrMalformedContainer.
func (d *Decoder) ReadPayload(r io.Reader) ([]byte, error) {
	// The header is untrusted until the payload backs it up.
	prealloc := d.header.Total
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	out := make([]byte, 0, prealloc)
	br := NewBitReader(r)
	for i := int64(0); i < d.header.Total; i++ {
		symbol, err := d.Decode(br)
		if err == io.ErrUnexpectedEOF {
			return nil, malformedf("payload ends after %d of %d symbols", i, d.header.Total)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, byte(symbol))
	}

	// Whatever is left in the window is padding of the last word.
	if br.Remaining() >= wordBits {
		return nil, malformedf("payload has unused words after %d symbols", d.header.Total)
	}
	eof, err := br.AtEOF()
	if err != nil {
		return nil, err
	}
	if !eof {
		return nil, malformedf("payload has unused words after %d symbols", d.header.Total)
	}
	return out, nil
}

// Decompress reconstructs the original bytes from a container.
func Decompress(container []byte) ([]byte, error) {
	return DecompressFrom(bytes.NewReader(container))
}

// DecompressFrom reads a whole container from r and reconstructs the original
// bytes.  The container must be the last thing in r.
func DecompressFrom(r io.Reader) ([]byte, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	var d Decoder
	if err := d.Init(h); err != nil {
		return nil, err
	}

	out, err := d.ReadPayload(r)
	if err != nil {
		return nil, errors.WithMessagef(err, "decoding %d symbols", h.Total)
	}
	return out, nil
}
