package huff

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

const (
	countBytes = 4
	entryBytes = 1 + 4
	totalBytes = 8
)

// Header is the frequency table at the front of a container.
type Header struct {
	// Entries lists every symbol that occurs in the original data, in
	// strictly ascending Symbol order.  This is also the order in which the
	// leaves are queued when the tree is built.
	Entries []Entry

	// Total is the number of symbols in the original data.  It bounds the
	// decode loop, so that pad bits in the final word are never decoded.
	Total int64
}

// NewHeader builds the Header for data.
func NewHeader(data []byte) (Header, error) {
	entries, err := CountFrequencies(data)
	if err != nil {
		return Header{}, err
	}
	return Header{Entries: entries, Total: int64(len(data))}, nil
}

// Size returns the encoded size of h in bytes.
func (h Header) Size() int64 {
	return countBytes + entryBytes*int64(len(h.Entries)) + totalBytes
}

// Validate checks the consistency rules that ReadHeader enforces.
func (h Header) Validate() error {
	if len(h.Entries) > NumSymbols {
		return malformedf("entry count %d exceeds %d", len(h.Entries), NumSymbols)
	}
	for i, e := range h.Entries {
		if e.Weight < 1 || e.Weight > math.MaxInt32 {
			return malformedf("entry %d: weight %d out of range", i, e.Weight)
		}
		if i > 0 && h.Entries[i-1].Symbol >= e.Symbol {
			return malformedf("entry %d: symbol %d not in ascending order", i, e.Symbol)
		}
	}
	if sum := totalWeight(h.Entries); sum != h.Total {
		return malformedf("total symbol count %d does not match sum of weights %d", h.Total, sum)
	}
	return nil
}

// WriteTo writes the encoded header to w.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	buf.Grow(int(h.Size()))

	var tmp [totalBytes]byte
	binary.BigEndian.PutUint32(tmp[:countBytes], uint32(len(h.Entries)))
	buf.Write(tmp[:countBytes])
	for _, e := range h.Entries {
		buf.WriteByte(byte(e.Symbol))
		binary.BigEndian.PutUint32(tmp[:4], uint32(e.Weight))
		buf.Write(tmp[:4])
	}
	binary.BigEndian.PutUint64(tmp[:], uint64(h.Total))
	buf.Write(tmp[:])

	n, err := buf.WriteTo(w)
	return n, errors.WithStack(err)
}

// ReadHeader reads and validates a header from r.  Inconsistent or truncated
// headers are reported as ErrMalformedContainer.
func ReadHeader(r io.Reader) (Header, error) {
	var tmp [totalBytes]byte

	if err := readFull(r, tmp[:countBytes], "entry count"); err != nil {
		return Header{}, err
	}
	count := int32(binary.BigEndian.Uint32(tmp[:countBytes]))
	if count < 0 || count > NumSymbols {
		return Header{}, malformedf("entry count %d out of range 0 .. %d", count, NumSymbols)
	}

	entries := make([]Entry, count)
	for i := range entries {
		if err := readFull(r, tmp[:entryBytes], "table entry"); err != nil {
			return Header{}, err
		}
		entries[i] = Entry{
			Symbol: Symbol(tmp[0]),
			Weight: int64(int32(binary.BigEndian.Uint32(tmp[1:entryBytes]))),
		}
	}

	if err := readFull(r, tmp[:], "total symbol count"); err != nil {
		return Header{}, err
	}
	h := Header{
		Entries: entries,
		Total:   int64(binary.BigEndian.Uint64(tmp[:])),
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// payloadBits returns the exact number of meaningful payload bits for a
// header and its code table.
func payloadBits(h Header, t *codeTable) int64 {
	var bits int64
	for _, e := range h.Entries {
		bits += e.Weight * int64(t.codes[e.Symbol].Size)
	}
	return bits
}

// payloadWords returns the number of words needed to hold bits.
func payloadWords(bits int64) int64 {
	return divRoundUp(bits, wordBits)
}

func readFull(r io.Reader, p []byte, what string) error {
	_, err := io.ReadFull(r, p)
	switch {
	case err == nil:
		return nil
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return malformedf("truncated header: missing %s", what)
	default:
		return errors.Wrapf(err, "reading %s", what)
	}
}
