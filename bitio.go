package huff

import (
	"encoding/binary"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// wordBits is the width of one payload word.
const wordBits = 32

// wordBytes is the encoded size of one payload word.
const wordBytes = wordBits / 8

// BitWriter packs variable-length codes MSB-first into 32-bit words and writes
// each completed word big-endian to its io.Writer.  The first bit written
// becomes the most significant bit of the first word.
//
// Write errors are sticky: after the first failure nothing more is written,
// and the error is reported by Flush and Err.
type BitWriter struct {
	w   io.Writer
	err error

	// acc holds the pending bits in its held low-order bits.
	acc   uint32
	held  uint
	words int64
}

// NewBitWriter returns a BitWriter that emits words to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: w}
}

// WriteBits appends the n low-order bits of bits, most significant first.
// n must be between 1 and 32.
func (bw *BitWriter) WriteBits(bits uint32, n uint) {
	assert.Assertf(n >= 1 && n <= wordBits, "WriteBits: n %d out of range 1 .. %d", n, wordBits)
	assert.Assertf(lowBits(bits, n) == bits, "WriteBits: %#x does not fit in %d bits", bits, n)

	switch {
	case bw.held+n < wordBits:
		bw.acc = bw.acc<<n | bits
		bw.held += n

	case bw.held+n == wordBits:
		bw.acc = bw.acc<<n | bits
		bw.emit(bw.acc)
		bw.acc = 0
		bw.held = 0

	default:
		// The first (wordBits - held) bits complete the current word and
		// the rest start the next one.
		prefixLen := wordBits - bw.held
		suffixLen := n - prefixLen
		bw.acc = bw.acc<<prefixLen | bits>>suffixLen
		bw.emit(bw.acc)
		bw.acc = lowBits(bits, suffixLen)
		bw.held = suffixLen
	}
}

// WriteCode appends a Code.  Codes longer than one word are written in
// word-sized pieces, most significant piece first.
func (bw *BitWriter) WriteCode(hc Code) {
	assert.Assertf(hc.Size >= 1 && hc.Size <= MaxCodeSize, "WriteCode: invalid code size %d", hc.Size)
	remaining := uint(hc.Size)
	for remaining > wordBits {
		remaining -= wordBits
		bw.WriteBits(uint32(hc.Bits>>remaining), wordBits)
	}
	bw.WriteBits(lowBits(uint32(hc.Bits), remaining), remaining)
}

// Flush left-justifies any pending bits into a final zero-padded word and
// writes it.  It returns the first write error, if any.
func (bw *BitWriter) Flush() error {
	if bw.held > 0 {
		bw.emit(bw.acc << (wordBits - bw.held))
		bw.acc = 0
		bw.held = 0
	}
	return bw.err
}

// Err returns the first write error, if any.
func (bw *BitWriter) Err() error {
	return bw.err
}

// Words returns the number of words written so far.
func (bw *BitWriter) Words() int64 {
	return bw.words
}

func (bw *BitWriter) emit(word uint32) {
	if bw.err != nil {
		return
	}
	var buf [wordBytes]byte
	binary.BigEndian.PutUint32(buf[:], word)
	if _, err := bw.w.Write(buf[:]); err != nil {
		bw.err = errors.WithStack(err)
		return
	}
	bw.words++
}

// BitReader unpacks the words written by a BitWriter.  It keeps a two-word
// window: buffer holds the bits being consumed and next holds the following
// word, read ahead as soon as buffer is refilled.  Both are MSB-aligned.
//
// buffer is refilled from next only once it is empty, so refills happen on
// word boundaries.  A multi-bit read that straddles a boundary takes its
// leading bits from the old buffer and the rest from the new one, mirroring
// the prefix/suffix split of BitWriter.WriteBits.
type BitReader struct {
	r   io.Reader
	err error

	buffer  uint32
	held    uint
	next    uint32
	pending uint
	eof     bool
}

// NewBitReader returns a BitReader that consumes words from r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: r}
}

// ReadBit returns the next bit as 0 or 1.
//
// Running out of input is reported as io.ErrUnexpectedEOF: the caller always
// knows how many bits it needs, so any shortfall is a truncated stream.
func (br *BitReader) ReadBit() (uint32, error) {
	if br.held == 0 {
		if err := br.fill(); err != nil {
			return 0, err
		}
	}
	bit := br.buffer >> (wordBits - 1)
	br.buffer <<= 1
	br.held--
	return bit, nil
}

// ReadBits returns the next n bits, first bit most significant.  n must be
// between 1 and 32.
func (br *BitReader) ReadBits(n uint) (uint32, error) {
	assert.Assertf(n >= 1 && n <= wordBits, "ReadBits: n %d out of range 1 .. %d", n, wordBits)

	if br.held >= n {
		out := br.buffer >> (wordBits - n)
		br.buffer <<= n
		br.held -= n
		return out, nil
	}

	// The held bits are the prefix; the suffix comes from the refilled
	// buffer.
	prefixLen := br.held
	suffixLen := n - prefixLen
	var prefix uint32
	if prefixLen > 0 {
		prefix = br.buffer >> (wordBits - prefixLen)
	}
	br.buffer = 0
	br.held = 0
	if err := br.fill(); err != nil {
		return 0, err
	}
	assert.Assertf(br.held == wordBits, "fill: loaded %d bits", br.held)
	out := prefix<<suffixLen | br.buffer>>(wordBits-suffixLen)
	br.buffer <<= suffixLen
	br.held -= suffixLen
	return out, nil
}

// Remaining returns the number of unread bits in the window, including the
// read-ahead word.
func (br *BitReader) Remaining() uint {
	return br.held + br.pending
}

// AtEOF reports whether the underlying reader has no further whole words
// beyond the window.
func (br *BitReader) AtEOF() (bool, error) {
	if br.err != nil {
		return false, br.err
	}
	if br.pending == 0 && !br.eof {
		if err := br.load(); err != nil {
			return false, err
		}
	}
	return br.pending == 0 && br.eof, nil
}

// fill moves next into the empty buffer and reads the word after it into
// next.
func (br *BitReader) fill() error {
	if br.err != nil {
		return br.err
	}
	assert.Assertf(br.held == 0, "fill: %d bits still held", br.held)

	if br.pending == 0 && !br.eof {
		if err := br.load(); err != nil {
			return err
		}
	}
	if br.pending == 0 {
		br.err = io.ErrUnexpectedEOF
		return br.err
	}
	br.buffer, br.held = br.next, br.pending
	br.next, br.pending = 0, 0

	if !br.eof {
		return br.load()
	}
	return nil
}

// load reads one word into next, which must be empty.
func (br *BitReader) load() error {
	var buf [wordBytes]byte
	_, err := io.ReadFull(br.r, buf[:])
	switch {
	case err == nil:
		br.next = binary.BigEndian.Uint32(buf[:])
		br.pending = wordBits
		return nil

	case err == io.EOF:
		br.eof = true
		return nil

	case err == io.ErrUnexpectedEOF:
		br.err = malformedf("payload ends inside a %d-bit word", wordBits)
		return br.err

	default:
		br.err = errors.WithStack(err)
		return br.err
	}
}
