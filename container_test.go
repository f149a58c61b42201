package huff

import (
	"bytes"
	"encoding/hex"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const exampleContainer = "00000004" +
	"6100000004" +
	"6200000003" +
	"6300000002" +
	"6400000001" +
	"000000000000000a" +
	"0abfc000"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestCompress_ExactBytes(t *testing.T) {
	actual, err := Compress([]byte("aaaabbbccd"))
	require.NoError(t, err)
	require.Equal(t, exampleContainer, hex.EncodeToString(actual))
	require.Len(t, actual, 36)
}

func TestCompress_EmptyContainer(t *testing.T) {
	actual, err := Compress(nil)
	require.NoError(t, err)
	require.Equal(t, "00000000"+"0000000000000000", hex.EncodeToString(actual))
}

func TestHeader_RoundTrip(t *testing.T) {
	h, err := NewHeader([]byte("abracadabra"))
	require.NoError(t, err)
	require.Equal(t, []Entry{{'a', 5}, {'b', 2}, {'c', 1}, {'d', 1}, {'r', 2}}, h.Entries)
	require.Equal(t, int64(11), h.Total)

	var buf bytes.Buffer
	n, err := h.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, h.Size(), n)
	require.Equal(t, int64(4+5*5+8), n)

	actual, err := ReadHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, h, actual)
	require.Zero(t, buf.Len())
}

func TestHeader_WriteToRejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	_, err := Header{Entries: []Entry{{'a', 1}}, Total: 2}.WriteTo(&buf)
	require.ErrorIs(t, err, ErrMalformedContainer)
	require.Zero(t, buf.Len())
}

func TestHeader_WeightOverflow(t *testing.T) {
	h := Header{Entries: []Entry{{'a', math.MaxInt32 + 1}}, Total: math.MaxInt32 + 1}

	var buf bytes.Buffer
	_, err := h.WriteTo(&buf)
	require.ErrorIs(t, err, ErrMalformedContainer)
	require.Zero(t, buf.Len())

	var e Encoder
	require.ErrorIs(t, e.Init(h), ErrMalformedContainer)

	var d Decoder
	require.ErrorIs(t, d.Init(h), ErrMalformedContainer)
}

func TestReadHeader_Malformed(t *testing.T) {
	type testRow struct {
		name string
		hex  string
	}

	testData := [...]testRow{
		{name: "too-many-entries", hex: "00000101" + strings.Repeat("0000000001", 257) + "0000000000000101"},
		{name: "negative-count", hex: "ffffffff" + "0000000000000000"},
		{name: "zero-weight", hex: "00000001" + "6100000000" + "0000000000000000"},
		{name: "weight-overflow", hex: "00000001" + "6180000000" + "0000000080000000"},
		{name: "negative-weight", hex: "00000001" + "61ffffffff" + "ffffffffffffffff"},
		{name: "duplicate-symbol", hex: "00000002" + "6100000001" + "6100000001" + "0000000000000002"},
		{name: "descending-symbols", hex: "00000002" + "6200000001" + "6100000001" + "0000000000000002"},
		{name: "total-mismatch", hex: "00000001" + "6100000003" + "0000000000000004"},
		{name: "total-without-entries", hex: "00000000" + "0000000000000001"},
		{name: "empty", hex: ""},
		{name: "short-count", hex: "000000"},
		{name: "short-entry", hex: "00000001" + "610000"},
		{name: "short-total", hex: "00000001" + "6100000001" + "00000000"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := ReadHeader(bytes.NewReader(mustHex(t, row.hex)))
			require.ErrorIs(t, err, ErrMalformedContainer)
		})
	}
}

func TestDecompress_Malformed(t *testing.T) {
	type testRow struct {
		name string
		hex  string
	}

	testData := [...]testRow{
		{name: "too-many-entries", hex: "00000101"},
		{name: "missing-payload", hex: exampleContainer[:len(exampleContainer)-8]},
		{name: "partial-word", hex: exampleContainer[:len(exampleContainer)-2]},
		{name: "trailing-word", hex: exampleContainer + "00000000"},
		{name: "trailing-byte", hex: exampleContainer + "00"},
		{name: "too-few-words", hex: "00000001" + "6100000021" + "0000000000000021" + "00000000"},
		{name: "empty-with-trailing-word", hex: "00000000" + "0000000000000000" + "00000000"},
		{name: "single-symbol-bad-bit", hex: "00000001" + "6100000001" + "0000000000000001" + "80000000"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := Decompress(mustHex(t, row.hex))
			require.ErrorIs(t, err, ErrMalformedContainer)
			require.Nil(t, out)
		})
	}
}

func TestDecompress_Example(t *testing.T) {
	out, err := Decompress(mustHex(t, exampleContainer))
	require.NoError(t, err)
	require.Equal(t, "aaaabbbccd", string(out))
}
