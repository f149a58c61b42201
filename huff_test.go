package huff

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, input []byte) []byte {
	t.Helper()
	container, err := Compress(input)
	require.NoError(t, err)
	output, err := Decompress(container)
	require.NoError(t, err)
	require.Equal(t, len(input), len(output))
	require.True(t, bytes.Equal(input, output), "round trip changed %d bytes of input", len(input))
	return container
}

func TestRoundTrip_Empty(t *testing.T) {
	container := roundTrip(t, []byte{})
	require.Len(t, container, 12)

	output, err := Decompress(container)
	require.NoError(t, err)
	require.NotNil(t, output)
	require.Empty(t, output)
}

func TestRoundTrip_SingleSymbol(t *testing.T) {
	input := bytes.Repeat([]byte{'x'}, 1000)
	container := roundTrip(t, input)
	// header, then 1000 one-bit codes in 32 words
	require.Len(t, container, 4+5+8+32*wordBytes)
}

func TestRoundTrip_SingleByte(t *testing.T) {
	for _, b := range []byte{0x00, 0x7f, 0xff} {
		roundTrip(t, []byte{b})
	}
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 200; i++ {
		input := make([]byte, rng.Intn(2000))
		rng.Read(input)
		roundTrip(t, input)
	}
}

func TestRoundTrip_Text(t *testing.T) {
	for _, chars := range [][]byte{uniuri.StdChars, []byte("ab"), []byte("aaaaaaab"), []byte(" etaoinshrdlu\n")} {
		for _, n := range []int{1, 2, 31, 32, 33, 1000, 65537} {
			roundTrip(t, []byte(uniuri.NewLenChars(n, chars)))
		}
	}
}

func TestRoundTrip_AllBytes(t *testing.T) {
	input := make([]byte, 0, NumSymbols*3)
	for i := 0; i < 3; i++ {
		for b := 0; b < NumSymbols; b++ {
			input = append(input, byte(b))
		}
	}
	roundTrip(t, input)
}

func TestRoundTrip_Streams(t *testing.T) {
	input := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 100))

	var buf bytes.Buffer
	n, err := CompressTo(&buf, input)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	output, err := DecompressFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, input, output)
}

func TestCompress_Deterministic(t *testing.T) {
	input := []byte(uniuri.NewLen(5000))
	first, err := Compress(input)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Compress(input)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestCompress_Skewed(t *testing.T) {
	input := []byte(strings.Repeat("a", 9000) + strings.Repeat("b", 600) + strings.Repeat("c", 300) + strings.Repeat("d", 100))
	e := makeTestEncoder(t, string(input))
	require.Less(t, float64(e.PayloadBits())/float64(len(input)), 1.5)

	container := roundTrip(t, input)
	require.Less(t, len(container), len(input)/4)
}

func TestCompress_Uniform(t *testing.T) {
	input := make([]byte, 0, NumSymbols*100)
	for i := 0; i < 100; i++ {
		for b := 0; b < NumSymbols; b++ {
			input = append(input, byte(b))
		}
	}

	e := makeTestEncoder(t, string(input))
	require.Equal(t, byte(8), e.MinSize())
	require.Equal(t, byte(8), e.MaxSize())
	require.Equal(t, int64(8*len(input)), e.PayloadBits())

	container := roundTrip(t, input)
	header := 4 + 5*NumSymbols + 8
	require.Equal(t, header+len(input), len(container))
}
