package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/huff"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "data.huff")
	require.NoError(t, os.WriteFile(input, []byte("aaaabbbccd"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", output, "-v", "-stats", input}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stderr.String(), "[DEBUG] \tEncode(97) = \"0\"")

	container, err := os.ReadFile(output)
	require.NoError(t, err)
	data, err := huff.Decompress(container)
	require.NoError(t, err)
	require.Equal(t, "aaaabbbccd", string(data))

	var s summary
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &s))
	require.Equal(t, int64(10), s.InputBytes)
	require.Equal(t, int64(36), s.ContainerBytes)
	require.Equal(t, int64(32), s.HeaderBytes)
	require.Equal(t, int64(19), s.PayloadBits)
	require.Equal(t, 4, s.DistinctSymbols)
	require.Equal(t, []codeStats{
		{Symbol: 'a', Weight: 4, Code: "0"},
		{Symbol: 'b', Weight: 3, Code: "10"},
		{Symbol: 'c', Weight: 2, Code: "111"},
		{Symbol: 'd', Weight: 1, Code: "110"},
	}, s.Codes)
}

func TestRun_Arguments(t *testing.T) {
	for _, args := range [][]string{nil, {"a", "b"}, {"-bogus", "a"}} {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 1, run(args, &stdout, &stderr))
		require.Contains(t, stderr.String(), "usage: compress")
	}
}

func TestRun_MissingInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", filepath.Join(t.TempDir(), "out"), filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "[ERROR]")
}
