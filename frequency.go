package huff

import (
	"math"

	"github.com/pkg/errors"
)

// Entry records how many times a Symbol occurs in the input.
type Entry struct {
	Symbol Symbol
	Weight int64
}

// CountFrequencies scans data once and returns one Entry for every Symbol
// that occurs in it, in ascending Symbol order.  An empty input yields no
// entries.
//
// CountFrequencies returns ErrInputTooLarge if some Symbol occurs more than
// math.MaxInt32 times, since the container cannot record such a weight.
func CountFrequencies(data []byte) ([]Entry, error) {
	var counts [NumSymbols]int64
	for _, b := range data {
		counts[b]++
	}
	return entriesFromCounts(&counts)
}

// entriesFromCounts turns a symbol-indexed histogram into table entries,
// skipping symbols that never occur.
func entriesFromCounts(counts *[NumSymbols]int64) ([]Entry, error) {
	entries := make([]Entry, 0, NumSymbols)
	for symbol := 0; symbol <= int(MaxSymbol); symbol++ {
		weight := counts[symbol]
		if weight == 0 {
			continue
		}
		if weight > math.MaxInt32 {
			return nil, errors.Wrapf(ErrInputTooLarge, "symbol %d occurs %d times", symbol, weight)
		}
		entries = append(entries, Entry{Symbol: Symbol(symbol), Weight: weight})
	}
	return entries, nil
}

// totalWeight returns the sum of all weights.
func totalWeight(entries []Entry) int64 {
	var sum int64
	for _, e := range entries {
		sum += e.Weight
	}
	return sum
}
