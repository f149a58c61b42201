// Package huff implements a static, single-pass Huffman coder for byte
// streams.
//
// Compress counts the symbol frequencies of its input, builds a Huffman tree
// by repeatedly merging the two lightest pending nodes, and packs each byte's
// code MSB-first into 32-bit words.  Decompress reads the frequency table back,
// rebuilds the identical tree, and walks it one bit at a time.
//
// Container layout (all integers big-endian):
//
//	int32   number of table entries, 0 .. 256
//	repeated for each entry, in ascending symbol order:
//	    uint8   symbol
//	    int32   weight (number of occurrences), >= 1
//	int64   total number of symbols (sum of all weights)
//	uint32  payload words; the last word is zero-padded on its low end
//
// Ties between nodes of equal weight are broken in favor of the node that was
// queued first.  Leaves are queued in ascending symbol order and merged nodes
// are queued after them, so a given frequency table always produces the same
// tree and therefore the same container bytes.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huff
