package huff

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedContainer is returned when a container's header is
	// inconsistent or its payload does not hold exactly the declared number
	// of symbols.
	ErrMalformedContainer = errors.New("malformed Huffman container")

	// ErrNoSymbols is returned when a tree is requested from an empty queue.
	ErrNoSymbols = errors.New("cannot build Huffman tree without symbols")

	// ErrInvalidCapacity is returned by NewQueue for a non-positive capacity.
	ErrInvalidCapacity = errors.New("queue capacity must be positive")

	// ErrInputTooLarge is returned when a symbol occurs more often than the
	// container's 32-bit weight field can record.
	ErrInputTooLarge = errors.New("symbol weight overflows container")
)

func malformedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedContainer, format, args...)
}
