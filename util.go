package huff

// lowBits returns the n low-order bits of x.
func lowBits(x uint32, n uint) uint32 {
	if n >= 32 {
		return x
	}
	return x & (uint32(1)<<n - 1)
}

// divRoundUp returns ceil(x / y) for non-negative x.
func divRoundUp(x, y int64) int64 {
	return (x + y - 1) / y
}
