package binary

// Scalar byte-order reversal for callers that hold a value as a native
// integer rather than raw bytes. Each function is its own inverse.

func Swap16(i uint16) uint16 {
	return (i<<8)&0xff00 | i>>8
}

func Swap32(i uint32) uint32 {
	b0 := (i & 0x000000ff) << 24
	b1 := (i & 0x0000ff00) << 8
	b2 := (i & 0x00ff0000) >> 8
	b3 := (i & 0xff000000) >> 24

	return b0 | b1 | b2 | b3
}

func Swap64(i uint64) uint64 {
	b0 := (i & 0x00000000000000ff) << 56
	b1 := (i & 0x000000000000ff00) << 40
	b2 := (i & 0x0000000000ff0000) << 24
	b3 := (i & 0x00000000ff000000) << 8
	b4 := (i & 0x000000ff00000000) >> 8
	b5 := (i & 0x0000ff0000000000) >> 24
	b6 := (i & 0x00ff000000000000) >> 40
	b7 := (i & 0xff00000000000000) >> 56

	return b0 | b1 | b2 | b3 | b4 | b5 | b6 | b7
}
