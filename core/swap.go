package core

import "math/bits"

// Swap32 reverses the four bytes of `x` so that B3 B2 B1 B0 becomes B0 B1 B2 B3.
// The result does not depend on the host byte order and Swap32(Swap32(x)) == x.
func Swap32(x uint32) uint32 {
	return (x>>24)&0x000000FF |
		(x>>8)&0x0000FF00 |
		(x<<8)&0x00FF0000 |
		(x<<24)&0xFF000000
}

// Swap32Builtin is the intrinsic variant of Swap32.
func Swap32Builtin(x uint32) uint32 {
	return bits.ReverseBytes32(x)
}
