package endian

import (
	"encoding/binary"
	"unsafe"
)

// Order is the byte ordering of multi-byte integers in memory.
type Order uint8

const (
	// LittleEndian stores the least significant byte at the lowest address.
	LittleEndian Order = iota
	// BigEndian stores the most significant byte at the lowest address.
	BigEndian
)

// Host is the byte order of the running machine.
var Host = Detect()

// Detect inspects the in-memory layout of the 16-bit value 0x0001.
// If its first byte holds the 1 the machine is little endian.
func Detect() Order {
	var probe uint16 = 0x0001
	if *(*byte)(unsafe.Pointer(&probe)) == 1 {
		return LittleEndian
	}
	return BigEndian
}

// IsLittleEndian reports whether the host is little endian.
func IsLittleEndian() bool {
	return Host == LittleEndian
}

// IsBigEndian reports whether the host is big endian.
func IsBigEndian() bool {
	return Host == BigEndian
}

// ByteOrder returns the encoding/binary counterpart of o.
func (o Order) ByteOrder() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// String implements Stringer interface.
func (o Order) String() string {
	switch o {
	case LittleEndian:
		return "Little Endian"
	case BigEndian:
		return "Big Endian"
	}
	return "Unknown Endian"
}
