package common

import (
	"fmt"
)

const hexFormat = "0x%08x"

// HexFormat renders `v` as a zero padded lowercase hexadecimal literal.
func HexFormat(v uint32) string {
	return fmt.Sprintf(hexFormat, v)
}
