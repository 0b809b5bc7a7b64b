// Package report renders the byte order demonstration: the host classification
// followed by each sample value next to its byte swapped counterpart.
package report

import (
	"fmt"
	"io"

	"github.com/moolekkari/endianness/common"
	"github.com/moolekkari/endianness/core"
	"github.com/moolekkari/endianness/internal/endian"
)

// DefaultValues are the samples swapped when no others are given.
var DefaultValues = []uint32{0x12345678, 0xAABBCCDD}

// Sample pairs a value with its byte swapped form.
type Sample struct {
	Original uint32
	Swapped  uint32
}

// NewSample swaps `v` with `s`.
func NewSample(s core.Swapper, v uint32) Sample {
	return Sample{Original: v, Swapped: s.Swap32(v)}
}

// String implements Stringer interface.
func (s Sample) String() string {
	return fmt.Sprintf("Original number: %s\nAfter swapping endianness: %s\n",
		common.HexFormat(s.Original), common.HexFormat(s.Swapped))
}

// Write prints the classification of `order` and one sample per value to `w`.
func Write(w io.Writer, order endian.Order, s core.Swapper, values []uint32) error {
	if _, err := fmt.Fprintf(w, "System is %s\n\n", order); err != nil {
		return err
	}
	for _, v := range values {
		if _, err := fmt.Fprintf(w, "%s\n", NewSample(s, v)); err != nil {
			return err
		}
	}
	return nil
}
