package core

import "fmt"

// Strategy names a byte swap implementation.
type Strategy string

const (
	// StrategyShift swaps with four masked shifts.
	StrategyShift = Strategy("shift")
	// StrategyBuiltin swaps with the compiler intrinsic.
	StrategyBuiltin = Strategy("builtin")
)

// Swapper is the interface that reverses the byte order of a 32-bit value.
type Swapper interface {
	Swap32(x uint32) uint32
}

// SwapFunc adapts a plain function to the Swapper interface.
type SwapFunc func(x uint32) uint32

// Swap32 calls f(x).
func (f SwapFunc) Swap32(x uint32) uint32 {
	return f(x)
}

// Strategies returns the known strategies, the default one first.
func Strategies() []Strategy {
	return []Strategy{StrategyShift, StrategyBuiltin}
}

// NewSwapper returns the Swapper implementing strategy `s`.
func NewSwapper(s Strategy) (Swapper, error) {
	switch s {
	case StrategyShift:
		return SwapFunc(Swap32), nil
	case StrategyBuiltin:
		return SwapFunc(Swap32Builtin), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
}
