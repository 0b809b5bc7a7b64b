// Package core defines and implements the byte order swap of 32-bit unsigned integers.
// Two interchangeable strategies are provided: an arithmetic one built from masked shifts,
// which is independent of the host memory layout, and one delegating to the compiler
// intrinsic exposed by math/bits. Both produce bit-identical results for every input.
package core
