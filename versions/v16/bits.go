package v16

import (
	"fmt"
	"math/bits"
)

// RotateLeft32 rotates x left by k bits.
func RotateLeft32(x uint32, k int) uint32 {
	return bits.RotateLeft32(x, k)
}

// RotateRight32 rotates x right by k bits.
func RotateRight32(x uint32, k int) uint32 {
	return bits.RotateLeft32(x, -k)
}

// PaddedBinary32 formats x as a 32 character binary string.
func PaddedBinary32(x uint32) string {
	return fmt.Sprintf("%032b", x)
}
