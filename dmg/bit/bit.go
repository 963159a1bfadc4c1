// Package bit holds small helpers for the bit twiddling that shows up
// everywhere in hardware emulation.
package bit

// Combine combines two 8 bit values into a single 16 bit value.
// The high byte is the most significant one.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// Low returns the low (LSB) part of a 16 bit number.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the high (MSB) part of a 16 bit number.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// IsSet checks whether the bit at the given index is 1.
func IsSet(index, value uint8) bool {
	return ((value >> index) & 1) == 1
}

// IsSet16 checks whether the bit at the given index of a 16 bit value is 1.
func IsSet16(index uint8, value uint16) bool {
	return ((value >> index) & 1) == 1
}

// Set returns the value with the bit at the given index set to 1.
func Set(index, value uint8) uint8 {
	return value | (1 << index)
}

// Clear returns the value with the bit at the given index set to 0.
func Clear(index, value uint8) uint8 {
	return value & ^uint8(1<<index)
}

// Value returns 1 if the bit at the given index is set, 0 otherwise.
func Value(index, value uint8) uint8 {
	if IsSet(index, value) {
		return 1
	}
	return 0
}
