package qmath

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// QubitWeight returns the index weight of qubit q in an n-qubit register.
// Qubit 0 is the most significant bit: QubitWeight(3, 0) = 4.
func QubitWeight(nqubits, q int) int {
	return 1 << (nqubits - q - 1)
}

// InsertZeroBit widens x by one bit, inserting a zero at bit position m
// (counted from the least significant bit). Bits of x at or above m move up.
// Example: InsertZeroBit(0b11, 1) = 0b101.
func InsertZeroBit(x, m int) int {
	return ((x >> m) << (m + 1)) | (x & (1<<m - 1))
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// IsPermutation reports whether order holds each of 0..len(order)-1 exactly once.
func IsPermutation(order []int) bool {
	n := len(order)
	if n > 64 {
		return false
	}

	var seen uint64
	for _, q := range order {
		if q < 0 || q >= n || seen&(1<<uint(q)) != 0 {
			return false
		}

		seen |= 1 << uint(q)
	}

	return true
}

// InversePermutation returns inv such that inv[order[i]] = i.
func InversePermutation(order []int) []int {
	inv := make([]int, len(order))
	for i, q := range order {
		inv[q] = i
	}

	return inv
}
