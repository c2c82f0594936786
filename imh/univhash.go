package imh

import "math/bits"

// largestPrime64 is 2^64 - 59, the largest prime below 2^64 and the fixed
// modulus the universal hasher reduces against.
const largestPrime64 = 18446744073709551557

// twoPow64ModP is 2^64 mod largestPrime64. Because largestPrime64 is
// 2^64-59, this is simply 59; it lets a 128-bit (hi, lo) accumulator be
// folded down to 64 bits without a general-purpose 128-bit division
// routine: hi:lo mod P == (hi*twoPow64ModP + lo) mod P, applied until hi
// is zero.
const twoPow64ModP = 59

// accumulateTerm folds a*b into the running 128-bit (hi, lo) sum, using
// bits.Mul64/bits.Add64 instead of a plain uint64 multiply-add so the
// product can't silently truncate.
func accumulateTerm(hi, lo, a, b uint64) (uint64, uint64) {
	ph, pl := bits.Mul64(a, b)
	var carry uint64
	lo, carry = bits.Add64(lo, pl, 0)
	hi, _ = bits.Add64(hi, ph, carry)
	return hi, lo
}

// reduceMod128 computes (hi:lo) mod largestPrime64.
func reduceMod128(hi, lo uint64) uint64 {
	for hi != 0 {
		ph, pl := bits.Mul64(hi, twoPow64ModP)
		var carry uint64
		lo, carry = bits.Add64(lo, pl, 0)
		hi = ph + carry
	}
	return lo % largestPrime64
}
