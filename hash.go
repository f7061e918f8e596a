package match

// hashShift is the feedback shift of the window hash. With the default
// MaxMatch of 8, a whole window stays within the 64-bit hash.
const hashShift = 5

// hashAdd folds one more symbol into a window hash. It is a cheap
// shift-and-xor; collisions are expected and are caught by verifying every
// candidate against the buffer.
func hashAdd[S Symbol](h uint64, s S) uint64 {
	return h<<hashShift ^ uint64(s)
}

// hashSlot maps a hash value to a table slot. A prime modulus spreads the
// values over the buckets better than masking off the low bits.
func (m *Matcher[S, W]) hashSlot(h uint64) int {
	return int(h % m.prime)
}

// prevPrime returns the largest prime less than n, for n > 2.
func prevPrime(n uint64) uint64 {
	for p := n - 1; p > 2; p-- {
		if isPrime(p) {
			return p
		}
	}
	return 2
}

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
