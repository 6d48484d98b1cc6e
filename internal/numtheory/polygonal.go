package numtheory

import "math"

// Pentagonal returns k(3k-1)/2.
func Pentagonal(k uint64) uint64 {
	return k * (3*k - 1) / 2
}

// Hexagonal returns k(2k-1). Every hexagonal number is triangular:
// H(k) = T(2k-1).
func Hexagonal(k uint64) uint64 {
	return k * (2*k - 1)
}

func Triangular(k uint64) uint64 {
	return k * (k + 1) / 2
}

// IsPentagonal reports whether x = P(k) for some positive k, i.e. whether
// 1+24x is a perfect square s*s with s ≡ 5 (mod 6).
func IsPentagonal(x uint64) bool {
	if x == 0 {
		return false
	}
	s, ok := isqrt(24*x + 1)
	return ok && (s+1)%6 == 0
}

// IsHexagonal reports whether x = H(k) for some positive k, i.e. whether
// 1+8x is a perfect square s*s with s ≡ 3 (mod 4).
func IsHexagonal(x uint64) bool {
	if x == 0 {
		return false
	}
	s, ok := isqrt(8*x + 1)
	return ok && (s+1)%4 == 0
}

// isqrt returns floor(sqrt(v)) and whether v is a perfect square.
func isqrt(v uint64) (uint64, bool) {
	s := uint64(math.Sqrt(float64(v)))
	for s*s > v {
		s--
	}
	for (s+1)*(s+1) <= v {
		s++
	}
	return s, s*s == v
}
