package numtheory

// Pair is a pair of pentagonal numbers P(J) < P(K).
type Pair struct {
	J, K   int
	PJ, PK uint64
	D      uint64
}

// MinPentagonalPair searches the first maxIndex pentagonal numbers for the
// pair whose sum and difference are both pentagonal (within that set) and
// whose difference is smallest.
//
// Once a pair is found at offset j past i, later rows only scan j steps
// ahead: the difference grows with the offset.
func MinPentagonalPair(maxIndex int) (Pair, bool) {
	if maxIndex < 2 {
		return Pair{}, false
	}

	pentagonals := make([]uint64, maxIndex)
	set := make(map[uint64]struct{}, maxIndex)
	for i := range pentagonals {
		p := Pentagonal(uint64(i) + 1)
		pentagonals[i] = p
		set[p] = struct{}{}
	}

	var best Pair
	found := false
	steps := -1

	for i, pi := range pentagonals {
		start := i + 1
		end := len(pentagonals)
		if steps >= 0 && start+steps < end {
			end = start + steps
		}

		for j := start; j < end; j++ {
			pj := pentagonals[j]
			diff := pj - pi
			if _, ok := set[pi+pj]; !ok {
				continue
			}
			if _, ok := set[diff]; !ok {
				continue
			}
			if !found || diff < best.D {
				best = Pair{J: i + 1, K: j + 1, PJ: pi, PK: pj, D: diff}
				found = true
			}
			steps = j - start
		}
	}

	return best, found
}

// NextHexPentagonal returns the first k >= start for which H(k) is also
// pentagonal, together with H(k).
func NextHexPentagonal(start uint64) (uint64, uint64) {
	if start < 1 {
		start = 1
	}
	for k := start; ; k++ {
		if h := Hexagonal(k); IsPentagonal(h) {
			return k, h
		}
	}
}
