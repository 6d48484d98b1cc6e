package numtheory

import "github.com/san-kum/euler/internal/parallel"

// Digits returns the decimal digits of n, most significant first.
func Digits(n uint64) []uint64 {
	if n == 0 {
		return []uint64{0}
	}

	digits := make([]uint64, 0, 20)
	for ; n > 0; n /= 10 {
		digits = append(digits, n%10)
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// Pow returns base**exp by repeated squaring.
func Pow(base, exp uint64) uint64 {
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func DigitPowerSum(n, power uint64) uint64 {
	var sum uint64
	for _, d := range Digits(n) {
		sum += Pow(d, power)
	}
	return sum
}

// DigitPowerValues returns DigitPowerSum(x, power) for every x in 2..limit,
// so element i belongs to x = i+2.
func DigitPowerValues(limit, power uint64, workers int) []uint64 {
	if limit < 2 {
		return nil
	}

	n := int(limit - 1)
	values := make([]uint64, n)
	parallel.For(n, 4096, workers, func(start, end int) {
		for i := start; i < end; i++ {
			values[i] = DigitPowerSum(uint64(i)+2, power)
		}
	})
	return values
}

// DigitPowerFixedPoints scans values laid out as DigitPowerValues returns
// them and reports the numbers equal to their own digit power sum.
func DigitPowerFixedPoints(values []uint64) (uint64, []uint64) {
	var sum uint64
	var fixed []uint64
	for i, v := range values {
		x := uint64(i) + 2
		if v == x {
			sum += x
			fixed = append(fixed, x)
		}
	}
	return sum, fixed
}
