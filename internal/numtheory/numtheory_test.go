package numtheory

import (
	"reflect"
	"testing"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		n    uint64
		want []uint64
	}{
		{0, []uint64{0}},
		{7, []uint64{7}},
		{10, []uint64{1, 0}},
		{4150, []uint64{4, 1, 5, 0}},
		{194979, []uint64{1, 9, 4, 9, 7, 9}},
	}

	for _, tt := range tests {
		if got := Digits(tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Digits(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestPow(t *testing.T) {
	if got := Pow(9, 5); got != 59049 {
		t.Errorf("Pow(9, 5) = %d, want 59049", got)
	}
	if got := Pow(3, 0); got != 1 {
		t.Errorf("Pow(3, 0) = %d, want 1", got)
	}
}

func TestDigitPowerSum(t *testing.T) {
	tests := []struct {
		n, p, want uint64
	}{
		{1634, 4, 1634},
		{8208, 4, 8208},
		{4150, 5, 4150},
		{12, 2, 5},
		{99, 5, 2 * 59049},
	}

	for _, tt := range tests {
		if got := DigitPowerSum(tt.n, tt.p); got != tt.want {
			t.Errorf("DigitPowerSum(%d, %d) = %d, want %d", tt.n, tt.p, got, tt.want)
		}
	}
}

func TestDigitPowerValuesLayout(t *testing.T) {
	values := DigitPowerValues(20, 2, 4)
	if len(values) != 19 {
		t.Fatalf("expected 19 values, got %d", len(values))
	}
	for i, v := range values {
		if want := DigitPowerSum(uint64(i)+2, 2); v != want {
			t.Errorf("values[%d] = %d, want %d", i, v, want)
		}
	}

	if DigitPowerValues(1, 5, 4) != nil {
		t.Error("expected nil below 2")
	}
}

func TestDigitPowerFixedPoints(t *testing.T) {
	tests := []struct {
		name  string
		max   uint64
		power uint64
		sum   uint64
		fixed []uint64
	}{
		{"fourth powers", 100000, 4, 19316, []uint64{1634, 8208, 9474}},
		{"fifth powers", 400000, 5, 443839, []uint64{4150, 4151, 54748, 92727, 93084, 194979}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, fixed := DigitPowerFixedPoints(DigitPowerValues(tt.max, tt.power, 0))
			if sum != tt.sum {
				t.Errorf("sum = %d, want %d", sum, tt.sum)
			}
			if !reflect.DeepEqual(fixed, tt.fixed) {
				t.Errorf("fixed = %v, want %v", fixed, tt.fixed)
			}
		})
	}
}

func TestPolygonal(t *testing.T) {
	pent := []uint64{1, 5, 12, 22, 35, 51, 70, 92, 117, 145}
	for i, want := range pent {
		k := uint64(i) + 1
		if got := Pentagonal(k); got != want {
			t.Errorf("Pentagonal(%d) = %d, want %d", k, got, want)
		}
		if !IsPentagonal(want) {
			t.Errorf("IsPentagonal(%d) = false", want)
		}
	}

	for _, x := range []uint64{0, 2, 3, 4, 6, 13, 23, 40754} {
		if IsPentagonal(x) {
			t.Errorf("IsPentagonal(%d) = true", x)
		}
	}

	if got := Hexagonal(143); got != 40755 {
		t.Errorf("Hexagonal(143) = %d, want 40755", got)
	}
	if got := Triangular(285); got != 40755 {
		t.Errorf("Triangular(285) = %d, want 40755", got)
	}
	for _, x := range []uint64{1, 6, 15, 28, 45, 40755} {
		if !IsHexagonal(x) {
			t.Errorf("IsHexagonal(%d) = false", x)
		}
	}
	for _, x := range []uint64{0, 3, 10, 21, 40754} {
		if IsHexagonal(x) {
			t.Errorf("IsHexagonal(%d) = true", x)
		}
	}
	for k := uint64(1); k < 50; k++ {
		if Hexagonal(k) != Triangular(2*k-1) {
			t.Fatalf("H(%d) != T(%d)", k, 2*k-1)
		}
	}
}

func TestMinPentagonalPair(t *testing.T) {
	pair, ok := MinPentagonalPair(2400)
	if !ok {
		t.Fatal("expected a pair")
	}
	if pair.J != 1020 || pair.K != 2167 {
		t.Errorf("indices = (%d, %d), want (1020, 2167)", pair.J, pair.K)
	}
	if pair.PJ != 1560090 || pair.PK != 7042750 {
		t.Errorf("values = (%d, %d), want (1560090, 7042750)", pair.PJ, pair.PK)
	}
	if pair.D != 5482660 {
		t.Errorf("D = %d, want 5482660", pair.D)
	}

	if _, ok := MinPentagonalPair(1000); ok {
		t.Error("no pair should exist in the first 1000 pentagonal numbers")
	}
	if _, ok := MinPentagonalPair(1); ok {
		t.Error("a single value cannot form a pair")
	}
}

func TestNextHexPentagonal(t *testing.T) {
	k, h := NextHexPentagonal(2)
	if k != 143 || h != 40755 {
		t.Errorf("NextHexPentagonal(2) = (%d, %d), want (143, 40755)", k, h)
	}

	k, h = NextHexPentagonal(144)
	if k != 27693 || h != 1533776805 {
		t.Errorf("NextHexPentagonal(144) = (%d, %d), want (27693, 1533776805)", k, h)
	}
}
