// Package numtheory provides the integer sequences and searches behind the
// power-plot and pentagonal explorations:
//
//   - [DigitPowerSum]: sum of the p-th powers of the decimal digits of n
//   - [DigitPowerValues]: digit power sums for 2..max, computed in parallel
//   - [Pentagonal], [Hexagonal], [Triangular]: polygonal numbers
//   - [IsPentagonal]: exact membership test
//   - [MinPentagonalPair]: pentagonal pair with pentagonal sum and difference
//   - [NextHexPentagonal]: first hexagonal number that is also pentagonal
//
// All arithmetic is on uint64; callers keep inputs small enough that
// 24*x+1 does not overflow.
package numtheory
