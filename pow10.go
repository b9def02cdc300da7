package xdecimal

import (
	"math"
	"strconv"
)

const (
	minPow10Exp = -324 // 1e-324 rounds to 0
	maxPow10Exp = 308
)

// powersOf10 is a table of float64 powers of 10, where
// powersOf10[x - minPow10Exp] = 10^x.
var powersOf10 = newPowersOf10()

// newPowersOf10 parses each power from its decimal literal, which makes
// every entry the correctly rounded float64 nearest to 10^x.
// Repeated multiplication would accumulate error at the extremes.
func newPowersOf10() [maxPow10Exp - minPow10Exp + 1]float64 {
	var tab [maxPow10Exp - minPow10Exp + 1]float64
	for i := range tab {
		f, err := strconv.ParseFloat("1e"+strconv.Itoa(i+minPow10Exp), 64)
		if err != nil {
			panic("powersOf10: " + err.Error())
		}
		tab[i] = f
	}
	return tab
}

// powerOf10 returns 10^n from the table.
// Exponents above the table overflow to +Inf, exponents below underflow to 0.
func powerOf10(n int) float64 {
	switch {
	case n < minPow10Exp:
		return 0
	case n > maxPow10Exp:
		return math.Inf(1)
	}
	return powersOf10[n-minPow10Exp]
}
