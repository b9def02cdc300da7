package xdecimal

import "strconv"

// fint (Fast INTeger) is a wrapper around uint64.
// It holds the decimal digits of a mantissa, at most MaxSignificantDigits of them.
type fint uint64

// maxFint is a maximum value of fint.
const maxFint = 9_999_999_999_999_999_999

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if maxFint-x < y {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	if z > maxFint {
		return 0, false
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	switch {
	case shift <= 0:
		return x, true
	case shift == 1 && x < maxFint/10:
		return x * 10, true
	case shift >= len(pow10):
		return 0, false
	}
	return x.mul(pow10[shift])
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	return z.add(fint(b))
}

// rshHalfUp (Right Shift) calculates x / 10^shift and rounds result
// using "half away from zero" rule.
func (x fint) rshHalfUp(shift int) fint {
	switch {
	case x == 0:
		return 0
	case shift <= 0:
		return x
	case shift >= len(pow10):
		return 0
	}
	y := pow10[shift]
	z := x / y
	r := x - z*y // r = x % y
	if r >= y>>1 {
		z++
	}
	return z
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x fint) prec() int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// parseSignificand reads the output of strconv.AppendFloat(buf, f, 'e', -1, 64)
// for a positive finite f and returns its digits as an integer
// together with the decimal exponent of the last digit.
func parseSignificand(text []byte) (coef fint, exp int, ok bool) {
	var (
		pos   int
		scale int
		frac  bool
	)
	for ; pos < len(text); pos++ {
		c := text[pos]
		switch {
		case c >= '0' && c <= '9':
			coef, ok = coef.fsa(1, c-'0')
			if !ok {
				return 0, 0, false
			}
			if frac {
				scale++
			}
			continue
		case c == '.' && !frac:
			frac = true
			continue
		}
		break
	}
	if pos == len(text) || text[pos] != 'e' {
		return 0, 0, false
	}
	shift, err := strconv.Atoi(string(text[pos+1:]))
	if err != nil {
		return 0, 0, false
	}
	return coef, shift - scale, true
}

// appendCoef appends the decimal digits of x followed by the given number of zeros.
func appendCoef(buf []byte, x fint, zeros int) []byte {
	n := x.prec()
	if n == 0 {
		n = 1
	}
	start := len(buf)
	for i := 0; i < n; i++ {
		buf = append(buf, '0')
	}
	for i := start + n - 1; i >= start; i-- {
		buf[i] = byte(x%10) + '0'
		x /= 10
	}
	for i := 0; i < zeros; i++ {
		buf = append(buf, '0')
	}
	return buf
}
