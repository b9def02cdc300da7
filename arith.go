package xdecimal

import "math"

// Add returns the (possibly rounded) sum of decimals d and e.
//
// If the exponents of d and e differ by more than [MaxSignificantDigits],
// the smaller operand is below the precision of the larger one and
// the larger operand is returned unchanged.
// Add returns [NaN] for NaN operands and for the sum of opposite infinities.
func (d Decimal) Add(e Decimal) Decimal {
	switch {
	case d.IsNaN() || e.IsNaN():
		return NaN
	case d.IsInf() && e.IsInf():
		if d.Sign() != e.Sign() {
			return NaN
		}
		return d
	case d.IsInf():
		return d
	case e.IsInf():
		return e
	case d.mant == 0:
		return e
	case e.mant == 0:
		return d
	}
	big, small := d, e
	if e.exp > d.exp {
		big, small = e, d
	}
	if big.exp-small.exp > MaxSignificantDigits {
		return big
	}
	// Scaling both mantissas by 1000 keeps the shifted operand away from
	// the subnormal range and preserves its low digits.
	// Explicit conversions prevent fused multiply-add.
	m := float64(1e3*big.mant) + float64(1e3*small.mant*powerOf10(int(small.exp-big.exp)))
	return normalize(m, big.exp-3)
}

// Sub returns the (possibly rounded) difference between decimals d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns the (possibly rounded) product of decimals d and e.
// Mul returns [NaN] for an infinity multiplied by zero.
func (d Decimal) Mul(e Decimal) Decimal {
	switch {
	case d.IsNaN() || e.IsNaN():
		return NaN
	case d.IsInf() && e.mant == 0, e.IsInf() && d.mant == 0:
		return NaN
	case d.IsInf() || e.IsInf():
		return signedInf((d.mant < 0) != (e.mant < 0))
	}
	return normalize(d.mant*e.mant, d.exp+e.exp)
}

// Quo returns the (possibly rounded) quotient of decimals d and e.
// Division by zero and division of two infinities return [NaN].
func (d Decimal) Quo(e Decimal) Decimal {
	switch {
	case d.IsNaN() || e.IsNaN():
		return NaN
	case e.mant == 0:
		return NaN
	case d.IsInf() && e.IsInf():
		return NaN
	case e.IsInf():
		return Zero
	case d.IsInf():
		return signedInf((d.mant < 0) != (e.mant < 0))
	}
	return normalize(d.mant/e.mant, d.exp-e.exp)
}

// FMA returns the (possibly rounded) fused multiply-addition of decimals d, e, and f.
// It computes d * e + f. Unlike the decimal representation, the mantissas
// are not fused, so the result matches d.Mul(e).Add(f).
func (d Decimal) FMA(e, f Decimal) Decimal {
	return d.Mul(e).Add(f)
}

// Reciprocal returns 1 / d.
func (d Decimal) Reciprocal() Decimal {
	switch {
	case d.IsNaN() || d.mant == 0:
		return NaN
	case d.IsInf():
		return Zero
	}
	return normalize(1/d.mant, -d.exp)
}

// Square returns d * d.
func (d Decimal) Square() Decimal {
	return d.Mul(d)
}

// Cube returns d * d * d.
func (d Decimal) Cube() Decimal {
	return d.Mul(d).Mul(d)
}

// Neg returns a decimal with the opposite sign.
// The exponent is kept as is.
func (d Decimal) Neg() Decimal {
	return Decimal{mant: -d.mant, exp: d.exp}
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	return Decimal{mant: math.Abs(d.mant), exp: d.exp}
}

// CopySign returns a decimal with the magnitude of d and the sign of e.
func (d Decimal) CopySign(e Decimal) Decimal {
	if d.IsNeg() == e.IsNeg() {
		return d
	}
	return d.Neg()
}
