package xdecimal

import "math"

const (
	sqrt10   = 3.1622776601683795
	cbrt10   = 2.154434690031884
	cbrt100  = 4.641588833612779
	log2of10 = math.Ln10 / math.Ln2
)

// Pow returns d raised to the power of e.
// The exponent is converted to float64, so powers beyond the float64 range
// behave as infinite powers.
func (d Decimal) Pow(e Decimal) Decimal {
	if e.IsNaN() {
		return NaN
	}
	return d.PowFloat64(e.Float64())
}

// PowInt returns d raised to the integer power of n.
func (d Decimal) PowInt(n int) Decimal {
	return d.PowFloat64(float64(n))
}

// Pow10 returns 10 raised to the power of x.
func Pow10(x float64) Decimal {
	return Ten.PowFloat64(x)
}

// PowBase returns x raised to the power of d.
func (d Decimal) PowBase(x Decimal) Decimal {
	return x.Pow(d)
}

// PowFloat64 returns d raised to the power of x.
//
// The result is accurate to about 10 significant digits.
// Special cases are:
//
//	d^0 = 1 for any d, including NaN
//	0^x = 0 for x > 0, Inf for x < 0
//	d^x = NaN for d < 0 and non-integer x
func (d Decimal) PowFloat64(x float64) Decimal {
	switch {
	case x == 0:
		return One
	case d.IsNaN() || math.IsNaN(x):
		return NaN
	case d.Equal(One):
		return One
	case d.mant == 0:
		if x > 0 {
			return Zero
		}
		return Inf
	case d.IsInf():
		if x < 0 {
			return Zero
		}
		return signedInf(d.mant < 0 && isOddInteger(x))
	}

	t := d.exp * x
	if math.IsInf(t, 0) {
		if t < 0 {
			return Zero
		}
		return signedInf(d.mant < 0 && isOddInteger(x))
	}

	// Fast path: the result exponent is a safe integer
	if t == math.Trunc(t) && math.Abs(t) < maxSafeInteger {
		if m := math.Pow(d.mant, x); isNormal(m) {
			return normalize(m, t)
		}
	}

	// Keep the integer part of the exponent and fold the residue into the mantissa
	exp := math.Trunc(t)
	residue := t - exp
	if m := math.Pow(10, x*math.Log10(d.mant)+residue); isNormal(m) {
		return normalize(m, exp)
	}

	// Negative mantissas and extreme powers
	if d.mant < 0 && x != math.Trunc(x) {
		return NaN
	}
	r := Ten.PowFloat64(x * d.AbsLog10())
	if d.mant < 0 && isOddInteger(x) {
		return r.Neg()
	}
	return r
}

func signedInf(neg bool) Decimal {
	if neg {
		return NegInf
	}
	return Inf
}

// isNormal reports whether f is finite and not zero.
func isNormal(f float64) bool {
	return f != 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func isOddInteger(x float64) bool {
	return x == math.Trunc(x) && math.Mod(x, 2) != 0
}

// Sqrt computes the square root of d.
// Sqrt returns [NaN] for negative d.
func (d Decimal) Sqrt() Decimal {
	switch {
	case d.IsNaN() || d.mant < 0:
		return NaN
	case d.mant == 0:
		return Zero
	case d.IsInf():
		return Inf
	}
	q := math.Floor(d.exp / 2)
	m := math.Sqrt(d.mant)
	if d.exp-2*q != 0 {
		m *= sqrt10
	}
	return normalize(m, q)
}

// Cbrt computes the cube root of d.
// Unlike [Decimal.Sqrt], negative numbers have a real cube root.
func (d Decimal) Cbrt() Decimal {
	switch {
	case d.IsNaN():
		return NaN
	case d.mant == 0:
		return Zero
	case d.IsInf():
		return d
	}
	q := math.Floor(d.exp / 3)
	m := math.Cbrt(d.mant)
	switch d.exp - 3*q {
	case 1:
		m *= cbrt10
	case 2:
		m *= cbrt100
	}
	return normalize(m, q)
}

// Exp returns e raised to the power of d.
func (d Decimal) Exp() Decimal {
	switch {
	case d.IsNaN():
		return NaN
	case d.IsInf():
		if d.mant < 0 {
			return Zero
		}
		return Inf
	}
	x := d.Float64()
	if -706 < x && x < 709 {
		return NewFromFloat64(math.Exp(x))
	}
	return E.PowFloat64(x)
}

// Log10 returns the decimal logarithm of d as a float64.
// It returns NaN for negative d and -Inf for zero.
func (d Decimal) Log10() float64 {
	return d.exp + math.Log10(d.mant)
}

// AbsLog10 returns the decimal logarithm of |d|.
func (d Decimal) AbsLog10() float64 {
	return d.exp + math.Log10(math.Abs(d.mant))
}

// PLog10 is like [Decimal.Log10], but it returns 0 for d < 1.
func (d Decimal) PLog10() float64 {
	if d.mant <= 0 || d.exp < 0 {
		return 0
	}
	return d.Log10()
}

// Ln returns the natural logarithm of d.
func (d Decimal) Ln() float64 {
	return math.Ln10 * d.Log10()
}

// Log2 returns the binary logarithm of d.
func (d Decimal) Log2() float64 {
	return log2of10 * d.Log10()
}

// Log returns the logarithm of d in the given base.
func (d Decimal) Log(base float64) float64 {
	return math.Ln10 / math.Log(base) * d.Log10()
}

// Log1p returns the natural logarithm of 1 + d.
// Small magnitudes are computed in float64 to keep their precision.
func (d Decimal) Log1p() float64 {
	if d.exp < 0 && d.IsFinite() {
		return math.Log1p(d.Float64())
	}
	return One.Add(d).Ln()
}

// Factorial returns an approximation of Γ(d + 1), accurate to about 8 significant digits.
// Numbers beyond the float64 range have an infinite factorial.
// It uses the Windschitl form of the Stirling approximation:
//
//	Γ(n) ≈ sqrt(2π/n) * (n/e * sqrt(n*sinh(1/n) + 1/(810*n^6)))^n
func (d Decimal) Factorial() Decimal {
	n := d.Float64() + 1
	if math.IsInf(n, 1) {
		return Inf
	}
	base := n / math.E * math.Sqrt(n*math.Sinh(1/n)+1/(810*math.Pow(n, 6)))
	return NewFromFloat64(base).PowFloat64(n).Mul(NewFromFloat64(math.Sqrt(2 * math.Pi / n)))
}

// Sinh returns the hyperbolic sine of d.
func (d Decimal) Sinh() Decimal {
	return d.Exp().Sub(d.Neg().Exp()).Quo(Two)
}

// Cosh returns the hyperbolic cosine of d.
func (d Decimal) Cosh() Decimal {
	return d.Exp().Add(d.Neg().Exp()).Quo(Two)
}

// Tanh returns the hyperbolic tangent of d.
func (d Decimal) Tanh() Decimal {
	return d.Sinh().Quo(d.Cosh())
}

// Asinh returns the inverse hyperbolic sine of d.
func (d Decimal) Asinh() float64 {
	return d.Add(d.Square().Add(One).Sqrt()).Ln()
}

// Acosh returns the inverse hyperbolic cosine of d.
// It returns NaN for d < 1.
func (d Decimal) Acosh() float64 {
	return d.Add(d.Square().Sub(One).Sqrt()).Ln()
}

// Atanh returns the inverse hyperbolic tangent of d.
// It returns NaN for |d| >= 1.
func (d Decimal) Atanh() float64 {
	if d.Abs().Gte(One) {
		return math.NaN()
	}
	return One.Add(d).Quo(One.Sub(d)).Ln() / 2
}
