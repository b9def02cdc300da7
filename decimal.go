package xdecimal

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Decimal represents an extended-range decimal floating-point number.
// Its zero value corresponds to the numeric value of 0.
// Decimal is designed to be safe for concurrent use by multiple goroutines.
type Decimal struct {
	mant float64 // mantissa, 1 <= |mant| < 10 when normalized
	exp  float64 // integral power of ten
}

const (
	// MaxSignificantDigits is the number of decimal digits a mantissa can carry.
	// Operands whose exponents differ by more than this are absorbed by addition.
	MaxSignificantDigits = 17
	// ExpLimit is the exponent of the infinity sentinels.
	ExpLimit = math.MaxFloat64
	// NegExpLimit is the exponent of the near-zero sentinels.
	NegExpLimit = -1.78e308

	maxSafeInteger = 9_007_199_254_740_991 // 2^53 - 1
	roundTolerance = 4 * 2.220446049250313e-16
)

var (
	Zero   = Decimal{}         // 0
	One    = Decimal{1, 0}     // 1
	Two    = Decimal{2, 0}     // 2
	Ten    = Decimal{1, 1}     // 10
	NegOne = Decimal{-1, 0}    // -1
	Pi     = Decimal{math.Pi, 0}
	Tau    = Decimal{2 * math.Pi, 0}
	E      = Decimal{math.E, 0}

	// NaN is the "not a number" sentinel. It is not equal to itself.
	NaN = Decimal{math.NaN(), math.NaN()}
	// Inf and NegInf represent magnitudes that overflowed the exponent range.
	Inf    = Decimal{1, ExpLimit}
	NegInf = Decimal{-1, ExpLimit}
	// AlmostZero and AlmostNegZero are the smallest representable magnitudes.
	AlmostZero    = Decimal{1, NegExpLimit}
	AlmostNegZero = Decimal{-1, NegExpLimit}
)

// New returns a decimal equal to mant * 10^exp.
// The pair is normalized so that 1 <= |mantissa| < 10.
// A fractional exponent is folded into the mantissa.
//
// New returns [NaN] if either argument is NaN or the mantissa is infinite.
// Exponents beyond [ExpLimit] saturate to [Inf] or [NegInf],
// exponents below -[ExpLimit] saturate to [Zero].
func New(mant, exp float64) Decimal {
	if f := math.Floor(exp); f != exp && !math.IsInf(exp, 0) && !math.IsNaN(exp) {
		mant *= math.Pow(10, exp-f)
		exp = f
	}
	return normalize(mant, exp)
}

// NewRaw returns a decimal with the given fields as is, without normalization.
// It is intended for tests and for data already known to be normalized.
func NewRaw(mant, exp float64) Decimal {
	return Decimal{mant: mant, exp: exp}
}

func normalize(mant, exp float64) Decimal {
	switch {
	case math.IsNaN(mant) || math.IsNaN(exp) || math.IsInf(mant, 0):
		return NaN
	case mant == 0:
		return Zero
	}
	if abs := math.Abs(mant); abs < 1 || abs >= 10 {
		k := int(math.Floor(math.Log10(abs)))
		if k == minPow10Exp {
			mant = mant * 10 / 1e-323
		} else {
			mant /= powerOf10(k)
		}
		// Log10 is not exact near powers of ten
		switch abs = math.Abs(mant); {
		case abs >= 10:
			mant /= 10
			k++
		case abs < 1:
			mant *= 10
			k--
		}
		exp += float64(k)
	}
	return saturate(mant, exp)
}

func saturate(mant, exp float64) Decimal {
	switch {
	case exp >= ExpLimit:
		if mant < 0 {
			return NegInf
		}
		return Inf
	case exp <= -ExpLimit:
		return Zero
	}
	return Decimal{mant: mant, exp: exp}
}

// NewFromFloat64 converts a float64 to a decimal.
// The mantissa is rounded to 15 decimal places to suppress binary
// representation noise, such as 3e-5 / 1e-5 = 2.9999999999999996.
// Infinities map to [Inf] and [NegInf].
func NewFromFloat64(f float64) Decimal {
	switch {
	case math.IsNaN(f):
		return NaN
	case f == 0:
		return Zero
	case f == 1:
		return One
	case f == 2:
		return Two
	case f == -1:
		return NegOne
	case math.IsInf(f, 1):
		return Inf
	case math.IsInf(f, -1):
		return NegInf
	}
	k := int(math.Floor(math.Log10(math.Abs(f))))
	var mant float64
	if k == minPow10Exp {
		mant = f * 10 / 1e-323
	} else {
		mant = math.Round(f/powerOf10(k)*1e15) / 1e15
	}
	return normalize(mant, float64(k))
}

// Number is a constraint for types accepted by [NewFromNumber].
type Number interface {
	constraints.Integer | constraints.Float
}

// NewFromNumber converts any integer or floating-point value to a decimal.
// Integers beyond 2^53 lose precision, same as with a conversion to float64.
func NewFromNumber[T Number](n T) Decimal {
	return NewFromFloat64(float64(n))
}

// Float64 returns the nearest float64 value for d.
// Magnitudes above math.MaxFloat64 convert to ±Inf and
// magnitudes below the smallest subnormal convert to 0.
// For non-negative exponents, results within a relative rounding tolerance
// of an integer are snapped to that integer, so that 1.16e2 converts to 116.
func (d Decimal) Float64() float64 {
	switch {
	case math.IsNaN(d.mant) || math.IsNaN(d.exp) || math.IsInf(d.exp, 0):
		return math.NaN()
	case d.mant == 0:
		return 0
	case d.exp > maxPow10Exp:
		if d.mant > 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	case d.exp < minPow10Exp:
		return 0
	case d.exp == minPow10Exp:
		if d.mant > 0 {
			return 5e-324
		}
		return -5e-324
	}
	f := d.mant * powerOf10(int(d.exp))
	if math.IsInf(f, 0) || d.exp < 0 {
		return f
	}
	r := math.Round(f)
	if math.Abs(r-f) <= roundTolerance*math.Abs(f) {
		return r
	}
	return f
}

// Mantissa returns the mantissa of d, 1 <= |mantissa| < 10 unless d is zero or NaN.
func (d Decimal) Mantissa() float64 {
	return d.mant
}

// Exponent returns the power of ten of d.
func (d Decimal) Exponent() float64 {
	return d.exp
}

// Digits returns the shortest decimal coefficient of the mantissa and
// the exponent such that |d| = coef * 10^exp.
// The coefficient has at most [MaxSignificantDigits] digits.
// For zero and special values Digits returns (0, 0).
func (d Decimal) Digits() (coef uint64, exp float64) {
	if !d.IsFinite() || d.mant == 0 {
		return 0, 0
	}
	var buf [32]byte
	text := strconv.AppendFloat(buf[:0], math.Abs(d.mant), 'e', -1, 64)
	c, shift, ok := parseSignificand(text)
	if !ok {
		return 0, 0
	}
	return uint64(c), d.exp + float64(shift)
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0 or d is NaN
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.mant < 0:
		return -1
	case d.mant > 0:
		return 1
	}
	return 0
}

// IsNaN returns true if d is not a number.
func (d Decimal) IsNaN() bool {
	return math.IsNaN(d.mant) || math.IsNaN(d.exp)
}

// IsInf returns true if d is one of the infinity sentinels.
func (d Decimal) IsInf() bool {
	return d.exp >= ExpLimit && d.mant != 0
}

// IsFinite returns true if d is neither NaN nor infinite.
func (d Decimal) IsFinite() bool {
	return !d.IsNaN() && !d.IsInf()
}

// IsZero returns true if d = 0.
func (d Decimal) IsZero() bool {
	return d.mant == 0
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.mant > 0
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.mant < 0
}

// Round returns d rounded to the nearest integer, with halves rounded away from zero.
// Numbers with 17 or more integer digits are already integers and returned unchanged.
func (d Decimal) Round() Decimal {
	switch {
	case d.IsNaN():
		return NaN
	case d.exp < -1:
		return Zero
	case d.exp < MaxSignificantDigits:
		return NewFromFloat64(math.Round(d.Float64()))
	}
	return d
}

// Trunc returns d rounded towards zero.
func (d Decimal) Trunc() Decimal {
	switch {
	case d.IsNaN():
		return NaN
	case d.exp < 0:
		return Zero
	case d.exp < MaxSignificantDigits:
		return NewFromFloat64(math.Trunc(d.Float64()))
	}
	return d
}

// Floor returns d rounded towards negative infinity.
func (d Decimal) Floor() Decimal {
	switch {
	case d.IsNaN():
		return NaN
	case d.exp < -1:
		if d.mant < 0 {
			return NegOne
		}
		return Zero
	case d.exp < MaxSignificantDigits:
		return NewFromFloat64(math.Floor(d.Float64()))
	}
	return d
}

// Ceil returns d rounded towards positive infinity.
func (d Decimal) Ceil() Decimal {
	switch {
	case d.IsNaN():
		return NaN
	case d.exp < -1:
		if d.mant > 0 {
			return One
		}
		return Zero
	case d.exp < MaxSignificantDigits:
		return NewFromFloat64(math.Ceil(d.Float64()))
	}
	return d
}

// DecimalPlaces returns the number of digits after the decimal point
// needed to write d in plain notation.
// Numbers with 17 or more integer digits have no fractional digits.
func (d Decimal) DecimalPlaces() int {
	if !d.IsFinite() || d.exp >= MaxSignificantDigits {
		return 0
	}
	coef, exp := d.Digits()
	if coef == 0 || exp >= 0 {
		return 0
	}
	return int(-exp)
}

// MantissaWithDecimalPlaces returns the mantissa of d rounded to the given
// number of digits after the decimal point, halves away from zero.
// Rounding is done on the decimal digits of the mantissa, not on its binary value.
func (d Decimal) MantissaWithDecimalPlaces(places int) float64 {
	if !d.IsFinite() || d.mant == 0 {
		return d.mant
	}
	if places < 0 {
		places = 0
	}
	var buf [32]byte
	text := strconv.AppendFloat(buf[:0], math.Abs(d.mant), 'e', -1, 64)
	coef, shift, ok := parseSignificand(text)
	if !ok || -shift <= places {
		return d.mant
	}
	coef = coef.rshHalfUp(-shift - places)
	m, err := strconv.ParseFloat(string(appendCoef(nil, coef, 0))+"e-"+strconv.Itoa(places), 64)
	if err != nil {
		return d.mant
	}
	if d.mant < 0 {
		return -m
	}
	return m
}
