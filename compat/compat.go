// Package compat converts extended-range decimals to and from the
// arbitrary-precision decimals of [apd] and [shopspring].
//
// Every conversion comes in two flavors.
// Field conversions move the coefficient and the exponent directly and
// are the fast path.
// String conversions format the value and parse it with the other library,
// which is slower but relies only on the documented text formats.
//
// Values that the target cannot hold, such as NaN for shopspring decimals
// or exponents beyond int32, are reported as errors of class [Error].
//
// [apd]: https://pkg.go.dev/github.com/cockroachdb/apd/v3
// [shopspring]: https://pkg.go.dev/github.com/shopspring/decimal
package compat

import (
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/xdecimal"
	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

// Error is the error class of this package.
var Error = errs.Class("compat")

// digits returns the signed coefficient and the exponent of d,
// checking that the exponent fits into int32.
func digits(d xdecimal.Decimal) (coef int64, exp int32, err error) {
	c, e := d.Digits()
	if e < math.MinInt32 || e > math.MaxInt32 {
		return 0, 0, Error.New("exponent %v is out of range", e)
	}
	coef = int64(c)
	if d.IsNeg() {
		coef = -coef
	}
	return coef, int32(e), nil
}

// scale multiplies a parsed coefficient by 10^exp.
func scale(coef xdecimal.Decimal, exp int32) xdecimal.Decimal {
	if coef.IsZero() {
		return xdecimal.Zero
	}
	return xdecimal.New(coef.Mantissa(), coef.Exponent()+float64(exp))
}

// ToAPD converts d to an apd decimal by copying its digits.
// NaN and infinities map to the corresponding apd forms.
func ToAPD(d xdecimal.Decimal) (*apd.Decimal, error) {
	switch {
	case d.IsNaN():
		return &apd.Decimal{Form: apd.NaN}, nil
	case d.IsInf():
		return &apd.Decimal{Form: apd.Infinite, Negative: d.IsNeg()}, nil
	}
	coef, exp, err := digits(d)
	if err != nil {
		return nil, err
	}
	return apd.New(coef, exp), nil
}

// FromAPD converts an apd decimal to an extended-range decimal.
// Coefficients with more than 17 digits are rounded.
func FromAPD(x *apd.Decimal) (xdecimal.Decimal, error) {
	switch x.Form {
	case apd.NaN, apd.NaNSignaling:
		return xdecimal.NaN, nil
	case apd.Infinite:
		if x.Negative {
			return xdecimal.NegInf, nil
		}
		return xdecimal.Inf, nil
	}
	coef, err := xdecimal.Parse(string(x.Coeff.Append(nil, 10)))
	if err != nil {
		return xdecimal.Decimal{}, Error.Wrap(err)
	}
	d := scale(coef, x.Exponent)
	if x.Negative {
		d = d.Neg()
	}
	return d, nil
}

// ToAPDString is like [ToAPD], but it converts d through its string form.
func ToAPDString(d xdecimal.Decimal) (*apd.Decimal, error) {
	x, _, err := apd.NewFromString(d.String())
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return x, nil
}

// FromAPDString is like [FromAPD], but it converts x through its string form.
func FromAPDString(x *apd.Decimal) (xdecimal.Decimal, error) {
	if x.Form == apd.NaNSignaling {
		return xdecimal.NaN, nil
	}
	d, err := xdecimal.Parse(x.Text('e'))
	if err != nil {
		return xdecimal.Decimal{}, Error.Wrap(err)
	}
	return d, nil
}

// ToShopspring converts d to a shopspring decimal by copying its digits.
// Shopspring decimals have no NaN or infinities, so these return an error.
func ToShopspring(d xdecimal.Decimal) (decimal.Decimal, error) {
	if !d.IsFinite() {
		return decimal.Decimal{}, Error.New("%v cannot be converted to shopspring decimal", d)
	}
	coef, exp, err := digits(d)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.New(coef, exp), nil
}

// FromShopspring converts a shopspring decimal to an extended-range decimal.
// Coefficients with more than 17 digits are rounded.
func FromShopspring(x decimal.Decimal) (xdecimal.Decimal, error) {
	coef, err := xdecimal.Parse(x.Coefficient().String())
	if err != nil {
		return xdecimal.Decimal{}, Error.Wrap(err)
	}
	return scale(coef, x.Exponent()), nil
}

// ToShopspringString is like [ToShopspring], but it converts d through its string form.
func ToShopspringString(d xdecimal.Decimal) (decimal.Decimal, error) {
	x, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Decimal{}, Error.Wrap(err)
	}
	return x, nil
}

// FromShopspringString is like [FromShopspring], but it converts x through its string form.
func FromShopspringString(x decimal.Decimal) (xdecimal.Decimal, error) {
	d, err := xdecimal.Parse(x.String())
	if err != nil {
		return xdecimal.Decimal{}, Error.Wrap(err)
	}
	return d, nil
}
