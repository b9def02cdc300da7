package xdecimal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the error class of this package.
// All errors returned by parsing and decoding functions belong to it,
// which can be checked with Error.Has(err).
var Error = errs.Class("xdecimal")

var errInvalidDecimal = errors.New("invalid decimal")

// Parse converts a string to a decimal.
// The following grammar is accepted:
//
//	decimal  = "NaN" | "Infinity" | "-Infinity" | number
//	number   = mantissa [ ( "e" | "E" ) exponent ]
//	mantissa = [ "+" | "-" ] digits [ "." [ digits ] ] | [ "+" | "-" ] "." digits
//	exponent = float
//
// The mantissa and the exponent are parsed as float64 values,
// so the exponent itself may be fractional or written in scientific notation.
// Plain numbers outside the float64 range are accepted as well.
// Parse returns an error of class [Error] if the string is malformed.
//
// See also function [MustParse].
func Parse(s string) (d Decimal, err error) {
	defer Error.WrapP(&err)

	switch s {
	case "NaN":
		return NaN, nil
	case "Infinity":
		return Inf, nil
	case "-Infinity":
		return NegInf, nil
	}
	if !isNumeric(s) {
		return Decimal{}, fmt.Errorf("%w %q", errInvalidDecimal, s)
	}

	// Scientific notation
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		m, e := s[:i], s[i+1:]
		mant, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return Decimal{}, fmt.Errorf("mantissa of %q: %w", s, err)
		}
		exp, err := strconv.ParseFloat(e, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Decimal{}, fmt.Errorf("exponent of %q: %w", s, err)
		}
		return New(mant, exp), nil
	}

	// Plain notation
	f, err := strconv.ParseFloat(s, 64)
	switch {
	case errors.Is(err, strconv.ErrRange), err == nil && f == 0 && strings.ContainsAny(s, "123456789"):
		mant, exp, err := rescale(s)
		if err != nil {
			return Decimal{}, err
		}
		return New(mant, float64(exp)), nil
	case err != nil:
		return Decimal{}, fmt.Errorf("%q: %w", s, err)
	}
	return NewFromFloat64(f), nil
}

// isNumeric reports whether s starts like a number.
// It rejects the words "inf" and "nan" that strconv.ParseFloat would accept.
func isNumeric(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
	}
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// rescale moves the decimal point of a plain number behind its first
// significant digit, so that numbers beyond the float64 range can be parsed.
func rescale(s string) (mant float64, exp int, err error) {
	var sign string
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	whole = strings.TrimLeft(whole, "0")
	var digits string
	if whole != "" {
		exp = len(whole) - 1
		digits = whole + frac
	} else {
		trimmed := strings.TrimLeft(frac, "0")
		exp = -(len(frac) - len(trimmed) + 1)
		digits = trimmed
	}
	if digits == "" {
		return 0, 0, nil
	}
	// Digits beyond float64 precision do not change the result
	if len(digits) > 2*MaxSignificantDigits {
		digits = digits[:2*MaxSignificantDigits]
	}
	mant, err = strconv.ParseFloat(sign+digits[:1]+"."+digits[1:], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", sign+s, err)
	}
	return mant, exp, nil
}
