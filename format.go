package xdecimal

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxFixedExp is the exponent above which [Decimal.Fixed] switches to
// exponential notation instead of writing out every zero.
const maxFixedExp = 100_000

// String implements the [fmt.Stringer] interface and returns
// a string representation of the decimal.
// Numbers with exponents in (-7, 21) are written in plain notation,
// other numbers use [Decimal.Exponential] with 16 places.
// Special values are written as "NaN", "Infinity" and "-Infinity".
//
// See also method [Decimal.Format].
func (d Decimal) String() string {
	return d.plain(-1)
}

func (d Decimal) plain(places int) string {
	if s, ok := d.special(); ok {
		return s
	}
	switch {
	case d.mant == 0 || d.exp <= -ExpLimit:
		return "0"
	case -7 < d.exp && d.exp < 21:
		if places < 0 {
			return d.shortest()
		}
		return strconv.FormatFloat(d.Float64(), 'f', places, 64)
	case places < 0:
		return d.Exponential(16)
	}
	return d.Exponential(places)
}

// shortest writes d in plain notation using the digits of [Decimal.Digits],
// so that no binary noise of the float64 conversion shows up.
func (d Decimal) shortest() string {
	coef, exp := d.Digits()
	buf := make([]byte, 0, 32)
	if d.mant < 0 {
		buf = append(buf, '-')
	}
	if exp >= 0 {
		return string(appendCoef(buf, fint(coef), int(exp)))
	}
	digits := appendCoef(nil, fint(coef), 0)
	if p := len(digits) + int(exp); p > 0 {
		buf = append(buf, digits[:p]...)
		buf = append(buf, '.')
		buf = append(buf, digits[p:]...)
	} else {
		buf = append(buf, "0."...)
		buf = append(buf, strings.Repeat("0", -p)...)
		buf = append(buf, digits...)
	}
	return string(buf)
}

// special returns the names of NaN and infinities.
func (d Decimal) special() (string, bool) {
	switch {
	case d.IsNaN():
		return "NaN", true
	case d.exp >= ExpLimit:
		if d.mant < 0 {
			return "-Infinity", true
		}
		return "Infinity", true
	}
	return "", false
}

func zeroText(places int, suffix string) string {
	if places > 0 {
		return "0." + strings.Repeat("0", places) + suffix
	}
	return "0" + suffix
}

// Exponential returns d in scientific notation with the given number
// of digits after the decimal point, for example "1.23e+45" or "4.5e-6".
// The exponent is written in full, without leading zeros.
// Negative places select the shortest mantissa that round trips.
func (d Decimal) Exponential(places int) string {
	if s, ok := d.special(); ok {
		return s
	}
	if d.mant == 0 || d.exp <= -ExpLimit {
		return zeroText(places, "e+0")
	}
	buf := strconv.AppendFloat(make([]byte, 0, 32), d.mant, 'e', places, 64)
	pos := bytes.LastIndexByte(buf, 'e')
	// Rounding may carry into the next power, as in 9.99 -> 1.0e+01
	shift, err := strconv.Atoi(string(buf[pos+1:]))
	if err != nil {
		return "NaN"
	}
	exp := d.exp + float64(shift)
	buf = buf[:pos+1]
	if exp >= 0 {
		buf = append(buf, '+')
	}
	buf = strconv.AppendFloat(buf, exp, 'f', -1, 64)
	return string(buf)
}

// Fixed returns d in plain notation with the given number of digits
// after the decimal point.
// Numbers with 17 or more integer digits are written as their mantissa
// digits padded with zeros; exponents of 100000 and above use
// [Decimal.Exponential] instead.
// Negative places select the shortest digits that round trip.
// Otherwise numbers below the float64 range are written as 0.
func (d Decimal) Fixed(places int) string {
	if s, ok := d.special(); ok {
		return s
	}
	switch {
	case d.mant == 0 || d.exp <= -ExpLimit:
		return zeroText(places, "")
	case d.exp >= maxFixedExp:
		return d.Exponential(places)
	case d.exp >= MaxSignificantDigits:
		coef, exp := d.Digits()
		buf := make([]byte, 0, int(d.exp)+places+3)
		if d.mant < 0 {
			buf = append(buf, '-')
		}
		buf = appendCoef(buf, fint(coef), int(exp))
		if places > 0 {
			buf = append(buf, '.')
			buf = append(buf, strings.Repeat("0", places)...)
		}
		return string(buf)
	case places < 0 && d.exp > -maxFixedExp:
		return d.shortest()
	}
	return strconv.FormatFloat(d.Float64(), 'f', places, 64)
}

// Precision returns d with the given number of significant digits.
// It uses [Decimal.Fixed] when the integer part fits into places digits
// and the number is not too small, otherwise [Decimal.Exponential].
// Places less than 1 are treated as 1.
func (d Decimal) Precision(places int) string {
	if places < 1 {
		places = 1
	}
	// Rounding 9.996 to three digits carries into the exponent
	if d.IsFinite() && d.mant != 0 {
		if m, err := strconv.ParseFloat(strconv.FormatFloat(d.mant, 'e', places-1, 64), 64); err == nil {
			d = New(m, d.exp)
		}
	}
	switch {
	case d.exp <= -7:
		return d.Exponential(places - 1)
	case float64(places) > d.exp:
		return d.Fixed(places - int(d.exp) - 1)
	}
	return d.Exponential(places - 1)
}

// Short scale suffixes are defined for 1000^-3 .. 1000^51.
const (
	minScaleIndex = -3
	maxScaleIndex = 51
)

var shortScaleTerms = newShortScaleTerms()

// newShortScaleTerms builds short scale suffixes, where the term of
// 1000^(n+1) is derived from the Latin name of the n-illion:
// units prefix the tens, as in UDc (undecillion) and QaVi (quattuorvigintillion).
func newShortScaleTerms() []string {
	var (
		small = []string{"n", "µ", "m", "", "k", "M", "B", "T", "Qa", "Qi", "Sx", "Sp", "Oc", "No"}
		units = []string{"", "U", "D", "T", "Qa", "Qi", "Sx", "Sp", "Oc", "N"}
		tens  = []string{"", "Dc", "Vi", "Tg", "Qd", "Qq"}
	)
	terms := make([]string, 0, maxScaleIndex-minScaleIndex+1)
	terms = append(terms, small...)
	for n := 10; n <= maxScaleIndex-1; n++ {
		terms = append(terms, units[n%10]+tens[n/10])
	}
	return terms
}

// ShortScaleTerm returns the short scale suffix for 1000^index, such as "k" for 1
// and "B" for 3. The second result is false outside the supported range.
func ShortScaleTerm(index int) (string, bool) {
	if index < minScaleIndex || index > maxScaleIndex {
		return "", false
	}
	return shortScaleTerms[index-minScaleIndex], true
}

// ShortScale returns d as a number between 1 and 1000 followed by
// a short scale suffix, for example "1.5 k", "123.457 B" or "10 µ".
// Numbers below 1000 have no suffix. Numbers outside the suffix range
// use [Decimal.Exponential] with places, or 16 if places is negative.
// Negative places select the shortest representation of the scaled number.
func (d Decimal) ShortScale(places int) string {
	if s, ok := d.special(); ok {
		return s
	}
	if d.mant == 0 || d.exp <= -ExpLimit {
		return "0"
	}
	lo, hi := float64(3*minScaleIndex-1), float64(3*maxScaleIndex+1)
	if d.exp <= lo || d.exp >= hi {
		if places < 0 {
			return d.Exponential(16)
		}
		return d.Exponential(places)
	}
	e := int(d.exp)
	index, factor := e/3, e%3
	if factor < 0 {
		index--
		factor += 3
	}
	num := d.mant * powerOf10(factor)
	text := scaledText(num, places)
	if v, err := strconv.ParseFloat(text, 64); err == nil && math.Abs(v) >= 1000 && index < maxScaleIndex {
		index++
		text = scaledText(num/1000, places)
	}
	term, _ := ShortScaleTerm(index)
	if index == 0 {
		return text
	}
	return text + " " + term
}

func scaledText(num float64, places int) string {
	if places < 0 {
		return strconv.FormatFloat(roundSignificant(num), 'f', -1, 64)
	}
	return strconv.FormatFloat(num, 'f', places, 64)
}

// roundSignificant rounds f to 15 significant digits,
// which drops the noise of scaling, as in 1.1 * 100 = 110.00000000000001.
func roundSignificant(f float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'e', 14, 64), 64)
	if err != nil {
		return f
	}
	return r
}

// Text converts d to a string according to the given format and precision,
// in the manner of [strconv.FormatFloat]:
//
//	'e' scientific notation, see [Decimal.Exponential]
//	'f' plain notation, see [Decimal.Fixed]
//	'g' significant digits, see [Decimal.Precision]
//	'n' short scale suffixes, see [Decimal.ShortScale]
//
// A negative precision selects the shortest representation;
// for 'g' it is the same as [Decimal.String].
func (d Decimal) Text(format byte, prec int) string {
	switch format {
	case 'e':
		return d.Exponential(prec)
	case 'E':
		return upperExp(d.Exponential(prec))
	case 'f', 'F':
		return d.Fixed(prec)
	case 'g', 'G':
		var s string
		if prec < 0 {
			s = d.String()
		} else {
			s = d.Precision(prec)
		}
		if format == 'G' {
			s = upperExp(s)
		}
		return s
	case 'n':
		return d.ShortScale(prec)
	}
	return "%" + string(format)
}

func upperExp(s string) string {
	return strings.Replace(s, "e", "E", 1)
}

// Format implements the [fmt.Formatter] interface.
// The following format verbs are available:
//
//	| Verb       | Example       | Description                      |
//	| ---------- | ------------- | -------------------------------- |
//	| %s, %v     | 1.5e+30       | Same as [Decimal.String]         |
//	| %q         | "1.5e+30"     | Quoted [Decimal.String]          |
//	| %e, %E     | 1.5e+30       | Scientific, [Decimal.Exponential]|
//	| %f, %F     | 1500000...    | Plain, [Decimal.Fixed]           |
//	| %g, %G     | 1.50e+30      | Significant, [Decimal.Precision] |
//	| %n         | 1.5 No        | Short scale, [Decimal.ShortScale]|
//
// The '+' flag forces the sign of positive numbers,
// the '-' flag pads with spaces on the right,
// the '0' flag pads with zeros after the sign.
// A missing precision selects the shortest representation;
// with %v and %s a precision applies to the plain or exponential form.
func (d Decimal) Format(state fmt.State, verb rune) {
	prec, ok := state.Precision()
	if !ok {
		prec = -1
	}

	var s string
	switch verb {
	case 'v', 's', 'q':
		s = d.plain(prec)
	case 'e', 'E', 'f', 'F', 'g', 'G', 'n':
		s = d.Text(byte(verb), prec)
	default:
		fmt.Fprintf(state, "%%!%c(xdecimal.Decimal=%s)", verb, d.String())
		return
	}

	// Arithmetic sign
	sign := ""
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = "-", s[1:]
	case d.IsNaN():
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Quotes
	lquote, tquote := "", ""
	if verb == 'q' {
		lquote, tquote = `"`, `"`
	}

	// Padding
	width := len(lquote) + len(sign) + len([]rune(s)) + len(tquote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'q' && d.IsFinite():
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(lquote)
	buf.WriteString(sign)
	buf.WriteString(strings.Repeat("0", lzeroes))
	buf.WriteString(s)
	buf.WriteString(tquote)
	buf.WriteString(strings.Repeat(" ", tspaces))
	state.Write([]byte(buf.String()))
}
