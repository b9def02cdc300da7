/*
Package xdecimal implements immutable extended-range decimal floating-point numbers.
It is designed for incremental and idle games, where quantities routinely
grow far beyond the range of float64 and exactness matters less than
range, speed and readable formatting.

# Representation

[Decimal] is a struct with two float64 fields:

  - Mantissa: a number whose absolute value is at least 1 and less than 10.
  - Exponent: an integral power of ten.
    For example, a decimal with a mantissa of 1.5 and an exponent of 30
    represents the value 1.5e30.

The numerical value of a decimal is calculated as:

  - Mantissa * 10^Exponent

Zero is represented by a mantissa of 0 and an exponent of 0.
Every constructor normalizes its result, so each value has a single
representation and decimals can be compared with [Decimal.Equal].
[NewRaw] is the only way to build a pair that is not normalized.

# Constraints

Since the exponent is itself a float64, the range of a decimal is roughly
from 1e-1.78e308 to 1e1.79e308.
The precision is that of float64: about 15 to 17 significant digits.
Addition ignores an operand that is more than [MaxSignificantDigits]
orders of magnitude smaller than the other one.

# Special values

Special values are encoded in the same two fields:

	| Value          | Mantissa | Exponent      |
	| -------------- | -------- | ------------- |
	| [NaN]          | NaN      | NaN           |
	| [Inf]          | 1        | [ExpLimit]    |
	| [NegInf]       | -1       | [ExpLimit]    |
	| [AlmostZero]   | 1        | [NegExpLimit] |

Arithmetic never panics and never returns errors.
Results whose exponent overflows saturate to [Inf] or [NegInf],
results whose exponent underflows become 0.
Invalid operations, such as division by zero or the square root of
a negative number, return [NaN].

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Decimal.String], [Decimal.Text], [Decimal.Format].
  - from/to float64:
    [NewFromFloat64], [NewFromNumber], [Decimal.Float64].
  - from/to fields:
    [New], [NewRaw], [Decimal.Mantissa], [Decimal.Exponent], [Decimal.Digits].
  - from/to bytes:
    [NewFromBits], [NewFromBigEndianBytes], [NewFromLittleEndianBytes],
    [Decimal.Bits], [Decimal.BigEndianBytes], [Decimal.LittleEndianBytes].

Decimals also implement the text, binary and JSON marshaling interfaces
as well as [sql.Scanner] and [driver.Valuer].
Package compat converts decimals to and from apd and shopspring decimals.

# Formatting

[Decimal.String] uses plain notation for exponents between -7 and 21
and scientific notation otherwise.
[Decimal.ShortScale] writes numbers with short scale suffixes:

	| Exponent | Suffix | Example  |
	| -------- | ------ | -------- |
	| -9       | n      | 1 n      |
	| -3       | m      | 1 m      |
	| 3        | k      | 1.5 k    |
	| 9        | B      | 10.0 B   |
	| 153      | Qq     | 1 Qq     |

# Errors

Only the boundary functions return errors: parsing, decoding and
conversions in package compat.
All errors belong to the class [Error] of package [errs].

[sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
[driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
[errs]: https://pkg.go.dev/github.com/zeebo/errs
*/
package xdecimal
