package xdecimal

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustNewFromBinary is like [Decimal.UnmarshalBinary] but panics if
// the data is not a valid 16-byte encoding.
func MustNewFromBinary(data []byte) Decimal {
	var d Decimal
	if err := d.UnmarshalBinary(data); err != nil {
		panic(fmt.Sprintf("MustNewFromBinary(%x) failed: %v", data, err))
	}
	return d
}
