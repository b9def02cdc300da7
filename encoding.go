package xdecimal

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/json"
	"math"
)

// Bits returns the IEEE 754 binary representations of the mantissa and
// the exponent of d, in that order.
func (d Decimal) Bits() [2]uint64 {
	return [2]uint64{math.Float64bits(d.mant), math.Float64bits(d.exp)}
}

// NewFromBits is the inverse of [Decimal.Bits].
// The fields are copied as is, without validation or normalization.
func NewFromBits(b [2]uint64) Decimal {
	return Decimal{mant: math.Float64frombits(b[0]), exp: math.Float64frombits(b[1])}
}

// BigEndianBytes returns the 16-byte big-endian encoding of d:
// the mantissa bits followed by the exponent bits.
func (d Decimal) BigEndianBytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], math.Float64bits(d.mant))
	binary.BigEndian.PutUint64(b[8:], math.Float64bits(d.exp))
	return b
}

// LittleEndianBytes returns the 16-byte little-endian encoding of d:
// the mantissa bits followed by the exponent bits.
func (d Decimal) LittleEndianBytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], math.Float64bits(d.mant))
	binary.LittleEndian.PutUint64(b[8:], math.Float64bits(d.exp))
	return b
}

// NewFromBigEndianBytes is the inverse of [Decimal.BigEndianBytes].
func NewFromBigEndianBytes(b [16]byte) Decimal {
	return NewFromBits([2]uint64{binary.BigEndian.Uint64(b[:8]), binary.BigEndian.Uint64(b[8:])})
}

// NewFromLittleEndianBytes is the inverse of [Decimal.LittleEndianBytes].
func NewFromLittleEndianBytes(b [16]byte) Decimal {
	return NewFromBits([2]uint64{binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])})
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// It uses the layout of [Decimal.BigEndianBytes].
func (d Decimal) MarshalBinary() ([]byte, error) {
	b := d.BigEndianBytes()
	return b[:], nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
func (d *Decimal) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return Error.New("UnmarshalBinary: invalid length %d, want 16", len(data))
	}
	*d = NewFromBigEndianBytes([16]byte(data))
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Decimal.String].
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also function [Parse].
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

type jsonDecimal struct {
	Mantissa float64 `json:"mantissa"`
	Exponent float64 `json:"exponent"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// A decimal is encoded as an object with its two fields,
// {"mantissa":1.5,"exponent":30}.
// NaN cannot be represented in JSON and returns an error.
func (d Decimal) MarshalJSON() ([]byte, error) {
	if d.IsNaN() {
		return nil, Error.New("MarshalJSON: NaN is not supported")
	}
	return json.Marshal(jsonDecimal{Mantissa: d.mant, Exponent: d.exp})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Besides the object form of [Decimal.MarshalJSON] it accepts a JSON string,
// parsed with [Parse], and a JSON number.
// The object fields are normalized.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Error.Wrap(err)
	}
	switch v := v.(type) {
	case string:
		var err error
		*d, err = Parse(v)
		return err
	case float64:
		*d = NewFromFloat64(v)
		return nil
	case map[string]any:
		var j jsonDecimal
		if err := json.Unmarshal(data, &j); err != nil {
			return Error.Wrap(err)
		}
		*d = New(j.Mantissa, j.Exponent)
		return nil
	}
	return Error.New("UnmarshalJSON: unsupported value %s", data)
}

// Value implements the [driver.Valuer] interface.
// Decimals are stored as text, see [Decimal.String].
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements the [sql.Scanner] interface.
// See also function [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case float64:
		*d = NewFromFloat64(value)
	case int64:
		*d = NewFromNumber(value)
	default:
		err = Error.New("Scan: failed to convert from %T", value)
	}
	return err
}
