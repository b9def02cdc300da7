package xdecimal

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// The second result is false if d or e is NaN; such values are unordered.
// See also method [Decimal.CmpTotal].
func (d Decimal) Cmp(e Decimal) (int, bool) {
	if d.IsNaN() || e.IsNaN() {
		return 0, false
	}
	return d.cmp(e), true
}

func (d Decimal) cmp(e Decimal) int {
	ds, es := d.Sign(), e.Sign()
	switch {
	case ds != es:
		if ds < es {
			return -1
		}
		return 1
	case ds == 0:
		return 0
	}
	var r int
	switch {
	case d.exp < e.exp:
		r = -1
	case d.exp > e.exp:
		r = 1
	case d.mant < e.mant:
		return -1
	case d.mant > e.mant:
		return 1
	default:
		return 0
	}
	// For negative numbers a larger exponent means a smaller value
	if ds < 0 {
		r = -r
	}
	return r
}

// CmpTotal is like [Decimal.Cmp], but it orders NaN below every other value,
// NaN being equal to NaN. It can be passed to slices.SortFunc.
func (d Decimal) CmpTotal(e Decimal) int {
	dn, en := d.IsNaN(), e.IsNaN()
	switch {
	case dn && en:
		return 0
	case dn:
		return -1
	case en:
		return 1
	}
	return d.cmp(e)
}

// Equal returns true if d and e have exactly the same mantissa and exponent.
// NaN is not equal to anything, including itself.
func (d Decimal) Equal(e Decimal) bool {
	return d.mant == e.mant && d.exp == e.exp
}

// Lt returns true if d < e.
func (d Decimal) Lt(e Decimal) bool {
	r, ok := d.Cmp(e)
	return ok && r < 0
}

// Lte returns true if d <= e.
func (d Decimal) Lte(e Decimal) bool {
	r, ok := d.Cmp(e)
	return ok && r <= 0
}

// Gt returns true if d > e.
func (d Decimal) Gt(e Decimal) bool {
	r, ok := d.Cmp(e)
	return ok && r > 0
}

// Gte returns true if d >= e.
func (d Decimal) Gte(e Decimal) bool {
	r, ok := d.Cmp(e)
	return ok && r >= 0
}

// Max returns the larger decimal.
// If d is NaN, Max returns e.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Gt(e) {
		return d
	}
	return e
}

// Min returns the smaller decimal.
// If d is NaN, Min returns e.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Lt(e) {
		return d
	}
	return e
}

// Clamp returns d limited to the range [lo, hi].
func (d Decimal) Clamp(lo, hi Decimal) Decimal {
	return d.Min(hi).Max(lo)
}

// EqTolerance returns true if |d - e| <= tol * max(|d|, |e|).
// The tolerance is relative: 1e-9 means equal up to the 9th significant digit.
// Identical values are always equal. NaN is never equal and
// an infinity is only equal to itself.
func (d Decimal) EqTolerance(e, tol Decimal) bool {
	switch {
	case d.IsNaN() || e.IsNaN() || tol.IsNaN():
		return false
	case d.Equal(e):
		return true
	case d.IsInf() || e.IsInf():
		return false
	}
	bound := tol.Mul(d.Abs().Max(e.Abs()))
	return d.Sub(e).Abs().Lte(bound)
}

// NeqTolerance is the negation of [Decimal.EqTolerance].
func (d Decimal) NeqTolerance(e, tol Decimal) bool {
	return !d.EqTolerance(e, tol)
}

// LtTolerance returns true if d < e and d is not equal to e within tolerance.
func (d Decimal) LtTolerance(e, tol Decimal) bool {
	return !d.EqTolerance(e, tol) && d.Lt(e)
}

// LteTolerance returns true if d <= e or d is equal to e within tolerance.
func (d Decimal) LteTolerance(e, tol Decimal) bool {
	return d.EqTolerance(e, tol) || d.Lt(e)
}

// GtTolerance returns true if d > e and d is not equal to e within tolerance.
func (d Decimal) GtTolerance(e, tol Decimal) bool {
	return !d.EqTolerance(e, tol) && d.Gt(e)
}

// GteTolerance returns true if d >= e or d is equal to e within tolerance.
func (d Decimal) GteTolerance(e, tol Decimal) bool {
	return d.EqTolerance(e, tol) || d.Gt(e)
}

// CmpTolerance is like [Decimal.Cmp], but values equal within tolerance compare as 0.
func (d Decimal) CmpTolerance(e, tol Decimal) (int, bool) {
	if d.EqTolerance(e, tol) {
		return 0, true
	}
	return d.Cmp(e)
}
