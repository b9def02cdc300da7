package xdecimal

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal_Arith(t *testing.T) {
	var (
		a = NewRaw(3.224, 54)
		b = NewRaw(1.24, 53)
		c = NewRaw(3.1, 52)
	)

	type TC struct {
		D, E               Decimal
		Add, Sub, Mul, Quo Decimal
		Mark               error
	}

	tcs := []TC{
		{
			D: a, E: b,
			Add: NewRaw(3.348, 54), Sub: NewRaw(3.1, 54),
			Mul: NewRaw(3.9977600000000004, 107), Quo: NewRaw(2.6, 1),
			Mark: oops.New("unexpected"),
		},
		{
			D: a, E: c,
			Add: NewRaw(3.255, 54), Sub: NewRaw(3.193, 54),
			Mul: NewRaw(9.9944, 106), Quo: NewRaw(1.04, 2),
			Mark: oops.New("unexpected"),
		},
		{
			D: b, E: c,
			Add: NewRaw(1.55, 53), Sub: NewRaw(9.3, 52),
			Mul: NewRaw(3.844, 105), Quo: NewRaw(3.9999999999999996, 0),
			Mark: oops.New("unexpected"),
		},
		{
			D: NewRaw(2, 1), E: One,
			Add: NewRaw(2.1, 1), Sub: NewRaw(1.9, 1),
			Mul: NewRaw(2, 1), Quo: NewRaw(2, 1),
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v,%v", i, tc.D, tc.E), func(t *testing.T) {
			got := tc.D.Add(tc.E)
			if !got.Equal(tc.Add) {
				t.Logf("Add: %s\n", spew.Sdump(got))
			}
			require.Equal(t, tc.Add, got, tc.Mark)
			require.Equal(t, tc.Sub, tc.D.Sub(tc.E), tc.Mark)
			require.Equal(t, tc.Mul, tc.D.Mul(tc.E), tc.Mark)
			require.Equal(t, tc.Quo, tc.D.Quo(tc.E), tc.Mark)
		})
	}
}

func TestDecimal_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		type TC struct {
			D, E, Want Decimal
			Mark       error
		}

		tcs := []TC{
			{D: Zero, E: Zero, Want: Zero, Mark: oops.New("unexpected")},
			{D: Zero, E: One, Want: One, Mark: oops.New("unexpected")},
			{D: NewRaw(1.5, 30), E: Zero, Want: NewRaw(1.5, 30), Mark: oops.New("unexpected")},
			{D: NewRaw(9.5, 0), E: NewRaw(5, -1), Want: Ten, Mark: oops.New("unexpected")},
			{D: One, E: NewRaw(-9.99, -1), Want: NewRaw(1, -3), Mark: oops.New("unexpected")},
			{D: NewRaw(3, 5), E: NewRaw(-3, 5), Want: Zero, Mark: oops.New("unexpected")},
			{D: NewRaw(1, 15), E: One, Want: NewRaw(1.000000000000001, 15), Mark: oops.New("unexpected")},
			{D: NewRaw(1, 17), E: One, Want: NewRaw(1, 17), Mark: oops.New("unexpected")},
			// The smaller operand is absorbed
			{D: NewRaw(1, 18), E: One, Want: NewRaw(1, 18), Mark: oops.New("unexpected")},
			{D: One, E: NewRaw(-1, 100), Want: NewRaw(-1, 100), Mark: oops.New("unexpected")},
			{D: NewRaw(1, 1e300), E: NewRaw(1, 1e299), Want: NewRaw(1, 1e300), Mark: oops.New("unexpected")},
			// Infinities
			{D: Inf, E: One, Want: Inf, Mark: oops.New("unexpected")},
			{D: One, E: NegInf, Want: NegInf, Mark: oops.New("unexpected")},
			{D: Inf, E: Inf, Want: Inf, Mark: oops.New("unexpected")},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%v+%v", i, tc.D, tc.E), func(t *testing.T) {
				require.Equal(t, tc.Want, tc.D.Add(tc.E), tc.Mark)
			})
		}
	})

	t.Run("nan", func(t *testing.T) {
		tcs := [][2]Decimal{
			{NaN, One},
			{One, NaN},
			{NaN, Inf},
			{Inf, NegInf},
			{NegInf, Inf},
		}
		for _, tc := range tcs {
			got := tc[0].Add(tc[1])
			require.True(t, got.IsNaN(), "%v.Add(%v) = %v, want NaN", tc[0], tc[1], got)
		}
	})

	t.Run("commutative", func(t *testing.T) {
		xs := []Decimal{Zero, One, NegOne, NewRaw(3.224, 54), NewRaw(-1.24, 53), NewRaw(7, -3), Inf}
		for _, x := range xs {
			for _, y := range xs {
				assert.Equal(t, x.Add(y), y.Add(x), "%v + %v", x, y)
			}
		}
	})
}

func TestDecimal_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		type TC struct {
			D, E, Want Decimal
			Mark       error
		}

		tcs := []TC{
			{D: NewRaw(3, 0), E: NewRaw(5, 0), Want: NewRaw(1.5, 1), Mark: oops.New("unexpected")},
			{D: NewRaw(-2, 10), E: NewRaw(4, -20), Want: NewRaw(-8, -10), Mark: oops.New("unexpected")},
			{D: Zero, E: NewRaw(1, 1e300), Want: Zero, Mark: oops.New("unexpected")},
			{D: NewRaw(1, 1e308), E: NewRaw(1, 1e308), Want: Inf, Mark: oops.New("unexpected")},
			{D: NewRaw(-1, 1e308), E: NewRaw(1, 1e308), Want: NegInf, Mark: oops.New("unexpected")},
			{D: NewRaw(1, -1e308), E: NewRaw(1, -1e308), Want: Zero, Mark: oops.New("unexpected")},
			{D: Inf, E: Two, Want: Inf, Mark: oops.New("unexpected")},
			{D: Inf, E: NegOne, Want: NegInf, Mark: oops.New("unexpected")},
			{D: Inf, E: AlmostZero, Want: Inf, Mark: oops.New("unexpected")},
			{D: AlmostNegZero, E: Inf, Want: NegInf, Mark: oops.New("unexpected")},
			{D: NegInf, E: AlmostZero, Want: NegInf, Mark: oops.New("unexpected")},
			{D: NegInf, E: NewRaw(-1, -1e308), Want: Inf, Mark: oops.New("unexpected")},
			{D: Inf, E: NegInf, Want: NegInf, Mark: oops.New("unexpected")},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%v*%v", i, tc.D, tc.E), func(t *testing.T) {
				require.Equal(t, tc.Want, tc.D.Mul(tc.E), tc.Mark)
			})
		}
	})

	t.Run("nan", func(t *testing.T) {
		tcs := [][2]Decimal{
			{NaN, One},
			{One, NaN},
			{Inf, Zero},
			{Zero, NegInf},
		}
		for _, tc := range tcs {
			got := tc[0].Mul(tc[1])
			require.True(t, got.IsNaN(), "%v.Mul(%v) = %v, want NaN", tc[0], tc[1], got)
		}
	})
}

func TestDecimal_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		type TC struct {
			D, E, Want Decimal
			Mark       error
		}

		tcs := []TC{
			{D: One, E: NewRaw(4, 0), Want: NewRaw(2.5, -1), Mark: oops.New("unexpected")},
			{D: One, E: NewRaw(3, 0), Want: NewRaw(3.333333333333333, -1), Mark: oops.New("unexpected")},
			{D: Zero, E: NewRaw(3, 0), Want: Zero, Mark: oops.New("unexpected")},
			{D: One, E: Inf, Want: Zero, Mark: oops.New("unexpected")},
			{D: Inf, E: NegOne, Want: NegInf, Mark: oops.New("unexpected")},
			{D: NewRaw(1, 1e308), E: NewRaw(1, -1e308), Want: Inf, Mark: oops.New("unexpected")},
			{D: Inf, E: NewRaw(1, 1e308), Want: Inf, Mark: oops.New("unexpected")},
			{D: NegInf, E: NewRaw(1, 1e308), Want: NegInf, Mark: oops.New("unexpected")},
			{D: NegInf, E: NewRaw(-2, 1e308), Want: Inf, Mark: oops.New("unexpected")},
			{D: Inf, E: AlmostZero, Want: Inf, Mark: oops.New("unexpected")},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%v/%v", i, tc.D, tc.E), func(t *testing.T) {
				require.Equal(t, tc.Want, tc.D.Quo(tc.E), tc.Mark)
			})
		}
	})

	t.Run("nan", func(t *testing.T) {
		tcs := [][2]Decimal{
			{NaN, One},
			{One, NaN},
			{One, Zero},
			{Zero, Zero},
			{Inf, Inf},
			{NegInf, Inf},
		}
		for _, tc := range tcs {
			got := tc[0].Quo(tc[1])
			require.True(t, got.IsNaN(), "%v.Quo(%v) = %v, want NaN", tc[0], tc[1], got)
		}
	})
}

func TestDecimal_Reciprocal(t *testing.T) {
	require.Equal(t, NewRaw(2.5, -1), NewRaw(4, 0).Reciprocal())
	require.Equal(t, NewRaw(5, -31), NewRaw(2, 30).Reciprocal())
	require.Equal(t, Zero, Inf.Reciprocal())
	require.True(t, Zero.Reciprocal().IsNaN())
	require.True(t, NaN.Reciprocal().IsNaN())
}

func TestDecimal_FMA(t *testing.T) {
	require.Equal(t, NewRaw(2.1, 1), Two.FMA(Ten, One))
	require.Equal(t, Zero, Two.FMA(NegOne, Two))
	require.True(t, Inf.FMA(Zero, One).IsNaN())
}

func TestDecimal_Square(t *testing.T) {
	require.Equal(t, NewRaw(9, 0), NewRaw(-3, 0).Square())
	require.Equal(t, NewRaw(-2.7, 1), NewRaw(-3, 0).Cube())
	require.Equal(t, NewRaw(1, 600), NewRaw(1, 200).Cube())
}

func TestDecimal_Neg(t *testing.T) {
	type TC struct {
		D, Neg, Abs Decimal
		Mark        error
	}

	tcs := []TC{
		{D: One, Neg: NegOne, Abs: One, Mark: oops.New("unexpected")},
		{D: NegOne, Neg: One, Abs: One, Mark: oops.New("unexpected")},
		{D: NewRaw(-1.5, 30), Neg: NewRaw(1.5, 30), Abs: NewRaw(1.5, 30), Mark: oops.New("unexpected")},
		{D: Inf, Neg: NegInf, Abs: Inf, Mark: oops.New("unexpected")},
		{D: AlmostZero, Neg: AlmostNegZero, Abs: AlmostZero, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			require.Equal(t, tc.Neg, tc.D.Neg(), tc.Mark)
			require.Equal(t, tc.Abs, tc.D.Abs(), tc.Mark)
			require.Equal(t, tc.D, tc.D.Neg().Neg(), tc.Mark)
		})
	}

	require.True(t, Zero.Neg().IsZero())
	require.True(t, math.IsNaN(NaN.Neg().Mantissa()))
}

func TestDecimal_CopySign(t *testing.T) {
	require.Equal(t, NegOne, One.CopySign(NewRaw(-5, 10)))
	require.Equal(t, One, NegOne.CopySign(Two))
	require.Equal(t, One, One.CopySign(Two))
	require.Equal(t, NegInf, Inf.CopySign(NegOne))
}

func FuzzDecimal_Sub(f *testing.F) {
	for _, m := range []float64{1, -1, 3.224, 9.999} {
		for _, e := range []float64{0, 1, -5, 17, 18, 300} {
			f.Add(m, e, 1.5, 0.0)
		}
	}

	f.Fuzz(func(t *testing.T, m1, e1, m2, e2 float64) {
		d, e := New(m1, e1), New(m2, e2)
		if !d.IsFinite() || !e.IsFinite() {
			t.Skip()
		}
		// d - d = 0
		if got := d.Sub(d); !got.IsZero() {
			t.Errorf("%v.Sub(%v) = %v, want 0", d, d, got)
		}
		// d - e = -(e - d)
		if got, want := d.Sub(e), e.Sub(d).Neg(); !got.Equal(want) && !got.IsNaN() {
			t.Errorf("%v.Sub(%v) = %v, want %v", d, e, got, want)
		}
	})
}
