package xdecimal

// Purchase formulas for incremental games, where the price of an item
// grows with every item already owned.

// AffordGeometricSeries returns how many items can be bought with resources,
// if the price starts at start and is multiplied by ratio with each purchase,
// given that owned items have already been bought.
func AffordGeometricSeries(resources, start, ratio, owned Decimal) Decimal {
	actual := start.Mul(ratio.Pow(owned))
	n := resources.Quo(actual).Mul(ratio.Sub(One)).Add(One).Log10() / ratio.Log10()
	return NewFromFloat64(n).Floor()
}

// SumGeometricSeries returns the cost of buying count items,
// if the price starts at start and is multiplied by ratio with each purchase,
// given that owned items have already been bought.
func SumGeometricSeries(count, start, ratio, owned Decimal) Decimal {
	return start.Mul(ratio.Pow(owned)).
		Mul(One.Sub(ratio.Pow(count))).
		Quo(One.Sub(ratio))
}

// AffordArithmeticSeries returns how many items can be bought with resources,
// if the price starts at start and increases by add with each purchase,
// given that owned items have already been bought.
func AffordArithmeticSeries(resources, start, add, owned Decimal) Decimal {
	// n = (-b + sqrt(b^2 + 2*add*resources)) / add, where b = actual - add/2
	actual := start.Add(owned.Mul(add))
	b := actual.Sub(add.Quo(Two))
	root := b.Square().Add(add.Mul(resources).Mul(Two)).Sqrt()
	return b.Neg().Add(root).Quo(add).Floor()
}

// SumArithmeticSeries returns the cost of buying count items,
// if the price starts at start and increases by add with each purchase,
// given that owned items have already been bought.
func SumArithmeticSeries(count, start, add, owned Decimal) Decimal {
	// count/2 * (2*actual + (count-1)*add)
	actual := start.Add(owned.Mul(add))
	return count.Quo(Two).Mul(actual.Mul(Two).Add(count.Sub(One).Mul(add)))
}

// EfficiencyOfPurchase scores a purchase that costs cost and increases
// the income from rate to rate+delta per second.
// Of two purchases the one with the lower score pays off sooner.
func EfficiencyOfPurchase(cost, rate, delta Decimal) Decimal {
	return cost.Quo(rate.Add(cost.Quo(delta)))
}
