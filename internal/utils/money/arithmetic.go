// Package money holds decimal-safe currency arithmetic and formatting.
package money

import "github.com/shopspring/decimal"

// DivisionPrecision is the number of decimal places kept by Divide.
const DivisionPrecision = 20

// DefaultPlaces is the rounding applied before persisting or displaying money.
const DefaultPlaces = 2

// Add returns a + b.
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

// Subtract returns a - b.
func Subtract(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b)
}

// Multiply returns a * b.
func Multiply(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

// Divide returns a / b, or zero when b is zero.
func Divide(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.DivRound(b, DivisionPrecision)
}

// Round rounds half away from zero to the given number of places.
func Round(amount decimal.Decimal, places int32) decimal.Decimal {
	return amount.Round(places)
}

// RoundMoney rounds to DefaultPlaces.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(DefaultPlaces)
}

// Sum adds all amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
