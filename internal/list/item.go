package list

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is how an item's quantity is measured.
type Unit string

const (
	UnitCount    Unit = "un"
	UnitKilogram Unit = "kg"
)

// ParseUnit maps free text to a Unit. Anything that is not a kilogram spelling
// is counted in units.
func ParseUnit(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kilo", "kilogram", "kilograms":
		return UnitKilogram
	default:
		return UnitCount
	}
}

func (u Unit) String() string { return string(u) }

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool { return u == UnitCount || u == UnitKilogram }

// Item is one entry of the shopping list.
type Item struct {
	ID       string
	Name     string
	Quantity decimal.Decimal
	Unit     Unit
	Price    decimal.Decimal
	InCart   bool
}

// LineTotal is the unit price times the quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(i.Quantity)
}
