package service

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/jask/jaskcart/internal/list"
)

var (
	ErrEmptyName       = errors.New("enter a product name")
	ErrInvalidQuantity = errors.New("enter a quantity greater than zero")
	ErrInvalidPrice    = errors.New("enter a valid price")
)

// ItemDraft is a validated add-item request.
type ItemDraft struct {
	Name     string
	Quantity decimal.Decimal
	Unit     list.Unit
}

// plainNumber is what a person types into a quantity or price field: up to
// seven integer digits and three decimals. Exponents and signs are rejected.
var plainNumber = regexp.MustCompile(`^[0-9]{1,7}([.,][0-9]{1,3})?$`)

// ParseDecimal reads a number typed by a person. A comma is accepted as the
// decimal separator.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, errors.New("empty number")
	}
	if !plainNumber.MatchString(s) {
		return decimal.Zero, errors.Errorf("not a plain number: %q", raw)
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "parse %q", raw)
	}
	return d, nil
}

// ParseItemDraft validates the add-item dialog fields.
func ParseItemDraft(name, quantity string, kg bool) (ItemDraft, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ItemDraft{}, ErrEmptyName
	}
	qty, err := ParseDecimal(quantity)
	if err != nil || !qty.IsPositive() {
		return ItemDraft{}, ErrInvalidQuantity
	}
	unit := list.UnitCount
	if kg {
		unit = list.UnitKilogram
	}
	return ItemDraft{Name: name, Quantity: qty, Unit: unit}, nil
}

// ParsePrice validates the price dialog field.
func ParsePrice(raw string) (decimal.Decimal, error) {
	p, err := ParseDecimal(raw)
	if err != nil || p.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return p, nil
}
