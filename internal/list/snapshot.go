package list

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a point-in-time copy of a session.
type Snapshot struct {
	Items        []Item
	StoreName    string
	PurchaseDate time.Time
}

// MainListItems returns the items not yet in the cart, in insertion order.
func (s Snapshot) MainListItems() []Item { return MainList(s.Items) }

// CartItems returns the items already in the cart, in insertion order.
func (s Snapshot) CartItems() []Item { return Cart(s.Items) }

// TotalValue is the running total of the main list.
func (s Snapshot) TotalValue() decimal.Decimal { return Total(MainList(s.Items)) }

// CartTotal is what the collected items cost.
func (s Snapshot) CartTotal() decimal.Decimal { return Total(Cart(s.Items)) }

// MainList filters items with InCart unset.
func MainList(items []Item) []Item {
	return filter(items, func(it Item) bool { return !it.InCart })
}

// Cart filters items with InCart set.
func Cart(items []Item) []Item {
	return filter(items, func(it Item) bool { return it.InCart })
}

// Total sums price times quantity.
func Total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

func filter(items []Item, keep func(Item) bool) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
