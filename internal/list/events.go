package list

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a change applied to the store.
type Event interface {
	Type() string
}

// EventDispatcher receives store events after a mutation has been applied.
// Dispatch errors never undo the mutation.
type EventDispatcher interface {
	Dispatch(event Event) error
}

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(Event) error { return nil }

type ItemAdded struct {
	Item Item
}

func (ItemAdded) Type() string { return "item_added" }

type ItemPriceUpdated struct {
	ItemID   string
	Previous decimal.Decimal
	Price    decimal.Decimal
}

func (ItemPriceUpdated) Type() string { return "item_price_updated" }

type ItemMovedToCart struct {
	ItemID string
}

func (ItemMovedToCart) Type() string { return "item_moved_to_cart" }

type StoreRenamed struct {
	Name string
}

func (StoreRenamed) Type() string { return "store_renamed" }

// ShoppingFinished closes a session. Items is how many items were discarded.
type ShoppingFinished struct {
	Items      int
	StoreName  string
	FinishedAt time.Time
}

func (ShoppingFinished) Type() string { return "shopping_finished" }
