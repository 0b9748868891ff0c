package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jask/jaskcart/internal/list"
)

// ReceiptLine is one collected item on the purchase summary.
type ReceiptLine struct {
	ItemID    string
	Name      string
	Quantity  decimal.Decimal
	Unit      list.Unit
	Price     decimal.Decimal
	LineTotal decimal.Decimal
}

// Receipt summarises the cart of a session.
type Receipt struct {
	StoreName string
	Date      time.Time
	Lines     []ReceiptLine
	Total     decimal.Decimal
}

// BuildReceipt lists the cart items of snap with their totals. The date is
// shown in loc; nil means UTC.
func BuildReceipt(snap list.Snapshot, loc *time.Location) Receipt {
	if loc == nil {
		loc = time.UTC
	}
	cart := snap.CartItems()
	r := Receipt{
		StoreName: snap.StoreName,
		Date:      snap.PurchaseDate.In(loc),
		Lines:     make([]ReceiptLine, 0, len(cart)),
		Total:     list.Total(cart),
	}
	for _, it := range cart {
		r.Lines = append(r.Lines, ReceiptLine{
			ItemID:    it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			Price:     it.Price,
			LineTotal: it.LineTotal(),
		})
	}
	return r
}
