package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/jask/jaskcart/internal/list"
)

// Dispatcher writes store events to a logger.
type Dispatcher struct {
	Log logrus.FieldLogger
}

func (d Dispatcher) Dispatch(e list.Event) error {
	if d.Log == nil {
		return nil
	}
	entry := d.Log.WithField("event", e.Type())
	switch ev := e.(type) {
	case list.ItemAdded:
		entry.WithFields(logrus.Fields{
			"item_id":  ev.Item.ID,
			"name":     ev.Item.Name,
			"quantity": ev.Item.Quantity.String(),
			"unit":     ev.Item.Unit.String(),
		}).Info("item added")
	case list.ItemPriceUpdated:
		entry.WithFields(logrus.Fields{
			"item_id":  ev.ItemID,
			"previous": ev.Previous.StringFixed(2),
			"price":    ev.Price.StringFixed(2),
		}).Info("price updated")
	case list.ItemMovedToCart:
		entry.WithField("item_id", ev.ItemID).Info("item moved to cart")
	case list.StoreRenamed:
		entry.WithField("store", ev.Name).Info("store renamed")
	case list.ShoppingFinished:
		entry.WithFields(logrus.Fields{
			"items":       ev.Items,
			"store":       ev.StoreName,
			"finished_at": ev.FinishedAt,
		}).Info("shopping finished")
	default:
		entry.Debug("store event")
	}
	return nil
}
