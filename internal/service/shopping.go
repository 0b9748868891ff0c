package service

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jask/jaskcart/internal/list"
)

// Shopping is the calling layer between the screens and the store: it owns
// input validation and the feedback shown to the user.
type Shopping struct {
	Store *list.Store
	Log   logrus.FieldLogger
}

var discardLog = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func (s *Shopping) log() logrus.FieldLogger {
	if s.Log == nil {
		return discardLog
	}
	return s.Log
}

// AddItem validates the dialog input and appends the item.
func (s *Shopping) AddItem(name, quantity string, kg bool) (list.Item, error) {
	draft, err := ParseItemDraft(name, quantity, kg)
	if err != nil {
		s.log().WithError(err).Debug("add item rejected")
		return list.Item{}, err
	}
	item, err := s.Store.AddItem(draft.Name, draft.Quantity, draft.Unit)
	if err != nil {
		return list.Item{}, errors.Wrap(err, "add item")
	}
	return item, nil
}

// SetPrice validates a typed price and applies it to the item.
func (s *Shopping) SetPrice(itemID, raw string) error {
	price, err := ParsePrice(raw)
	if err != nil {
		s.log().WithError(err).WithField("item_id", itemID).Debug("price rejected")
		return err
	}
	return errors.Wrap(s.Store.UpdateItemPrice(itemID, price), "set price")
}

// Check moves the item into the cart.
func (s *Shopping) Check(itemID string) error {
	return errors.Wrap(s.Store.MoveItemToCart(itemID), "check item")
}

// RenameStore sets the store name. Blank input leaves the current name, as the
// store name prompt only ever submits a value.
func (s *Shopping) RenameStore(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	if err := s.Store.SetStoreName(name); err != nil {
		return false, errors.Wrap(err, "rename store")
	}
	return true, nil
}

// Finish ends the session. Confirmation is the screen's job.
func (s *Shopping) Finish() error {
	return errors.Wrap(s.Store.FinishShopping(), "finish shopping")
}

// Snapshot returns the current session.
func (s *Shopping) Snapshot() (list.Snapshot, error) {
	snap, err := s.Store.Snapshot()
	return snap, errors.Wrap(err, "snapshot")
}

// Item looks up one item by id.
func (s *Shopping) Item(id string) (list.Item, bool) {
	it, ok, err := s.Store.Item(id)
	if err != nil {
		s.log().WithError(err).Error("item lookup")
		return list.Item{}, false
	}
	return it, ok
}
