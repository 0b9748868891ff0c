// Package list holds the shopping session: the items on the list, the store
// being shopped at and the purchase date.
package list

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxIDDraws bounds how often a custom id func may collide before the store
// falls back to a random uuid.
const maxIDDraws = 8

// Store owns the items of one shopping session. Build it with New; the zero
// value reports ErrNotInitialized from every method.
type Store struct {
	mu           sync.RWMutex
	ready        bool
	items        []Item
	index        map[string]int // id -> position in items
	storeName    string
	purchaseDate time.Time

	newID         func() string
	now           func() time.Time
	dispatcher    EventDispatcher
	onDispatchErr func(Event, error)
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc replaces the uuid generator used for new items.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

// WithDispatcher sends store events to d.
func WithDispatcher(d EventDispatcher) Option {
	return func(s *Store) {
		if d != nil {
			s.dispatcher = d
		}
	}
}

// WithDispatchErrorHandler is called when the dispatcher rejects an event. The
// mutation stays applied either way.
func WithDispatchErrorHandler(fn func(Event, error)) Option {
	return func(s *Store) {
		s.onDispatchErr = fn
	}
}

// New starts a session: no items, no store name, purchase date now.
func New(opts ...Option) *Store {
	s := &Store{
		newID:      uuid.NewString,
		now:        time.Now,
		dispatcher: noopDispatcher{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.index = make(map[string]int)
	s.purchaseDate = s.now()
	s.ready = true
	return s
}

func (s *Store) initialized() bool {
	return s != nil && s.ready
}

// AddItem appends a new item with a zero price to the main list. Values are
// stored as given.
func (s *Store) AddItem(name string, quantity decimal.Decimal, unit Unit) (Item, error) {
	if !s.initialized() {
		return Item{}, contractErr("AddItem", ErrNotInitialized)
	}
	s.mu.Lock()
	item := Item{
		ID:       s.nextID(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
		Price:    decimal.Zero,
	}
	s.index[item.ID] = len(s.items)
	s.items = append(s.items, item)
	s.mu.Unlock()

	s.dispatch(ItemAdded{Item: item})
	return item, nil
}

// nextID must be called with mu held.
func (s *Store) nextID() string {
	for i := 0; i < maxIDDraws; i++ {
		id := s.newID()
		if _, taken := s.index[id]; !taken && id != "" {
			return id
		}
	}
	for {
		id := uuid.NewString()
		if _, taken := s.index[id]; !taken {
			return id
		}
	}
}

// dispatch must be called without mu held.
func (s *Store) dispatch(e Event) {
	if err := s.dispatcher.Dispatch(e); err != nil && s.onDispatchErr != nil {
		s.onDispatchErr(e, err)
	}
}

// UpdateItemPrice sets the unit price of the item with the given id. Unknown
// ids are ignored.
func (s *Store) UpdateItemPrice(id string, price decimal.Decimal) error {
	if !s.initialized() {
		return contractErr("UpdateItemPrice", ErrNotInitialized)
	}
	s.mu.Lock()
	pos, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	prev := s.items[pos].Price
	s.items[pos].Price = price
	s.mu.Unlock()

	s.dispatch(ItemPriceUpdated{ItemID: id, Previous: prev, Price: price})
	return nil
}

// MoveItemToCart marks the item as collected. Moving an item twice, or an
// unknown id, changes nothing.
func (s *Store) MoveItemToCart(id string) error {
	if !s.initialized() {
		return contractErr("MoveItemToCart", ErrNotInitialized)
	}
	s.mu.Lock()
	pos, ok := s.index[id]
	if !ok || s.items[pos].InCart {
		s.mu.Unlock()
		return nil
	}
	s.items[pos].InCart = true
	s.mu.Unlock()

	s.dispatch(ItemMovedToCart{ItemID: id})
	return nil
}

// SetStoreName replaces the store name, including with "".
func (s *Store) SetStoreName(name string) error {
	if !s.initialized() {
		return contractErr("SetStoreName", ErrNotInitialized)
	}
	s.mu.Lock()
	s.storeName = name
	s.mu.Unlock()

	s.dispatch(StoreRenamed{Name: name})
	return nil
}

// FinishShopping discards every item, clears the store name and starts a new
// session dated now.
func (s *Store) FinishShopping() error {
	if !s.initialized() {
		return contractErr("FinishShopping", ErrNotInitialized)
	}
	s.mu.Lock()
	ev := ShoppingFinished{Items: len(s.items), StoreName: s.storeName}
	s.items = nil
	s.index = make(map[string]int)
	s.storeName = ""
	s.purchaseDate = s.now()
	ev.FinishedAt = s.purchaseDate
	s.mu.Unlock()

	s.dispatch(ev)
	return nil
}

// Snapshot copies the session state. Views are derived from the copy.
func (s *Store) Snapshot() (Snapshot, error) {
	if !s.initialized() {
		return Snapshot{}, contractErr("Snapshot", ErrNotInitialized)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Items:        items,
		StoreName:    s.storeName,
		PurchaseDate: s.purchaseDate,
	}, nil
}

// Item returns the item with the given id.
func (s *Store) Item(id string) (Item, bool, error) {
	if !s.initialized() {
		return Item{}, false, contractErr("Item", ErrNotInitialized)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[id]
	if !ok {
		return Item{}, false, nil
	}
	return s.items[pos], true, nil
}
