package list

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	events []Event
}

func (r *recordingDispatcher) Dispatch(e Event) error {
	r.events = append(r.events, e)
	return nil
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAddItemDefaults(t *testing.T) {
	t.Parallel()

	s := New()
	for i := 0; i < 25; i++ {
		_, err := s.AddItem(fmt.Sprintf("thing %d", i), dec("1"), UnitCount)
		require.NoError(t, err)
	}

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Items, 25)

	seen := map[string]bool{}
	for i, it := range snap.Items {
		require.NotEmpty(t, it.ID)
		require.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
		require.True(t, it.Price.IsZero())
		require.False(t, it.InCart)
		require.Equal(t, fmt.Sprintf("thing %d", i), it.Name)
	}
}

func TestAddItemAcceptsValuesAsGiven(t *testing.T) {
	t.Parallel()

	s := New()
	a, err := s.AddItem("", dec("0"), UnitKilogram)
	require.NoError(t, err)
	b, err := s.AddItem("", dec("-3"), Unit("box"))
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, Unit("box"), b.Unit)
	require.Equal(t, "-3", b.Quantity.String())
}

func TestAddItemRedrawsCollidingIDs(t *testing.T) {
	t.Parallel()

	s := New(WithIDFunc(func() string { return "same" }))
	a, err := s.AddItem("a", dec("1"), UnitCount)
	require.NoError(t, err)
	b, err := s.AddItem("b", dec("1"), UnitCount)
	require.NoError(t, err)
	require.Equal(t, "same", a.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.NotEmpty(t, b.ID)
}

func TestUpdateItemPriceLastWriteWins(t *testing.T) {
	t.Parallel()

	s := New(WithIDFunc(counterIDs()))
	it, err := s.AddItem("Rice", dec("5"), UnitKilogram)
	require.NoError(t, err)

	require.NoError(t, s.UpdateItemPrice(it.ID, dec("3.10")))
	require.NoError(t, s.UpdateItemPrice(it.ID, dec("2.95")))

	got, ok, err := s.Item(it.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2.95", got.Price.StringFixed(2))
	require.Equal(t, "Rice", got.Name)
	require.Equal(t, UnitKilogram, got.Unit)
	require.False(t, got.InCart)
}

func TestUpdateItemPriceUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	rec := &recordingDispatcher{}
	s := New(WithDispatcher(rec))
	_, err := s.AddItem("Bread", dec("1"), UnitCount)
	require.NoError(t, err)
	before, err := s.Snapshot()
	require.NoError(t, err)
	rec.events = nil

	require.NoError(t, s.UpdateItemPrice("nonexistent-id", dec("10")))

	after, err := s.Snapshot()
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.Empty(t, rec.events)
}

func TestMoveItemToCartIsIdempotent(t *testing.T) {
	t.Parallel()

	rec := &recordingDispatcher{}
	s := New(WithDispatcher(rec))
	it, err := s.AddItem("Eggs", dec("12"), UnitCount)
	require.NoError(t, err)

	require.NoError(t, s.MoveItemToCart(it.ID))
	once, err := s.Snapshot()
	require.NoError(t, err)
	require.NoError(t, s.MoveItemToCart(it.ID))
	twice, err := s.Snapshot()
	require.NoError(t, err)

	require.Equal(t, once, twice)
	require.Len(t, twice.CartItems(), 1)

	moves := 0
	for _, e := range rec.events {
		if _, ok := e.(ItemMovedToCart); ok {
			moves++
		}
	}
	require.Equal(t, 1, moves)

	require.NoError(t, s.MoveItemToCart("missing"))
}

func TestSetStoreNameOverwrites(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.SetStoreName("Mercado Central"))
	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Equal(t, "Mercado Central", snap.StoreName)

	require.NoError(t, s.SetStoreName(""))
	snap, err = s.Snapshot()
	require.NoError(t, err)
	require.Equal(t, "", snap.StoreName)
}

func TestFinishShoppingResetsSession(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := start
	rec := &recordingDispatcher{}
	s := New(WithClock(func() time.Time { return clock }), WithDispatcher(rec))

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Equal(t, start, snap.PurchaseDate)

	a, err := s.AddItem("Milk", dec("2"), UnitCount)
	require.NoError(t, err)
	_, err = s.AddItem("Apples", dec("1.5"), UnitKilogram)
	require.NoError(t, err)
	require.NoError(t, s.MoveItemToCart(a.ID))
	require.NoError(t, s.SetStoreName("Feira"))

	clock = start.Add(2 * time.Hour)
	require.NoError(t, s.FinishShopping())

	snap, err = s.Snapshot()
	require.NoError(t, err)
	require.Empty(t, snap.Items)
	require.Equal(t, "", snap.StoreName)
	require.Equal(t, clock, snap.PurchaseDate)

	last, ok := rec.events[len(rec.events)-1].(ShoppingFinished)
	require.True(t, ok)
	require.Equal(t, 2, last.Items)
	require.Equal(t, "Feira", last.StoreName)

	// ids of the finished session are gone for good
	require.NoError(t, s.UpdateItemPrice(a.ID, dec("1")))
	snap, err = s.Snapshot()
	require.NoError(t, err)
	require.Empty(t, snap.Items)
}

func TestFinishShoppingDateNotBeforeCall(t *testing.T) {
	t.Parallel()

	s := New()
	before := time.Now()
	require.NoError(t, s.FinishShopping())
	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.False(t, snap.PurchaseDate.Before(before))
}

func TestMilkScenario(t *testing.T) {
	t.Parallel()

	s := New()
	milk, err := s.AddItem("Milk", dec("2"), UnitCount)
	require.NoError(t, err)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	require.True(t, snap.Items[0].Price.IsZero())
	require.False(t, snap.Items[0].InCart)

	require.NoError(t, s.UpdateItemPrice(milk.ID, dec("4.50")))
	snap, err = s.Snapshot()
	require.NoError(t, err)
	require.Equal(t, "4.50", snap.Items[0].Price.StringFixed(2))
	require.Equal(t, "9.00", snap.TotalValue().StringFixed(2))

	require.NoError(t, s.MoveItemToCart(milk.ID))
	snap, err = s.Snapshot()
	require.NoError(t, err)
	require.Empty(t, snap.MainListItems())
	require.Len(t, snap.CartItems(), 1)
	require.Equal(t, milk.ID, snap.CartItems()[0].ID)
	require.Equal(t, "0.00", snap.TotalValue().StringFixed(2))
	require.Equal(t, "9.00", snap.CartTotal().StringFixed(2))
}

func TestZeroValueStoreIsContractViolation(t *testing.T) {
	t.Parallel()

	var zero Store
	var nilStore *Store

	for name, s := range map[string]*Store{"zero": &zero, "nil": nilStore} {
		_, err := s.AddItem("x", dec("1"), UnitCount)
		require.ErrorIs(t, err, ErrNotInitialized, name)
		require.True(t, IsContractViolation(err), name)

		require.ErrorIs(t, s.UpdateItemPrice("x", dec("1")), ErrNotInitialized, name)
		require.ErrorIs(t, s.MoveItemToCart("x"), ErrNotInitialized, name)
		require.ErrorIs(t, s.SetStoreName("x"), ErrNotInitialized, name)
		require.ErrorIs(t, s.FinishShopping(), ErrNotInitialized, name)

		_, err = s.Snapshot()
		require.ErrorIs(t, err, ErrNotInitialized, name)
		_, _, err = s.Item("x")
		require.ErrorIs(t, err, ErrNotInitialized, name)
	}

	_, err := zero.AddItem("x", dec("1"), UnitCount)
	require.EqualError(t, err, "AddItem: list: store not initialized")
}

func TestEventsFollowMutations(t *testing.T) {
	t.Parallel()

	rec := &recordingDispatcher{}
	s := New(WithDispatcher(rec), WithIDFunc(counterIDs()))
	it, err := s.AddItem("Coffee", dec("1"), UnitCount)
	require.NoError(t, err)
	require.NoError(t, s.UpdateItemPrice(it.ID, dec("18.90")))
	require.NoError(t, s.MoveItemToCart(it.ID))
	require.NoError(t, s.SetStoreName("Padaria"))
	require.NoError(t, s.FinishShopping())

	var types []string
	for _, e := range rec.events {
		types = append(types, e.Type())
	}
	require.Equal(t, []string{
		"item_added",
		"item_price_updated",
		"item_moved_to_cart",
		"store_renamed",
		"shopping_finished",
	}, types)

	upd := rec.events[1].(ItemPriceUpdated)
	require.Equal(t, "item-1", upd.ItemID)
	require.True(t, upd.Previous.IsZero())
	require.Equal(t, "18.90", upd.Price.StringFixed(2))
}

type failingDispatcher struct{}

func (failingDispatcher) Dispatch(Event) error { return errors.New("bus down") }

func TestDispatchErrorsReachHandler(t *testing.T) {
	t.Parallel()

	var got []string
	s := New(
		WithDispatcher(failingDispatcher{}),
		WithDispatchErrorHandler(func(e Event, err error) {
			got = append(got, e.Type()+": "+err.Error())
		}),
		WithIDFunc(counterIDs()),
	)

	it, err := s.AddItem("Milk", dec("1"), UnitCount)
	require.NoError(t, err)
	require.NoError(t, s.UpdateItemPrice(it.ID, dec("4.5")))
	require.NoError(t, s.UpdateItemPrice("missing", dec("1")))

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	require.Equal(t, "4.5", snap.Items[0].Price.String())
	require.Equal(t, []string{"item_added: bus down", "item_price_updated: bus down"}, got)

	// no handler: errors are dropped and mutations still apply
	quiet := New(WithDispatcher(failingDispatcher{}))
	require.NoError(t, quiet.SetStoreName("Feira"))
	snap, err = quiet.Snapshot()
	require.NoError(t, err)
	require.Equal(t, "Feira", snap.StoreName)
}
