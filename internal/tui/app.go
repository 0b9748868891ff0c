package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/jaskcart/internal/config"
	"github.com/jask/jaskcart/internal/list"
	"github.com/jask/jaskcart/internal/service"
)

// App is the bubbletea model for the three shopping screens.
type App struct {
	shop   *service.Shopping
	search service.Searcher
	keys   KeyMap
	log    logrus.FieldLogger

	tz         *time.Location
	currency   string
	dateFormat string
	width      int

	state      appState
	modal      modalState
	cursor     int
	cartCursor int
	searching  bool
	status     string
	statusErr  bool

	// add item dialog
	nameInput textinput.Model
	qtyInput  textinput.Model
	addField  int
	kg        bool

	priceInput  textinput.Model
	editingID   string
	storeInput  textinput.Model
	searchInput textinput.Model
}

type appState string

const (
	viewHome    appState = "home"
	viewCart    appState = "cart"
	viewSummary appState = "summary"
)

type modalState string

const (
	modalNone          modalState = ""
	modalAddItem       modalState = "addItem"
	modalPrice         modalState = "price"
	modalStoreName     modalState = "storeName"
	modalConfirmFinish modalState = "confirmFinish"
)

const (
	fieldName = iota
	fieldQuantity
)

// New builds the app around the store carried by ctx.
func New(ctx context.Context, cfg config.Config, keys KeyMap, log logrus.FieldLogger) (*App, error) {
	store, err := list.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	tz, err := cfg.Location()
	if err != nil {
		log.WithError(err).Warn("using local timezone")
	}
	a := &App{
		shop:       &service.Shopping{Store: store, Log: log},
		search:     service.Searcher{Fuzzy: cfg.UI.FuzzySearch},
		keys:       keys,
		log:        log,
		tz:         tz,
		currency:   cfg.UI.CurrencySymbol,
		dateFormat: cfg.UI.DateFormat,
		state:      viewHome,
	}
	a.nameInput = newInput("Product name", 64)
	a.qtyInput = newInput("Quantity or kg", 12)
	a.priceInput = newInput("Price (e.g. 12.99)", 12)
	a.storeInput = newInput("Store or market name", 64)
	a.searchInput = newInput("Search the cart...", 64)
	return a, nil
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = "> "
	return ti
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		return a, nil
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.state == viewCart && a.searching {
			return a.handleSearchKey(m)
		}
		if a.keys.Matches(m, ActionQuit) {
			return a, tea.Quit
		}
		switch a.state {
		case viewCart:
			return a.handleCartKey(m)
		case viewSummary:
			return a.handleSummaryKey(m)
		default:
			return a.handleHomeKey(m)
		}
	}
	// cursor blink and friends go to whichever input has focus
	if in := a.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) focusedInput() *textinput.Model {
	switch a.modal {
	case modalAddItem:
		if a.addField == fieldQuantity {
			return &a.qtyInput
		}
		return &a.nameInput
	case modalPrice:
		return &a.priceInput
	case modalStoreName:
		return &a.storeInput
	}
	if a.state == viewCart && a.searching {
		return &a.searchInput
	}
	return nil
}

func (a *App) snapshot() list.Snapshot {
	snap, err := a.shop.Snapshot()
	if err != nil {
		a.fail(err)
	}
	return snap
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) fail(err error) {
	a.status = "error: " + err.Error()
	a.statusErr = true
	if list.IsContractViolation(err) {
		a.log.WithError(err).Error("store contract violated")
	}
}

func (a *App) handleHomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := a.snapshot().MainListItems()
	switch {
	case a.keys.Matches(m, ActionUp):
		if a.cursor > 0 {
			a.cursor--
		}
	case a.keys.Matches(m, ActionDown):
		if a.cursor < len(items)-1 {
			a.cursor++
		}
	case a.keys.Matches(m, ActionAdd):
		return a, a.openAddItem()
	case a.keys.Matches(m, ActionPrice):
		if len(items) == 0 {
			a.setStatus("no items to price")
			return a, nil
		}
		return a, a.openPrice(items[a.cursor])
	case a.keys.Matches(m, ActionCheck):
		if len(items) == 0 {
			return a, nil
		}
		it := items[a.cursor]
		if err := a.shop.Check(it.ID); err != nil {
			a.fail(err)
			return a, nil
		}
		a.setStatus(it.Name + " moved to cart")
		if a.cursor >= len(items)-1 && a.cursor > 0 {
			a.cursor--
		}
	case a.keys.Matches(m, ActionCart):
		a.state = viewCart
		a.cartCursor = 0
		a.status = ""
	case a.keys.Matches(m, ActionSummary):
		a.state = viewSummary
		a.status = ""
	}
	return a, nil
}

func (a *App) handleCartKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.Matches(m, ActionBack):
		a.leaveCart()
	case a.keys.Matches(m, ActionSearch):
		a.searching = true
		return a, a.searchInput.Focus()
	case a.keys.Matches(m, ActionUp):
		if a.cartCursor > 0 {
			a.cartCursor--
		}
	case a.keys.Matches(m, ActionDown):
		if a.cartCursor < len(a.filteredCart())-1 {
			a.cartCursor++
		}
	case a.keys.Matches(m, ActionFinish):
		a.modal = modalConfirmFinish
	case a.keys.Matches(m, ActionSummary):
		a.leaveCart()
		a.state = viewSummary
	}
	return a, nil
}

func (a *App) leaveCart() {
	a.state = viewHome
	a.searching = false
	a.searchInput.Blur()
	a.searchInput.SetValue("")
	a.cartCursor = 0
	a.status = ""
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.keys.Matches(m, ActionConfirm) || a.keys.Matches(m, ActionCancel) {
		a.searching = false
		a.searchInput.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(m)
	a.cartCursor = 0
	return a, cmd
}

func (a *App) filteredCart() []list.Item {
	return a.search.Filter(a.snapshot().CartItems(), a.searchInput.Value())
}

func (a *App) handleSummaryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.Matches(m, ActionBack):
		a.state = viewHome
		a.status = ""
	case a.keys.Matches(m, ActionRename):
		a.modal = modalStoreName
		a.storeInput.SetValue(a.snapshot().StoreName)
		a.storeInput.CursorEnd()
		return a, a.storeInput.Focus()
	case a.keys.Matches(m, ActionFinish):
		a.modal = modalConfirmFinish
	case a.keys.Matches(m, ActionCart):
		a.state = viewCart
		a.cartCursor = 0
	}
	return a, nil
}

func (a *App) openAddItem() tea.Cmd {
	a.modal = modalAddItem
	a.nameInput.SetValue("")
	a.qtyInput.SetValue("")
	a.qtyInput.Blur()
	a.addField = fieldName
	a.kg = false
	a.status = ""
	return a.nameInput.Focus()
}

func (a *App) openPrice(it list.Item) tea.Cmd {
	a.modal = modalPrice
	a.editingID = it.ID
	a.priceInput.SetValue("")
	if it.Price.IsPositive() {
		a.priceInput.SetValue(it.Price.String())
		a.priceInput.CursorEnd()
	}
	a.status = ""
	return a.priceInput.Focus()
}

func (a *App) closeModal() {
	a.modal = modalNone
	a.editingID = ""
	a.nameInput.Blur()
	a.qtyInput.Blur()
	a.priceInput.Blur()
	a.storeInput.Blur()
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalConfirmFinish:
		switch {
		case a.keys.Matches(m, ActionConfirm), m.String() == "y", m.String() == "Y":
			a.closeModal()
			if err := a.shop.Finish(); err != nil {
				a.fail(err)
				return a, nil
			}
			a.leaveCart()
			a.cursor = 0
			a.setStatus("shopping finished, new list started")
		case a.keys.Matches(m, ActionCancel), m.String() == "n", m.String() == "N":
			a.closeModal()
		}
		return a, nil
	case modalAddItem:
		switch {
		case a.keys.Matches(m, ActionCancel):
			a.closeModal()
			return a, nil
		case a.keys.Matches(m, ActionNextField):
			return a, a.switchAddField()
		case a.keys.Matches(m, ActionToggleUnit):
			a.kg = !a.kg
			return a, nil
		case a.keys.Matches(m, ActionConfirm):
			it, err := a.shop.AddItem(a.nameInput.Value(), a.qtyInput.Value(), a.kg)
			if err != nil {
				a.fail(err)
				return a, nil
			}
			a.closeModal()
			a.setStatus(fmt.Sprintf("added %s", it.Name))
			return a, nil
		}
	case modalPrice:
		switch {
		case a.keys.Matches(m, ActionCancel):
			a.closeModal()
			return a, nil
		case a.keys.Matches(m, ActionConfirm):
			if err := a.shop.SetPrice(a.editingID, a.priceInput.Value()); err != nil {
				a.fail(err)
				return a, nil
			}
			a.closeModal()
			a.setStatus("price updated")
			return a, nil
		}
	case modalStoreName:
		switch {
		case a.keys.Matches(m, ActionCancel):
			a.closeModal()
			return a, nil
		case a.keys.Matches(m, ActionConfirm):
			renamed, err := a.shop.RenameStore(a.storeInput.Value())
			a.closeModal()
			if err != nil {
				a.fail(err)
			} else if renamed {
				a.setStatus("store name saved")
			}
			return a, nil
		}
	}

	in := a.focusedInput()
	if in == nil {
		return a, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(m)
	return a, cmd
}

func (a *App) switchAddField() tea.Cmd {
	if a.addField == fieldName {
		a.addField = fieldQuantity
		a.nameInput.Blur()
		return a.qtyInput.Focus()
	}
	a.addField = fieldName
	a.qtyInput.Blur()
	return a.nameInput.Focus()
}
