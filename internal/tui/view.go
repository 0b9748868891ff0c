package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/shopspring/decimal"

	"github.com/jask/jaskcart/internal/list"
	"github.com/jask/jaskcart/internal/service"
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewCart:
		body = a.renderCart()
	case viewSummary:
		body = a.renderSummary()
	default:
		body = a.renderHome()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	if a.status != "" {
		if a.statusErr {
			body += "\n\n" + errorStyle.Render(a.status)
		} else {
			body += "\n\n" + mutedStyle.Render(a.status)
		}
	}
	return body
}

func (a *App) money(d decimal.Decimal) string {
	return a.currency + " " + d.StringFixed(2)
}

func quantityLabel(it list.Item) string {
	return it.Quantity.String() + " " + it.Unit.String()
}

func (a *App) lineWidth() int {
	if a.width > 0 {
		return a.width
	}
	return 80
}

func (a *App) renderHome() string {
	snap := a.snapshot()
	items := snap.MainListItems()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Shopping list"))
	b.WriteString("\n\n")
	if len(items) == 0 {
		b.WriteString(mutedStyle.Render("Your list is empty. Add something to buy."))
		b.WriteString("\n")
	}
	w := a.lineWidth()
	for i, it := range items {
		cursor := "  "
		if i == a.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s  %s - %s   Total: %s",
			cursor, it.Name, quantityLabel(it), a.money(it.Price), a.money(it.LineTotal()))
		b.WriteString(fitWidth(line, w))
		b.WriteString("\n")
	}

	footer := "Total: " + totalStyle.Render(a.money(snap.TotalValue()))
	cart := fmt.Sprintf("Cart (%d)", len(snap.CartItems()))
	if n := len(snap.CartItems()); n > 0 {
		cart = badgeStyle.Render(cart)
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(footer + "   " + cart))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(a.keys.Help(ActionAdd, ActionPrice, ActionCheck, ActionCart, ActionSummary, ActionQuit)))
	return b.String()
}

func (a *App) renderCart() string {
	items := a.filteredCart()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cart"))
	b.WriteString("\n\n")
	if a.searching || a.searchInput.Value() != "" {
		b.WriteString(a.searchInput.View())
		b.WriteString("\n\n")
	}
	if len(items) == 0 {
		if a.searchInput.Value() != "" {
			b.WriteString(mutedStyle.Render("No cart items match your search."))
		} else {
			b.WriteString(mutedStyle.Render("Nothing in the cart yet."))
		}
		b.WriteString("\n")
	}
	w := a.lineWidth()
	for i, it := range items {
		cursor := "  "
		if i == a.cartCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s  %s - %s", cursor, it.Name, quantityLabel(it), a.money(it.Price))
		b.WriteString(fitWidth(line, w))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(a.keys.Help(ActionSearch, ActionFinish, ActionSummary, ActionBack, ActionQuit)))
	return b.String()
}

func (a *App) renderSummary() string {
	r := service.BuildReceipt(a.snapshot(), a.tz)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Purchase summary"))
	b.WriteString("\n\n")
	if r.StoreName == "" {
		b.WriteString(mutedStyle.Render("Where are you shopping? Press " + strings.Join(a.keys.Keys(ActionRename), "/") + " to name the store."))
	} else {
		b.WriteString(storeStyle.Render(r.StoreName))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(r.Date.Format(a.dateFormat)))
	b.WriteString("\n\n")

	w := a.lineWidth()
	if len(r.Lines) == 0 {
		b.WriteString(mutedStyle.Render("No items collected."))
		b.WriteString("\n")
	}
	for _, l := range r.Lines {
		amount := a.money(l.LineTotal)
		label := fmt.Sprintf("%s (%s %s)", l.Name, l.Quantity.String(), l.Unit.String())
		b.WriteString(fitWidth(label, w-ansi.StringWidth(amount)-1))
		b.WriteString(" ")
		b.WriteString(amount)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("TOTAL " + totalStyle.Render(a.money(r.Total)))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(a.keys.Help(ActionRename, ActionFinish, ActionCart, ActionBack, ActionQuit)))
	return b.String()
}

func (a *App) renderModal() string {
	var b strings.Builder
	switch a.modal {
	case modalAddItem:
		b.WriteString(titleStyle.Render("Add item"))
		b.WriteString("\n\nName\n")
		b.WriteString(a.nameInput.View())
		b.WriteString("\n\nQuantity\n")
		b.WriteString(a.qtyInput.View())
		unit := "[un]  kg"
		if a.kg {
			unit = " un  [kg]"
		}
		b.WriteString("\n\nUnit: " + unit)
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render(a.keys.Help(ActionNextField, ActionToggleUnit, ActionConfirm, ActionCancel)))
	case modalPrice:
		name := ""
		if it, ok := a.shop.Item(a.editingID); ok {
			name = it.Name
		}
		b.WriteString(titleStyle.Render("Price for " + name))
		b.WriteString("\n\n")
		b.WriteString(a.priceInput.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render(a.keys.Help(ActionConfirm, ActionCancel)))
	case modalStoreName:
		b.WriteString(titleStyle.Render("Store name"))
		b.WriteString("\n\n")
		b.WriteString(a.storeInput.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render(a.keys.Help(ActionConfirm, ActionCancel)))
	case modalConfirmFinish:
		b.WriteString(titleStyle.Render("Finish shopping?"))
		b.WriteString("\n\nThe list, the cart and the store name will be cleared.\n\n")
		b.WriteString(mutedStyle.Render("[y/" + strings.Join(a.keys.Keys(ActionConfirm), "/") + "] yes  [n/" + strings.Join(a.keys.Keys(ActionCancel), "/") + "] no"))
	}
	return modalStyle.Render(b.String())
}
