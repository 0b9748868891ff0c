package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

type Action string

const (
	ActionQuit       Action = "quit"
	ActionUp         Action = "up"
	ActionDown       Action = "down"
	ActionAdd        Action = "add"
	ActionPrice      Action = "price"
	ActionCheck      Action = "check"
	ActionCart       Action = "cart"
	ActionSummary    Action = "summary"
	ActionBack       Action = "back"
	ActionSearch     Action = "search"
	ActionFinish     Action = "finish"
	ActionRename     Action = "rename"
	ActionConfirm    Action = "confirm"
	ActionCancel     Action = "cancel"
	ActionNextField  Action = "next_field"
	ActionToggleUnit Action = "toggle_unit"
)

type defaultBinding struct {
	keys []string
	help string
}

var defaultBindings = map[Action]defaultBinding{
	ActionQuit:       {[]string{"q", "ctrl+c"}, "quit"},
	ActionUp:         {[]string{"up", "k"}, "up"},
	ActionDown:       {[]string{"down", "j"}, "down"},
	ActionAdd:        {[]string{"a"}, "add item"},
	ActionPrice:      {[]string{"p"}, "price"},
	ActionCheck:      {[]string{"x", "space"}, "to cart"},
	ActionCart:       {[]string{"c"}, "cart"},
	ActionSummary:    {[]string{"s"}, "summary"},
	ActionBack:       {[]string{"esc"}, "back"},
	ActionSearch:     {[]string{"/"}, "search"},
	ActionFinish:     {[]string{"f"}, "finish shopping"},
	ActionRename:     {[]string{"n"}, "name store"},
	ActionConfirm:    {[]string{"enter"}, "confirm"},
	ActionCancel:     {[]string{"esc"}, "cancel"},
	ActionNextField:  {[]string{"tab"}, "next field"},
	ActionToggleUnit: {[]string{"ctrl+t"}, "un/kg"},
}

// KeyMap resolves key presses to actions.
type KeyMap struct {
	bindings map[Action]key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	km, _ := NewKeyMap(nil)
	return km
}

// NewKeyMap applies action -> keys overrides on top of the defaults. Unknown
// actions are an error and leave the defaults untouched.
func NewKeyMap(overrides map[string][]string) (KeyMap, error) {
	km := KeyMap{bindings: make(map[Action]key.Binding, len(defaultBindings))}
	for action, def := range defaultBindings {
		km.bindings[action] = newBinding(def.keys, def.help)
	}

	var unknown []string
	for name := range overrides {
		if _, ok := defaultBindings[Action(name)]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return km, errors.Errorf("unknown keybinding action(s): %s", strings.Join(unknown, ", "))
	}

	for name, keys := range overrides {
		action := Action(name)
		if len(keys) == 0 {
			continue
		}
		km.bindings[action] = newBinding(keys, defaultBindings[action].help)
	}
	return km, nil
}

func newBinding(keys []string, help string) key.Binding {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, normalizeKeyName(k))
	}
	return key.NewBinding(key.WithKeys(names...), key.WithHelp(displayKey(names[0]), help))
}

// normalizeKeyName maps config spellings to what tea.KeyMsg.String reports.
func normalizeKeyName(k string) string {
	switch strings.ToLower(strings.TrimSpace(k)) {
	case "space", "spacebar":
		return " "
	case "escape":
		return "esc"
	case "return":
		return "enter"
	case "del":
		return "delete"
	}
	return strings.TrimSpace(k)
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// Matches reports whether msg triggers action.
func (k KeyMap) Matches(msg tea.KeyMsg, action Action) bool {
	b, ok := k.bindings[action]
	if !ok {
		return false
	}
	return key.Matches(msg, b)
}

// Keys lists the keys bound to action.
func (k KeyMap) Keys(action Action) []string {
	return k.bindings[action].Keys()
}

// Help renders "[key] help" hints for the given actions.
func (k KeyMap) Help(actions ...Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		b, ok := k.bindings[a]
		if !ok {
			continue
		}
		h := b.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}
