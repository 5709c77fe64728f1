package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// actionBinding ties a key binding to the game action it produces.
type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// Bindings are checked in order; the first match wins.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	bind := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}
	return &KeyMapper{
		game: []actionBinding{
			{bind("quit", "q", "ctrl+c"), core.ActionQuit},
			{bind("up", "up", "w", "k"), core.ActionUp},
			{bind("down", "down", "s", "j"), core.ActionDown},
			{bind("left", "left", "a", "h"), core.ActionLeft},
			{bind("right", "right", "d", "l"), core.ActionRight},
			{bind("pause", "p", " "), core.ActionPause},
			{bind("restart", "r"), core.ActionRestart},
			{bind("back", "esc"), core.ActionBack},
			{bind("confirm", "enter"), core.ActionConfirm},
		},
		menu: []menuBinding{
			{bind("quit", "q", "ctrl+c"), MenuActionQuit},
			{bind("up", "up", "w", "k"), MenuActionUp},
			{bind("down", "down", "s", "j"), MenuActionDown},
			{bind("select", "enter", " "), MenuActionSelect},
			{bind("back", "esc", "b"), MenuActionBack},
			{bind("scores", "tab"), MenuActionScoreboard},
		},
	}
}

// MapKey translates a key message to an in-game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
