package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/island-jumper/internal/core"
)

// GameKeyMap holds the in-game bindings.
type GameKeyMap struct {
	AimLeft    key.Binding
	AimRight   key.Binding
	Jump       key.Binding
	Fire       key.Binding
	Shooting   key.Binding
	Autoplay   key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		AimLeft:    key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "aim/steer left")),
		AimRight:   key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "aim/steer right")),
		Jump:       key.NewBinding(key.WithKeys(" ", "w", "up"), key.WithHelp("space", "jump")),
		Fire:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fire")),
		Shooting:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "gun on/off")),
		Autoplay:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "autoplay")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "menu")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// ShortHelp implements help.KeyMap.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AimLeft, k.AimRight, k.Jump, k.Fire, k.Shooting, k.Autoplay, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AimLeft, k.AimRight, k.Jump},
		{k.Fire, k.Shooting, k.Autoplay},
		{k.Restart, k.Pause, k.Back, k.Quit},
	}
}

// Action maps a key to a game action. ActionQuit and ActionBack are host
// actions, never passed to the game.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.AimLeft):
		return core.ActionAimLeft
	case key.Matches(msg, k.AimRight):
		return core.ActionAimRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Shooting):
		return core.ActionToggleShooting
	case key.Matches(msg, k.Autoplay):
		return core.ActionToggleAutoplay
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// MenuAction is a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
