package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jailrun/internal/core"
)

// gameKeys binds keys to in-game actions. Quit keys are handled apart.
var gameKeys = map[string]core.Action{
	"enter": core.ActionConfirm,
	"w":     core.ActionUp,
	"up":    core.ActionUp,
	"s":     core.ActionDown,
	"down":  core.ActionDown,
	" ":     core.ActionTap,
	"1":     core.ActionSneak,
	"2":     core.ActionSearch,
	"3":     core.ActionFight,
	"e":     core.ActionEscape,
	"+":     core.ActionUpvote,
	"=":     core.ActionUpvote,
	"-":     core.ActionDownvote,
	"_":     core.ActionDownvote,
	"b":     core.ActionBack,
	"esc":   core.ActionBack,
	"p":     core.ActionPause,
	"r":     core.ActionRestart,
}

func isQuitKey(key string) bool {
	return key == "q" || key == "ctrl+c"
}

// KeyMapper turns Bubble Tea key messages into game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
}

func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys}
}

// MapKey returns the action bound to msg (ActionNone if unbound) and
// whether the key asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	key := msg.String()
	if isQuitKey(key) {
		return core.ActionQuit, true
	}
	return km.game[key], false
}

// MapKeyToFrame records the key's action in frame and reports a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, quit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return quit
}

// MenuAction is what a key does on the game picker.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction maps picker keys. j and k move like in vim.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch key := msg.String(); {
	case isQuitKey(key):
		return MenuActionQuit
	case key == "w" || key == "up" || key == "k":
		return MenuActionUp
	case key == "s" || key == "down" || key == "j":
		return MenuActionDown
	case key == "enter" || key == " ":
		return MenuActionSelect
	case key == "b" || key == "esc":
		return MenuActionBack
	case key == "tab":
		return MenuActionScoreboard
	default:
		return MenuActionNone
	}
}
