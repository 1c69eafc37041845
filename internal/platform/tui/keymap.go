package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Control represents a non-button action derived from input.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlPause
	ControlReset
)

// KeyMapper translates Bubble Tea key messages to button bits and controls.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a button mask and a control action.
// Digit keys 1..7 map to the seven segment buttons (bits 0..6); the 8 key
// maps to the spare line on bit 7, which no pattern ever targets.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (buttons uint8, ctrl Control) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q", "esc":
		return 0, ControlQuit
	case "p", " ":
		return 0, ControlPause
	case "r":
		return 0, ControlReset
	}

	switch key {
	case "1", "2", "3", "4", "5", "6", "7", "8":
		bit := key[0] - '1'
		return 1 << bit, ControlNone
	}

	return 0, ControlNone
}
