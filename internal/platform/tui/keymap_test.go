package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkarpenko/tui-asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		isQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a rotates left", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d rotates right", runeKey('d'), core.ActionRight, false},
		{"up thrusts", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"w thrusts", runeKey('w'), core.ActionThrust, false},
		{"space fires", runeKey(' '), core.ActionFire, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if action != tt.action || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tt.msg.String(), action, isQuit, tt.action, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('w'), &frame); quit {
		t.Error("thrust key reported as quit")
	}
	if !frame.Has(core.ActionThrust) {
		t.Error("frame missing thrust action")
	}

	if quit := km.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Error("quit key not reported as quit")
	}
}
