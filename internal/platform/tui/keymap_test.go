package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/snaketui/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('w'), core.ActionUp},
		{runeKey('s'), core.ActionDown},
		{runeKey('a'), core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{runeKey('k'), core.ActionUp},
		{runeKey('j'), core.ActionDown},
		{runeKey('h'), core.ActionLeft},
		{runeKey('l'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('p'), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('x'), core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(tt.msg)
		if action != tt.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), action, tt.want)
		}
		if isQuit {
			t.Errorf("MapKey(%q) unexpectedly reported quit", tt.msg.String())
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, isQuit := km.MapKey(msg)
		if !isQuit || action != core.ActionQuit {
			t.Errorf("MapKey(%q) = (%v, %v), expected quit", msg.String(), action, isQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('p'), &frame); quit {
		t.Fatal("'p' should not be a quit request")
	}
	if !frame.Has(core.ActionPause) {
		t.Error("pause key should set ActionPause in the frame")
	}
}
