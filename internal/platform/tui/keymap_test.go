package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/scratchcat/internal/core"
)

func TestGameKeyMapMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionToggle},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionToggle},
		{"r", runeKey('r'), core.ActionRestart},
		{"b", runeKey('b'), core.ActionBack},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s has no action", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	g := newFakeGame() // cat at (10,5) 20x10
	g.button = core.NewRect(30, 18, 13, 1)

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{
			"left press on cat",
			tea.MouseMsg{X: 15, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			core.ActionPress,
		},
		{
			"left press off cat",
			tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			core.ActionNone,
		},
		{
			"right press on cat",
			tea.MouseMsg{X: 15, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			core.ActionNone,
		},
		{
			"left press on button",
			tea.MouseMsg{X: 35, Y: 18, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			core.ActionRestart,
		},
		{
			"release off cat",
			tea.MouseMsg{X: 79, Y: 23, Action: tea.MouseActionRelease},
			core.ActionRelease,
		},
		{
			"motion",
			tea.MouseMsg{X: 15, Y: 8, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			core.ActionNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapMouse(tt.msg, g); got != tt.want {
				t.Errorf("MapMouse() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.SetBackground(core.ColorOrange)
	s.DrawTextColor(0, 0, "TOTAL: 5", core.ColorGray)
	s.DrawTextColor(0, 1, "+3", core.ColorBrightGreen)

	out := RenderScreen(s)
	for _, want := range []string{"TOTAL: 5", "+3"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q", want)
		}
	}
}
