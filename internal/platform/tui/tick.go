// Package tui runs games in the terminal with Bubble Tea, locally or over SSH.
// It owns the tick loop, maps keys and mouse events to game actions, and
// draws the game's screen buffer.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game simulation tick. Ticks carry the id of the model
// that scheduled them so a stale tick from a previous game is dropped.
type TickMsg struct {
	Time  time.Time
	Model uint64
}

var modelSeq atomic.Uint64

func nextModelID() uint64 {
	return modelSeq.Add(1)
}

// tickCmd returns a command that sends a tick for the model at the given rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Model: id}
	})
}

// tickInterval is the nominal gap between ticks at the given rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
