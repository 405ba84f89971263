// Package tui provides the Bubble Tea integration for the crossing game.
// It handles the terminal UI loop, input mapping, and replay playback.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkorolev/riverhop/internal/game"
)

// SnapshotMsg carries one world snapshot published by the game loop.
// Snapshots arrive in fold order; the model displays the latest one.
type SnapshotMsg game.World

// ReplaySavedMsg reports that a finished run's journal was persisted.
type ReplaySavedMsg struct {
	ID    int64
	Score int
	Err   error
}

// PlaybackTickMsg advances replay playback by one recorded tick.
type PlaybackTickMsg time.Time

// playbackTickCmd schedules the next playback frame.
func playbackTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PlaybackTickMsg(t)
	})
}
