package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkorolev/riverhop/internal/config"
	"github.com/mkorolev/riverhop/internal/core"
	"github.com/mkorolev/riverhop/internal/game"
)

// playback speed presets cycled with the space key.
var playbackSpeeds = []int{1, 2, 4, 8}

// ReplayModel plays a recorded run back tick by tick. Playback folds the
// expanded event stream through the same reducer that produced it, so the
// shown run is exactly the recorded one.
type ReplayModel struct {
	cfg      *config.Config
	events   []game.Event
	idx      int
	world    game.World
	screen   *core.Screen
	interval time.Duration
	speed    int
	paused   bool
	done     bool
	quitting bool
}

// NewReplayModel creates a playback model for one recording.
func NewReplayModel(cfg *config.Config, rec game.Recording, width, height int) ReplayModel {
	return ReplayModel{
		cfg:      cfg,
		events:   rec.Events(),
		world:    game.NewWorld(cfg),
		screen:   core.NewScreen(width, height),
		interval: cfg.Tick.Interval(),
	}
}

// Init starts the playback clock.
func (m ReplayModel) Init() tea.Cmd {
	return playbackTickCmd(m.interval)
}

// Update handles messages and advances playback.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.speed = (m.speed + 1) % len(playbackSpeeds)
			return m, nil
		case "p":
			m.paused = !m.paused
			if !m.paused && !m.done {
				return m, playbackTickCmd(m.interval)
			}
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case PlaybackTickMsg:
		if m.paused || m.done {
			return m, nil
		}
		for i := 0; i < playbackSpeeds[m.speed]; i++ {
			m.advanceOneTick()
		}
		if m.done {
			return m, nil
		}
		return m, playbackTickCmd(m.interval)
	}

	return m, nil
}

// advanceOneTick folds events up to and including the next clock tick.
func (m *ReplayModel) advanceOneTick() {
	for m.idx < len(m.events) {
		ev := m.events[m.idx]
		m.idx++
		m.world = game.Step(m.world, ev, m.cfg)
		if _, isTick := ev.(game.TickEvent); isTick {
			return
		}
	}
	m.done = true
}

// Done reports whether playback reached the end of the recording.
func (m ReplayModel) Done() bool {
	return m.done
}

// World returns the snapshot playback currently shows.
func (m ReplayModel) World() game.World {
	return m.world
}

// View renders the playback frame.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	DrawWorld(m.screen, m.world, m.cfg)

	status := fmt.Sprintf(" replay %d/%d events  speed x%d ", m.idx, len(m.events), playbackSpeeds[m.speed])
	if m.paused {
		status += " [paused]"
	}
	if m.done {
		status = fmt.Sprintf(" replay finished - score %d  (q to exit) ", m.world.Score)
	}
	m.screen.DrawTextColored(0, m.screen.Height()-1, status, core.ColorGray)

	return RenderScreen(m.screen)
}

// RunReplay plays one recording in the local terminal.
func RunReplay(cfg *config.Config, rec game.Recording, width, height int) error {
	model := NewReplayModel(cfg, rec, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
