package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkorolev/riverhop/internal/config"
	"github.com/mkorolev/riverhop/internal/core"
	"github.com/mkorolev/riverhop/internal/game"
	"github.com/mkorolev/riverhop/internal/input"
	"github.com/mkorolev/riverhop/internal/storage"
)

// PlayModel is the Bubble Tea model for a live game session. The simulation
// runs outside Bubble Tea in a game.Loop goroutine; the model submits mapped
// commands to the loop and displays the snapshots the loop publishes.
type PlayModel struct {
	cfg      *config.Config
	variant  string
	loop     *game.Loop
	mapper   *input.Mapper
	screen   *core.Screen
	world    game.World
	keys     keyMap
	help     help.Model
	status   string
	quitting bool
}

// NewPlayModel creates a model displaying the given loop's snapshots.
func NewPlayModel(cfg *config.Config, variant string, loop *game.Loop, width, height int) PlayModel {
	return PlayModel{
		cfg:     cfg,
		variant: variant,
		loop:    loop,
		mapper:  input.NewMapper(cfg),
		screen:  core.NewScreen(width, height),
		world:   game.NewWorld(cfg),
		keys:    newKeyMap(cfg.Policies.Restart),
		help:    help.New(),
	}
}

// Init implements tea.Model. The loop has its own clock, so no tick command
// is scheduled here.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case SnapshotMsg:
		m.world = game.World(msg)
		return m, nil

	case ReplaySavedMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("replay not saved: %v", msg.Err)
		} else {
			m.status = fmt.Sprintf("replay #%d saved (score %d)", msg.ID, msg.Score)
		}
		return m, nil
	}

	return m, nil
}

// handleKey maps a key press to a game command and submits it to the loop.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}

	if ev, ok := m.mapper.Map(msg.String()); ok {
		if _, restart := ev.(game.RestartEvent); restart {
			m.status = ""
		}
		m.loop.Submit(ev)
	}
	return m, nil
}

// View renders the latest snapshot plus the help bar.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	DrawWorld(m.screen, m.world, m.cfg)
	label := " " + m.variant + " "
	m.screen.DrawTextColored(m.screen.Width()-len(label), 0, label, core.ColorGray)
	if m.status != "" {
		m.screen.DrawTextColored(0, m.screen.Height()-1, " "+m.status+" ", core.ColorGray)
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// RunGame wires a loop, a model, and a Bubble Tea program together and plays
// one interactive session on the local terminal. Finished runs are journaled
// to the store when one is provided.
func RunGame(cfg *config.Config, variant string, store *storage.Store, width, height int) error {
	var p *tea.Program

	loop := game.NewLoop(cfg, func(w game.World) {
		p.Send(SnapshotMsg(w))
	})
	loop.OnGameOver(func(rec game.Recording, w game.World) {
		if store == nil {
			return
		}
		id, err := store.SaveReplay(variant, w.Score, rec)
		p.Send(ReplaySavedMsg{ID: id, Score: w.Score, Err: err})
	})

	model := NewPlayModel(cfg, variant, loop, width, height-1)
	p = tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx) //nolint:errcheck // Stops via ctx when the program exits

	_, err := p.Run()
	return err
}
