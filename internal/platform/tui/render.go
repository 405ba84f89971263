package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkorolev/riverhop/internal/config"
	"github.com/mkorolev/riverhop/internal/core"
	"github.com/mkorolev/riverhop/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawWorld renders one world snapshot into the screen buffer, scaling the
// virtual canvas to the terminal cell grid. The top row is reserved for the
// HUD; the playfield occupies the rest.
func DrawWorld(s *core.Screen, w game.World, cfg *config.Config) {
	s.Clear()

	fieldH := s.Height() - 1
	fieldW := s.Width()
	if fieldH < 2 || fieldW < 2 {
		return
	}

	scale := func(r core.Rect) (x, y, cw, ch int) {
		x = r.X * fieldW / cfg.Canvas.Width
		y = 1 + r.Y*fieldH/cfg.Canvas.Height
		cw = core.Max(1, r.W*fieldW/cfg.Canvas.Width)
		ch = core.Max(1, r.H*fieldH/cfg.Canvas.Height)
		return
	}

	// Background bands: goal strip on top, water in the middle.
	gx, gy, gw, gh := scale(core.NewRect(cfg.Goal.X, cfg.Goal.Y, cfg.Goal.Width, cfg.Goal.Height))
	s.FillRect(gx, gy, gw, gh, '░', core.ColorBrightGreen)

	waterTop := 1 + cfg.Water.Top*fieldH/cfg.Canvas.Height
	waterBottom := 1 + cfg.Water.Bottom*fieldH/cfg.Canvas.Height
	s.FillRect(0, waterTop, fieldW, waterBottom-waterTop, '~', core.ColorBlue)

	for _, l := range w.Logs {
		x, y, cw, ch := scale(l.Rect)
		s.FillRect(x, y, cw, ch, '▓', core.ColorYellow)
	}
	for _, c := range w.Cars {
		x, y, cw, ch := scale(c.Rect)
		s.FillRect(x, y, cw, ch, '█', core.ColorRed)
	}

	fx, fy, fw, fh := scale(w.Frog)
	s.FillRect(fx, fy, fw, fh, '▲', core.ColorGreen)

	drawHUD(s, w)

	if w.Over {
		msg := fmt.Sprintf(" GAME OVER - score %d ", w.Score)
		x := (s.Width() - len(msg)) / 2
		s.DrawTextColored(x, s.Height()/2, msg, core.ColorRed)
	}
}

// drawHUD writes the status line into the reserved top row.
func drawHUD(s *core.Screen, w game.World) {
	hud := fmt.Sprintf(" score: %d   tick: %d ", w.Score, w.Tick)
	s.DrawTextColored(0, 0, hud, core.ColorWhite)
}
