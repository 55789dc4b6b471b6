package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Board layout constants
const (
	hudHeight = 2 // Status line plus separator
	cellWidth = 2 // Terminal columns per grid cell
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// paintGame draws the HUD, the bordered board and any status overlay.
func paintGame(dst *core.Screen, snap snake.Snapshot, preset config.DifficultyPreset) {
	dst.Clear()
	renderHUD(dst, snap, preset)

	boardW := snap.GridSize*cellWidth + 2
	boardH := snap.GridSize + 2
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	if boardW > area.W || boardH > area.H {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	box := area.CenterIn(boardW, boardH)
	dst.DrawBox(box, core.ColorGray)
	for _, c := range snap.Cells {
		x := box.X + 1 + c.Pos.X*cellWidth
		y := box.Y + 1 + c.Pos.Y
		dst.DrawColoredText(x, y, cellGlyph(c), c.Color)
	}

	switch snap.Status {
	case snake.StatusStarting:
		renderOverlay(dst, "Snake", "Press P to start")
	case snake.StatusPausing:
		renderOverlay(dst, "Paused", "Press P to continue")
	case snake.StatusRestarting:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - press R to restart", snap.Score))
	}
}

func cellGlyph(c snake.Cell) string {
	switch {
	case c.Shape == snake.ShapeDisc:
		return "()"
	case c.Color == snake.ColorBackground:
		return "  "
	default:
		return "██"
	}
}

// renderHUD draws the top status bar. Fields are dropped from the right
// until the line fits the screen width; the score is always kept.
func renderHUD(dst *core.Screen, snap snake.Snapshot, preset config.DifficultyPreset) {
	fields := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Length: %d", snap.Length),
		fmt.Sprintf("Food: %d", len(snap.Food)),
		fmt.Sprintf("Preset: %s", preset),
	}

	hud := " Snake - " + strings.Join(fields, "  ")
	for n := len(fields) - 1; n > 0 && len([]rune(hud)) > dst.Width(); n-- {
		hud = " Snake - " + strings.Join(fields[:n], "  ")
	}
	if len([]rune(hud)) > dst.Width() {
		hud = " " + fields[0]
	}
	dst.DrawColoredText(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 4
	box := dst.Bounds().CenterIn(w, 5)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawColoredText(box.X+(w-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(w-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
