package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Smallest screen the arena can be drawn on.
const (
	minScreenW = 24
	minScreenH = 8
)

// viewport maps arena coordinates onto the screen interior.
// Row 0 is the score line, rows 1 and H-2 are the border, row H-1 is help.
type viewport struct {
	arenaW, arenaH float64
	innerW, innerH int
}

func newViewport(dst *core.Screen, g *Game) viewport {
	return viewport{
		arenaW: g.cfg.Arena.Width,
		arenaH: g.cfg.Arena.Height,
		innerW: dst.Width() - 2,
		innerH: dst.Height() - 4,
	}
}

// col returns the screen column for an arena x.
func (v viewport) col(x float64) int {
	c := int(math.Floor((x + v.arenaW/2) / v.arenaW * float64(v.innerW)))
	return 1 + core.Clamp(c, 0, v.innerW-1)
}

// row returns the screen row for an arena y (+y is up, rows grow down).
func (v viewport) row(y float64) int {
	r := int(math.Floor((v.arenaH/2 - y) / v.arenaH * float64(v.innerH)))
	return 2 + core.Clamp(r, 0, v.innerH-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	v := newViewport(dst, g)
	w := g.sim.World()
	half := g.cfg.Paddle.Width / 2

	// Border and dashed centre line
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-2), core.ColorBrightWhite)
	netX := v.col(0)
	for y := 2; y < 2+v.innerH; y += 2 {
		dst.SetColored(netX, y, NetChar, core.ColorGray)
	}

	// Paddles
	for _, p := range w.Paddles {
		top := v.row(p.Pos.Y + g.cfg.Paddle.Length/2)
		bottom := v.row(p.Pos.Y - g.cfg.Paddle.Length/2)
		left := v.col(p.Pos.X - half)
		right := v.col(p.Pos.X + half)
		dst.DrawRect(core.NewRect(left, top, right-left+1, bottom-top+1), PaddleChar, core.ColorBrightWhite)
	}

	// Ball
	dst.SetColored(v.col(w.Ball.Pos.X), v.row(w.Ball.Pos.Y), BallChar, core.ColorYellow)

	// Score counters either side of the net
	left := g.sim.ScoreText(SideLeft)
	dst.DrawTextColored(netX-3-len(left)+1, 0, left, core.ColorBrightWhite)
	dst.DrawTextColored(netX+3, 0, g.sim.ScoreText(SideRight), core.ColorBrightWhite)
	dst.DrawTextColored(1, 0, "LEFT", core.ColorCyan)
	dst.DrawTextColored(dst.Width()-6, 0, "RIGHT", core.ColorMagenta)

	// Help line
	help := fmt.Sprintf("%s · first to %d · p pause · q quit", g.title, g.cfg.Gameplay.WinScore)
	dst.DrawTextCentered(dst.Height()-1, help, core.ColorGray)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if winner, done := g.sim.Winner(); done {
		title := "LEFT WINS!"
		if winner == SideRight {
			title = "RIGHT WINS!"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("%d - %d  |  R restart · Esc leave",
			g.sim.Score(SideLeft), g.sim.Score(SideRight)))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))
	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorYellow)

	// Draw text
	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle, core.ColorWhite)
}
