package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/engine"
)

// Minimum terminal size for a readable playfield.
const (
	MinWidth  = 40
	MinHeight = 16
)

// Visual characters for rendering
const (
	ShipChar      = '▲'
	ShotChar      = '|'
	EnemyShotChar = '!'
	DimStarChar   = '·'
	StarChar      = '*'
)

// enemyGlyphs holds one sprite character per formation row, top first.
var enemyGlyphs = []rune{'W', 'M', 'M', 'A', 'A'}

var enemyColors = []core.Color{core.ColorMagenta, core.ColorCyan, core.ColorCyan, core.ColorGreen, core.ColorGreen}

// hudRows is the number of rows above the playfield.
const hudRows = 1

// viewport maps world coordinates onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
	cols   int
	rows   int
}

func newViewport(dst *core.Screen, world config.InvadersScreen) viewport {
	rows := dst.Height() - hudRows
	return viewport{
		sx:   float64(dst.Width()) / world.Width,
		sy:   float64(rows) / world.Height,
		cols: dst.Width(),
		rows: rows,
	}
}

// area returns the cells covered by r, at least one cell in each direction.
func (v viewport) area(r core.Rect) core.Area {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return core.NewArea(x0, y0+hudRows, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// point returns the cell containing the world point (x, y).
func (v viewport) point(x, y float64) (int, int) {
	return int(x * v.sx), int(y*v.sy) + hudRows
}

// RenderSnapshot draws a simulation snapshot onto dst, scaling the world
// to fit the screen.
func RenderSnapshot(dst *core.Screen, snap engine.Snapshot, world config.InvadersScreen, paused bool) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
		return
	}

	v := newViewport(dst, world)

	for _, s := range snap.Stars {
		x, y := v.point(s.X, s.Y)
		if s.Brightness >= 200 {
			dst.SetColored(x, y, StarChar, core.ColorWhite)
		} else {
			dst.SetColored(x, y, DimStarChar, core.ColorGray)
		}
	}

	for _, e := range snap.Enemies {
		row := core.Clamp(e.Row, 0, len(enemyGlyphs)-1)
		fillColored(dst, v.area(e.Bounds), enemyGlyphs[row], enemyColors[row])
	}

	for _, p := range snap.PowerUps {
		c := pickupColor(p.Kind)
		if int(p.Pulse)%2 == 1 {
			c = core.ColorBrightWhite
		}
		a := v.area(p.Bounds)
		dst.SetColored(a.X+a.W/2, a.Y+a.H/2, p.Kind.Glyph(), c)
	}

	drawShip(dst, v, snap)

	for _, p := range snap.Shots {
		cx, cy := p.Bounds.Center()
		x, y := v.point(cx, cy)
		dst.SetColored(x, y, ShotChar, core.ColorBrightYellow)
	}
	for _, p := range snap.EnemyShots {
		cx, cy := p.Bounds.Center()
		x, y := v.point(cx, cy)
		dst.SetColored(x, y, EnemyShotChar, core.ColorBrightRed)
	}

	drawHUD(dst, snap)

	switch {
	case snap.Phase == engine.PhaseGameOver && snap.Victory:
		drawCenteredMessage(dst, "VICTORY!", fmt.Sprintf("Score: %d  |  R restart  Q quit", snap.Score), core.ColorBrightGreen)
	case snap.Phase == engine.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  Q quit", snap.Score), core.ColorBrightRed)
	case paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
}

func fillColored(dst *core.Screen, a core.Area, r rune, c core.Color) {
	for y := a.Y; y < a.Bottom(); y++ {
		for x := a.X; x < a.Right(); x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

func drawShip(dst *core.Screen, v viewport, snap engine.Snapshot) {
	a := v.area(snap.Player)
	fillColored(dst, a, ShipChar, shipColor(snap.Buff))

	if snap.Buff == engine.BuffShield {
		for y := a.Y; y < a.Bottom(); y++ {
			dst.SetColored(a.X-1, y, '(', core.ColorBrightBlue)
			dst.SetColored(a.Right(), y, ')', core.ColorBrightBlue)
		}
	}
}

// shipColor tints the ship with the bright color of its active buff.
func shipColor(b engine.BuffKind) core.Color {
	if b == engine.BuffNone {
		return core.ColorBrightGreen
	}
	return pickupColor(b).Bright()
}

func pickupColor(b engine.BuffKind) core.Color {
	switch b {
	case engine.BuffTripleShot:
		return core.ColorYellow
	case engine.BuffRapidFire:
		return core.ColorCyan
	default:
		return core.ColorBlue
	}
}

// BuffText returns the HUD buff timer, e.g. "TRIPLE SHOT: 9.3s", or empty.
func BuffText(snap engine.Snapshot) string {
	if snap.Buff == engine.BuffNone {
		return ""
	}
	return fmt.Sprintf("%s: %.1fs", snap.Buff.Label(), snap.BuffRemaining.Seconds())
}

func drawHUD(dst *core.Screen, snap engine.Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	enemies := fmt.Sprintf("Enemies: %d", len(snap.Enemies))
	dst.DrawTextCenteredColored(0, enemies, core.ColorGray)

	if buff := BuffText(snap); buff != "" {
		dst.DrawTextColored(dst.Width()-len(buff)-1, 0, buff, shipColor(snap.Buff))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewArea((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
