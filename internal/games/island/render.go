package island

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/island-jumper/internal/core"
)

// Visual characters for rendering
const (
	WaterChar    = '~'
	BankChar     = '▒'
	TileChar     = '█'
	MovingChar   = '▓'
	TrapChar     = '▒'
	DockChar     = '▤'
	PlayerChar   = '@'
	AirChar      = 'o'
	BoatChar     = 'A'
	RockChar     = '▲'
	SharkChar    = '^'
	CoconutChar  = '●'
	BulletChar   = '·'
	TrunkChar    = 'Y'
	AimChar      = '.'
	LifeChar     = '♥'
	hudRows      = 1
	footerRows   = 1
	viewAhead    = 650.0 // World units shown above the player
	viewBehind   = 150.0 // World units shown below the player
	aimDotsCount = 4
)

// viewport maps world coordinates onto screen cells. The player is pinned
// to a fixed row; forward (-Z) is up.
type viewport struct {
	left, right int // River columns, inclusive
	top, bottom int // Playfield rows, inclusive
	playerRow   int
	camZ        float64
	riverHalf   float64
	unitX       float64 // World units per column
	unitZ       float64 // World units per row
}

func newViewport(w, h int, camZ, riverHalf float64) viewport {
	v := viewport{
		left:      2,
		right:     w - 3,
		top:       hudRows,
		bottom:    h - 1 - footerRows,
		camZ:      camZ,
		riverHalf: riverHalf,
	}
	rows := max(1, v.bottom-v.top+1)
	cols := max(1, v.right-v.left+1)
	v.unitX = 2 * riverHalf / float64(cols)
	v.unitZ = (viewAhead + viewBehind) / float64(rows)
	v.playerRow = v.top + int(viewAhead/v.unitZ)
	return v
}

func (v viewport) project(p mgl64.Vec3) (int, int) {
	col := v.left + int(math.Floor((p.X()+v.riverHalf)/v.unitX))
	row := v.playerRow + int(math.Round((p.Z()-v.camZ)/v.unitZ))
	return col, row
}

// span returns the screen rectangle covered by a square footprint.
func (v viewport) span(center mgl64.Vec3, size float64) core.Rect {
	x0, y0 := v.project(mgl64.Vec3{center.X() - size/2, 0, center.Z() - size/2})
	x1, y1 := v.project(mgl64.Vec3{center.X() + size/2, 0, center.Z() + size/2})
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

func (v viewport) visible(col, row int) bool {
	return row >= v.top && row <= v.bottom && col >= v.left-2 && col <= v.right+2
}

func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := max(r.Y, v.top); y < min(r.Bottom(), v.bottom+1); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// Render draws a top-down view of the river around the player.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	snap := g.session.Snapshot()
	w, h := dst.Width(), dst.Height()
	if w < 20 || h < 8 {
		dst.DrawText(0, 0, "Window too small")
		return
	}

	v := newViewport(w, h, snap.Player.Pos.Z(), snap.RiverHalf)
	drawRiver(dst, v, snap.Tick)

	for _, t := range snap.Tiles {
		drawTile(dst, v, t, g.session.cfg.Shooting.TrunkOffset)
	}
	for _, o := range snap.Obstacles {
		v.fill(dst, v.span(o.Pos, o.Size), RockChar, core.ColorGray)
	}
	for _, c := range snap.Coconuts {
		if col, row := v.project(c.Pos); v.visible(col, row) {
			dst.SetColored(col, row, CoconutChar, core.ColorBrown)
		}
	}
	for _, s := range snap.Sharks {
		if col, row := v.project(s.Pos); v.visible(col, row) {
			dst.SetColored(col, row, SharkChar, core.ColorBrightRed)
		}
	}
	for _, b := range snap.Bullets {
		if col, row := v.project(b.Pos); v.visible(col, row) {
			dst.SetColored(col, row, BulletChar, core.ColorBrightYellow)
		}
	}
	drawPlayer(dst, v, snap)

	g.drawHUD(dst, snap)
	g.drawFooter(dst, snap)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.State == StateGameOver.String() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

func drawRiver(dst *core.Screen, v viewport, tick uint64) {
	// Ripples scroll with the camera so the river appears to flow.
	shift := int(math.Floor(-v.camZ / v.unitZ))
	for y := v.top; y <= v.bottom; y++ {
		dst.SetColored(v.left-2, y, BankChar, core.ColorGreen)
		dst.SetColored(v.left-1, y, BankChar, core.ColorGreen)
		dst.SetColored(v.right+1, y, BankChar, core.ColorGreen)
		dst.SetColored(v.right+2, y, BankChar, core.ColorGreen)
		if (y+shift)%3 != 0 {
			continue
		}
		for x := v.left; x <= v.right; x++ {
			if (x+int(tick/20))%4 == 0 {
				dst.SetColored(x, y, WaterChar, core.ColorBlue)
			}
		}
	}
}

func drawTile(dst *core.Screen, v viewport, t TileView, trunkOffset float64) {
	ch := TileChar
	color := core.Color(t.Color)
	switch t.Kind {
	case KindMoving.String():
		ch = MovingChar
	case KindTrap.String():
		ch = TrapChar
		if t.Armed && t.Pulse > 0.5 {
			color = core.ColorBrightRed
		}
	case KindBoatDock.String(), KindExitDock.String():
		ch = DockChar
	case KindPowerUp.String():
		if t.Consumed {
			color = core.ColorGray
		}
	}
	v.fill(dst, v.span(t.Pos, t.Size), ch, color)

	if t.Kind == KindCoconut.String() && !t.TreeShot {
		trunk := mgl64.Vec3{t.Pos.X() + t.Size*trunkOffset, 0, t.Pos.Z()}
		if col, row := v.project(trunk); v.visible(col, row) {
			dst.SetColored(col, row, TrunkChar, core.ColorBrightGreen)
		}
	}
}

func drawPlayer(dst *core.Screen, v viewport, snap Snapshot) {
	p := snap.Player
	col, row := v.project(p.Pos)
	switch snap.State {
	case StateBoat.String():
		dst.SetColored(col-1, row, '/', core.ColorOrange)
		dst.SetColored(col, row, BoatChar, core.ColorBrightWhite)
		dst.SetColored(col+1, row, '\\', core.ColorOrange)
		dst.SetColored(col, row+1, '▀', core.ColorOrange)
	case StateJumping.String():
		dst.SetColored(col, row, AirChar, core.ColorBrightWhite)
	case StateDrowning.String():
		dst.SetColored(col, row, WaterChar, core.ColorBrightCyan)
	default:
		dst.SetColored(col, row, PlayerChar, core.ColorBrightWhite)
	}

	if snap.State != StateAiming.String() {
		return
	}
	dir := core.Heading(p.Aim)
	for i := 1; i <= aimDotsCount; i++ {
		dot := p.Pos.Add(dir.Mul(float64(i) * 30))
		if c, r := v.project(dot); v.visible(c, r) && dst.Get(c, r) != PlayerChar {
			dst.SetColored(c, r, AimChar, core.ColorWhite)
		}
	}
}

// drawHUD draws the score line at the top.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf(" Score: %d  %s", snap.Score, snap.Stage)
	if snap.State == StateBoat.String() {
		left += fmt.Sprintf("  %s  exit in %d", strings.Repeat(string(LifeChar), max(0, snap.Player.Lives)), snap.ExitIn)
	} else {
		left += fmt.Sprintf("  [%s %d]", snap.Mode, snap.ModeTilesLeft)
	}
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	var flags []string
	if snap.FrenzyLeft > 0 {
		flags = append(flags, fmt.Sprintf("SINKS %.1fs", snap.FrenzyLeft))
	}
	if snap.Player.Boost > 0 {
		flags = append(flags, fmt.Sprintf("BOOST %d", snap.Player.Boost))
	}
	if snap.Calm > 0 {
		flags = append(flags, fmt.Sprintf("CALM %d", snap.Calm))
	}
	if snap.Shooting {
		flags = append(flags, "GUN")
	}
	if snap.Autoplay {
		flags = append(flags, "AUTO")
	}
	right := strings.Join(flags, " ") + " "
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightYellow)
}

// drawFooter shows the last cue, or the key help.
func (g *Game) drawFooter(dst *core.Screen, snap Snapshot) {
	y := dst.Height() - 1
	if g.bannerLeft > 0 && g.banner != "" {
		dst.DrawTextCentered(y, g.banner)
		return
	}
	help := "A/D aim  SPACE jump  X gun  F fire  T auto  R restart  P pause  Q quit"
	if snap.State == StateBoat.String() {
		help = "A/D steer  X gun  F fire  T auto  P pause  Q quit"
	}
	dst.DrawTextColored(0, y, help, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
