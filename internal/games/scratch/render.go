package scratch

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/scratchcat/internal/assets"
	"github.com/vovakirdan/scratchcat/internal/core"
)

// Visual constants
const (
	titleText   = "SCRATCH THE CAT"
	buttonText  = "[ TRY AGAIN ]"
	footerText  = "hold mouse on cat / SPACE toggles  |  R: try again  |  B: menu  |  Q: quit"
	headerTop   = 1 // Row of the title
	catTop      = 5 // Row of the cat frame
	padX, padY  = 2, 1
	wiggleFrame = 25 * time.Millisecond // 4 keyframes per 100ms
)

// Offsets played while the cat is being scratched, and while shaking.
var (
	wiggleX = []int{0, -1, 1, 0}
	shakeX  = []int{0, -2, 2, -2, 2, 0}
	shakeY  = []int{0, 1, -1, 1, -1, 0}
)

// layout holds the positions of everything on screen.
type layout struct {
	cat     core.Rect
	button  core.Rect
	footerY int
}

// layoutFor places the cat frame below the header, centered, using the
// largest art so the frame does not jump between states.
func (g *Game) layoutFor(w, h int) layout {
	aw, ah := g.art.MaxSize()
	frameW := aw + 2*padX + 2
	frameH := ah + 2*padY + 2

	cat := core.NewRect((w-frameW)/2, catTop, frameW, frameH)
	if g.ctrl != nil && g.ctrl.State() == StateWarning {
		cat = cat.Inset(-1) // The cat puffs up
	}

	bw := len(buttonText)
	button := core.NewRect((w-bw)/2, cat.Bottom()+1, bw, 1)

	return layout{
		cat:     cat,
		button:  button,
		footerY: h - 1,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	st := g.ctrl.State()
	dst.SetBackground(backgroundFor(st))

	lay := g.layoutFor(dst.Width(), dst.Height())

	// Header
	dst.DrawTextCentered(headerTop, titleText, core.ColorBrightYellow)
	dst.DrawTextCentered(headerTop+1, fmt.Sprintf("TOTAL: %d", g.ctrl.TotalScore()), core.ColorGray)
	if st.Holding() {
		line := fmt.Sprintf("+%d", g.ctrl.SessionScore())
		color := core.ColorBrightGreen
		if st == StateWarning {
			line += fmt.Sprintf(" (%sX MULTIPLIER!)", formatMultiplier(g.ctrl.Multiplier()))
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(headerTop+2, line, color)
	}

	// Cat
	dx, dy := g.offset(st)
	frame := lay.cat.Offset(dx, dy)
	dst.DrawBox(frame, frameColorFor(st))

	art := g.art.Art(ArtKey(st))
	artColor := core.ColorWhite
	if art.Broken {
		artColor = core.ColorRed
	}
	ax := frame.X + (frame.W-art.Width)/2
	ay := frame.Y + (frame.H-art.Height)/2
	for i, line := range art.Lines {
		dst.DrawTextColor(ax, ay+i, line, artColor)
	}

	if st == StateGameOver {
		dst.DrawTextColor(lay.button.X, lay.button.Y, buttonText, core.ColorBrightYellow)
	}

	dst.DrawTextCentered(lay.footerY, footerText, core.ColorGray)
}

// offset returns the frame displacement for the wiggle and shake cues.
// Both can apply at once; the shake wins on the x axis.
func (g *Game) offset(st State) (dx, dy int) {
	if st.Holding() {
		k := int(g.clock.Now()/wiggleFrame) % len(wiggleX)
		dx = wiggleX[k]
	}
	if g.ctrl.Shaking() {
		k := min(int(g.ctrl.ShakeProgress()*float64(len(shakeX))), len(shakeX)-1)
		dx, dy = shakeX[k], shakeY[k]
	}
	return dx, dy
}

func backgroundFor(st State) core.Color {
	switch st {
	case StateWarning:
		return core.ColorOrange
	case StateAttack:
		return core.ColorRed
	case StateGameOver:
		return core.ColorBlack
	default:
		return core.ColorSlate
	}
}

func frameColorFor(st State) core.Color {
	switch st {
	case StateScratching:
		return core.ColorGreen
	case StateWarning:
		return core.ColorBrightYellow
	case StateAttack:
		return core.ColorWhite
	default:
		return core.ColorGray
	}
}

// formatMultiplier prints 2 as "2" and 2.5 as "2.5".
func formatMultiplier(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// ArtKey returns the art key shown for a state.
func ArtKey(st State) string {
	switch st {
	case StateScratching:
		return assets.KeyScratching
	case StateWarning:
		return assets.KeyWarning
	case StateAttack:
		return assets.KeyAttack
	case StateGameOver:
		return assets.KeyGameOver
	default:
		return assets.KeyIdle
	}
}
