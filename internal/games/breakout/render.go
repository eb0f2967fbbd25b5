package breakout

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/entity"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		hint := fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH)
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorDefault)
		return
	}

	// scene first, then text on top of it
	g.table.Each(func(_ entity.Handle, e entity.Entity) bool {
		if e.Kind != entity.KindLabel && e.Kind != entity.KindButton {
			drawEntity(dst, e)
		}
		return true
	})
	g.table.Each(func(_ entity.Handle, e entity.Entity) bool {
		if e.Kind == entity.KindLabel || e.Kind == entity.KindButton {
			drawEntity(dst, e)
		}
		return true
	})

	if g.paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

func drawEntity(dst *core.Screen, e entity.Entity) {
	switch e.Kind {
	case entity.KindBorder:
		r := e.Bounds().Cells()
		dst.DrawBox(core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), e.Color)
	case entity.KindBrick:
		dst.FillRect(e.Bounds().Cells(), BrickChar, e.Color)
	case entity.KindPaddle:
		dst.FillRect(e.Bounds().Cells(), PaddleChar, e.Color)
	case entity.KindBall:
		dst.SetColored(int(math.Floor(e.Pos.X)), int(math.Floor(e.Pos.Y)), BallChar, e.Color)
	case entity.KindLabel:
		drawLabel(dst, e)
	case entity.KindButton:
		r := e.Bounds().Cells()
		dst.FillRect(r, ' ', e.Color)
		dst.DrawBox(r, e.Color)
		n := utf8.RuneCountInString(e.Text)
		dst.DrawTextColored(r.X+(r.W-n)/2, r.Y+r.H/2, e.Text, e.Color)
	}
}

func drawLabel(dst *core.Screen, e entity.Entity) {
	n := utf8.RuneCountInString(e.Text)
	x := int(math.Floor(e.Pos.X))
	switch e.Align {
	case entity.AlignCenter:
		x -= n / 2
	case entity.AlignRight:
		x -= n
	}
	dst.DrawTextColored(x, int(math.Floor(e.Pos.Y)), e.Text, e.Color)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	tw := utf8.RuneCountInString(title)
	sw := utf8.RuneCountInString(subtitle)
	boxW := max(tw, sw) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)
	dst.DrawTextColored(r.X+(boxW-tw)/2, r.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(r.X+(boxW-sw)/2, r.Y+3, subtitle, core.ColorDefault)
}
