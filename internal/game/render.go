package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBG      = color.RGBA{91, 15, 113, 255}
	colorGrid    = color.RGBA{18, 15, 113, 255}
	colorHead    = color.RGBA{15, 3, 9, 255}
	colorBodySeg = color.RGBA{125, 218, 88, 255}
	colorTerm    = color.RGBA{255, 222, 89, 255}
	colorTrans   = color.RGBA{93, 226, 231, 255}
	colorHUD     = color.RGBA{239, 195, 202, 255}
	colorItemBG  = color.RGBA{25, 65, 100, 255}
	colorShadow  = color.RGBA{0, 0, 0, 255}
	colorOverlay = color.RGBA{0, 0, 0, 200}
)

var uiFace = text.NewGoXFace(basicfont.Face7x13)

const textScale = 2

// drawFrame renders one snapshot. Pure function of the snapshot; it never
// reads game state directly.
func drawFrame(screen *ebiten.Image, snap Snapshot) {
	screen.Fill(colorBG)
	cs := float32(snap.CellSize)

	for x := 0; x <= snap.GridW; x++ {
		fx := float32(x) * cs
		vector.StrokeLine(screen, fx, 0, fx, float32(snap.GridH)*cs, 1, colorGrid, false)
	}
	for y := 0; y <= snap.GridH; y++ {
		fy := float32(y) * cs
		vector.StrokeLine(screen, 0, fy, float32(snap.GridW)*cs, fy, 1, colorGrid, false)
	}

	for i, c := range snap.Body {
		clr := colorBodySeg
		if i == 0 {
			clr = colorHead
		}
		vector.DrawFilledRect(screen,
			float32(c.X)*cs+2, float32(c.Y)*cs+2, cs-4, cs-4, clr, false)
	}

	for _, it := range snap.Items {
		drawItem(screen, it, snap.CellSize)
	}

	drawHUD(screen, snap)

	if snap.Paused {
		drawOverlay(screen, snap, "PAUSED", "press P to resume")
	}
	if snap.GameOver {
		drawOverlay(screen, snap, fmt.Sprintf("GAME OVER  score %d", snap.Score), "press R to restart")
	}
}

// drawItem centers a shadowed text pill on the item's cell. Long labels
// overflow their cell on purpose; the pill keeps them readable.
func drawItem(screen *ebiten.Image, it Item, cellSize int) {
	clr := colorTerm
	if it.Lang == LangTranslation {
		clr = colorTrans
	}

	w, h := text.Measure(it.Text, uiFace, 0)
	tw := float32(w) * textScale
	th := float32(h) * textScale
	cx := float32(it.Pos.X*cellSize) + float32(cellSize)/2
	cy := float32(it.Pos.Y*cellSize) + float32(cellSize)/2

	const pad = 4
	vector.DrawFilledRect(screen, cx-tw/2-pad+2, cy-th/2-pad+2, tw+2*pad, th+2*pad, colorShadow, false)
	vector.DrawFilledRect(screen, cx-tw/2-pad, cy-th/2-pad, tw+2*pad, th+2*pad, colorItemBG, false)

	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(cx-tw/2), float64(cy-th/2))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, it.Text, uiFace, op)
}

func drawHUD(screen *ebiten.Image, snap Snapshot) {
	vector.DrawFilledRect(screen, 0, 0,
		float32(snap.GridW*snap.CellSize), float32(snap.HUDHeight), colorOverlay, false)
	line1 := fmt.Sprintf("Find: %s", snap.TargetTranslation)
	line2 := fmt.Sprintf("Score %d   Lives %d   Level %d", snap.Score, snap.Lives, snap.Level)
	drawText(screen, line1, 8, 6, colorHUD)
	drawText(screen, line2, 8, 26, colorHUD)
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, uiFace, op)
}

func drawOverlay(screen *ebiten.Image, snap Snapshot, title, hint string) {
	w := float32(snap.GridW * snap.CellSize)
	h := float32(snap.GridH * snap.CellSize)
	boxW, boxH := float32(420), float32(100)
	bx := (w - boxW) / 2
	by := (h - boxH) / 2
	vector.DrawFilledRect(screen, bx, by, boxW, boxH, colorOverlay, false)

	tw, _ := text.Measure(title, uiFace, 0)
	hw, _ := text.Measure(hint, uiFace, 0)
	drawText(screen, title, float64(w/2)-float64(tw)*textScale/2, float64(by)+20, colorHUD)
	drawText(screen, hint, float64(w/2)-float64(hw)*textScale/2, float64(by)+56, colorHUD)
}
