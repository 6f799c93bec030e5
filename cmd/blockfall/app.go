package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/session"
)

const (
	margin          = 16
	debugPanelWidth = 380
)

// App implements ebiten.Game. Update runs one scheduler frame; Draw renders
// the snapshot that frame produced.
type App struct {
	Scheduler *loop.Scheduler
	Snapshots *driver.SnapshotSystem
	Imgui     *debugui_ebiten.ImguiBackend
	CellSize  int
	TPS       int
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if a.Imgui != nil {
		a.Imgui.BeginFrame()
	}
	a.Scheduler.Once(1.0 / float64(a.TPS))
	if a.Imgui != nil {
		a.Imgui.EndFrame()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(palette.Background)

	snap := a.Snapshots.Latest()
	a.drawWell(screen, snap)

	switch snap.Phase {
	case session.PhaseStart:
		ebitenutil.DebugPrintAt(screen, "Press ENTER to start", margin+8, margin+8)
	case session.PhasePlaying:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), margin+8, margin+8)
	case session.PhaseEnd:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GAME OVER  Score: %d", snap.Score), margin+8, margin+8)
		ebitenutil.DebugPrintAt(screen, "Press R to play again", margin+8, margin+24)
	}

	if a.Imgui != nil {
		a.Imgui.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.Imgui != nil {
		a.Imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (a *App) drawWell(screen *ebiten.Image, snap session.Snapshot) {
	rows := len(snap.Board)
	if rows == 0 {
		return
	}
	cols := len(snap.Board[0])
	size := float32(a.CellSize)

	vector.DrawFilledRect(screen, margin, margin, float32(cols)*size, float32(rows)*size, palette.Well, false)

	for y, row := range snap.Board {
		for x, cell := range row {
			if cell.Filled {
				a.drawCell(screen, rows, x, y, palette.Block(cell.Color), true)
			}
		}
	}

	if snap.Active == nil {
		return
	}
	for _, pos := range snap.Active.Absolute() {
		a.drawCell(screen, rows, pos[0], pos[1]-snap.Ghost, palette.Ghost, false)
	}
	c := palette.Block(snap.Active.Cells[0].Color)
	for _, pos := range snap.Active.Absolute() {
		a.drawCell(screen, rows, pos[0], pos[1], c, true)
	}
}

// drawCell draws board cell (x, y). Row 0 is the bottom of the well.
func (a *App) drawCell(screen *ebiten.Image, rows, x, y int, c color.Color, outlined bool) {
	if y < 0 || y >= rows {
		return
	}
	size := float32(a.CellSize)
	sx := margin + float32(x)*size
	sy := margin + float32(rows-1-y)*size

	vector.DrawFilledRect(screen, sx, sy, size, size, c, false)
	if outlined {
		vector.StrokeRect(screen, sx, sy, size, size, 1, palette.Grid, false)
	}
}
