package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/session"
)

var debugKeys = []session.Key{
	session.KeyConfirm,
	session.KeyRotate,
	session.KeyLeft,
	session.KeyRight,
	session.KeyDown,
}

// SessionPanel shows the live session: phase, score, active piece, held keys
// and the totals across restarts.
type SessionPanel struct {
	Game      *driver.Game
	Snapshots *driver.SnapshotSystem
}

func (p *SessionPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 320), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := p.Snapshots.Latest()
	imgui.Text(fmt.Sprintf("Phase: %s", snap.Phase))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))

	if snap.Phase == session.PhasePlaying {
		if snap.Active != nil {
			r, g, b, a := palette.Vec(snap.Active.Cells[0].Color)
			imgui.TextColored(imgui.NewVec4(r, g, b, a), fmt.Sprintf("Piece: %s at (%d, %d)", snap.Active.Cells[0].Color, snap.Active.X, snap.Active.Y))
			imgui.Text(fmt.Sprintf("Drop distance: %d", snap.Ghost))
		} else {
			imgui.Text("Piece: none")
		}
		imgui.Text(fmt.Sprintf("Filled cells: %d", filledCells(snap)))
	}

	if snap.Phase == session.PhaseEnd {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
		if imgui.Button("Restart") {
			p.Game.Restart()
		}
	}

	imgui.Separator()
	if imgui.TreeNodeStr("Held Keys") {
		router := p.Game.Session.Router()
		for _, k := range debugKeys {
			if router.Held(k) {
				imgui.BulletText(k.String())
			}
		}
		imgui.TreePop()
	}

	imgui.Separator()
	totals := p.Game.Totals
	imgui.Text(fmt.Sprintf("Games: %d", totals.Games))
	imgui.Text(fmt.Sprintf("Pieces locked: %d", totals.Pieces))
	imgui.Text(fmt.Sprintf("Rows cleared: %d", totals.Rows))
	imgui.Text(fmt.Sprintf("Best score: %d", totals.BestScore))

	imgui.End()
}

func filledCells(snap session.Snapshot) int {
	n := 0
	for _, row := range snap.Board {
		for _, cell := range row {
			if cell.Filled {
				n++
			}
		}
	}
	return n
}
