package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Piece sequence seed. Zero picks a random one.")
	flag.IntVar(&cfg.CellSize, "cell-size", cfg.CellSize, "Size of one board cell in pixels.")
	flag.BoolVar(&cfg.DebugUI, "debug-ui", cfg.DebugUI, "Show the Dear ImGui debug overlay.")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	seed, err := cfg.ResolveSeed()
	if err != nil {
		log.Fatalf("Failed to pick a seed: %v", err)
	}
	log.Printf("Starting blockfall with seed %d", seed)

	game := driver.NewGame(seed)
	game.OnTransition = func(from, to session.Phase, score int) {
		log.Printf("Session %s -> %s (score %d)", from, to, score)
	}

	keyboard := &KeyboardSource{}
	snapshots := &driver.SnapshotSystem{Game: game}

	scheduler := loop.NewScheduler()
	scheduler.Register(&driver.InputSystem{Game: game, Source: keyboard})
	scheduler.Register(&driver.TickSystem{Game: game})
	scheduler.Register(&driver.RestartSystem{Game: game, Requested: keyboard.RestartRequested})
	scheduler.Register(snapshots)

	width := tetris.DefaultWidth*cfg.CellSize + 2*margin
	height := tetris.DefaultHeight*cfg.CellSize + 2*margin

	app := &App{
		Scheduler: scheduler,
		Snapshots: snapshots,
		CellSize:  cfg.CellSize,
		TPS:       cfg.TPS,
	}

	if cfg.DebugUI {
		width += debugPanelWidth
		app.Imgui = debugui_ebiten.NewImguiBackend("Blockfall", width, height)

		overlay := &debugui.ImguiSystem{}
		overlay.Add(&debugui.SessionPanel{Game: game, Snapshots: snapshots})
		overlay.Add(debugui.NewPerformancePanel(scheduler, 120))
		scheduler.Register(overlay)
		keyboard.Captured = func() bool { return overlay.InputState.WantCaptureKeyboard }
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Blockfall")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}

	log.Printf("Played %d games, %d pieces, %d rows, best score %d",
		game.Totals.Games, game.Totals.Pieces, game.Totals.Rows, game.Totals.BestScore)
}
