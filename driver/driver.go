// Package driver wires a session into a loop.Scheduler: it feeds input events
// and clock ticks to the session and publishes a snapshot after every frame.
package driver

import (
	"math/rand/v2"
	"slices"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

// Totals accumulates per-run counters across sessions.
type Totals struct {
	Games     int
	Pieces    int
	Rows      int
	BestScore int
}

// Game holds the live session. Restart swaps in a brand-new session built
// from the same options; the old one is dropped as a whole.
type Game struct {
	Session *session.Session
	Totals  Totals

	// OnTransition, when set, sees every state change of every session.
	OnTransition session.TransitionFunc

	opts []session.Option
}

// NewGame creates a game whose sessions share one seeded piece sequence.
// Transition hooks belong on Game.OnTransition rather than in opts.
func NewGame(seed uint64, opts ...session.Option) *Game {
	g := &Game{}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	g.opts = append([]session.Option{
		session.WithEngineFactory(func() *tetris.Engine {
			e := tetris.NewEngine(tetris.WithRand(rng))
			e.OnLock = g.recordLock
			return e
		}),
	}, opts...)
	g.Restart()
	return g
}

// Restart discards the current session and starts a new one in Start.
func (g *Game) Restart() {
	g.Session = session.New(append(slices.Clone(g.opts), session.WithTransitionHook(g.recordTransition))...)
}

func (g *Game) recordLock(_ tetris.Piece, cleared int) {
	g.Totals.Pieces++
	g.Totals.Rows += cleared
}

func (g *Game) recordTransition(from, to session.Phase, score int) {
	if to == session.PhaseEnd {
		g.Totals.Games++
		if score > g.Totals.BestScore {
			g.Totals.BestScore = score
		}
	}
	if g.OnTransition != nil {
		g.OnTransition(from, to, score)
	}
}
